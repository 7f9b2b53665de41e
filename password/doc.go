// Package password verifies a submitted board password against the single
// configured hash.
//
// # Supported hashes
//
// The hash is recognised by its prefix:
//
//	$2a$ / $2b$ / $2y$   bcrypt (default; what boardauth-secrets emits)
//	$argon2id$v=19$...   Argon2id in PHC string format
//
// Anything else is treated as malformed and never matches.
//
// # Fail-closed rules
//
// An empty configured hash means no password can succeed. A malformed hash
// returns false together with an error so callers may log it; the boolean is
// the only thing that decides access.
//
// # What this package must NOT do
//
//   - Store or retrieve passwords. Callers supply plaintext and the hash.
//   - Import any other boardAuth package.
//   - Log plaintext passwords or hash material.
package password
