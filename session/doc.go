// Package session provides the opaque session-token registry consulted by the
// authorization gate.
//
// # Model
//
// A session is nothing more than a high-entropy token mapped to an absolute
// expiry. Tokens are minted only after a successful password check and carry no
// identity: there is exactly one credential class. A token is valid iff it is
// present and its expiry is strictly in the future. Validation never extends the
// lifetime.
//
// # Backends
//
//   - [MemoryStore]: process-local map (default). Lost on restart and invisible
//     to other instances.
//   - [RedisStore]: shared across instances; keys are SHA-256 hashes of tokens
//     and expire through Redis TTLs.
//
// [Sweeper] periodically calls [Store.Sweep] to bound memory held by abandoned
// tokens.
//
// # What this package must NOT do
//
//   - Import boardAuth (no upward imports).
//   - Log or return token values in errors.
//   - Decide who may mint a token (the Engine gates Create behind password
//     verification).
package session
