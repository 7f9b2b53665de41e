package password

import (
	"errors"
	"strings"
)

var (
	// ErrNoHash is returned when no password hash is configured.
	ErrNoHash = errors.New("password hash not configured")
	// ErrUnsupportedHash is returned for a hash of an unknown family.
	ErrUnsupportedHash = errors.New("unsupported password hash")
)

// Verifier checks plaintext passwords against one configured hash. It is
// immutable after construction and safe for concurrent use.
type Verifier struct {
	hash string
}

// NewVerifier wraps the configured hash. Surrounding whitespace is trimmed since
// hashes usually arrive through environment variables.
func NewVerifier(hash string) *Verifier {
	return &Verifier{hash: strings.TrimSpace(hash)}
}

// Configured reports whether a hash is present.
func (v *Verifier) Configured() bool {
	return v != nil && v.hash != ""
}

// Verify reports whether plaintext matches the configured hash.
//
// The result is false whenever err is non-nil. An empty hash yields
// (false, ErrNoHash) for every input.
func (v *Verifier) Verify(plaintext string) (bool, error) {
	if !v.Configured() {
		return false, ErrNoHash
	}

	switch {
	case isBcrypt(v.hash):
		return verifyBcrypt(plaintext, v.hash)
	case strings.HasPrefix(v.hash, "$"+argon2ID+"$"):
		return verifyArgon2(plaintext, v.hash)
	default:
		return false, ErrUnsupportedHash
	}
}
