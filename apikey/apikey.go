package apikey

import (
	"crypto/subtle"
	"strings"
)

// Verifier holds the configured API key. It is immutable and safe for
// concurrent use.
type Verifier struct {
	key []byte
}

// New returns a Verifier for key. Surrounding whitespace is trimmed; an empty
// result disables API-key access.
func New(key string) *Verifier {
	key = strings.TrimSpace(key)
	if key == "" {
		return &Verifier{}
	}
	return &Verifier{key: []byte(key)}
}

// Configured reports whether an API key is set.
func (v *Verifier) Configured() bool {
	return v != nil && len(v.key) > 0
}

// Verify reports whether presented equals the configured key.
func (v *Verifier) Verify(presented string) bool {
	if !v.Configured() || presented == "" {
		return false
	}
	if len(presented) != len(v.key) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(presented), v.key) == 1
}
