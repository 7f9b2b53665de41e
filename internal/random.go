package internal

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

// SessionTokenBytes is the amount of randomness behind every session token.
const SessionTokenBytes = 32

// SessionTokenLength is the encoded length of a session token.
const SessionTokenLength = SessionTokenBytes * 2

func NewSessionToken() (string, error) {
	var raw [SessionTokenBytes]byte
	if _, err := rand.Read(raw[:]); err != nil {
		return "", err
	}
	// hex, fixed length, safe in headers
	return hex.EncodeToString(raw[:]), nil
}

// HashToken returns the hex SHA-256 of a token. Used wherever a token would
// otherwise be written to shared storage.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func NewSecret(size int) ([]byte, error) {
	if size <= 0 {
		return nil, errors.New("invalid secret size")
	}
	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return nil, err
	}
	return buf, nil
}
