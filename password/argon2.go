package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/crypto/argon2"
)

const argon2ID = "argon2id"

const (
	minArgonMemoryKB uint32 = 8 * 1024
	minArgonSalt            = 16
)

// Argon2Params are the Argon2id cost parameters used by [HashArgon2].
type Argon2Params struct {
	Memory      uint32
	Time        uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// DefaultArgon2Params returns moderate interactive-login parameters.
func DefaultArgon2Params() Argon2Params {
	return Argon2Params{
		Memory:      64 * 1024,
		Time:        3,
		Parallelism: 2,
		SaltLength:  16,
		KeyLength:   32,
	}
}

// HashArgon2 hashes plaintext into a PHC string.
func HashArgon2(plaintext string, p Argon2Params) (string, error) {
	if plaintext == "" {
		return "", errors.New("password must not be empty")
	}
	if p.Memory < minArgonMemoryKB || p.Time < 1 || p.Parallelism < 1 ||
		p.SaltLength < minArgonSalt || p.KeyLength < 16 {
		return "", errors.New("argon2 parameters below minimum")
	}

	salt := make([]byte, p.SaltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", err
	}
	key := argon2.IDKey([]byte(plaintext), salt, p.Time, p.Memory, p.Parallelism, p.KeyLength)

	return fmt.Sprintf("$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2ID, argon2.Version, p.Memory, p.Time, p.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

func verifyArgon2(plaintext, encoded string) (bool, error) {
	p, salt, want, err := decodeArgon2(encoded)
	if err != nil {
		return false, err
	}

	got := argon2.IDKey([]byte(plaintext), salt, p.Time, p.Memory, p.Parallelism, uint32(len(want)))
	return subtle.ConstantTimeCompare(got, want) == 1, nil
}

// decodeArgon2 splits $argon2id$v=19$m=..,t=..,p=..$salt$key. Both padded and
// unpadded base64 are accepted.
func decodeArgon2(encoded string) (Argon2Params, []byte, []byte, error) {
	var p Argon2Params

	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != argon2ID {
		return p, nil, nil, errors.New("invalid argon2 hash format")
	}
	if parts[2] != "v="+strconv.Itoa(argon2.Version) {
		return p, nil, nil, errors.New("unsupported argon2 version")
	}

	for _, kv := range strings.Split(parts[3], ",") {
		name, value, ok := strings.Cut(kv, "=")
		if !ok {
			return p, nil, nil, errors.New("invalid argon2 parameter")
		}
		n, err := strconv.ParseUint(value, 10, 32)
		if err != nil {
			return p, nil, nil, fmt.Errorf("invalid argon2 parameter %q", name)
		}
		switch name {
		case "m":
			p.Memory = uint32(n)
		case "t":
			p.Time = uint32(n)
		case "p":
			if n > 255 {
				return p, nil, nil, errors.New("invalid argon2 parallelism")
			}
			p.Parallelism = uint8(n)
		default:
			return p, nil, nil, fmt.Errorf("unsupported argon2 parameter %q", name)
		}
	}
	if p.Memory < minArgonMemoryKB || p.Time < 1 || p.Parallelism < 1 {
		return p, nil, nil, errors.New("argon2 parameters missing or below minimum")
	}

	salt, err := decodeB64(parts[4])
	if err != nil || len(salt) < minArgonSalt {
		return p, nil, nil, errors.New("invalid argon2 salt")
	}
	key, err := decodeB64(parts[5])
	if err != nil || len(key) == 0 {
		return p, nil, nil, errors.New("invalid argon2 key")
	}

	p.SaltLength = uint32(len(salt))
	p.KeyLength = uint32(len(key))
	return p, salt, key, nil
}

func decodeB64(s string) ([]byte, error) {
	if strings.HasSuffix(s, "=") {
		return base64.StdEncoding.DecodeString(s)
	}
	return base64.RawStdEncoding.DecodeString(s)
}
