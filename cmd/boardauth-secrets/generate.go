package main

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/MrEthical07/boardAuth/internal"
	"github.com/MrEthical07/boardAuth/password"
)

const (
	algoBcrypt   = "bcrypt"
	algoArgon2id = "argon2id"

	passwordLength = 24
	apiKeyLength   = 32
	authSecretSize = 32
)

type options struct {
	Algorithm string
	Cost      int
	Password  string
}

type credentials struct {
	Password     string
	PasswordHash string
	APIKey       string
	AuthSecret   string
}

func generate(opts options) (credentials, error) {
	var creds credentials
	var err error

	creds.Password = opts.Password
	if creds.Password == "" {
		// 18 bytes encode to exactly 24 base64 characters.
		creds.Password, err = randomToken(18, passwordLength, "x")
		if err != nil {
			return credentials{}, err
		}
	}

	switch opts.Algorithm {
	case algoBcrypt, "":
		creds.PasswordHash, err = password.HashBcrypt(creds.Password, opts.Cost)
	case algoArgon2id:
		creds.PasswordHash, err = password.HashArgon2(creds.Password, password.DefaultArgon2Params())
	default:
		err = fmt.Errorf("unknown algorithm %q", opts.Algorithm)
	}
	if err != nil {
		return credentials{}, err
	}

	creds.APIKey, err = randomToken(24, apiKeyLength, "A")
	if err != nil {
		return credentials{}, err
	}

	secret, err := internal.NewSecret(authSecretSize)
	if err != nil {
		return credentials{}, err
	}
	creds.AuthSecret = hex.EncodeToString(secret)

	return creds, nil
}

// randomToken base64-encodes size random bytes, replaces the characters that
// are awkward in env files with fill, and truncates to length.
func randomToken(size, length int, fill string) (string, error) {
	raw, err := internal.NewSecret(size)
	if err != nil {
		return "", err
	}
	s := base64.StdEncoding.EncodeToString(raw)
	s = strings.NewReplacer("+", fill, "/", fill, "=", fill).Replace(s)
	if len(s) > length {
		s = s[:length]
	}
	return s, nil
}
