package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/MrEthical07/boardAuth/apikey"
	"github.com/MrEthical07/boardAuth/password"
	"golang.org/x/crypto/bcrypt"
)

func TestGenerateBcrypt(t *testing.T) {
	creds, err := generate(options{Algorithm: algoBcrypt, Cost: bcrypt.MinCost})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(creds.Password) != passwordLength {
		t.Fatalf("expected %d char password, got %q", passwordLength, creds.Password)
	}
	if len(creds.APIKey) != apiKeyLength {
		t.Fatalf("expected %d char api key, got %q", apiKeyLength, creds.APIKey)
	}
	if len(creds.AuthSecret) != authSecretSize*2 {
		t.Fatalf("expected hex auth secret, got %q", creds.AuthSecret)
	}
	if strings.ContainsAny(creds.Password+creds.APIKey, "+/=") {
		t.Fatal("expected env-safe characters only")
	}

	ok, err := password.NewVerifier(creds.PasswordHash).Verify(creds.Password)
	if err != nil || !ok {
		t.Fatalf("expected hash to verify generated password, ok=%v err=%v", ok, err)
	}
	if !apikey.New(creds.APIKey).Verify(creds.APIKey) {
		t.Fatal("expected api key to verify")
	}
}

func TestGenerateArgon2WithExistingPassword(t *testing.T) {
	creds, err := generate(options{Algorithm: algoArgon2id, Password: "my board password"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.HasPrefix(creds.PasswordHash, "$argon2id$") {
		t.Fatalf("expected argon2id hash, got %q", creds.PasswordHash)
	}
	ok, err := password.NewVerifier(creds.PasswordHash).Verify("my board password")
	if err != nil || !ok {
		t.Fatalf("expected hash to verify, ok=%v err=%v", ok, err)
	}
}

func TestGenerateRejectsUnknownAlgorithm(t *testing.T) {
	if _, err := generate(options{Algorithm: "md5"}); err == nil {
		t.Fatal("expected error")
	}
}

func TestGenerateIsRandom(t *testing.T) {
	a, err := generate(options{Cost: bcrypt.MinCost})
	if err != nil {
		t.Fatal(err)
	}
	b, err := generate(options{Cost: bcrypt.MinCost})
	if err != nil {
		t.Fatal(err)
	}
	if a.Password == b.Password || a.APIKey == b.APIKey || a.AuthSecret == b.AuthSecret {
		t.Fatal("expected fresh secrets on every run")
	}
}

func TestRunPrintsEnvLines(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"-cost", "4", "-password", "given"}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	text := out.String()
	for _, want := range []string{"BOARD_PASSWORD_HASH=$2a$04$", "BOARD_API_KEY=", "AUTH_SECRET="} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in output:\n%s", want, text)
		}
	}
	if strings.Contains(text, "Board password") {
		t.Fatal("expected no generated password section when one is given")
	}
}
