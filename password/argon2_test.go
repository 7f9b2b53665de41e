package password

import (
	"encoding/base64"
	"strings"
	"testing"
)

func lightArgon2() Argon2Params {
	return Argon2Params{Memory: 8 * 1024, Time: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32}
}

func TestVerifierArgon2(t *testing.T) {
	hash, err := HashArgon2("argon-board-pw", lightArgon2())
	if err != nil {
		t.Fatalf("HashArgon2: %v", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$v=19$m=8192,t=1,p=1$") {
		t.Fatalf("unexpected PHC prefix: %s", hash)
	}

	v := NewVerifier(hash)
	if ok, err := v.Verify("argon-board-pw"); err != nil || !ok {
		t.Fatalf("expected match, got ok=%v err=%v", ok, err)
	}
	if ok, err := v.Verify("nope"); err != nil || ok {
		t.Fatalf("expected clean mismatch, got ok=%v err=%v", ok, err)
	}
}

func TestArgon2AcceptsPaddedBase64(t *testing.T) {
	hash, err := HashArgon2("padded", lightArgon2())
	if err != nil {
		t.Fatalf("HashArgon2: %v", err)
	}
	_, salt, key, err := decodeArgon2(hash)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	parts := strings.Split(hash, "$")
	parts[4] = padB64(salt)
	parts[5] = padB64(key)
	padded := strings.Join(parts, "$")

	if ok, err := NewVerifier(padded).Verify("padded"); err != nil || !ok {
		t.Fatalf("expected padded PHC to verify, got ok=%v err=%v", ok, err)
	}
}

func TestArgon2Malformed(t *testing.T) {
	good, err := HashArgon2("malformed-base", lightArgon2())
	if err != nil {
		t.Fatalf("HashArgon2: %v", err)
	}

	cases := map[string]string{
		"wrong version":    strings.Replace(good, "$v=19$", "$v=18$", 1),
		"weak memory":      strings.Replace(good, "m=8192", "m=1024", 1),
		"unknown param":    strings.Replace(good, "p=1", "x=1", 1),
		"missing sections": "$argon2id$v=19$m=8192,t=1,p=1",
		"bad salt":         strings.Join(append(strings.Split(good, "$")[:4], "!!!", "abc"), "$"),
	}
	for name, hash := range cases {
		ok, err := NewVerifier(hash).Verify("malformed-base")
		if ok || err == nil {
			t.Fatalf("%s: expected failure with error, got ok=%v err=%v", name, ok, err)
		}
	}
}

func TestHashArgon2RejectsWeakParams(t *testing.T) {
	p := lightArgon2()
	p.Memory = 1024
	if _, err := HashArgon2("x", p); err == nil {
		t.Fatal("expected weak params to be rejected")
	}
	if _, err := HashArgon2("", lightArgon2()); err == nil {
		t.Fatal("expected empty password to be rejected")
	}
}

func TestDefaultArgon2ParamsRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("64MiB argon2 is slow")
	}
	hash, err := HashArgon2("default-params", DefaultArgon2Params())
	if err != nil {
		t.Fatalf("HashArgon2: %v", err)
	}
	if ok, _ := NewVerifier(hash).Verify("default-params"); !ok {
		t.Fatal("expected default params hash to verify")
	}
}

func padB64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}
