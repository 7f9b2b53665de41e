package boardAuth

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigFileTOML(t *testing.T) {
	path := writeConfigFile(t, "board.toml", `
[auth]
api_key = "from-toml"

[rate_limit]
max_attempts = 3
window = "10m"

[board]
backend = "sqlite"
dsn = "file:board.db"
`)

	cfg, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Auth.APIKey != "from-toml" {
		t.Fatalf("unexpected api key %q", cfg.Auth.APIKey)
	}
	if cfg.RateLimit.MaxAttempts != 3 || cfg.RateLimit.Window != 10*time.Minute {
		t.Fatalf("unexpected rate limit %+v", cfg.RateLimit)
	}
	if cfg.Session.TTL != 24*time.Hour {
		t.Fatalf("expected untouched default session ttl, got %v", cfg.Session.TTL)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected loaded config to validate: %v", err)
	}
}

func TestLoadConfigFileYAML(t *testing.T) {
	path := writeConfigFile(t, "board.yaml", `
session:
  backend: redis
  ttl: 12h
server:
  addr: ":8080"
`)

	cfg, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Session.Backend != BackendRedis || cfg.Session.TTL != 12*time.Hour {
		t.Fatalf("unexpected session %+v", cfg.Session)
	}
	if cfg.Server.Addr != ":8080" {
		t.Fatalf("unexpected addr %q", cfg.Server.Addr)
	}
	if cfg.RateLimit.MaxAttempts != 5 {
		t.Fatalf("expected default attempts, got %d", cfg.RateLimit.MaxAttempts)
	}
}

func TestLoadConfigFileRejectsUnknownKeys(t *testing.T) {
	toml := writeConfigFile(t, "bad.toml", "[auth]\npasword_hash = \"x\"\n")
	if _, err := LoadConfigFile(toml); err == nil {
		t.Fatal("expected unknown toml key to fail")
	}
	yml := writeConfigFile(t, "bad.yml", "auth:\n  pasword_hash: x\n")
	if _, err := LoadConfigFile(yml); err == nil {
		t.Fatal("expected unknown yaml key to fail")
	}
}

func TestLoadConfigFileErrors(t *testing.T) {
	if _, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("expected missing file to fail")
	}
	if _, err := LoadConfigFile(writeConfigFile(t, "board.json", "{}")); err == nil {
		t.Fatal("expected unsupported extension to fail")
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"BOARD_PASSWORD_HASH": " $2a$12$hash \n",
		"BOARD_API_KEY":       "env-key",
		"AUTH_SECRET":         "env-secret",
		"REDIS_ADDR":          "redis:6379",
		"DATABASE_URL":        "postgres://board@db/board",
		"PORT":                "4000",
	}
	cfg := DefaultConfig()
	ApplyEnv(&cfg, func(k string) string { return env[k] })

	if cfg.Auth.PasswordHash != "$2a$12$hash" {
		t.Fatalf("expected trimmed hash, got %q", cfg.Auth.PasswordHash)
	}
	if cfg.Auth.APIKey != "env-key" || cfg.Auth.AuthSecret != "env-secret" {
		t.Fatal("expected api key and auth secret from env")
	}
	if cfg.Redis.Addr != "redis:6379" {
		t.Fatalf("unexpected redis addr %q", cfg.Redis.Addr)
	}
	if cfg.Board.Backend != BackendPostgres || cfg.Board.DSN != "postgres://board@db/board" {
		t.Fatalf("unexpected board %+v", cfg.Board)
	}
	if cfg.Server.Addr != ":4000" {
		t.Fatalf("expected PORT fallback, got %q", cfg.Server.Addr)
	}

	env["BOARD_ADDR"] = "127.0.0.1:9000"
	ApplyEnv(&cfg, func(k string) string { return env[k] })
	if cfg.Server.Addr != "127.0.0.1:9000" {
		t.Fatalf("expected BOARD_ADDR to win, got %q", cfg.Server.Addr)
	}
}

func TestApplyEnvKeepsFileValuesWhenUnset(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Auth.APIKey = "from-file"
	cfg.Board.Backend = BackendSQLite
	ApplyEnv(&cfg, func(string) string { return "" })

	if cfg.Auth.APIKey != "from-file" || cfg.Board.Backend != BackendSQLite {
		t.Fatal("expected unset env to leave config untouched")
	}
	ApplyEnv(nil, nil)
}
