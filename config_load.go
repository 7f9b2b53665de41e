package boardAuth

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadConfigFile reads a .toml, .yaml or .yml file layered over DefaultConfig.
// Keys the file does not mention keep their defaults; unknown keys are an
// error. The result is not validated.
func LoadConfigFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return cfg, fmt.Errorf("decode toml config: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return cfg, fmt.Errorf("decode toml config: unknown key %q", undecoded[0].String())
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return cfg, fmt.Errorf("decode yaml config: %w", err)
		}
	default:
		return cfg, fmt.Errorf("unsupported config format %q", ext)
	}

	return cfg, nil
}

// ApplyEnv overlays environment variables on cfg. getenv is usually os.Getenv.
//
//	BOARD_PASSWORD_HASH  Auth.PasswordHash
//	BOARD_API_KEY        Auth.APIKey
//	AUTH_SECRET          Auth.AuthSecret
//	REDIS_ADDR           Redis.Addr
//	REDIS_PASSWORD       Redis.Password
//	DATABASE_URL         Board.DSN (switches a memory board to postgres)
//	BOARD_ADDR           Server.Addr
//	PORT                 Server.Addr as ":PORT" when BOARD_ADDR is unset
func ApplyEnv(cfg *Config, getenv func(string) string) {
	if cfg == nil || getenv == nil {
		return
	}

	set := func(dst *string, key string) {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			*dst = v
		}
	}

	set(&cfg.Auth.PasswordHash, "BOARD_PASSWORD_HASH")
	set(&cfg.Auth.APIKey, "BOARD_API_KEY")
	set(&cfg.Auth.AuthSecret, "AUTH_SECRET")
	set(&cfg.Redis.Addr, "REDIS_ADDR")
	set(&cfg.Redis.Password, "REDIS_PASSWORD")

	if dsn := strings.TrimSpace(getenv("DATABASE_URL")); dsn != "" {
		cfg.Board.DSN = dsn
		if cfg.Board.Backend == BackendMemory {
			cfg.Board.Backend = BackendPostgres
		}
	}

	if addr := strings.TrimSpace(getenv("BOARD_ADDR")); addr != "" {
		cfg.Server.Addr = addr
	} else if port := strings.TrimSpace(getenv("PORT")); port != "" {
		cfg.Server.Addr = ":" + port
	}
}
