package boardAuth

import (
	"errors"
	"strings"
	"time"
)

// Backend names accepted by the Backend fields of the config sections.
const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendMySQL    = "mysql"
)

// Config is the complete process configuration. Secrets in Auth are read once
// at Build and never change afterwards.
type Config struct {
	Auth      AuthConfig      `toml:"auth" yaml:"auth"`
	Session   SessionConfig   `toml:"session" yaml:"session"`
	RateLimit RateLimitConfig `toml:"rate_limit" yaml:"rate_limit"`
	Audit     AuditConfig     `toml:"audit" yaml:"audit"`
	Metrics   MetricsConfig   `toml:"metrics" yaml:"metrics"`
	Board     BoardConfig     `toml:"board" yaml:"board"`
	Server    ServerConfig    `toml:"server" yaml:"server"`
	Redis     RedisConfig     `toml:"redis" yaml:"redis"`
}

/*
====================================
AUTH CONFIG
====================================
*/

// AuthConfig carries the board secrets. Empty values disable the matching
// credential rather than failing startup.
type AuthConfig struct {
	PasswordHash string `toml:"password_hash" yaml:"password_hash"`
	APIKey       string `toml:"api_key" yaml:"api_key"`
	// AuthSecret is reserved. It is loaded and redacted but no primitive
	// consumes it.
	AuthSecret string `toml:"auth_secret" yaml:"auth_secret"`
}

/*
====================================
SESSION CONFIG
====================================
*/

// SessionConfig controls session-token lifetime and storage.
type SessionConfig struct {
	TTL           time.Duration `toml:"ttl" yaml:"ttl"`
	SweepInterval time.Duration `toml:"sweep_interval" yaml:"sweep_interval"`
	Backend       string        `toml:"backend" yaml:"backend"`
	RedisPrefix   string        `toml:"redis_prefix" yaml:"redis_prefix"`
}

/*
====================================
RATE LIMIT CONFIG
====================================
*/

// RateLimitConfig controls the fixed-window login limiter.
type RateLimitConfig struct {
	MaxAttempts int           `toml:"max_attempts" yaml:"max_attempts"`
	Window      time.Duration `toml:"window" yaml:"window"`
	Backend     string        `toml:"backend" yaml:"backend"`
	RedisPrefix string        `toml:"redis_prefix" yaml:"redis_prefix"`
}

// AuditConfig controls the asynchronous audit dispatcher.
type AuditConfig struct {
	Enabled    bool `toml:"enabled" yaml:"enabled"`
	BufferSize int  `toml:"buffer_size" yaml:"buffer_size"`
	DropIfFull bool `toml:"drop_if_full" yaml:"drop_if_full"`
}

// MetricsConfig controls in-process counters and the latency histogram.
type MetricsConfig struct {
	Enabled                 bool `toml:"enabled" yaml:"enabled"`
	EnableLatencyHistograms bool `toml:"enable_latency_histograms" yaml:"enable_latency_histograms"`
}

/*
====================================
BOARD / SERVER CONFIG
====================================
*/

// BoardConfig selects where the board document is persisted.
type BoardConfig struct {
	Backend  string `toml:"backend" yaml:"backend"`
	DSN      string `toml:"dsn" yaml:"dsn"`
	RedisKey string `toml:"redis_key" yaml:"redis_key"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Addr            string        `toml:"addr" yaml:"addr"`
	ReadTimeout     time.Duration `toml:"read_timeout" yaml:"read_timeout"`
	WriteTimeout    time.Duration `toml:"write_timeout" yaml:"write_timeout"`
	ShutdownTimeout time.Duration `toml:"shutdown_timeout" yaml:"shutdown_timeout"`
	MaxBodyBytes    int64         `toml:"max_body_bytes" yaml:"max_body_bytes"`
}

// RedisConfig is used by cmd/kanbanboard to dial the shared client.
type RedisConfig struct {
	Addr     string `toml:"addr" yaml:"addr"`
	Password string `toml:"password" yaml:"password"`
	DB       int    `toml:"db" yaml:"db"`
}

/*
====================================
DEFAULTS
====================================
*/

// DefaultConfig returns the production defaults: in-memory backends, a
// 24 hour session lifetime, five login attempts per 15 minutes.
func DefaultConfig() Config {
	return Config{
		Session: SessionConfig{
			TTL:           24 * time.Hour,
			SweepInterval: time.Minute,
			Backend:       BackendMemory,
			RedisPrefix:   "bs",
		},
		RateLimit: RateLimitConfig{
			MaxAttempts: 5,
			Window:      15 * time.Minute,
			Backend:     BackendMemory,
			RedisPrefix: "bl",
		},
		Audit: AuditConfig{
			Enabled:    false,
			BufferSize: 1024,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled:                 true,
			EnableLatencyHistograms: true,
		},
		Board: BoardConfig{
			Backend:  BackendMemory,
			RedisKey: "board:columns",
		},
		Server: ServerConfig{
			Addr:            ":3000",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			MaxBodyBytes:    1 << 20,
		},
		Redis: RedisConfig{
			Addr: "127.0.0.1:6379",
		},
	}
}

// Config holds only value types, so a plain copy isolates callers.
func cloneConfig(cfg Config) Config {
	return cfg
}

/*
====================================
VALIDATION
====================================
*/

// Validate reports the first invalid setting. Missing secrets are not an
// error: they disable the corresponding credential.
func (c *Config) Validate() error {
	// Session
	if c.Session.TTL <= 0 {
		return errors.New("Session TTL must be > 0")
	}
	if c.Session.SweepInterval <= 0 {
		return errors.New("Session SweepInterval must be > 0")
	}
	if c.Session.Backend != BackendMemory && c.Session.Backend != BackendRedis {
		return errors.New("Session Backend must be 'memory' or 'redis'")
	}
	if c.Session.Backend == BackendRedis && strings.TrimSpace(c.Session.RedisPrefix) == "" {
		return errors.New("Session RedisPrefix must not be empty")
	}

	// Rate limit
	if c.RateLimit.MaxAttempts <= 0 {
		return errors.New("RateLimit MaxAttempts must be > 0")
	}
	if c.RateLimit.Window <= 0 {
		return errors.New("RateLimit Window must be > 0")
	}
	if c.RateLimit.Backend != BackendMemory && c.RateLimit.Backend != BackendRedis {
		return errors.New("RateLimit Backend must be 'memory' or 'redis'")
	}
	if c.RateLimit.Backend == BackendRedis && strings.TrimSpace(c.RateLimit.RedisPrefix) == "" {
		return errors.New("RateLimit RedisPrefix must not be empty")
	}
	if c.RateLimit.Backend == BackendRedis && c.Session.Backend == BackendRedis &&
		c.RateLimit.RedisPrefix == c.Session.RedisPrefix {
		return errors.New("RateLimit and Session RedisPrefix must differ")
	}

	// Audit
	if c.Audit.Enabled && c.Audit.BufferSize <= 0 {
		return errors.New("Audit BufferSize must be > 0 when enabled")
	}

	// Board
	switch c.Board.Backend {
	case BackendMemory:
	case BackendRedis:
		if strings.TrimSpace(c.Board.RedisKey) == "" {
			return errors.New("Board RedisKey must not be empty")
		}
	case BackendSQLite, BackendPostgres, BackendMySQL:
		if strings.TrimSpace(c.Board.DSN) == "" {
			return errors.New("Board DSN is required for SQL backends")
		}
	default:
		return errors.New("Board Backend must be 'memory', 'redis', 'sqlite', 'postgres' or 'mysql'")
	}

	// Server
	if c.Server.MaxBodyBytes <= 0 {
		return errors.New("Server MaxBodyBytes must be > 0")
	}
	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 || c.Server.ShutdownTimeout < 0 {
		return errors.New("Server timeouts must be >= 0")
	}

	return nil
}

// UsesRedis reports whether any configured backend needs a Redis client.
func (c *Config) UsesRedis() bool {
	return c.Session.Backend == BackendRedis ||
		c.RateLimit.Backend == BackendRedis ||
		c.Board.Backend == BackendRedis
}

// Redacted returns a copy safe to log: secret fields are replaced by "[set]"
// or "[unset]".
func (c Config) Redacted() Config {
	out := c
	out.Auth.PasswordHash = redact(c.Auth.PasswordHash)
	out.Auth.APIKey = redact(c.Auth.APIKey)
	out.Auth.AuthSecret = redact(c.Auth.AuthSecret)
	out.Redis.Password = redact(c.Redis.Password)
	if c.Board.Backend == BackendPostgres || c.Board.Backend == BackendMySQL {
		out.Board.DSN = redact(c.Board.DSN)
	}
	return out
}

func redact(v string) string {
	if v == "" {
		return "[unset]"
	}
	return "[set]"
}
