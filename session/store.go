package session

import (
	"context"
	"errors"
	"time"
)

const (
	// DefaultTTL is the fixed lifetime of a session token.
	DefaultTTL = 24 * time.Hour
	// DefaultSweepInterval is how often expired entries are purged.
	DefaultSweepInterval = time.Minute
)

var (
	// ErrRedisUnavailable wraps every Redis failure surfaced by [RedisStore].
	ErrRedisUnavailable = errors.New("redis unavailable")
	// ErrExpired accompanies a false Verify result when the token existed but
	// had expired and was removed.
	ErrExpired = errors.New("session expired")
)

// Store is the session-token registry.
type Store interface {
	// Create mints a fresh token valid for the configured TTL.
	Create(ctx context.Context) (string, error)
	// Verify reports whether token exists and has not expired. Expired entries
	// found during verification are removed and reported with ErrExpired.
	Verify(ctx context.Context, token string) (bool, error)
	// Sweep removes every expired entry and returns how many were removed.
	Sweep(ctx context.Context) (int, error)
}

// Config holds session store tuning parameters.
type Config struct {
	TTL time.Duration

	// Clock overrides time.Now for the in-memory backend. Nil means wall clock.
	Clock func() time.Time
}

func (c Config) withDefaults() Config {
	if c.TTL <= 0 {
		c.TTL = DefaultTTL
	}
	if c.Clock == nil {
		c.Clock = time.Now
	}
	return c
}
