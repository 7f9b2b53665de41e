package rate

import (
	"context"
	"sync"
	"time"
)

const (
	// DefaultMaxAttempts is the number of failed logins allowed per window.
	DefaultMaxAttempts = 5
	// DefaultWindow is the fixed window length per client identifier.
	DefaultWindow = 15 * time.Minute
)

// Config holds rate limiter tuning parameters.
type Config struct {
	MaxAttempts int
	Window      time.Duration

	// Clock overrides time.Now for the in-memory backend. Nil means wall clock.
	Clock func() time.Time
}

func (c Config) withDefaults() Config {
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = DefaultMaxAttempts
	}
	if c.Window <= 0 {
		c.Window = DefaultWindow
	}
	if c.Clock == nil {
		c.Clock = time.Now
	}
	return c
}

// Limiter is the login attempt budget. IsLimited must be consulted before any
// password work; RecordAttempt is called once per failed or malformed attempt.
type Limiter interface {
	IsLimited(ctx context.Context, clientID string) (bool, error)
	RecordAttempt(ctx context.Context, clientID string) error
}

type record struct {
	count   int
	resetAt time.Time
}

// MemoryLimiter keeps one record per client identifier in a mutex-guarded map.
// Stale records stay in the map until the same client attempts again.
type MemoryLimiter struct {
	mu      sync.Mutex
	config  Config
	records map[string]record
}

// NewMemory creates a process-local [MemoryLimiter].
func NewMemory(cfg Config) *MemoryLimiter {
	return &MemoryLimiter{
		config:  cfg.withDefaults(),
		records: make(map[string]record),
	}
}

// IsLimited reports whether clientID has a live window whose count reached the
// threshold. Absent and expired records are never limited.
func (l *MemoryLimiter) IsLimited(_ context.Context, clientID string) (bool, error) {
	now := l.config.Clock()

	l.mu.Lock()
	defer l.mu.Unlock()

	rec, ok := l.records[clientID]
	if !ok || now.After(rec.resetAt) {
		return false, nil
	}
	return rec.count >= l.config.MaxAttempts, nil
}

// RecordAttempt opens a fresh window when no live record exists, otherwise
// increments the live one.
func (l *MemoryLimiter) RecordAttempt(_ context.Context, clientID string) error {
	now := l.config.Clock()

	l.mu.Lock()
	defer l.mu.Unlock()

	rec, ok := l.records[clientID]
	if !ok || now.After(rec.resetAt) {
		l.records[clientID] = record{count: 1, resetAt: now.Add(l.config.Window)}
		return nil
	}
	rec.count++
	l.records[clientID] = rec
	return nil
}

// Attempts returns the live attempt count for clientID, or zero when the window
// is absent or expired.
func (l *MemoryLimiter) Attempts(_ context.Context, clientID string) (int, error) {
	now := l.config.Clock()

	l.mu.Lock()
	defer l.mu.Unlock()

	rec, ok := l.records[clientID]
	if !ok || now.After(rec.resetAt) {
		return 0, nil
	}
	return rec.count, nil
}
