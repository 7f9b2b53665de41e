package boardAuth

import (
	"errors"
	"log"
	"time"

	"github.com/MrEthical07/boardAuth/apikey"
	"github.com/MrEthical07/boardAuth/internal/rate"
	"github.com/MrEthical07/boardAuth/password"
	"github.com/MrEthical07/boardAuth/session"
	"github.com/redis/go-redis/v9"
)

// Builder assembles an Engine. A Builder can be used for one Build only.
type Builder struct {
	config    Config
	redis     redis.UniversalClient
	auditSink AuditSink
	clock     func() time.Time

	built bool
}

// New returns a Builder seeded with DefaultConfig.
func New() *Builder {
	return &Builder{
		config: DefaultConfig(),
	}
}

// WithConfig replaces the whole configuration.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithRedis supplies the client used by Redis-backed limiter and session
// stores. It is not closed by the Engine.
func (b *Builder) WithRedis(client redis.UniversalClient) *Builder {
	b.redis = client
	return b
}

// WithAuditSink sets the audit destination. Audit must also be enabled in
// the config.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	return b
}

// WithMetricsEnabled toggles counter collection.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// WithLatencyHistograms toggles the password verification histogram.
func (b *Builder) WithLatencyHistograms(enabled bool) *Builder {
	b.config.Metrics.EnableLatencyHistograms = enabled
	return b
}

// WithClock overrides the time source of the in-memory limiter and session
// store. Intended for tests.
func (b *Builder) WithClock(now func() time.Time) *Builder {
	b.clock = now
	return b
}

// Build validates the configuration, wires the stores and starts the session
// sweeper.
func (b *Builder) Build() (*Engine, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}

	cfg := cloneConfig(b.config)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if b.redis == nil &&
		(cfg.Session.Backend == BackendRedis || cfg.RateLimit.Backend == BackendRedis) {
		return nil, ErrRedisRequired
	}

	engine := &Engine{
		config:    cfg,
		clock:     b.clock,
		passwords: password.NewVerifier(cfg.Auth.PasswordHash),
		apiKeys:   apikey.New(cfg.Auth.APIKey),
	}

	// -------- RATE LIMITER --------
	limiterCfg := rate.Config{
		MaxAttempts: cfg.RateLimit.MaxAttempts,
		Window:      cfg.RateLimit.Window,
		Clock:       b.clock,
	}
	if cfg.RateLimit.Backend == BackendRedis {
		engine.limiter = rate.NewRedis(b.redis, cfg.RateLimit.RedisPrefix, limiterCfg)
	} else {
		engine.limiter = rate.NewMemory(limiterCfg)
	}

	// -------- SESSION STORE --------
	sessionCfg := session.Config{
		TTL:   cfg.Session.TTL,
		Clock: b.clock,
	}
	if cfg.Session.Backend == BackendRedis {
		engine.sessionStore = session.NewRedis(b.redis, cfg.Session.RedisPrefix, sessionCfg)
	} else {
		engine.sessionStore = session.NewMemory(sessionCfg)
	}

	engine.audit = newAuditDispatcher(cfg.Audit, b.auditSink)
	engine.metrics = NewMetrics(cfg.Metrics)

	if !engine.passwords.Configured() {
		log.Print("boardAuth: no password hash configured; password login is disabled")
	}
	if !engine.apiKeys.Configured() {
		log.Print("boardAuth: no API key configured; API key access is disabled")
	}

	// Redis expires its own keys; only the memory store needs sweeping.
	if cfg.Session.Backend == BackendMemory {
		engine.sweeper = session.StartSweeper(engine.sessionStore, cfg.Session.SweepInterval, engine.emitSweep)
	}

	b.built = true

	return engine, nil
}
