package boardAuth

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MrEthical07/boardAuth/apikey"
	"github.com/MrEthical07/boardAuth/internal/rate"
	"github.com/MrEthical07/boardAuth/password"
	"github.com/MrEthical07/boardAuth/session"
)

// Header names consulted by the authorization gate.
const (
	HeaderAuthorization = "Authorization"
	HeaderSessionToken  = "X-Session-Token"
)

// AuthMethod records which credential satisfied the gate.
type AuthMethod uint8

const (
	AuthNone AuthMethod = iota
	AuthAPIKey
	AuthSession
)

func (m AuthMethod) String() string {
	switch m {
	case AuthAPIKey:
		return "api_key"
	case AuthSession:
		return "session"
	default:
		return "none"
	}
}

// Engine owns the limiter, session store, and both credential verifiers.
// Create one with [Builder.Build] and release it with [Engine.Close].
type Engine struct {
	config       Config
	limiter      rate.Limiter
	sessionStore session.Store
	sweeper      *session.Sweeper
	passwords    *password.Verifier
	apiKeys      *apikey.Verifier
	audit        *auditDispatcher
	metrics      *Metrics
	clock        func() time.Time

	closed    atomic.Bool
	closeOnce sync.Once
}

// Close stops the session sweeper and flushes the audit queue. It is safe to
// call more than once.
func (e *Engine) Close() {
	if e == nil {
		return
	}
	e.closeOnce.Do(func() {
		e.closed.Store(true)
		e.sweeper.Close()
		if e.audit != nil {
			e.audit.Close()
		}
	})
}

// AuditDropped returns how many audit events were discarded on a full queue.
func (e *Engine) AuditDropped() uint64 {
	if e == nil || e.audit == nil {
		return 0
	}
	return e.audit.Dropped()
}

// MetricsSnapshot copies the current counters.
func (e *Engine) MetricsSnapshot() MetricsSnapshot {
	if e == nil || e.metrics == nil {
		return MetricsSnapshot{
			Counters:   map[MetricID]uint64{},
			Histograms: map[MetricID][]uint64{},
		}
	}
	return e.metrics.Snapshot()
}

// SessionTTL is the lifetime given to every new session token.
func (e *Engine) SessionTTL() time.Duration {
	if e == nil {
		return 0
	}
	return e.config.Session.TTL
}

func (e *Engine) now() time.Time {
	if e == nil || e.clock == nil {
		return time.Now()
	}
	return e.clock()
}

func (e *Engine) ready() bool {
	return e != nil && !e.closed.Load()
}

// VerifyPassword checks candidate against the configured hash. An empty hash
// rejects everything; an unusable hash is logged without its contents.
func (e *Engine) VerifyPassword(candidate string) bool {
	if !e.ready() || !e.passwords.Configured() {
		return false
	}

	start := time.Now()
	ok, err := e.passwords.Verify(candidate)
	e.metricObserve(MetricPasswordVerifyLatency, start)
	if err != nil {
		log.Print("boardAuth: configured password hash could not be used for verification")
		return false
	}
	return ok
}

// CreateSessionToken mints a session token. Callers must have verified the
// password first; [Engine.Login] does both.
func (e *Engine) CreateSessionToken(ctx context.Context) (string, error) {
	if !e.ready() {
		return "", ErrEngineNotReady
	}

	token, err := e.sessionStore.Create(ctx)
	if err != nil {
		e.metricInc(MetricBackendError)
		log.Printf("boardAuth: session create failed: %v", err)
		return "", ErrSessionCreationFailed
	}

	e.metricInc(MetricSessionCreated)
	e.emitAudit(ctx, auditEventSessionCreated, true, "", nil, nil)
	return token, nil
}

// VerifySessionToken reports whether token is live. Backend failures deny.
func (e *Engine) VerifySessionToken(ctx context.Context, token string) bool {
	if !e.ready() || token == "" {
		return false
	}

	ok, err := e.sessionStore.Verify(ctx, token)
	switch {
	case err == nil:
		return ok
	case errors.Is(err, session.ErrExpired):
		e.metricInc(MetricSessionExpired)
		e.emitAudit(ctx, auditEventSessionExpired, false, "", err, nil)
	default:
		e.metricInc(MetricBackendError)
		log.Printf("boardAuth: session verify failed: %v", err)
	}
	return false
}

// VerifyAPIKey reports whether candidate equals the configured API key.
func (e *Engine) VerifyAPIKey(candidate string) bool {
	if !e.ready() {
		return false
	}
	return e.apiKeys.Verify(candidate)
}

// Authorize runs the write gate over h. The API key in
// "Authorization: Bearer" is tried first, then "X-Session-Token". Either one
// alone is sufficient.
func (e *Engine) Authorize(ctx context.Context, h http.Header) AuthMethod {
	if !e.ready() {
		return AuthNone
	}

	if key, ok := bearerToken(h.Get(HeaderAuthorization)); ok && e.VerifyAPIKey(key) {
		e.metricInc(MetricAuthorizeAPIKey)
		return AuthAPIKey
	}

	if token := strings.TrimSpace(h.Get(HeaderSessionToken)); token != "" && e.VerifySessionToken(ctx, token) {
		e.metricInc(MetricAuthorizeSession)
		return AuthSession
	}

	e.metricInc(MetricAuthorizeDenied)
	e.emitAudit(ctx, auditEventAuthorizeDenied, false, "", ErrUnauthorized, func() map[string]string {
		return map[string]string{
			"bearer_present":  boolString(h.Get(HeaderAuthorization) != ""),
			"session_present": boolString(h.Get(HeaderSessionToken) != ""),
		}
	})
	return AuthNone
}

// IsAuthorized is Authorize for a request, reduced to allow or deny.
func (e *Engine) IsAuthorized(r *http.Request) bool {
	if r == nil {
		return false
	}
	return e.Authorize(r.Context(), r.Header) != AuthNone
}

func bearerToken(value string) (string, bool) {
	const bearer = "Bearer "
	if !strings.HasPrefix(value, bearer) {
		return "", false
	}

	token := strings.TrimSpace(value[len(bearer):])
	if token == "" {
		return "", false
	}

	return token, true
}

func boolString(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
