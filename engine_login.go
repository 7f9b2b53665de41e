package boardAuth

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"time"
)

// LoginResult is returned by a successful login.
type LoginResult struct {
	Token     string
	ExpiresIn time.Duration
}

// Login runs the password login flow for clientID:
//
//	rate check -> password present -> password verified -> token issued
//
// Rate-limited clients get ErrLoginRateLimited without recording another
// attempt. An empty password (ErrPasswordRequired) and a wrong password
// (ErrInvalidPassword) each record one attempt. Success records nothing.
func (e *Engine) Login(ctx context.Context, clientID, plaintext string) (LoginResult, error) {
	return e.login(ctx, clientID, func() (string, error) {
		return plaintext, nil
	})
}

// LoginJSON is Login for a raw request body of the form {"password": "..."}.
// An empty body, a null or non-string password and an empty password all map
// to ErrPasswordRequired. A body that is not a JSON object maps to
// ErrInvalidRequest. Both record an attempt.
func (e *Engine) LoginJSON(ctx context.Context, clientID string, body []byte) (LoginResult, error) {
	return e.login(ctx, clientID, func() (string, error) {
		return decodeLoginBody(body)
	})
}

func (e *Engine) login(ctx context.Context, clientID string, readPassword func() (string, error)) (LoginResult, error) {
	if !e.ready() {
		return LoginResult{}, ErrEngineNotReady
	}
	if clientID == "" {
		clientID = UnknownClient
	}
	ctx = WithClientIP(ctx, clientID)

	if e.isLimited(ctx, clientID) {
		e.metricInc(MetricLoginRateLimited)
		e.emitAudit(ctx, auditEventLoginRateLimited, false, clientID, ErrLoginRateLimited, nil)
		return LoginResult{}, ErrLoginRateLimited
	}

	plaintext, err := readPassword()
	if err != nil {
		e.recordAttempt(ctx, clientID)
		e.metricInc(MetricLoginMalformed)
		e.emitAudit(ctx, auditEventLoginFailure, false, clientID, err, nil)
		return LoginResult{}, err
	}

	if plaintext == "" {
		e.recordAttempt(ctx, clientID)
		e.metricInc(MetricLoginFailure)
		e.emitAudit(ctx, auditEventLoginFailure, false, clientID, ErrPasswordRequired, nil)
		return LoginResult{}, ErrPasswordRequired
	}

	if !e.VerifyPassword(plaintext) {
		e.recordAttempt(ctx, clientID)
		e.metricInc(MetricLoginFailure)
		e.emitAudit(ctx, auditEventLoginFailure, false, clientID, ErrInvalidPassword, nil)
		return LoginResult{}, ErrInvalidPassword
	}

	token, err := e.CreateSessionToken(ctx)
	if err != nil {
		e.emitAudit(ctx, auditEventLoginFailure, false, clientID, err, nil)
		return LoginResult{}, err
	}

	e.metricInc(MetricLoginSuccess)
	e.emitAudit(ctx, auditEventLoginSuccess, true, clientID, nil, nil)

	return LoginResult{
		Token:     token,
		ExpiresIn: e.config.Session.TTL,
	}, nil
}

// A limiter backend failure counts as limited.
func (e *Engine) isLimited(ctx context.Context, clientID string) bool {
	limited, err := e.limiter.IsLimited(ctx, clientID)
	if err != nil {
		e.metricInc(MetricBackendError)
		log.Printf("boardAuth: rate limiter check failed: %v", err)
		return true
	}
	return limited
}

func (e *Engine) recordAttempt(ctx context.Context, clientID string) {
	if err := e.limiter.RecordAttempt(ctx, clientID); err != nil {
		e.metricInc(MetricBackendError)
		log.Printf("boardAuth: rate limiter record failed: %v", err)
	}
}

type loginBody struct {
	Password json.RawMessage `json:"password"`
}

func decodeLoginBody(body []byte) (string, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return "", nil
	}

	var req loginBody
	if err := json.Unmarshal(body, &req); err != nil {
		return "", ErrInvalidRequest
	}
	if len(req.Password) == 0 {
		return "", nil
	}

	var plaintext string
	if err := json.Unmarshal(req.Password, &plaintext); err != nil {
		// Present but not a string.
		return "", nil
	}
	return plaintext, nil
}
