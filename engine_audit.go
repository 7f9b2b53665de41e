package boardAuth

import (
	"context"
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/MrEthical07/boardAuth/session"
)

const (
	auditEventLoginSuccess     = "login_success"
	auditEventLoginFailure     = "login_failure"
	auditEventLoginRateLimited = "login_rate_limited"
	auditEventSessionCreated   = "session_created"
	auditEventSessionExpired   = "session_expired"
	auditEventAuthorizeDenied  = "authorize_denied"
	auditEventSessionsSwept    = "sessions_swept"
)

// AuditErrorCode is the stable, secret-free reason string put in AuditEvent.Error.
type AuditErrorCode string

const (
	auditErrUnauthorized    AuditErrorCode = "unauthorized"
	auditErrInvalidPassword AuditErrorCode = "invalid_password"
	auditErrPasswordMissing AuditErrorCode = "password_required"
	auditErrInvalidRequest  AuditErrorCode = "invalid_request"
	auditErrRateLimited     AuditErrorCode = "rate_limited"
	auditErrSessionCreation AuditErrorCode = "session_creation_failed"
	auditErrSessionExpired  AuditErrorCode = "session_expired"
	auditErrInternal        AuditErrorCode = "internal_error"
)

func (e *Engine) emitAudit(
	ctx context.Context,
	eventType string,
	success bool,
	clientID string,
	err error,
	metadataBuilder func() map[string]string,
) {
	if e == nil || e.audit == nil {
		return
	}
	if clientID == "" {
		clientID = clientIDFromContext(ctx)
	}

	var metadata map[string]string
	if metadataBuilder != nil {
		metadata = metadataBuilder()
	}

	event := AuditEvent{
		Timestamp: e.now().UTC(),
		EventType: eventType,
		ClientID:  clientID,
		RequestID: RequestIDFromContext(ctx),
		Success:   success,
		Metadata:  metadata,
	}
	if code := auditErrorCode(err); code != "" {
		event.Error = string(code)
	}

	e.audit.Emit(ctx, event)
}

func (e *Engine) emitSweep(removed int, err error) {
	if err != nil {
		e.metricInc(MetricBackendError)
		log.Printf("boardAuth: session sweep failed: %v", err)
		return
	}
	if removed == 0 {
		return
	}
	e.metrics.Add(MetricSessionSwept, uint64(removed))
	e.emitAudit(context.Background(), auditEventSessionsSwept, true, "", nil, func() map[string]string {
		return map[string]string{"removed": strconv.Itoa(removed)}
	})
}

func (e *Engine) metricInc(id MetricID) {
	if e == nil {
		return
	}
	e.metrics.Inc(id)
}

func (e *Engine) metricObserve(id MetricID, start time.Time) {
	if e == nil || !e.metrics.LatencyEnabled() {
		return
	}
	e.metrics.Observe(id, time.Since(start))
}

func auditErrorCode(err error) AuditErrorCode {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, ErrUnauthorized):
		return auditErrUnauthorized
	case errors.Is(err, ErrInvalidPassword):
		return auditErrInvalidPassword
	case errors.Is(err, ErrPasswordRequired):
		return auditErrPasswordMissing
	case errors.Is(err, ErrInvalidRequest):
		return auditErrInvalidRequest
	case errors.Is(err, ErrLoginRateLimited):
		return auditErrRateLimited
	case errors.Is(err, ErrSessionCreationFailed):
		return auditErrSessionCreation
	case errors.Is(err, session.ErrExpired):
		return auditErrSessionExpired
	default:
		return auditErrInternal
	}
}
