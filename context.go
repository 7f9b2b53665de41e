package boardAuth

import (
	"context"
	"net/http"
	"strings"
)

type clientIDContextKey struct{}
type requestIDContextKey struct{}

// UnknownClient is the client id used when no forwarding header is present.
const UnknownClient = "unknown"

// ClientIDFromRequest derives the rate-limit key for r: the first entry of
// X-Forwarded-For, else X-Real-IP, else "unknown".
//
// The headers are trusted as sent. Behind a proxy that does not overwrite them
// a client can pick its own id, and without any proxy every client shares
// "unknown".
func ClientIDFromRequest(r *http.Request) string {
	if r == nil {
		return UnknownClient
	}

	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}
	if realIP := strings.TrimSpace(r.Header.Get("X-Real-IP")); realIP != "" {
		return realIP
	}

	return UnknownClient
}

// WithClientIP attaches the caller's client id to ctx for audit events.
func WithClientIP(ctx context.Context, clientID string) context.Context {
	return context.WithValue(ctx, clientIDContextKey{}, clientID)
}

// WithRequestID attaches a request correlation id to ctx for audit events.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDContextKey{}, requestID)
}

// RequestIDFromContext returns the id set by WithRequestID, if any.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDContextKey{}).(string)
	return id
}

func clientIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(clientIDContextKey{}).(string)
	return id
}
