package middleware

import (
	"context"
	"net/http"

	boardAuth "github.com/MrEthical07/boardAuth"
)

type authMethodContextKey struct{}

// AuthMethodFromContext returns the credential that satisfied Guard.
func AuthMethodFromContext(ctx context.Context) (boardAuth.AuthMethod, bool) {
	m, ok := ctx.Value(authMethodContextKey{}).(boardAuth.AuthMethod)
	return m, ok
}

// Authorizer is satisfied by *boardAuth.Engine.
type Authorizer interface {
	Authorize(ctx context.Context, h http.Header) boardAuth.AuthMethod
}

// Guard rejects requests that carry neither a valid API key nor a live
// session token.
func Guard(engine Authorizer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if engine == nil {
				writeUnauthorized(w)
				return
			}

			method := engine.Authorize(r.Context(), r.Header)
			if method == boardAuth.AuthNone {
				writeUnauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), authMethodContextKey{}, method)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"success":false,"error":"Unauthorized"}` + "\n"))
}
