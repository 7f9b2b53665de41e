package middleware

import (
	"net/http"

	boardAuth "github.com/MrEthical07/boardAuth"
	"github.com/google/uuid"
)

// HeaderRequestID is echoed back on every response.
const HeaderRequestID = "X-Request-ID"

const maxRequestIDLen = 128

// RequestContext tags the request context with a request id and the caller's
// client id so engine audit events can be correlated. An inbound
// X-Request-ID is reused when present and reasonably short.
func RequestContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(HeaderRequestID)
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}
		w.Header().Set(HeaderRequestID, id)

		ctx := boardAuth.WithRequestID(r.Context(), id)
		ctx = boardAuth.WithClientIP(ctx, boardAuth.ClientIDFromRequest(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
