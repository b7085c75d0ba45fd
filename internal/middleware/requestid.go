package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"noteful/internal/httputil"
)

// RequestID assigns each request a unique id, echoed in the X-Request-ID
// response header and available to handlers via the context. An id supplied
// by the caller is kept as-is.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}

		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, httputil.WithRequestID(r, id))
	})
}
