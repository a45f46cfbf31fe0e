package middleware

import (
	"net/http"

	"github.com/taskhub/task-service/internal/domain"
)

// BodyLimit caps request body size. Oversized JSON bodies fail at decode time
// with an invalid-JSON error once MaxBytesReader cuts them off.
func BodyLimit(maxBytes int64, writeErr WriteErrFunc) func(http.Handler) http.Handler {
	if maxBytes <= 0 {
		maxBytes = 1 << 20 // 1MB
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > maxBytes {
				writeErr(w, r, domain.ErrInvalidField("body", "too large"))
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}
