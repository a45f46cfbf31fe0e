package middleware

import (
	"net/http"

	"github.com/taskhub/task-service/internal/domain"
)

// RequireRole gates a route on an exact role match. It assumes Auth() has
// already injected the identity; a request arriving without one is an
// authentication failure, not a missing resource.
func RequireRole(role string, writeErr WriteErrFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, ok := RoleFromContext(r.Context())
			if !ok {
				writeErr(w, r, domain.ErrAuthenticationRequired())
				return
			}

			if got != role {
				writeErr(w, r, domain.ErrPermissionDenied())
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
