package middleware

import (
	"net/http"

	"go.uber.org/zap"
)

// RequireAdmin gates the administrative bypass routes: only profiles with
// the admin role may reach handlers that skip ownership resolution.
func RequireAdmin(logger *zap.Logger) func(http.Handler) http.Handler {
	return RequireRole([]string{"admin"}, logger)
}

// RequireRole ensures the authenticated profile has one of the given roles
func RequireRole(allowedRoles []string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetUserRole(r.Context())
			if !ok {
				logger.Warn("Role not found in context")
				RespondWithError(w, http.StatusForbidden, "insufficient permissions")
				return
			}

			allowed := false
			for _, allowedRole := range allowedRoles {
				if role == allowedRole {
					allowed = true
					break
				}
			}

			if !allowed {
				logger.Warn("Profile role not authorized",
					zap.String("role", role),
					zap.Strings("allowed_roles", allowedRoles),
				)
				RespondWithError(w, http.StatusForbidden, "insufficient permissions")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
