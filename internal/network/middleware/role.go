package middleware

import (
	"net/http"

	"github.com/elevateglobal/elevate-wallet/internal/helpers"
	"github.com/elevateglobal/elevate-wallet/internal/logger"
)

// RequireRole - allows only tokens carrying one of the listed roles.
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, err := helpers.GetRole(r.Context())
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			if _, ok := allowed[role]; !ok {
				logger.Warn("Forbidden role", role, r.RequestURI)
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}
			h.ServeHTTP(w, r)
		})
	}
}
