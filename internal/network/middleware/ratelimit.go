package middleware

import (
	"net"
	"net/http"

	"github.com/elevateglobal/elevate-wallet/internal/logger"
	"github.com/elevateglobal/elevate-wallet/internal/ratelimit"
)

// RateLimitHandle - rejects callers that exhausted the route-level budget.
// Keys on the client IP; the limiter decides whether the counter is shared
// between instances. A limiter failure lets the request through: the limit is
// an abuse deterrent, not a correctness mechanism.
func RateLimitHandle(limiter ratelimit.Limiter) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientIP(r)

			allowed, err := limiter.Allow(r.Context(), key)
			if err != nil {
				logger.Warn("Rate limiter unavailable", err)
				h.ServeHTTP(w, r)
				return
			}
			if !allowed {
				http.Error(w, "Too many requests", http.StatusTooManyRequests)
				return
			}
			h.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
