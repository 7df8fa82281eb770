package middleware

import (
	"net/http"

	"golang.org/x/time/rate"

	"github.com/tradevault/journal-backend/internal/api/response"
)

// NewLoginLimiter returns the rate limiter applied to credential endpoints:
// a small steady rate with a burst, shared across callers.
func NewLoginLimiter() *rate.Limiter {
	return rate.NewLimiter(rate.Limit(5), 10)
}

// RateLimit returns middleware that rejects requests with 429 once the
// limiter is exhausted.
func RateLimit(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				response.RespondError(w, http.StatusTooManyRequests, "too many requests", "")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
