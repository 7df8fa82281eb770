package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/tradevault/journal-backend/internal/api/response"
	"github.com/tradevault/journal-backend/internal/apperrors"
)

type contextKey string

const userIDKey contextKey = "userID"

// TokenValidator verifies a bearer access token and resolves it to a user ID.
// Implemented by service.AuthService.
type TokenValidator interface {
	ValidateAccessToken(token string) (string, error)
}

// Authenticator returns middleware that requires a valid bearer access token
// on every request. A missing credential and an unverifiable one both
// short-circuit with 401 before any handler or query runs; on success the
// resolved user ID is stored on the request context.
func Authenticator(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				response.RespondError(w, http.StatusUnauthorized, apperrors.ErrAuthenticationMissing.Error(), "")
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			if token == "" {
				response.RespondError(w, http.StatusUnauthorized, apperrors.ErrAuthenticationMissing.Error(), "empty bearer token")
				return
			}

			userID, err := validator.ValidateAccessToken(token)
			if err != nil {
				response.RespondError(w, http.StatusUnauthorized, apperrors.ErrAuthenticationInvalid.Error(), "")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext returns the authenticated user ID stored by Authenticator.
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok
}

// WithUserID returns a context carrying the given user ID. Intended for
// tests that call handlers without the Authenticator middleware.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}
