package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/kuhaku/kuhaku/internal/server/handlers"
	"github.com/kuhaku/kuhaku/internal/server/jwt"
)

// Auth creates middleware gating protected routes behind a bearer token.
// Every failure short-circuits with 401 and never invokes the downstream
// handler; on success the subject id is attached to the request context.
func Auth(logger *slog.Logger, tokens *jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("missing Authorization header", "path", r.URL.Path)
				handlers.WriteError(w, http.StatusUnauthorized, "Authorization header is missing")
				return
			}

			// Expected format: "<scheme> <token>". The scheme word itself
			// is not validated beyond presence.
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[1] == "" {
				logger.Warn("Authorization header has no token segment", "path", r.URL.Path)
				handlers.WriteError(w, http.StatusUnauthorized, "Token is missing")
				return
			}

			userID, err := tokens.Validate(parts[1])
			if err != nil {
				logger.Warn("invalid session token", "path", r.URL.Path, "error", err)
				handlers.WriteError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), handlers.UserIDKey, userID)

			logger.Debug("request authenticated", "user_id", userID, "path", r.URL.Path)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
