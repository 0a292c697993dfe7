package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/kuhaku/kuhaku/internal/server/handlers"
)

// Recovery creates middleware recovering from handler panics.
// The panic is logged with its stack; the client only sees a generic 500
// in the uniform error shape.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic recovered",
						"error", err,
						"method", r.Method,
						"path", r.URL.Path,
						"remote_addr", r.RemoteAddr,
						"stack", string(debug.Stack()),
					)

					handlers.WriteError(w, http.StatusInternalServerError, "Internal Server Error")
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
