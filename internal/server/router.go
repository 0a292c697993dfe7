// Package server assembles the HTTP surface: routes, handlers and the
// middleware chain.
package server

import (
	"log/slog"
	"net/http"

	"github.com/kuhaku/kuhaku/internal/server/auth"
	"github.com/kuhaku/kuhaku/internal/server/handlers"
	"github.com/kuhaku/kuhaku/internal/server/jwt"
	"github.com/kuhaku/kuhaku/internal/server/middleware"
	"github.com/kuhaku/kuhaku/internal/server/storage"
)

// Options carries the explicitly constructed dependencies for the router.
// Nothing is looked up from ambient globals; swapping the store or the
// token service never touches handler logic.
type Options struct {
	Logger     *slog.Logger
	Users      storage.UserStorage
	Tokens     *jwt.Service
	CORSOrigin string
	Version    string
}

// New builds the full HTTP handler: routes wrapped in
// recovery -> request-id -> logging -> CORS.
func New(opts Options) http.Handler {
	verifier := auth.NewVerifier(opts.Users)

	authHandler := handlers.NewAuthHandler(opts.Logger, verifier, opts.Tokens)
	userHandler := handlers.NewUserHandler(opts.Logger, opts.Users)
	healthHandler := handlers.NewHealthHandler(opts.Version)

	protected := middleware.Auth(opts.Logger, opts.Tokens)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", healthHandler.Root)
	mux.HandleFunc("GET /healthz", healthHandler.Health)
	mux.HandleFunc("POST /auth/login", authHandler.Login)
	mux.Handle("GET /auth/validate", protected(http.HandlerFunc(authHandler.Validate)))
	mux.Handle("GET /users/me", protected(http.HandlerFunc(userHandler.Me)))

	var handler http.Handler = mux
	handler = middleware.CORS(opts.CORSOrigin)(handler)
	handler = middleware.Logging(opts.Logger)(handler)
	handler = middleware.RequestID()(handler)
	handler = middleware.Recovery(opts.Logger)(handler)

	return handler
}
