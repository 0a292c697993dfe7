package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/kuhaku/kuhaku/internal/server/auth"
	"github.com/kuhaku/kuhaku/internal/server/jwt"
	"github.com/kuhaku/kuhaku/pkg/api"
)

// AuthHandler handles login and token validation requests
type AuthHandler struct {
	logger   *slog.Logger
	verifier *auth.Verifier
	tokens   *jwt.Service
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(logger *slog.Logger, verifier *auth.Verifier, tokens *jwt.Service) *AuthHandler {
	return &AuthHandler{
		logger:   logger,
		verifier: verifier,
		tokens:   tokens,
	}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode login request", slog.Any("error", err))
		WriteError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	// Field presence gate, checked before any store access
	if req.Email == "" || req.Password == "" {
		WriteError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, err := h.verifier.Verify(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			h.logger.WarnContext(ctx, "login failed", slog.String("email", req.Email))
			WriteError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		h.logger.ErrorContext(ctx, "credential check failed", slog.Any("error", err))
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to issue token", slog.Any("error", err))
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.logger.InfoContext(ctx, "user logged in",
		slog.String("user_id", user.ID),
		slog.String("email", user.Email))

	resp := api.LoginResponse{
		Token: token,
		User:  user.Public(),
	}

	WriteJSON(w, resp, http.StatusOK)
}

// Validate handles GET /auth/validate (protected).
// Token checking happened in the middleware; reaching here means valid.
func (h *AuthHandler) Validate(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	resp := api.ValidateResponse{
		Valid:  true,
		UserID: userID,
	}

	WriteJSON(w, resp, http.StatusOK)
}
