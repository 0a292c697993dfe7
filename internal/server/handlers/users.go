package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/kuhaku/kuhaku/internal/server/storage"
)

// UserHandler handles user profile requests
type UserHandler struct {
	logger *slog.Logger
	users  storage.UserStorage
}

// NewUserHandler creates a new user handler
func NewUserHandler(logger *slog.Logger, users storage.UserStorage) *UserHandler {
	return &UserHandler{
		logger: logger,
		users:  users,
	}
}

// Me handles GET /users/me (protected).
// Looks up the full record for the authenticated subject and returns its
// public projection.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		WriteError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	user, err := h.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			// Token subject no longer exists in the dataset
			h.logger.WarnContext(ctx, "user not found", slog.String("user_id", userID))
			WriteError(w, http.StatusNotFound, "User not found")
			return
		}
		h.logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	WriteJSON(w, user.Public(), http.StatusOK)
}
