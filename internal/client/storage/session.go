package storage

import (
	"context"

	"github.com/kuhaku/kuhaku/pkg/api"
)

// SessionStorage defines the persisted client session: the token and the
// serialized user profile, kept between runs under fixed keys.
// This is the CLI analog of browser local storage.
type SessionStorage interface {
	// SaveSession stores the session data, replacing any previous session
	SaveSession(ctx context.Context, session *SessionData) error

	// GetSession retrieves the stored session
	// Returns ErrSessionNotFound if no session exists
	GetSession(ctx context.Context) (*SessionData, error)

	// DeleteSession removes the stored session (sign-out)
	DeleteSession(ctx context.Context) error
}

// SessionData represents a persisted client session
type SessionData struct {
	Token string   `json:"token"` // signed session token
	User  api.User `json:"user"`  // public profile captured at login
}
