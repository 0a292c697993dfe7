// Package session holds the client-side session state: the signed-in
// user, the token, and the last sign-in error. It mirrors the token
// lifecycle of the backend: store on sign-in, attach on every request,
// clear on sign-out or failed rehydration.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	clientapi "github.com/kuhaku/kuhaku/internal/client/api"
	"github.com/kuhaku/kuhaku/internal/client/storage"
	"github.com/kuhaku/kuhaku/pkg/api"
)

// genericSignInError is shown when the server did not supply a message
const genericSignInError = "Failed to login. Please try again."

// ErrSignInInFlight indicates that a sign-in attempt is already running.
// Overlapping attempts are rejected rather than raced.
var ErrSignInInFlight = errors.New("sign-in already in progress")

// Manager owns the client session state.
// All state transitions go through the mutex; accessors return copies.
type Manager struct {
	client *clientapi.Client
	store  storage.SessionStorage
	logger *slog.Logger

	mu      sync.Mutex
	user    *api.User
	token   string
	loading bool
	lastErr string
}

// NewManager creates a session manager over the given API client and
// persisted session store
func NewManager(client *clientapi.Client, store storage.SessionStorage, logger *slog.Logger) *Manager {
	return &Manager{
		client: client,
		store:  store,
		logger: logger,
	}
}

// Restore rehydrates the session from persisted storage.
// A persisted token is re-validated against the protected profile
// endpoint; any failure clears persisted state and leaves the manager
// signed out, so stale or expired tokens never survive a restart.
func (m *Manager) Restore(ctx context.Context) {
	m.mu.Lock()
	m.loading = true
	m.mu.Unlock()

	defer m.setLoading(false)

	saved, err := m.store.GetSession(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrSessionNotFound) {
			m.logger.Warn("failed to read persisted session", "error", err)
		}
		return
	}

	m.client.SetToken(saved.Token)

	// Validate the token and refresh the profile in one call
	user, err := m.client.Me(ctx)
	if err != nil {
		m.logger.Debug("persisted session rejected", "error", err)
		m.clearAll(ctx)
		return
	}

	m.mu.Lock()
	m.user = user
	m.token = saved.Token
	m.mu.Unlock()
}

// SignIn authenticates with the backend and persists the session.
// On failure the server-supplied message is recorded when available,
// else a generic fallback; the user stays signed out either way.
func (m *Manager) SignIn(ctx context.Context, email, password string) error {
	m.mu.Lock()
	if m.loading {
		m.mu.Unlock()
		return ErrSignInInFlight
	}
	m.loading = true
	m.lastErr = ""
	m.mu.Unlock()

	defer m.setLoading(false)

	resp, err := m.client.Login(ctx, api.LoginRequest{Email: email, Password: password})
	if err != nil {
		message := genericSignInError
		var apiErr *clientapi.APIError
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			message = apiErr.Message
		}

		m.mu.Lock()
		m.lastErr = message
		m.mu.Unlock()

		return fmt.Errorf("sign-in failed: %w", err)
	}

	session := &storage.SessionData{
		Token: resp.Token,
		User:  resp.User,
	}
	if err := m.store.SaveSession(ctx, session); err != nil {
		// The session still works for this run; persistence is best effort
		m.logger.Warn("failed to persist session", "error", err)
	}

	m.client.SetToken(resp.Token)

	m.mu.Lock()
	m.user = &resp.User
	m.token = resp.Token
	m.mu.Unlock()

	return nil
}

// SignOut clears persisted and in-memory session state
func (m *Manager) SignOut(ctx context.Context) error {
	if err := m.store.DeleteSession(ctx); err != nil && !errors.Is(err, storage.ErrSessionNotFound) {
		return fmt.Errorf("failed to delete persisted session: %w", err)
	}

	m.clearMemory()
	return nil
}

// IsAuthenticated reports whether a user is signed in
func (m *Manager) IsAuthenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user != nil
}

// CurrentUser returns a copy of the signed-in user's profile, or nil
func (m *Manager) CurrentUser() *api.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return nil
	}
	user := *m.user
	return &user
}

// Token returns the current session token, empty when signed out
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

// Err returns the last sign-in error message, empty when none
func (m *Manager) Err() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastErr
}

// Loading reports whether a sign-in or restore is in flight
func (m *Manager) Loading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}

// clearAll drops persisted and in-memory state
func (m *Manager) clearAll(ctx context.Context) {
	if err := m.store.DeleteSession(ctx); err != nil && !errors.Is(err, storage.ErrSessionNotFound) {
		m.logger.Warn("failed to clear persisted session", "error", err)
	}
	m.clearMemory()
}

// clearMemory drops in-memory state and the attached token
func (m *Manager) clearMemory() {
	m.client.ClearToken()

	m.mu.Lock()
	m.user = nil
	m.token = ""
	m.mu.Unlock()
}

func (m *Manager) setLoading(v bool) {
	m.mu.Lock()
	m.loading = v
	m.mu.Unlock()
}
