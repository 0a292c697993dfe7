package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kuhaku/kuhaku/pkg/api"
)

func getMe(t *testing.T, h *UserHandler, userID string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	if userID != "" {
		ctx := context.WithValue(req.Context(), UserIDKey, userID)
		req = req.WithContext(ctx)
	}

	w := httptest.NewRecorder()
	h.Me(w, req)
	return w
}

func TestUserHandler_Me_Success(t *testing.T) {
	store := seededStore(t)
	h := NewUserHandler(testLogger(), store)

	w := getMe(t, h, "87f652e7-198c-4069-b167-2847ad0b6efb")
	require.Equal(t, http.StatusOK, w.Code)

	var resp api.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "admin@kuhaku.com", resp.Email)
	assert.Equal(t, "Admin", resp.Name)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	assert.NotContains(t, raw, "password")
}

func TestUserHandler_Me_NotFound(t *testing.T) {
	h := NewUserHandler(testLogger(), seededStore(t))

	// Valid token subject that no longer exists in the dataset
	w := getMe(t, h, "ghost-user")
	require.Equal(t, http.StatusNotFound, w.Code)

	var resp api.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "User not found", resp.Message)
}

func TestUserHandler_Me_NoIdentity(t *testing.T) {
	h := NewUserHandler(testLogger(), seededStore(t))

	w := getMe(t, h, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUserHandler_Me_StoreFault(t *testing.T) {
	store := seededStore(t)
	store.getError = assert.AnError
	h := NewUserHandler(testLogger(), store)

	w := getMe(t, h, "87f652e7-198c-4069-b167-2847ad0b6efb")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHealthHandler(t *testing.T) {
	h := NewHealthHandler("test")

	w := httptest.NewRecorder()
	h.Root(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var msg api.MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &msg))
	assert.Equal(t, "Kuhaku Backend is running!", msg.Message)

	w = httptest.NewRecorder()
	h.Health(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var health HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, "ok", health.Status)
}
