package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kuhaku/kuhaku/internal/server/handlers"
	"github.com/kuhaku/kuhaku/internal/server/jwt"
	"github.com/kuhaku/kuhaku/pkg/api"
)

// setupTestLogger creates a logger for testing
func setupTestLogger() *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelError,
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func newTokenService() *jwt.Service {
	return jwt.NewService("test-secret-key", 24*time.Hour)
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) api.ErrorResponse {
	t.Helper()
	var resp api.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestAuth_Success(t *testing.T) {
	tokens := newTokenService()
	token, err := tokens.Issue("user123")
	require.NoError(t, err)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := handlers.GetUserID(r.Context())
		require.True(t, ok, "user id should be in context")
		assert.Equal(t, "user123", userID)

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	wrapped := Auth(setupTestLogger(), tokens)(handler)

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	wrapped.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestAuth_SchemeWordNotValidated(t *testing.T) {
	tokens := newTokenService()
	token, err := tokens.Issue("user123")
	require.NoError(t, err)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	wrapped := Auth(setupTestLogger(), tokens)(handler)

	// Any scheme word is accepted as long as a token segment follows
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "Token "+token)

	w := httptest.NewRecorder()
	wrapped.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuth_Failures(t *testing.T) {
	tokens := newTokenService()

	tests := []struct {
		name        string
		header      string
		wantMessage string
	}{
		{
			name:        "missing header",
			header:      "",
			wantMessage: "Authorization header is missing",
		},
		{
			name:        "scheme only",
			header:      "Bearer",
			wantMessage: "Token is missing",
		},
		{
			name:        "scheme with empty token",
			header:      "Bearer ",
			wantMessage: "Token is missing",
		},
		{
			name:        "garbage token",
			header:      "Bearer not-a-token",
			wantMessage: "Invalid token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("handler should not be called")
			})
			wrapped := Auth(setupTestLogger(), tokens)(handler)

			req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			w := httptest.NewRecorder()
			wrapped.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)

			resp := decodeError(t, w)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			assert.Equal(t, tt.wantMessage, resp.Message)
		})
	}
}

func TestAuth_TamperedToken(t *testing.T) {
	tokens := newTokenService()
	other := jwt.NewService("another-secret", 24*time.Hour)

	// Signed with the wrong secret
	token, err := other.Issue("user123")
	require.NoError(t, err)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be called")
	})
	wrapped := Auth(setupTestLogger(), tokens)(handler)

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	wrapped.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid token", decodeError(t, w).Message)
}

func TestAuth_ExpiredToken(t *testing.T) {
	expired := jwt.NewService("test-secret-key", -time.Minute)
	token, err := expired.Issue("user123")
	require.NoError(t, err)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be called")
	})
	wrapped := Auth(setupTestLogger(), newTokenService())(handler)

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	wrapped.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid token", decodeError(t, w).Message)
}
