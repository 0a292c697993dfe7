package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kuhaku/kuhaku/internal/crypto"
	"github.com/kuhaku/kuhaku/internal/server/storage"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	s, err := New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.Close()
	})

	return s
}

func TestStorage_Migrations_SeedApplied(t *testing.T) {
	s := newTestStorage(t)

	var count int
	err := s.DB().QueryRow("SELECT COUNT(*) FROM users").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestStorage_GetUserByEmail(t *testing.T) {
	s := newTestStorage(t)

	user, err := s.GetUserByEmail(context.Background(), "admin@kuhaku.com")
	require.NoError(t, err)

	assert.Equal(t, "87f652e7-198c-4069-b167-2847ad0b6efb", user.ID)
	assert.Equal(t, "Admin", user.Name)

	// Seeded hash matches the documented password
	assert.NoError(t, crypto.VerifyPassword("123456", user.PasswordHash))
}

func TestStorage_GetUserByEmail_NotFound(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.GetUserByEmail(context.Background(), "nobody@kuhaku.com")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestStorage_GetUserByID(t *testing.T) {
	s := newTestStorage(t)

	user, err := s.GetUserByID(context.Background(), "f5ff5a77-4691-436c-9102-5f41b53d1147")
	require.NoError(t, err)
	assert.Equal(t, "yuki@kuhaku.com", user.Email)
}

func TestStorage_GetUserByID_NotFound(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.GetUserByID(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}
