package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kuhaku/kuhaku/internal/crypto"
	"github.com/kuhaku/kuhaku/internal/models"
	"github.com/kuhaku/kuhaku/internal/server/storage"
)

// mockUserStorage is a mock implementation of UserStorage for testing
type mockUserStorage struct {
	users    map[string]*models.User // email -> User
	getError error
}

func (m *mockUserStorage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	user, ok := m.users[email]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	return user, nil
}

func (m *mockUserStorage) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	for _, user := range m.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, storage.ErrUserNotFound
}

func newMockStore(t *testing.T) *mockUserStorage {
	t.Helper()

	hash, err := crypto.HashPassword("123456")
	require.NoError(t, err)

	return &mockUserStorage{
		users: map[string]*models.User{
			"admin@kuhaku.com": {
				ID:           "user-1",
				Name:         "Admin",
				Email:        "admin@kuhaku.com",
				PasswordHash: hash,
			},
		},
	}
}

func TestVerifier_Verify_Success(t *testing.T) {
	verifier := NewVerifier(newMockStore(t))

	user, err := verifier.Verify(context.Background(), "admin@kuhaku.com", "123456")
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
}

func TestVerifier_Verify_Uniform(t *testing.T) {
	verifier := NewVerifier(newMockStore(t))

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "unknown email", email: "nobody@kuhaku.com", password: "123456"},
		{name: "wrong password", email: "admin@kuhaku.com", password: "wrongpassword"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Both failure modes collapse into the same sentinel
			_, err := verifier.Verify(context.Background(), tt.email, tt.password)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestVerifier_Verify_StoreError(t *testing.T) {
	storeErr := errors.New("disk exploded")
	verifier := NewVerifier(&mockUserStorage{getError: storeErr})

	_, err := verifier.Verify(context.Background(), "admin@kuhaku.com", "123456")
	require.Error(t, err)

	// A store fault is not an authentication failure
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
	assert.ErrorIs(t, err, storeErr)
}
