// Package auth checks submitted credentials against the user store.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/kuhaku/kuhaku/internal/crypto"
	"github.com/kuhaku/kuhaku/internal/models"
	"github.com/kuhaku/kuhaku/internal/server/storage"
)

// ErrInvalidCredentials indicates that the email/password pair did not
// match a stored record. Unknown email and wrong password are deliberately
// indistinguishable to avoid leaking whether an email is registered.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Verifier checks an email/password pair against the user store
type Verifier struct {
	users storage.UserStorage
}

// NewVerifier creates a credential verifier backed by the given store
func NewVerifier(users storage.UserStorage) *Verifier {
	return &Verifier{users: users}
}

// Verify returns the matching user record on success.
// Returns ErrInvalidCredentials on any authentication failure; other errors
// indicate a store fault, not a rejected login.
func (v *Verifier) Verify(ctx context.Context, email, password string) (*models.User, error) {
	user, err := v.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := crypto.VerifyPassword(password, user.PasswordHash); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
