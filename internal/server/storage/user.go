package storage

import (
	"context"

	"github.com/kuhaku/kuhaku/internal/models"
)

// UserStorage defines read-only access to the user dataset.
// The dataset is seeded at deploy time and never mutated by the server,
// so the interface carries no write operations.
type UserStorage interface {
	// GetUserByEmail retrieves a user by email (case-sensitive exact match)
	// Returns ErrUserNotFound if no record exists
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves a user by ID
	// Returns ErrUserNotFound if no record exists
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}
