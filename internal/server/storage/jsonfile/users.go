// Package jsonfile implements storage.UserStorage over a static JSON dataset.
// The file is read on every lookup, mirroring a mock repository: no caching,
// no mutation, so concurrent requests need no locking.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/kuhaku/kuhaku/internal/models"
	"github.com/kuhaku/kuhaku/internal/server/storage"
)

// Store reads user records from a JSON file
type Store struct {
	path string
}

// Compile-time check that Store implements UserStorage
var _ storage.UserStorage = (*Store)(nil)

// New creates a store backed by the JSON file at path.
// The file must hold an array of user records.
func New(path string) *Store {
	return &Store{path: path}
}

// GetUserByEmail retrieves a user by email (case-sensitive exact match)
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	users, err := s.readAll()
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}

	return nil, storage.ErrUserNotFound
}

// GetUserByID retrieves a user by ID
func (s *Store) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	users, err := s.readAll()
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}

	return nil, storage.ErrUserNotFound
}

// readAll loads the whole dataset from disk
func (s *Store) readAll() ([]models.User, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read users file: %w", err)
	}

	var users []models.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("failed to parse users file: %w", err)
	}

	return users, nil
}
