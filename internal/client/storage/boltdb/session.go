package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/kuhaku/kuhaku/internal/client/storage"
	"github.com/kuhaku/kuhaku/pkg/api"
)

// Fixed entry keys, the local-storage analog of kuhaku_token/kuhaku_user
var (
	keyToken = []byte("kuhaku_token")
	keyUser  = []byte("kuhaku_user")
)

// Compile-time check that Storage implements SessionStorage
var _ storage.SessionStorage = (*Storage)(nil)

// SaveSession stores the session data, replacing any previous session
func (s *Storage) SaveSession(ctx context.Context, session *storage.SessionData) error {
	if session == nil {
		return fmt.Errorf("session data is nil")
	}

	userData, err := json.Marshal(session.User)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		if err := bucket.Put(keyToken, []byte(session.Token)); err != nil {
			return fmt.Errorf("failed to save token: %w", err)
		}
		if err := bucket.Put(keyUser, userData); err != nil {
			return fmt.Errorf("failed to save user: %w", err)
		}

		return nil
	})
}

// GetSession retrieves the stored session
func (s *Storage) GetSession(ctx context.Context) (*storage.SessionData, error) {
	var session *storage.SessionData

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		tokenData := bucket.Get(keyToken)
		userData := bucket.Get(keyUser)
		if tokenData == nil || userData == nil {
			return storage.ErrSessionNotFound
		}

		var user api.User
		if err := json.Unmarshal(userData, &user); err != nil {
			return fmt.Errorf("failed to unmarshal user: %w", err)
		}

		session = &storage.SessionData{
			Token: string(tokenData),
			User:  user,
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return session, nil
}

// DeleteSession removes the stored session (sign-out).
// Deleting an absent session is not an error: sign-out is idempotent.
func (s *Storage) DeleteSession(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		if err := bucket.Delete(keyToken); err != nil {
			return fmt.Errorf("failed to delete token: %w", err)
		}
		if err := bucket.Delete(keyUser); err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}

		return nil
	})
}
