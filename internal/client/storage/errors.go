package storage

import "errors"

// Common client storage errors
var (
	// ErrSessionNotFound indicates that no session is persisted
	ErrSessionNotFound = errors.New("session not found")
)
