package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that no user matched the lookup key.
	// Not-found is a normal result; callers decide whether it is a failure.
	ErrUserNotFound = errors.New("user not found")
)
