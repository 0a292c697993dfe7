package handlers

import "context"

// contextKey is the type for request context keys
type contextKey string

// UserIDKey holds the authenticated subject id for the current request.
// It is attached by the auth middleware and lives only for the request.
const UserIDKey contextKey = "user_id"

// GetUserID extracts the authenticated subject id from the request context
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	return userID, ok
}
