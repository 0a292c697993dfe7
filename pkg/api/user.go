package api

// User is the public projection of a user record.
// The stored password hash never crosses the wire.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
