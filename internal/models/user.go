package models

import "github.com/kuhaku/kuhaku/pkg/api"

// User represents a user record in the system.
// Records are seeded into the store and immutable for the process lifetime.
type User struct {
	ID           string `json:"id"`       // UUID
	Name         string `json:"name"`     // display name
	Email        string `json:"email"`    // unique, case-sensitive lookup key
	PasswordHash string `json:"password"` // scrypt encoded hash, never sent to clients
}

// Public strips the password hash before transmission
func (u *User) Public() api.User {
	return api.User{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}
