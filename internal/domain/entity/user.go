// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the only record this service owns: one registered account.
// Email is stored exactly as submitted; no case folding happens anywhere.
type User struct {
	ID           uuid.UUID  // Assigned by the store on creation, never reused.
	Name         string     // Display name.
	Email        string     // Login identifier, unique across all users.
	AvatarURL    string     // Derived from Email once, at registration.
	PasswordHash string     `json:"-"` // bcrypt digest with embedded salt.
	LastLoginAt  *time.Time // Nil until the first successful login.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasLoggedIn reports whether the account has ever authenticated.
func (u *User) HasLoggedIn() bool {
	return u.LastLoginAt != nil
}
