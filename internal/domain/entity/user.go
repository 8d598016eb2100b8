// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique account.
type User struct {
	ID           uuid.UUID   // The unique identifier for the user.
	Username     string      // Unique handle, 3-20 characters.
	Email        string      // The user's unique email, used as the login identifier.
	PasswordHash string      // bcrypt hash of the password. Never serialized to clients.
	Followers    []uuid.UUID // IDs of users following this user.
	Following    []uuid.UUID // IDs of users this user follows.
	CreatedAt    time.Time   // Timestamp of when this user account was created.
	UpdatedAt    time.Time   // Timestamp of the last modification to this user's data.
}

// IsFollowing reports whether the user already follows the given user ID.
// Identifier comparison is by value; uuid.UUID is a comparable array type.
func (u *User) IsFollowing(id uuid.UUID) bool {
	for _, f := range u.Following {
		if f == id {
			return true
		}
	}

	return false
}
