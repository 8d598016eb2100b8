// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import "socialnet/internal/domain/entity"

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a validated plaintext password.
	// Each call salts freshly, so equal inputs yield different outputs.
	Hash(password entity.Password) (string, error)

	// Compare reports whether the plaintext matches the stored hash.
	// It returns an error, not false, when storedHash does not look like a
	// bcrypt hash: a corrupt or foreign stored value is a contract violation,
	// never to be conflated with a wrong password.
	Compare(password entity.Password, storedHash string) (bool, error)
}
