// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"socialnet/config"
	"socialnet/internal/domain/entity"
	"socialnet/internal/domain/service"
	"socialnet/internal/errors"
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher is the constructor for bcryptHasher.
// The cost factor comes from configuration (default 10); a cost outside
// bcrypt's supported range is a configuration fault and fails startup.
func NewBcryptHasher(cfg *config.Config) (service.PasswordHasher, error) {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.Auth != nil {
		cost = cfg.Auth.BcryptCost
	}

	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, errors.Errorf("invalid bcrypt cost %d: must be between %d and %d", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}

	return &bcryptHasher{cost: cost}, nil
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt salts each call freshly, so equal inputs never produce equal hashes.
func (h *bcryptHasher) Hash(password entity.Password) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password.String()), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash password")
	}

	return string(bytes), nil
}

// Compare checks a plaintext password against a stored bcrypt hash.
// A stored value that does not look like a bcrypt hash is corrupt or foreign
// data; that is reported as an error so callers cannot mistake it for a
// wrong password.
func (h *bcryptHasher) Compare(password entity.Password, storedHash string) (bool, error) {
	if !entity.HashPattern.MatchString(storedHash) {
		return false, errors.New("the provided hash is not a bcrypt hash")
	}

	err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password.String()))
	// err is nil if the password and hash match.
	return err == nil, nil
}
