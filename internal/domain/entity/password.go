package entity

import (
	"regexp"
	"strings"

	domainerrors "socialnet/internal/domain/errors"
)

// HashPattern matches the prefix of a bcrypt hash ("$2a$", "$2b$" or "$2y$").
// It is used both to reject plaintext passwords that already look like a
// stored hash and to detect corrupt hash values before comparison.
var HashPattern = regexp.MustCompile(`^\$2[aby]\$`)

const (
	minPasswordLength = 8
	// bcrypt refuses inputs longer than 72 bytes, so anything above that
	// must fail validation rather than surface as an internal error.
	maxPasswordLength = 72
)

// Password is a validated plaintext password. It exists only transiently:
// constructed at the moment a plaintext password enters the system, then
// discarded after hashing or a single comparison.
type Password struct {
	value string
}

// NewPassword validates and wraps a plaintext password.
// The value is trimmed, must be between 8 and 72 bytes long, and must not
// already look like a bcrypt hash (which would indicate a caller is about to
// re-hash an already-hashed value).
func NewPassword(raw string) (Password, error) {
	trimmed := strings.TrimSpace(raw)

	if len(trimmed) < minPasswordLength {
		return Password{}, domainerrors.ErrValidationFailed.WrapMessage("password must be at least 8 characters long")
	}

	if len(trimmed) > maxPasswordLength {
		return Password{}, domainerrors.ErrValidationFailed.WrapMessage("password must be at most 72 bytes long")
	}

	if HashPattern.MatchString(trimmed) {
		return Password{}, domainerrors.ErrValidationFailed.WrapMessage("password resembles a bcrypt hash")
	}

	return Password{value: trimmed}, nil
}

// String returns the plaintext value for hashing or comparison.
func (p Password) String() string {
	return p.value
}
