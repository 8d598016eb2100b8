package service

import (
	"errors"
	"time"

	"socialnet/internal/domain/entity"

	"github.com/google/uuid"
)

// Codec-level sentinel errors. Callers translate these into opaque
// authorization failures; the distinction exists for diagnostics.
var (
	// ErrTokenInvalid is returned when a token's signature, structure or
	// signing method is wrong.
	ErrTokenInvalid = errors.New("token is invalid")

	// ErrTokenExpired is returned when a structurally valid token is past its
	// expiry. Expiration is enforced here, never by callers.
	ErrTokenExpired = errors.New("token has expired")
)

// TokenPayload is the verified content of a signed token.
type TokenPayload struct {
	UserID uuid.UUID
	Email  string
	Kind   entity.TokenKind
}

// Identity derives the per-request authenticated identity from the payload.
func (p *TokenPayload) Identity() entity.Identity {
	return entity.Identity{
		UserID:    p.UserID,
		Email:     p.Email,
		TokenKind: p.Kind,
	}
}

// TokenCodec signs and verifies structured, time-bounded token payloads.
// Implementations are pure and stateless beyond startup configuration.
type TokenCodec interface {
	// Sign encodes the payload plus issued-at and expires-at claims.
	// A zero ttl applies the configured default for the payload's kind.
	Sign(payload TokenPayload, ttl time.Duration) (string, error)

	// Verify decodes and validates a token string, failing with
	// ErrTokenInvalid on a bad signature and ErrTokenExpired past expiry.
	Verify(token string) (*TokenPayload, error)

	// AccessTokenTTL returns the configured lifetime for access tokens.
	AccessTokenTTL() time.Duration

	// RefreshTokenTTL returns the configured lifetime for refresh tokens.
	RefreshTokenTTL() time.Duration
}
