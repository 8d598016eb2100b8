package entity

import "github.com/google/uuid"

// TokenKind discriminates the two credential types the service issues.
// A token's kind is fixed at signing time and must be checked by every
// consumer before the payload is trusted for its intended purpose.
type TokenKind string

const (
	// TokenKindAccess is the short-lived credential authorizing ordinary
	// protected operations.
	TokenKindAccess TokenKind = "access"

	// TokenKindRefresh is the longer-lived credential whose only purpose is
	// to obtain new access tokens.
	TokenKindRefresh TokenKind = "refresh"
)

// Valid reports whether the kind is one of the two known values.
func (k TokenKind) Valid() bool {
	return k == TokenKindAccess || k == TokenKindRefresh
}

// Identity is the per-request authenticated caller, derived from a verified
// token payload by the request guard and discarded at request end.
type Identity struct {
	UserID    uuid.UUID
	Email     string
	TokenKind TokenKind
}
