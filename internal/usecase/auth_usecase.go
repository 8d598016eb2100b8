// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"socialnet/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user plus a refresh token so the
// client can immediately request access tokens.
type RegisterOutput struct {
	User         *entity.User
	RefreshToken string
}

// LoginOutput returns the refresh token issued after a successful login.
type LoginOutput struct {
	RefreshToken string
}

// AccessTokenOutput returns a short-lived access token minted from a refresh token.
type AccessTokenOutput struct {
	AccessToken string
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register creates a new account and issues a refresh token.
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)

	// Login validates credentials and issues a refresh token. All credential
	// failures look identical to the caller.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// GetAccessToken exchanges a valid refresh token for an access token.
	GetAccessToken(ctx context.Context, refreshToken string) (*AccessTokenOutput, error)
}
