package usecase

import (
	"context"

	"socialnet/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateUserInput defines the mutable fields of a user profile. Nil fields
// are left unchanged.
type UpdateUserInput struct {
	ActorID  uuid.UUID
	UserID   uuid.UUID
	Username *string
	Email    *string
	Password *string
}

// UserUsecase defines the interface for user profile and follow-graph operations.
type UserUsecase interface {
	// GetUser retrieves a user's profile by ID.
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// UpdateUser modifies a user's own profile. A new password is re-hashed
	// before storage.
	UpdateUser(ctx context.Context, input UpdateUserInput) (*entity.User, error)

	// DeleteUser removes the actor's own account.
	DeleteUser(ctx context.Context, actorID, userID uuid.UUID) error

	// Follow records that the actor follows the target user.
	Follow(ctx context.Context, actorID, targetID uuid.UUID) error
}
