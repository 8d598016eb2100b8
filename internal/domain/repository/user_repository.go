// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"socialnet/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateEmail is returned when a create/update collides with an
	// existing email.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrDuplicateUsername is returned when a create/update collides with an
	// existing username.
	ErrDuplicateUsername = errors.New("username already registered")

	// ErrDuplicateFollow is returned when the follow relation already exists.
	ErrDuplicateFollow = errors.New("follow relation already exists")
)

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by email, including the password
	// hash so credentials can be verified.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByUsername retrieves a single user by their unique handle.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// Create persists a new user entity. Unique-constraint collisions surface
	// as ErrDuplicateEmail or ErrDuplicateUsername.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user by ID, returning ErrUserNotFound when absent.
	Delete(ctx context.Context, id uuid.UUID) error

	// CreateFollow records that follower follows following.
	CreateFollow(ctx context.Context, followerID, followingID uuid.UUID) error
}
