package repository

import (
	"context"
	"errors"

	"socialnet/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for reaction persistence.
var (
	// ErrReactionNotFound is returned when a reaction is not found.
	ErrReactionNotFound = errors.New("reaction not found")

	// ErrDuplicateReaction is returned when an author already reacted to the
	// same target.
	ErrDuplicateReaction = errors.New("reaction already exists for this target")
)

// ReactionRepository defines the standard operations for reaction persistence.
type ReactionRepository interface {
	// Create persists a new reaction. A second reaction by the same author on
	// the same target surfaces as ErrDuplicateReaction.
	Create(ctx context.Context, reaction *entity.Reaction) error

	// FindByAuthorAndTarget retrieves the author's reaction on a target, if any.
	FindByAuthorAndTarget(ctx context.Context, authorID, targetID uuid.UUID) (*entity.Reaction, error)

	// Delete removes the author's reaction on a target, returning
	// ErrReactionNotFound when absent.
	Delete(ctx context.Context, authorID, targetID uuid.UUID, targetType entity.ReactionTarget) error

	// CountByTarget aggregates reactions on a target by type.
	CountByTarget(ctx context.Context, targetID uuid.UUID, targetType entity.ReactionTarget) (*entity.ReactionCount, error)
}
