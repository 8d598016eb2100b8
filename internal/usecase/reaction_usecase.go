package usecase

import (
	"context"

	"socialnet/internal/domain/entity"

	"github.com/google/uuid"
)

// AddReactionInput defines the data required to react to a post or comment.
type AddReactionInput struct {
	AuthorID     uuid.UUID
	TargetID     uuid.UUID
	TargetType   entity.ReactionTarget
	ReactionType entity.ReactionType
}

// ReactionUsecase defines the interface for reaction business operations.
type ReactionUsecase interface {
	// AddReaction records the author's reaction on a target. An author holds
	// at most one reaction per target.
	AddReaction(ctx context.Context, input AddReactionInput) (*entity.Reaction, error)

	// RemoveReaction deletes the author's reaction on a target.
	RemoveReaction(ctx context.Context, authorID, targetID uuid.UUID, targetType entity.ReactionTarget) error

	// GetReactionCounts aggregates reactions on a target by type.
	GetReactionCounts(ctx context.Context, targetID uuid.UUID, targetType entity.ReactionTarget) (*entity.ReactionCount, error)
}
