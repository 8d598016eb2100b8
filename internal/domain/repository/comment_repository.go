package repository

import (
	"context"
	"errors"

	"socialnet/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCommentNotFound is returned when a comment is not found.
var ErrCommentNotFound = errors.New("comment not found")

// CommentRepository defines the standard operations for comment persistence.
type CommentRepository interface {
	// Create persists a new comment.
	Create(ctx context.Context, comment *entity.Comment) error

	// FindByID retrieves a single comment by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error)

	// FindByPost retrieves one page of a post's comments plus the total count.
	FindByPost(ctx context.Context, postID uuid.UUID, offset, limit int) ([]*entity.Comment, int64, error)

	// Update modifies an existing comment.
	Update(ctx context.Context, comment *entity.Comment) error

	// Delete removes a comment by ID, returning ErrCommentNotFound when absent.
	Delete(ctx context.Context, id uuid.UUID) error
}
