package usecase

import (
	"context"

	"socialnet/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCommentInput defines the data required to attach a comment to a post.
type CreateCommentInput struct {
	AuthorID uuid.UUID
	PostID   uuid.UUID
	Content  string
}

// ListCommentsInput defines a paginated comment listing request.
type ListCommentsInput struct {
	ViewerID uuid.UUID
	PostID   uuid.UUID
	Offset   int
	Limit    int
}

// ListCommentsOutput returns one page of comments plus the total count.
type ListCommentsOutput struct {
	Comments []*entity.Comment
	Total    int64
}

// CommentUsecase defines the interface for comment business operations.
type CommentUsecase interface {
	// CreateComment attaches a comment to a post the author can see.
	CreateComment(ctx context.Context, input CreateCommentInput) (*entity.Comment, error)

	// ListComments retrieves one page of a post's comments.
	ListComments(ctx context.Context, input ListCommentsInput) (*ListCommentsOutput, error)

	// UpdateComment modifies one of the actor's own comments.
	UpdateComment(ctx context.Context, actorID, commentID uuid.UUID, content string) (*entity.Comment, error)

	// DeleteComment removes one of the actor's own comments.
	DeleteComment(ctx context.Context, actorID, commentID uuid.UUID) error
}
