package repository

import (
	"context"
	"errors"

	"socialnet/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPostNotFound is returned when a post is not found.
var ErrPostNotFound = errors.New("post not found")

// PostRepository defines the standard operations for post persistence.
type PostRepository interface {
	// Create persists a new post.
	Create(ctx context.Context, post *entity.Post) error

	// FindByID retrieves a single post by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error)

	// FindByAuthor retrieves all posts written by the given author.
	FindByAuthor(ctx context.Context, authorID uuid.UUID) ([]*entity.Post, error)

	// SearchByText performs a full-text search over title and content,
	// returning the requested page and the total match count. Only posts
	// visible to the viewer are matched: public ones plus the viewer's own.
	SearchByText(ctx context.Context, term string, viewerID uuid.UUID, offset, limit int) ([]*entity.Post, int64, error)

	// Update modifies an existing post.
	Update(ctx context.Context, post *entity.Post) error

	// Delete removes a post by ID, returning ErrPostNotFound when absent.
	Delete(ctx context.Context, id uuid.UUID) error
}
