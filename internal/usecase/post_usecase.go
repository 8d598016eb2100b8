package usecase

import (
	"context"

	"socialnet/internal/domain/entity"

	"github.com/google/uuid"
)

// CreatePostInput defines the data required to publish a post.
type CreatePostInput struct {
	AuthorID uuid.UUID
	Title    string
	Content  string
	Privacy  entity.PostPrivacy
}

// UpdatePostInput defines the mutable fields of a post. Nil fields are left
// unchanged.
type UpdatePostInput struct {
	ActorID uuid.UUID
	PostID  uuid.UUID
	Title   *string
	Content *string
	Privacy *entity.PostPrivacy
}

// SearchPostsInput defines a text search request. Limit is clamped to the
// supported page size; offset defaults to zero.
type SearchPostsInput struct {
	ViewerID uuid.UUID
	Term     string
	Offset   int
	Limit    int
}

// SearchPostsOutput returns one page of matches plus the total match count.
type SearchPostsOutput struct {
	Posts []*entity.Post
	Total int64
}

// PostUsecase defines the interface for post business operations.
type PostUsecase interface {
	// CreatePost publishes a new post by the author.
	CreatePost(ctx context.Context, input CreatePostInput) (*entity.Post, error)

	// GetPost retrieves a post the viewer is allowed to see.
	GetPost(ctx context.Context, postID, viewerID uuid.UUID) (*entity.Post, error)

	// ListByAuthor retrieves the author's posts visible to the viewer.
	ListByAuthor(ctx context.Context, authorID, viewerID uuid.UUID) ([]*entity.Post, error)

	// SearchPosts performs a full-text search over public posts.
	SearchPosts(ctx context.Context, input SearchPostsInput) (*SearchPostsOutput, error)

	// UpdatePost modifies one of the actor's own posts.
	UpdatePost(ctx context.Context, input UpdatePostInput) (*entity.Post, error)

	// DeletePost removes one of the actor's own posts.
	DeletePost(ctx context.Context, actorID, postID uuid.UUID) error
}
