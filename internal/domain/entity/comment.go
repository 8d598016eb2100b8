package entity

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a user-authored reply attached to a post.
type Comment struct {
	ID        uuid.UUID
	AuthorID  uuid.UUID
	PostID    uuid.UUID
	Content   string // 1-1024 characters.
	CreatedAt time.Time
	UpdatedAt time.Time
}
