package entity

import (
	"time"

	"github.com/google/uuid"
)

// PostPrivacy defines who may see a post.
type PostPrivacy string

const (
	// PostPrivacyPublic makes a post visible to every logged-in user.
	PostPrivacyPublic PostPrivacy = "public"

	// PostPrivacyMutualFollowers restricts a post to users who follow the
	// author and are followed back.
	PostPrivacyMutualFollowers PostPrivacy = "mutual_followers"

	// PostPrivacyPrivate makes a post visible only to its author.
	PostPrivacyPrivate PostPrivacy = "private"
)

// Valid reports whether the privacy level is a known value.
func (p PostPrivacy) Valid() bool {
	switch p {
	case PostPrivacyPublic, PostPrivacyMutualFollowers, PostPrivacyPrivate:
		return true
	}

	return false
}

// Post is a piece of user-authored content.
type Post struct {
	ID        uuid.UUID
	AuthorID  uuid.UUID
	Title     string // 1-255 characters.
	Content   string // 1-1024 characters.
	Privacy   PostPrivacy
	CreatedAt time.Time
	UpdatedAt time.Time
}
