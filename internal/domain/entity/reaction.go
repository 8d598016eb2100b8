package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReactionTarget identifies what kind of content a reaction is attached to.
type ReactionTarget string

const (
	ReactionTargetPost    ReactionTarget = "post"
	ReactionTargetComment ReactionTarget = "comment"
)

// Valid reports whether the target is a known value.
func (t ReactionTarget) Valid() bool {
	return t == ReactionTargetPost || t == ReactionTargetComment
}

// ReactionType enumerates the supported reactions.
type ReactionType string

const (
	ReactionTypeLike  ReactionType = "like"
	ReactionTypeHaha  ReactionType = "haha"
	ReactionTypeLove  ReactionType = "love"
	ReactionTypeSad   ReactionType = "sad"
	ReactionTypeWow   ReactionType = "wow"
	ReactionTypeAngry ReactionType = "angry"
)

// ReactionTypes lists every supported reaction type, in counting order.
var ReactionTypes = []ReactionType{
	ReactionTypeLike,
	ReactionTypeHaha,
	ReactionTypeLove,
	ReactionTypeSad,
	ReactionTypeWow,
	ReactionTypeAngry,
}

// Valid reports whether the reaction type is a known value.
func (t ReactionType) Valid() bool {
	for _, known := range ReactionTypes {
		if t == known {
			return true
		}
	}

	return false
}

// Reaction records a single user's reaction to a post or comment.
// A user may hold at most one reaction per target.
type Reaction struct {
	ID           uuid.UUID
	AuthorID     uuid.UUID
	TargetID     uuid.UUID
	TargetType   ReactionTarget
	ReactionType ReactionType
	CreatedAt    time.Time
}

// ReactionCount aggregates reactions on a single target by type.
type ReactionCount struct {
	Counts map[ReactionType]int64
	Total  int64
}
