package model

import (
	"time"

	"github.com/google/uuid"
)

// ReactionModel mirrors the 'reactions' table. The unique index over
// (author_id, target_id, target_type) enforces one reaction per author per target.
type ReactionModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AuthorID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reactions_author_target"`
	TargetID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reactions_author_target;index"`
	TargetType string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_reactions_author_target"`
	Type       string    `gorm:"type:varchar(20);not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReactionModel) TableName() string {
	return "reactions"
}
