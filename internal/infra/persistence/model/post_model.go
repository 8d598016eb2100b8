package model

import (
	"time"

	"github.com/google/uuid"
)

// PostModel mirrors the 'posts' table. A GIN index over the concatenated
// tsvector of title and content backs the text search.
type PostModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AuthorID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Content   string    `gorm:"type:varchar(1024);not null"`
	Privacy   string    `gorm:"type:varchar(20);not null;default:public"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Author *UserModel `gorm:"foreignKey:AuthorID"`
}

// TableName explicitly sets the table name for GORM.
func (PostModel) TableName() string {
	return "posts"
}
