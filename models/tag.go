package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tag is attached to posts through the post_tags join table
type Tag struct {
	ID   uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name string    `json:"name" db:"name" gorm:"type:text;not null"`
	Slug string    `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex"`
}

func (t *Tag) BeforeCreate(tx *gorm.DB) error {
	newID(&t.ID)
	return nil
}

func (t Tag) String() string {
	return t.Name
}
