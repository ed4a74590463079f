package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category groups posts; every post belongs to exactly one
type Category struct {
	ID   uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name string    `json:"name" db:"name" gorm:"type:text;not null"`
	Slug string    `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	newID(&c.ID)
	return nil
}

func (c Category) String() string {
	return c.Name
}
