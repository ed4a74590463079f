package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Page is a standalone content page such as "About"
type Page struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title       string    `json:"title" db:"title" gorm:"type:text;not null"`
	Slug        string    `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex"`
	Content     string    `json:"content" db:"content" gorm:"type:text;not null"`
	IsPublished bool      `json:"isPublished" db:"is_published" gorm:"not null;default:false;index"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at" gorm:"not null"`
}

func (p *Page) BeforeCreate(tx *gorm.DB) error {
	newID(&p.ID)
	return nil
}
