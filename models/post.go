package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Post represents a blog post with its author, category and tags
type Post struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title       string    `json:"title" db:"title" gorm:"type:text;not null"`
	Slug        string    `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex"`
	Excerpt     string    `json:"excerpt" db:"excerpt" gorm:"type:text;not null;default:''"`
	Content     string    `json:"content" db:"content" gorm:"type:text;not null"`
	IsPublished bool      `json:"isPublished" db:"is_published" gorm:"not null;default:false;index"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at" gorm:"not null;index"`
	AuthorID    uuid.UUID `json:"authorId" db:"author_id" gorm:"type:uuid;not null;index"`
	CategoryID  uuid.UUID `json:"categoryId" db:"category_id" gorm:"type:uuid;not null;index"`

	Author   User     `json:"author" gorm:"foreignKey:AuthorID;references:ID"`
	Category Category `json:"category" gorm:"foreignKey:CategoryID;references:ID"`
	Tags     []Tag    `json:"tags" gorm:"many2many:post_tags;constraint:OnDelete:CASCADE"`
}

func (p *Post) BeforeCreate(tx *gorm.DB) error {
	newID(&p.ID)
	return nil
}

// TagBySlug returns the attached tag with the given slug
func (p Post) TagBySlug(slug string) (Tag, bool) {
	for _, t := range p.Tags {
		if t.Slug == slug {
			return t, true
		}
	}
	return Tag{}, false
}
