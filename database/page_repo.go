package database

import (
	"errors"

	"github.com/rpupo63/content-site-backend/models"
	"gorm.io/gorm"
)

type PageRepo struct {
	db *gorm.DB
}

func NewPageRepo(db *gorm.DB) *PageRepo {
	return &PageRepo{db}
}

// FindPublishedBySlug returns the published page with the given slug, or nil if there is none
func (r *PageRepo) FindPublishedBySlug(slug string) (*models.Page, error) {
	var page models.Page
	err := r.db.Scopes(published("pages")).Where("pages.slug = ?", slug).First(&page).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// Add inserts a new page into the database
func (r *PageRepo) Add(page *models.Page) error {
	return r.db.Create(page).Error
}
