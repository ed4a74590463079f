package database

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/rpupo63/content-site-backend/models"
	"gorm.io/gorm"
)

// PostFilter narrows a published posts query. Zero fields are ignored.
type PostFilter struct {
	AuthorID     *uuid.UUID
	CategorySlug string
	TagSlug      string
	Search       string
}

type PostRepo struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) *PostRepo {
	return &PostRepo{db}
}

// GetDB returns the underlying connection, for callers that need raw access such as tests
func (r *PostRepo) GetDB() *gorm.DB {
	return r.db
}

func (r *PostRepo) publishedQuery(filter PostFilter) *gorm.DB {
	q := r.db.Model(&models.Post{}).Scopes(published("posts"))

	if filter.AuthorID != nil {
		q = q.Where("posts.author_id = ?", *filter.AuthorID)
	}

	if filter.CategorySlug != "" {
		q = q.Joins("JOIN categories ON categories.id = posts.category_id").
			Where("categories.slug = ?", filter.CategorySlug)
	}

	if filter.TagSlug != "" {
		tagged := r.db.Table("post_tags").
			Select("post_tags.post_id").
			Joins("JOIN tags ON tags.id = post_tags.tag_id").
			Where("tags.slug = ?", filter.TagSlug)
		q = q.Where("posts.id IN (?)", tagged)
	}

	if filter.Search != "" {
		pattern := containsPattern(filter.Search)
		q = q.Where(
			`(LOWER(posts.title) LIKE LOWER(@pattern) ESCAPE '\' OR LOWER(posts.excerpt) LIKE LOWER(@pattern) ESCAPE '\' OR LOWER(posts.content) LIKE LOWER(@pattern) ESCAPE '\')`,
			sql.Named("pattern", pattern),
		)
	}

	return q
}

// CountPublished returns how many published posts match the filter
func (r *PostRepo) CountPublished(filter PostFilter) (int64, error) {
	var count int64
	err := r.publishedQuery(filter).Count(&count).Error
	return count, err
}

// FindPublished returns published posts matching the filter, newest first.
// A negative limit means no limit.
func (r *PostRepo) FindPublished(filter PostFilter, offset, limit int) ([]*models.Post, error) {
	var posts []*models.Post
	q := r.publishedQuery(filter).
		Preload("Author").
		Preload("Category").
		Preload("Tags").
		Order("posts.created_at DESC").
		Order("posts.id DESC")
	if offset > 0 {
		q = q.Offset(offset)
	}
	if limit >= 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&posts).Error
	return posts, err
}

// FindPublishedBySlug returns the published post with the given slug, or nil if there is none
func (r *PostRepo) FindPublishedBySlug(slug string) (*models.Post, error) {
	var post models.Post
	err := r.db.Scopes(published("posts")).
		Preload("Author").
		Preload("Category").
		Preload("Tags").
		Where("posts.slug = ?", slug).
		First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Add inserts a new post together with its tag links
func (r *PostRepo) Add(post *models.Post) error {
	return r.db.Create(post).Error
}
