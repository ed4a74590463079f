package database

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/rpupo63/content-site-backend/models"
	"gorm.io/gorm"
)

// Fixture is the JSON document accepted by Seed. Posts reference their author by
// username, their category by slug and their tags by slug.
type Fixture struct {
	Users      []models.User     `json:"users"`
	Categories []models.Category `json:"categories"`
	Tags       []models.Tag      `json:"tags"`
	Pages      []models.Page     `json:"pages"`
	Posts      []PostFixture     `json:"posts"`
}

type PostFixture struct {
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Excerpt     string    `json:"excerpt"`
	Content     string    `json:"content"`
	IsPublished bool      `json:"isPublished"`
	CreatedAt   time.Time `json:"createdAt"`
	Author      string    `json:"author"`
	Category    string    `json:"category"`
	Tags        []string  `json:"tags"`
}

// Seed loads a fixture document in a single transaction
func (d Database) Seed(r io.Reader) error {
	var fixture Fixture
	if err := json.NewDecoder(r).Decode(&fixture); err != nil {
		return fmt.Errorf("decode fixture: %w", err)
	}

	return d.db.Transaction(func(tx *gorm.DB) error {
		return New(tx).seed(fixture)
	})
}

func (d Database) seed(fixture Fixture) error {
	for i := range fixture.Users {
		if err := d.userRepo.Add(&fixture.Users[i]); err != nil {
			return fmt.Errorf("add user %q: %w", fixture.Users[i].Username, err)
		}
	}
	for i := range fixture.Categories {
		if err := d.categoryRepo.Add(&fixture.Categories[i]); err != nil {
			return fmt.Errorf("add category %q: %w", fixture.Categories[i].Slug, err)
		}
	}
	for i := range fixture.Tags {
		if err := d.tagRepo.Add(&fixture.Tags[i]); err != nil {
			return fmt.Errorf("add tag %q: %w", fixture.Tags[i].Slug, err)
		}
	}
	for i := range fixture.Pages {
		if err := d.pageRepo.Add(&fixture.Pages[i]); err != nil {
			return fmt.Errorf("add page %q: %w", fixture.Pages[i].Slug, err)
		}
	}

	for _, pf := range fixture.Posts {
		post, err := d.resolvePost(pf)
		if err != nil {
			return err
		}
		if err := d.postRepo.Add(post); err != nil {
			return fmt.Errorf("add post %q: %w", pf.Slug, err)
		}
	}
	return nil
}

func (d Database) resolvePost(pf PostFixture) (*models.Post, error) {
	author, err := d.userRepo.FindByUsername(pf.Author)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, fmt.Errorf("post %q: unknown author %q", pf.Slug, pf.Author)
	}

	category, err := d.categoryRepo.FindBySlug(pf.Category)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("post %q: unknown category %q", pf.Slug, pf.Category)
	}

	tags, err := d.tagRepo.FindBySlugs(pf.Tags)
	if err != nil {
		return nil, err
	}
	if len(tags) != len(pf.Tags) {
		return nil, fmt.Errorf("post %q: unknown tag in %v", pf.Slug, pf.Tags)
	}

	return &models.Post{
		Title:       pf.Title,
		Slug:        pf.Slug,
		Excerpt:     pf.Excerpt,
		Content:     pf.Content,
		IsPublished: pf.IsPublished,
		CreatedAt:   pf.CreatedAt,
		AuthorID:    author.ID,
		CategoryID:  category.ID,
		Tags:        tags,
	}, nil
}
