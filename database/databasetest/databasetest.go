// Package databasetest opens throwaway sqlite databases for tests.
package databasetest

import (
	"testing"
	"time"

	"github.com/rpupo63/content-site-backend/database"
	"github.com/rpupo63/content-site-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open returns a migrated in-memory database that is closed when the test ends
func Open(t *testing.T) database.Database {
	t.Helper()

	db, err := gorm.Open(database.SQLiteDialector(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	// every connection to ":memory:" is a separate database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return database.New(db)
}

// Content holds the rows created by Seed
type Content struct {
	Alice   *models.User
	Bob     *models.User
	Nobody  *models.User
	Go      *models.Category
	Life    *models.Category
	Empty   *models.Category
	Golang  *models.Tag
	Testing *models.Tag
	Unused  *models.Tag
}

// Base is the creation time of the oldest seeded post
var Base = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// Seed creates users, categories, tags and a small set of posts and pages:
//
//	hello-world    alice  go    [golang]          published  Base+1h
//	testing-in-go  alice  go    [golang testing]  published  Base+2h
//	a-day-off      bob    life  []                published  Base+3h
//	secret-draft   alice  go    [golang]          draft      Base+4h
//	about (page)   published
//	hidden (page)  draft
func Seed(t *testing.T, d database.Database) Content {
	t.Helper()

	c := Content{
		Alice:   &models.User{Username: "alice", FirstName: "Alice", LastName: "Liddell"},
		Bob:     &models.User{Username: "bob"},
		Nobody:  &models.User{Username: "nobody", FirstName: "No", LastName: "Body"},
		Go:      &models.Category{Name: "Go", Slug: "go"},
		Life:    &models.Category{Name: "Life", Slug: "life"},
		Empty:   &models.Category{Name: "Empty", Slug: "empty"},
		Golang:  &models.Tag{Name: "Golang", Slug: "golang"},
		Testing: &models.Tag{Name: "Unit Testing", Slug: "testing"},
		Unused:  &models.Tag{Name: "Unused", Slug: "unused"},
	}

	for _, u := range []*models.User{c.Alice, c.Bob, c.Nobody} {
		mustDo(t, d.UserRepo().Add(u))
	}
	for _, cat := range []*models.Category{c.Go, c.Life, c.Empty} {
		mustDo(t, d.CategoryRepo().Add(cat))
	}
	for _, tag := range []*models.Tag{c.Golang, c.Testing, c.Unused} {
		mustDo(t, d.TagRepo().Add(tag))
	}

	AddPost(t, d, &models.Post{
		Title: "Hello World", Slug: "hello-world", Excerpt: "First post", Content: "Hello from Go.",
		IsPublished: true, CreatedAt: Base.Add(time.Hour),
		AuthorID: c.Alice.ID, CategoryID: c.Go.ID, Tags: []models.Tag{*c.Golang},
	})
	AddPost(t, d, &models.Post{
		Title: "Testing in Go", Slug: "testing-in-go", Excerpt: "Table tests", Content: "Use t.Run for subtests.",
		IsPublished: true, CreatedAt: Base.Add(2 * time.Hour),
		AuthorID: c.Alice.ID, CategoryID: c.Go.ID, Tags: []models.Tag{*c.Golang, *c.Testing},
	})
	AddPost(t, d, &models.Post{
		Title: "A Day Off", Slug: "a-day-off", Excerpt: "Resting", Content: "Went for a walk.",
		IsPublished: true, CreatedAt: Base.Add(3 * time.Hour),
		AuthorID: c.Bob.ID, CategoryID: c.Life.ID,
	})
	AddPost(t, d, &models.Post{
		Title: "Secret Draft", Slug: "secret-draft", Excerpt: "Hello draft", Content: "Not ready. Hello?",
		IsPublished: false, CreatedAt: Base.Add(4 * time.Hour),
		AuthorID: c.Alice.ID, CategoryID: c.Go.ID, Tags: []models.Tag{*c.Golang},
	})

	mustDo(t, d.PageRepo().Add(&models.Page{Title: "About", Slug: "about", Content: "About this site.", IsPublished: true}))
	mustDo(t, d.PageRepo().Add(&models.Page{Title: "Hidden", Slug: "hidden", Content: "Draft page."}))

	return c
}

// AddPost inserts post or fails the test
func AddPost(t *testing.T, d database.Database, post *models.Post) {
	t.Helper()
	mustDo(t, d.PostRepo().Add(post))
}

func mustDo(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
}
