package services

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rpupo63/content-site-backend/database"
	"github.com/rpupo63/content-site-backend/database/databasetest"
	"github.com/rpupo63/content-site-backend/errs"
	"github.com/rpupo63/content-site-backend/models"
	"github.com/rs/zerolog"
)

func setupService(t *testing.T) (*ContentService, database.Database, databasetest.Content) {
	t.Helper()
	db := databasetest.Open(t)
	content := databasetest.Seed(t, db)
	return NewContentService(db), db, content
}

// addPosts inserts n published posts in category, newer than everything Seed creates
func addPosts(t *testing.T, db database.Database, n int, author *models.User, category *models.Category, excerpt string) {
	t.Helper()
	for i := 0; i < n; i++ {
		databasetest.AddPost(t, db, &models.Post{
			Title:       fmt.Sprintf("Extra %02d", i),
			Slug:        fmt.Sprintf("extra-%02d", i),
			Excerpt:     excerpt,
			Content:     "filler",
			IsPublished: true,
			CreatedAt:   databasetest.Base.Add(24*time.Hour + time.Duration(i)*time.Minute),
			AuthorID:    author.ID,
			CategoryID:  category.ID,
		})
	}
}

func slugs(posts []*models.Post) []string {
	out := make([]string, len(posts))
	for i, p := range posts {
		out[i] = p.Slug
	}
	return out
}

func assertSlugs(t *testing.T, posts []*models.Post, want ...string) {
	t.Helper()
	got := slugs(posts)
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("posts = %v, want %v", got, want)
	}
}

func assertNotFound(t *testing.T, err error) {
	t.Helper()
	if !errs.IsNotFound(err) {
		t.Fatalf("err = %v, want not found", err)
	}
	if errs.StatusCode(err) != http.StatusNotFound {
		t.Errorf("status = %d, want 404", errs.StatusCode(err))
	}
}

func TestListPublished(t *testing.T) {
	s, _, _ := setupService(t)

	list, err := s.ListPublished(1)
	if err != nil {
		t.Fatalf("ListPublished: %v", err)
	}

	assertSlugs(t, list.Posts, "a-day-off", "testing-in-go", "hello-world")
	if list.PageTitle != "Home - " {
		t.Errorf("PageTitle = %q", list.PageTitle)
	}
	if list.Pagination == nil || list.Pagination.Count != 3 || list.Pagination.NumPages != 1 {
		t.Errorf("Pagination = %+v", list.Pagination)
	}
	if list.Posts[1].Author.Username != "alice" || list.Posts[1].Category.Slug != "go" || len(list.Posts[1].Tags) != 2 {
		t.Errorf("relations not loaded: %+v", list.Posts[1])
	}
}

func TestListPublishedPagination(t *testing.T) {
	s, db, c := setupService(t)
	addPosts(t, db, 10, c.Bob, c.Life, "")

	first, err := s.ListPublished(1)
	if err != nil {
		t.Fatalf("page 1: %v", err)
	}
	if len(first.Posts) != PerPage {
		t.Errorf("page 1 has %d posts, want %d", len(first.Posts), PerPage)
	}
	if p := first.Pagination; p.NumPages != 2 || !p.HasNext || p.HasPrevious || p.Count != 13 {
		t.Errorf("page 1 pagination = %+v", p)
	}

	last, err := s.ListPublished(LastPage)
	if err != nil {
		t.Fatalf("last page: %v", err)
	}
	if last.Pagination.Number != 2 || len(last.Posts) != 4 {
		t.Errorf("last page = %d with %d posts", last.Pagination.Number, len(last.Posts))
	}
	assertSlugs(t, last.Posts[1:], "a-day-off", "testing-in-go", "hello-world")

	beyond, err := s.ListPublished(3)
	if err != nil {
		t.Fatalf("page beyond range should not fail: %v", err)
	}
	if len(beyond.Posts) != 0 || beyond.Posts == nil {
		t.Errorf("page beyond range = %v, want empty non-nil slice", beyond.Posts)
	}
	if beyond.Pagination.Number != 3 || beyond.Pagination.HasNext {
		t.Errorf("beyond pagination = %+v", beyond.Pagination)
	}

	_, err = s.ListPublished(0)
	assertNotFound(t, err)
}

func TestGetPostBySlug(t *testing.T) {
	s, _, c := setupService(t)

	detail, err := s.GetPostBySlug("testing-in-go")
	if err != nil {
		t.Fatalf("GetPostBySlug: %v", err)
	}
	if detail.Post.Slug != "testing-in-go" || detail.Post.AuthorID != c.Alice.ID {
		t.Errorf("post = %+v", detail.Post)
	}
	if detail.PageTitle != "Testing in Go Post - " {
		t.Errorf("PageTitle = %q", detail.PageTitle)
	}
	if detail.ContentHTML != "<p>Use t.Run for subtests.</p>\n" {
		t.Errorf("ContentHTML = %q", detail.ContentHTML)
	}

	for _, slug := range []string{"missing", "secret-draft", ""} {
		_, err := s.GetPostBySlug(slug)
		assertNotFound(t, err)
	}
}

func TestGetPageBySlug(t *testing.T) {
	s, _, _ := setupService(t)

	detail, err := s.GetPageBySlug("about")
	if err != nil {
		t.Fatalf("GetPageBySlug: %v", err)
	}
	if detail.Page.Title != "About" || detail.PageTitle != "About Page - " {
		t.Errorf("detail = %+v", detail)
	}

	_, err = s.GetPageBySlug("hidden")
	assertNotFound(t, err)
	_, err = s.GetPageBySlug("missing")
	assertNotFound(t, err)
}

func TestListByAuthor(t *testing.T) {
	s, _, c := setupService(t)

	list, err := s.ListByAuthor(c.Alice.ID, 1)
	if err != nil {
		t.Fatalf("ListByAuthor: %v", err)
	}
	assertSlugs(t, list.Posts, "testing-in-go", "hello-world")
	if list.PageTitle != "Posts by Alice Liddell - " {
		t.Errorf("PageTitle = %q", list.PageTitle)
	}
	if list.Author == nil || list.Author.ID != c.Alice.ID {
		t.Errorf("Author = %+v", list.Author)
	}

	bob, err := s.ListByAuthor(c.Bob.ID, 1)
	if err != nil {
		t.Fatalf("ListByAuthor(bob): %v", err)
	}
	if bob.PageTitle != "Posts by bob - " {
		t.Errorf("username fallback title = %q", bob.PageTitle)
	}

	empty, err := s.ListByAuthor(c.Nobody.ID, 1)
	if err != nil {
		t.Fatalf("author without posts should not fail: %v", err)
	}
	if len(empty.Posts) != 0 || empty.Posts == nil {
		t.Errorf("posts = %v, want empty non-nil slice", empty.Posts)
	}

	_, err = s.ListByAuthor(uuid.New(), 1)
	assertNotFound(t, err)
}

func TestListByCategory(t *testing.T) {
	s, _, _ := setupService(t)

	list, err := s.ListByCategory("go", 1)
	if err != nil {
		t.Fatalf("ListByCategory: %v", err)
	}
	assertSlugs(t, list.Posts, "testing-in-go", "hello-world")
	for _, p := range list.Posts {
		if p.Category.Slug != "go" {
			t.Errorf("post %s in category %s", p.Slug, p.Category.Slug)
		}
	}
	if list.PageTitle != "Go Category - " {
		t.Errorf("PageTitle = %q", list.PageTitle)
	}

	// exists but has no published posts
	_, err = s.ListByCategory("empty", 1)
	assertNotFound(t, err)
	_, err = s.ListByCategory("missing", 1)
	assertNotFound(t, err)
}

func TestListByCategoryPageBeyondRange(t *testing.T) {
	s, db, c := setupService(t)
	addPosts(t, db, 10, c.Bob, c.Go, "")

	list, err := s.ListByCategory("go", 2)
	if err != nil {
		t.Fatalf("page 2: %v", err)
	}
	if len(list.Posts) != 3 {
		t.Errorf("page 2 has %d posts, want 3", len(list.Posts))
	}

	_, err = s.ListByCategory("go", 3)
	assertNotFound(t, err)
}

func TestListByTag(t *testing.T) {
	s, _, _ := setupService(t)

	list, err := s.ListByTag("testing", 1)
	if err != nil {
		t.Fatalf("ListByTag: %v", err)
	}
	assertSlugs(t, list.Posts, "testing-in-go")
	if list.PageTitle != "Unit Testing Tag - " {
		t.Errorf("PageTitle = %q, want tag display name", list.PageTitle)
	}

	golang, err := s.ListByTag("golang", 1)
	if err != nil {
		t.Fatalf("ListByTag(golang): %v", err)
	}
	assertSlugs(t, golang.Posts, "testing-in-go", "hello-world")
	for _, p := range golang.Posts {
		if _, ok := p.TagBySlug("golang"); !ok {
			t.Errorf("post %s is not tagged golang", p.Slug)
		}
	}

	_, err = s.ListByTag("unused", 1)
	assertNotFound(t, err)
	_, err = s.ListByTag("golang", 2)
	assertNotFound(t, err)
}

func TestSearch(t *testing.T) {
	s, _, _ := setupService(t)

	tests := []struct {
		query string
		want  []string
	}{
		{"hello", []string{"hello-world"}},
		{"  HELLO ", []string{"hello-world"}},
		{"table", []string{"testing-in-go"}},
		{"walk", []string{"a-day-off"}},
		{"t.Run", []string{"testing-in-go"}},
		{"%", nil},
		{"_", nil},
		{"nothing like this", nil},
		{"", []string{"a-day-off", "testing-in-go", "hello-world"}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			list, err := s.Search(tt.query, PerPage)
			if err != nil {
				t.Fatalf("Search: %v", err)
			}
			assertSlugs(t, list.Posts, tt.want...)
			if list.Pagination != nil {
				t.Error("search results should not be paginated")
			}
			if list.SearchValue != strings.TrimSpace(tt.query) {
				t.Errorf("SearchValue = %q", list.SearchValue)
			}
		})
	}
}

func TestSearchFoldsNonASCIICase(t *testing.T) {
	s, db, c := setupService(t)
	databasetest.AddPost(t, db, &models.Post{
		Title:       "100% ÉCOLE",
		Slug:        "ecole",
		Content:     "Rentrée à l'ÉCOLE.",
		IsPublished: true,
		CreatedAt:   databasetest.Base.Add(48 * time.Hour),
		AuthorID:    c.Alice.ID,
		CategoryID:  c.Life.ID,
	})

	for _, query := range []string{"ÉCOLE", "école", "École", "rentrée", "100% é"} {
		t.Run(query, func(t *testing.T) {
			list, err := s.Search(query, PerPage)
			if err != nil {
				t.Fatalf("Search: %v", err)
			}
			assertSlugs(t, list.Posts, "ecole")
		})
	}
}

func TestSearchTitleAndLimit(t *testing.T) {
	s, db, c := setupService(t)
	addPosts(t, db, 12, c.Bob, c.Life, "hello again")

	list, err := s.Search("hello", 0)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(list.Posts) != PerPage {
		t.Errorf("got %d results, want %d", len(list.Posts), PerPage)
	}
	if list.PageTitle != "hello Search - " {
		t.Errorf("PageTitle = %q", list.PageTitle)
	}

	long, err := s.Search("abcdefghijklmnopqrst", PerPage)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if long.PageTitle != "abcdefghijklmno Search - " {
		t.Errorf("PageTitle = %q", long.PageTitle)
	}
}

type fakePosts struct {
	calls int
	err   error
}

func (f *fakePosts) CountPublished(database.PostFilter) (int64, error) {
	f.calls++
	return 1, f.err
}

func (f *fakePosts) FindPublished(database.PostFilter, int, int) ([]*models.Post, error) {
	f.calls++
	return []*models.Post{{Slug: "stray"}}, f.err
}

func (f *fakePosts) FindPublishedBySlug(string) (*models.Post, error) {
	f.calls++
	return nil, f.err
}

type fakeUsers struct {
	user *models.User
	err  error
}

func (f fakeUsers) FindByID(uuid.UUID) (*models.User, error) {
	return f.user, f.err
}

func TestListByAuthorChecksUserBeforePosts(t *testing.T) {
	posts := &fakePosts{}
	s := &ContentService{logger: zerolog.Nop(), posts: posts, users: fakeUsers{}}

	_, err := s.ListByAuthor(uuid.New(), 1)
	assertNotFound(t, err)
	if posts.calls != 0 {
		t.Errorf("posts queried %d times for an unknown author", posts.calls)
	}
}

func TestRepositoryErrorsAreNotNotFound(t *testing.T) {
	boom := errors.New("boom")
	s := &ContentService{
		logger: zerolog.Nop(),
		posts:  &fakePosts{err: boom},
		users:  fakeUsers{err: boom},
	}

	_, err := s.ListPublished(1)
	if errs.IsNotFound(err) || !errs.IsDatabaseQueryError(err) {
		t.Errorf("ListPublished err = %v", err)
	}
	_, err = s.ListByAuthor(uuid.New(), 1)
	if errs.StatusCode(err) != http.StatusInternalServerError {
		t.Errorf("ListByAuthor status = %d", errs.StatusCode(err))
	}
	_, err = s.Search("x", 1)
	if !errs.IsDatabaseQueryError(err) {
		t.Errorf("Search err = %v", err)
	}
}
