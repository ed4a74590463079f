package services

import (
	"strings"

	"github.com/google/uuid"
	"github.com/rpupo63/content-site-backend/database"
	"github.com/rpupo63/content-site-backend/errs"
	"github.com/rpupo63/content-site-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type postRepository interface {
	CountPublished(filter database.PostFilter) (int64, error)
	FindPublished(filter database.PostFilter, offset, limit int) ([]*models.Post, error)
	FindPublishedBySlug(slug string) (*models.Post, error)
}

type pageRepository interface {
	FindPublishedBySlug(slug string) (*models.Page, error)
}

type userRepository interface {
	FindByID(id uuid.UUID) (*models.User, error)
}

// PostList is one listing of posts together with its page title.
// Pagination is nil for search results.
type PostList struct {
	Posts       []*models.Post `json:"posts"`
	Pagination  *Pagination    `json:"pagination,omitempty"`
	PageTitle   string         `json:"pageTitle"`
	Author      *models.User   `json:"author,omitempty"`
	SearchValue string         `json:"searchValue,omitempty"`
}

// PostDetail carries one post with its body rendered from markdown
type PostDetail struct {
	Post        *models.Post `json:"post"`
	ContentHTML string       `json:"contentHtml"`
	PageTitle   string       `json:"pageTitle"`
}

type PageDetail struct {
	Page        *models.Page `json:"page"`
	ContentHTML string       `json:"contentHtml"`
	PageTitle   string       `json:"pageTitle"`
}

// ContentService answers read requests for published posts and pages
type ContentService struct {
	logger zerolog.Logger
	posts  postRepository
	pages  pageRepository
	users  userRepository
}

func NewContentService(db database.Database) *ContentService {
	return &ContentService{
		logger: log.With().Str("serviceName", "contentService").Logger(),
		posts:  db.PostRepo(),
		pages:  db.PageRepo(),
		users:  db.UserRepo(),
	}
}

// ListPublished returns one page of published posts, newest first.
// A page past the end is empty rather than not found.
func (s *ContentService) ListPublished(page int) (PostList, error) {
	list, err := s.list(database.PostFilter{}, page, true)
	if err != nil {
		return PostList{}, err
	}
	list.PageTitle = homeTitle
	return list, nil
}

// GetPostBySlug returns the published post with the given slug
func (s *ContentService) GetPostBySlug(slug string) (PostDetail, error) {
	post, err := s.posts.FindPublishedBySlug(slug)
	if err != nil {
		return PostDetail{}, errs.NewDatabaseError("find", "post", err)
	}
	if post == nil {
		s.logger.Debug().Str("slug", slug).Msg("post not found")
		return PostDetail{}, errs.NewNotFound("post")
	}
	return PostDetail{Post: post, ContentHTML: renderContent(post.Content), PageTitle: postTitle(*post)}, nil
}

// GetPageBySlug returns the published static page with the given slug
func (s *ContentService) GetPageBySlug(slug string) (PageDetail, error) {
	page, err := s.pages.FindPublishedBySlug(slug)
	if err != nil {
		return PageDetail{}, errs.NewDatabaseError("find", "page", err)
	}
	if page == nil {
		s.logger.Debug().Str("slug", slug).Msg("page not found")
		return PageDetail{}, errs.NewNotFound("page")
	}
	return PageDetail{Page: page, ContentHTML: renderContent(page.Content), PageTitle: pageTitle(*page)}, nil
}

// ListByAuthor returns published posts by the given user. The user must exist;
// an author without posts yields an empty listing.
func (s *ContentService) ListByAuthor(authorID uuid.UUID, page int) (PostList, error) {
	user, err := s.users.FindByID(authorID)
	if err != nil {
		return PostList{}, errs.NewDatabaseError("find", "author", err)
	}
	if user == nil {
		s.logger.Debug().Str("authorID", authorID.String()).Msg("author not found")
		return PostList{}, errs.NewNotFound("author")
	}

	list, err := s.list(database.PostFilter{AuthorID: &user.ID}, page, true)
	if err != nil {
		return PostList{}, err
	}
	list.Author = user
	list.PageTitle = authorTitle(*user)
	return list, nil
}

// ListByCategory returns published posts in the category with the given slug.
// No matching posts means the category page is not found.
func (s *ContentService) ListByCategory(slug string, page int) (PostList, error) {
	list, err := s.list(database.PostFilter{CategorySlug: slug}, page, false)
	if err != nil {
		return PostList{}, err
	}
	if len(list.Posts) == 0 {
		return PostList{}, errs.NewNotFound("category")
	}
	list.PageTitle = categoryTitle(list.Posts[0].Category)
	return list, nil
}

// ListByTag returns published posts tagged with the given slug.
// No matching posts means the tag page is not found.
func (s *ContentService) ListByTag(slug string, page int) (PostList, error) {
	list, err := s.list(database.PostFilter{TagSlug: slug}, page, false)
	if err != nil {
		return PostList{}, err
	}
	if len(list.Posts) == 0 {
		return PostList{}, errs.NewNotFound("tag")
	}

	tag, ok := list.Posts[0].TagBySlug(slug)
	if !ok {
		s.logger.Warn().Str("slug", slug).Msg("tag missing from matched post")
		tag = models.Tag{Name: slug, Slug: slug}
	}
	list.PageTitle = tagTitle(tag)
	return list, nil
}

// Search returns at most limit published posts whose title, excerpt or content
// contains query, ignoring case. A limit below 1 means PerPage.
func (s *ContentService) Search(query string, limit int) (PostList, error) {
	query = strings.TrimSpace(query)
	if limit < 1 {
		limit = PerPage
	}

	posts, err := s.posts.FindPublished(database.PostFilter{Search: query}, 0, limit)
	if err != nil {
		return PostList{}, errs.NewDatabaseError("search", "posts", err)
	}
	if posts == nil {
		posts = []*models.Post{}
	}

	return PostList{
		Posts:       posts,
		PageTitle:   searchTitle(query),
		SearchValue: query,
	}, nil
}

func (s *ContentService) list(filter database.PostFilter, number int, allowEmpty bool) (PostList, error) {
	count, err := s.posts.CountPublished(filter)
	if err != nil {
		return PostList{}, errs.NewDatabaseError("count", "posts", err)
	}

	pagination, inRange, err := paginate(number, count, PerPage, allowEmpty)
	if err != nil {
		s.logger.Debug().Err(err).Int("page", number).Int64("count", count).Msg("listing page not found")
		return PostList{}, err
	}

	posts := []*models.Post{}
	if inRange {
		found, err := s.posts.FindPublished(filter, pagination.offset(), pagination.PerPage)
		if err != nil {
			return PostList{}, errs.NewDatabaseError("find", "posts", err)
		}
		if found != nil {
			posts = found
		}
	}

	return PostList{Posts: posts, Pagination: &pagination}, nil
}
