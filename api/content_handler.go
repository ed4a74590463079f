package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rpupo63/content-site-backend/errs"
	"github.com/rpupo63/content-site-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type contentHandler struct {
	responder Responder
	logger    zerolog.Logger
	content   *services.ContentService
}

func newContentHandler(content *services.ContentService, notificationURL string) contentHandler {
	logger := log.With().Str("handlerName", "contentHandler").Logger()

	return contentHandler{
		responder: NewResponder(logger, notificationURL),
		logger:    logger,
		content:   content,
	}
}

// listPosts returns one page of published posts
// @Summary List posts
// @Description Lists published posts, newest first, nine per page. A page past the end is empty.
// @Tags Content
// @Produce json
// @Param page query string false "Page number or 'last'"
// @Success 200 {object} services.PostList
// @Failure 404 {object} ErrorResponse "Invalid page number"
// @Router /posts [get]
func (h contentHandler) listPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := services.ParsePageNumber(r.URL.Query().Get("page"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		list, err := h.content.ListPublished(page)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, list)
	}
}

// getPost returns a published post by slug
// @Summary Get post
// @Tags Content
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} services.PostDetail
// @Failure 404 {object} ErrorResponse "Post not found"
// @Router /post/{slug} [get]
func (h contentHandler) getPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		detail, err := h.content.GetPostBySlug(chi.URLParam(r, "slug"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, detail)
	}
}

// getPage returns a published static page by slug
// @Summary Get page
// @Tags Content
// @Produce json
// @Param slug path string true "Page slug"
// @Success 200 {object} services.PageDetail
// @Failure 404 {object} ErrorResponse "Page not found"
// @Router /page/{slug} [get]
func (h contentHandler) getPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		detail, err := h.content.GetPageBySlug(chi.URLParam(r, "slug"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, detail)
	}
}

// listPostsByAuthor returns published posts written by one user
// @Summary List posts by author
// @Description 404 when the user does not exist; an existing author without posts gives an empty list.
// @Tags Content
// @Produce json
// @Param authorID path string true "Author ID" format(uuid)
// @Param page query string false "Page number or 'last'"
// @Success 200 {object} services.PostList
// @Failure 404 {object} ErrorResponse "Author not found"
// @Router /created-by/{authorID} [get]
func (h contentHandler) listPostsByAuthor() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authorID, err := uuid.Parse(chi.URLParam(r, "authorID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewNotFound("author"))
			return
		}

		page, err := services.ParsePageNumber(r.URL.Query().Get("page"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		list, err := h.content.ListByAuthor(authorID, page)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, list)
	}
}

// listPostsByCategory returns published posts in a category
// @Summary List posts by category
// @Description 404 when no published post is in the category or the page is past the end.
// @Tags Content
// @Produce json
// @Param slug path string true "Category slug"
// @Param page query string false "Page number or 'last'"
// @Success 200 {object} services.PostList
// @Failure 404 {object} ErrorResponse "Category page not found"
// @Router /category/{slug} [get]
func (h contentHandler) listPostsByCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := services.ParsePageNumber(r.URL.Query().Get("page"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		list, err := h.content.ListByCategory(chi.URLParam(r, "slug"), page)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, list)
	}
}

// listPostsByTag returns published posts carrying a tag
// @Summary List posts by tag
// @Description 404 when no published post carries the tag or the page is past the end.
// @Tags Content
// @Produce json
// @Param slug path string true "Tag slug"
// @Param page query string false "Page number or 'last'"
// @Success 200 {object} services.PostList
// @Failure 404 {object} ErrorResponse "Tag page not found"
// @Router /tag/{slug} [get]
func (h contentHandler) listPostsByTag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := services.ParsePageNumber(r.URL.Query().Get("page"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		list, err := h.content.ListByTag(chi.URLParam(r, "slug"), page)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, list)
	}
}

// search returns up to nine published posts matching the search query parameter
// @Summary Search posts
// @Tags Content
// @Produce json
// @Param search query string false "Text to look for in title, excerpt and content"
// @Success 200 {object} services.PostList
// @Router /search [get]
func (h contentHandler) search() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := h.content.Search(r.URL.Query().Get("search"), services.PerPage)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, list)
	}
}

// notFound answers requests that match no route
func (h contentHandler) notFound() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.logger.Debug().Str("path", r.URL.Path).Msg("no route")
		h.responder.WriteError(w, errs.NewNotFound("route"))
	}
}
