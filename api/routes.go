package api

import (
	"github.com/go-chi/chi/v5"
)

// setupContentRoutes registers the public read-only content endpoints
func setupContentRoutes(r chi.Router, handlers *routeHandlers) {
	r.Get("/", handlers.contentHandler.listPosts())
	r.Get("/posts", handlers.contentHandler.listPosts())
	r.Get("/post/{slug}", handlers.contentHandler.getPost())
	r.Get("/page/{slug}", handlers.contentHandler.getPage())
	r.Get("/created-by/{authorID}", handlers.contentHandler.listPostsByAuthor())
	r.Get("/category/{slug}", handlers.contentHandler.listPostsByCategory())
	r.Get("/tag/{slug}", handlers.contentHandler.listPostsByTag())
	r.Get("/search", handlers.contentHandler.search())

	r.Get("/healthz", handlers.healthHandler.health())

	r.NotFound(handlers.contentHandler.notFound())
}
