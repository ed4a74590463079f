package api

import (
	"time"

	"github.com/rpupo63/content-site-backend/database"
	"github.com/rpupo63/content-site-backend/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, notificationURL string, startupTime time.Time) *routeHandlers {
	return &routeHandlers{
		contentHandler: newContentHandler(services.NewContentService(database), notificationURL),
		healthHandler:  newHealthHandler(database, notificationURL, startupTime),
	}
}
