package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rpupo63/content-site-backend/config"
	"github.com/rpupo63/content-site-backend/database"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Server struct {
	*http.Server
}

func NewServer(database database.Database, settings config.Settings) (Server, error) {
	if settings.Port == "" {
		return Server{}, fmt.Errorf("server port is not set")
	}
	address := fmt.Sprintf("0.0.0.0:%s", settings.Port) // Bind to 0.0.0.0 for external access

	router := newRouter(database,
		withSettings(settings),
		withStartupTime(time.Now()),
		withRequestLogger(consoleRequestLogger()),
	)

	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  settings.ReadTimeout,  // Timeout for reading the entire request
		WriteTimeout: settings.WriteTimeout, // Timeout for writing the response
		IdleTimeout:  settings.IdleTimeout,  // Timeout for idle connections
	}

	return Server{server}, nil
}

type router struct {
	settings      config.Settings
	startupTime   time.Time
	requestLogger zerolog.Logger
}

func withSettings(settings config.Settings) func(*router) {
	return func(r *router) {
		r.settings = settings
	}
}

func withStartupTime(startupTime time.Time) func(*router) {
	return func(r *router) {
		r.startupTime = startupTime
	}
}

func withRequestLogger(logger zerolog.Logger) func(*router) {
	return func(r *router) {
		r.requestLogger = logger
	}
}

func newRouter(database database.Database, opts ...func(*router)) *chi.Mux {
	router := router{requestLogger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&router)
	}

	chiRouter := chi.NewRouter()
	chiRouter.Use(middleware.RequestID)
	chiRouter.Use(middleware.RealIP)
	chiRouter.Use(LogInternalServerErrors)
	chiRouter.Use(RequestLogger(router.requestLogger))
	chiRouter.Use(corsMiddleware(router.settings.AcceptedOrigins))

	handlers := initializeHandlers(database, router.settings.ErrorNotificationURL, router.startupTime)
	setupContentRoutes(chiRouter, handlers)

	return chiRouter
}

// Start serves until the server is shut down. A graceful shutdown is not an error.
func (s Server) Start() error {
	log.Info().Msgf("Server started on: %s", s.Addr)
	if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}
