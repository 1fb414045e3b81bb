package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
	"github.com/techsync/techsync-backend/config"
	"github.com/techsync/techsync-backend/database"
	"github.com/techsync/techsync-backend/services"
)

type Server struct {
	*http.Server
	startupTime time.Time
}

// NewServer wires the router. generator may be nil when the AI assistant
// could not be initialized.
func NewServer(app config.App, database database.Database, generator *services.ProposalGenerator) (Server, error) {
	if err := app.Validate(); err != nil {
		return Server{}, err
	}

	address := fmt.Sprintf("0.0.0.0:%s", app.Port) // Bind to 0.0.0.0 for external access
	startupTime := time.Now()

	opts := []func(*router){withConfig(app), withStartupTime(startupTime)}
	if generator != nil {
		opts = append(opts, withGenerator(generator))
	}

	server := &http.Server{
		Addr:         address,
		Handler:      newRouter(database, opts...),
		ReadTimeout:  app.ReadTimeout,  // Timeout for reading the entire request
		WriteTimeout: app.WriteTimeout, // Timeout for writing the response
		IdleTimeout:  app.IdleTimeout,  // Timeout for idle connections
	}

	return Server{server, startupTime}, nil
}

type router struct {
	config      config.App
	startupTime time.Time
	generator   proposalGenerator
}

func withConfig(c config.App) func(*router) {
	return func(r *router) {
		r.config = c
	}
}

func withStartupTime(startupTime time.Time) func(*router) {
	return func(r *router) {
		r.startupTime = startupTime
	}
}

func withGenerator(generator proposalGenerator) func(*router) {
	return func(r *router) {
		r.generator = generator
	}
}

func newRouter(database database.Database, opts ...func(*router)) *chi.Mux {
	var router router
	for _, opt := range opts {
		opt(&router)
	}
	production := router.config.IsProduction()

	chiRouter := chi.NewRouter()
	chiRouter.Use(middleware.RequestID)
	chiRouter.Use(LogInternalServerErrors)
	if production {
		chiRouter.Use(JSONHTTPLoggingMiddleware)
	} else {
		chiRouter.Use(ColoredHTTPLoggingMiddleware)
	}

	acceptedOrigins := router.config.AcceptedOrigins
	chiRouter.Use(CORSCheckMiddleware(acceptedOrigins, production))
	chiRouter.Use(cors.Handler(cors.Options{
		AllowedOrigins:   acceptedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	handlers := initializeHandlers(database, router.generator, router.startupTime, production)
	authMiddleware := newAuthMiddleware(router.config.JWTSecret, database.UserRepo(), production)

	setupRoutes(chiRouter, handlers, authMiddleware)

	return chiRouter
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
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
