package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes registers the public and the authenticated routes
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Get("/health", handlers.healthHandler.health())
	r.Get("/languages", handlers.catalogHandler.getLanguages())
	r.Get("/topics", handlers.catalogHandler.getTopics())

	// Authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.authenticate)

		r.Get("/project/{projectID}", handlers.projectHandler.getProject())

		r.Post("/ai/generate-project", handlers.aiHandler.generateProject())
		r.Post("/ai/create-project", handlers.projectHandler.createProjectFromProposal())
	})
}
