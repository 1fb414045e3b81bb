package api

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/techsync/techsync-backend/database"
	"github.com/techsync/techsync-backend/ingestion"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, generator proposalGenerator, startupTime time.Time, production bool) *routeHandlers {
	workflow := ingestion.NewWorkflow(database.NewIngestionStore(db),
		ingestion.WithLogger(log.With().Str("handlerName", "projectIngestion").Logger()),
		ingestion.WithClock(func() time.Time { return time.Now().UTC() }),
	)

	return &routeHandlers{
		projectHandler: newProjectHandler(workflow, db.ProjectRepo(), production),
		aiHandler:      newAIHandler(generator, production),
		catalogHandler: newCatalogHandler(db.LanguageRepo(), db.TopicRepo(), production),
		healthHandler:  newHealthHandler(db, generator != nil, startupTime, production),
	}
}
