package api

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/techsync/techsync-backend/models"
)

type languageCatalog interface {
	FindActive(ctx context.Context) ([]models.ProgrammingLanguage, error)
}

type topicCatalog interface {
	FindAll(ctx context.Context) ([]*models.Topic, error)
}

type catalogHandler struct {
	responder Responder
	logger    zerolog.Logger
	languages languageCatalog
	topics    topicCatalog
}

func newCatalogHandler(languages languageCatalog, topics topicCatalog, production bool) catalogHandler {
	logger := log.With().Str("handlerName", "catalogHandler").Logger()

	return catalogHandler{
		responder: NewResponder(logger, production),
		logger:    logger,
		languages: languages,
		topics:    topics,
	}
}

// getLanguages lists the languages a project may be linked to
// @Summary List programming languages
// @Tags Catalog
// @Produce json
// @Success 200 {array} models.ProgrammingLanguage
// @Failure 500 {object} ErrorResponse
// @Router /languages [get]
func (h catalogHandler) getLanguages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		languages, err := h.languages.FindActive(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find languages", "programming_languages", err))
			return
		}
		if languages == nil {
			languages = []models.ProgrammingLanguage{}
		}
		h.responder.WriteJSON(w, languages)
	}
}

// getTopics lists predefined and user created topics
// @Summary List topics
// @Tags Catalog
// @Produce json
// @Success 200 {array} models.Topic
// @Failure 500 {object} ErrorResponse
// @Router /topics [get]
func (h catalogHandler) getTopics() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		topics, err := h.topics.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find topics", "topics", err))
			return
		}
		if topics == nil {
			topics = []*models.Topic{}
		}
		h.responder.WriteJSON(w, topics)
	}
}
