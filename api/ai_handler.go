package api

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/techsync/techsync-backend/errs"
	"github.com/techsync/techsync-backend/services"
)

type proposalGenerator interface {
	Generate(ctx context.Context, idea string) (*services.GeneratedProposal, error)
}

type aiHandler struct {
	responder Responder
	logger    zerolog.Logger
	generator proposalGenerator
}

// newAIHandler accepts a nil generator; its endpoints then answer 503
func newAIHandler(generator proposalGenerator, production bool) aiHandler {
	logger := log.With().Str("handlerName", "aiHandler").Logger()

	return aiHandler{
		responder: NewResponder(logger, production),
		logger:    logger,
		generator: generator,
	}
}

// generateProject asks the assistant to turn an idea into a proposal. Nothing is persisted.
// @Summary Generate project proposal
// @Tags AI
// @Accept json
// @Produce json
// @Param request body GenerateProjectRequest true "Idea"
// @Success 200 {object} services.GeneratedProposal
// @Failure 400 {object} ErrorResponse "Bad Request - Missing prompt"
// @Failure 429 {object} ErrorResponse "Too Many Requests - Model rate limit"
// @Failure 503 {object} ErrorResponse "Service Unavailable - Assistant not configured"
// @Router /ai/generate-project [post]
func (h aiHandler) generateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.generator == nil {
			h.responder.WriteError(w, errs.NewServiceUnavailableError("AI assistant", nil))
			return
		}

		var req GenerateProjectRequest
		if err := decodeJSON(w, r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := validateStruct(req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		generated, err := h.generator.Generate(r.Context(), req.Prompt)
		if err != nil {
			switch {
			case errs.IsRateLimitError(err):
				h.logger.Warn().Msg("assistant rate limited")
			case errs.IsServiceUnavailableError(err):
				h.logger.Warn().Err(err).Msg("assistant unavailable")
			}
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, generated)
	}
}
