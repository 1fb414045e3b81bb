package api

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type healthHandler struct {
	responder   Responder
	logger      zerolog.Logger
	database    pinger
	aiEnabled   bool
	startupTime time.Time
}

func newHealthHandler(database pinger, aiEnabled bool, startupTime time.Time, production bool) healthHandler {
	logger := log.With().Str("handlerName", "healthHandler").Logger()

	return healthHandler{
		responder:   NewResponder(logger, production),
		logger:      logger,
		database:    database,
		aiEnabled:   aiEnabled,
		startupTime: startupTime,
	}
}

// health reports whether the server and its database are reachable
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (h healthHandler) health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := HealthResponse{
			Status:        "ok",
			Database:      "ok",
			AIAssistant:   "disabled",
			UptimeSeconds: int64(time.Since(h.startupTime).Seconds()),
		}
		if h.aiEnabled {
			response.AIAssistant = "enabled"
		}

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		if err := h.database.Ping(ctx); err != nil {
			h.logger.Error().Err(err).Msg("database ping failed")
			response.Status = "degraded"
			response.Database = "unavailable"
			status = http.StatusServiceUnavailable
		}

		h.responder.WriteJSONStatus(w, status, response)
	}
}
