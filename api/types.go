package api

import "github.com/techsync/techsync-backend/ingestion"

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	projectHandler projectHandler
	aiHandler      aiHandler
	catalogHandler catalogHandler
	healthHandler  healthHandler
}

// ErrorResponse represents an error response from the API
// @Description Error response structure
type ErrorResponse struct {
	Error   string `json:"error" example:"Internal Server Error"`
	Status  string `json:"status" example:"error"`
	Field   string `json:"field,omitempty" example:"title"`
	Details string `json:"details,omitempty" example:"Additional error details"`
	Cause   string `json:"cause,omitempty" example:"Underlying error cause"`
}

// CreateProjectRequest carries a proposal to materialize
type CreateProjectRequest struct {
	ProjectData *ingestion.ProjectProposal `json:"projectData"`
}

// GenerateProjectRequest carries the idea the assistant should expand
type GenerateProjectRequest struct {
	Prompt string `json:"prompt" validate:"notblank,max=4000"`
}

// HealthResponse reports liveness and database reachability
type HealthResponse struct {
	Status        string `json:"status" example:"ok"`
	Database      string `json:"database" example:"ok"`
	AIAssistant   string `json:"ai_assistant" example:"enabled"`
	UptimeSeconds int64  `json:"uptime_seconds"`
}
