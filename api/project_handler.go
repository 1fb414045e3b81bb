package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/techsync/techsync-backend/errs"
	"github.com/techsync/techsync-backend/ingestion"
	"github.com/techsync/techsync-backend/models"
)

type projectCreator interface {
	CreateProjectFromProposal(ctx context.Context, userID uuid.UUID, proposal ingestion.ProjectProposal) (*ingestion.CreateResult, error)
}

type projectFinder interface {
	FindComplete(ctx context.Context, id uuid.UUID) (*models.CompleteProject, error)
}

type projectHandler struct {
	responder Responder
	logger    zerolog.Logger
	workflow  projectCreator
	projects  projectFinder
}

func newProjectHandler(workflow projectCreator, projects projectFinder, production bool) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder: NewResponder(logger, production),
		logger:    logger,
		workflow:  workflow,
		projects:  projects,
	}
}

// getProject retrieves a project with its owner, languages and topics
// @Summary Get project
// @Tags Projects
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Success 200 {object} models.CompleteProject
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid projectID"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching project"
// @Router /project/{projectID} [get]
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewInvalidFieldError("projectID", "must be a UUID"))
			return
		}

		project, err := h.projects.FindComplete(r.Context(), projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// createProjectFromProposal materializes a proposal for the authenticated user
// @Summary Create project from proposal
// @Description Creates the project, its language and topic links, the owner membership and a notification in one transaction
// @Tags Projects
// @Accept json
// @Produce json
// @Param request body CreateProjectRequest true "Proposal"
// @Success 201 {object} ingestion.CreateResult "Created project, with a warning when it could not be read back"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid proposal"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Project creation rolled back"
// @Router /ai/create-project [post]
func (h projectHandler) createProjectFromProposal() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewMissingTokenError())
			return
		}

		var req CreateProjectRequest
		if err := decodeJSON(w, r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if req.ProjectData == nil {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("projectData"))
			return
		}
		req.ProjectData.NormalizeLevels()
		if err := validateStruct(req.ProjectData); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		result, err := h.workflow.CreateProjectFromProposal(r.Context(), userID, *req.ProjectData)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if result.Warning != "" {
			h.logger.Warn().Str("projectID", result.Project.ID.String()).Msg(result.Warning)
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, result)
	}
}
