package ingestion

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/techsync/techsync-backend/errs"
	"github.com/techsync/techsync-backend/models"
)

var ErrProjectCreationFailed = errors.New("failed to create project")

// PostCommitReadWarning is attached to a result whose project was committed
// but could not be read back.
const PostCommitReadWarning = "project was created but its details could not be loaded; refresh to see the full project"

type CreateResult struct {
	Project *models.CompleteProject `json:"project"`
	Warning string                  `json:"warning,omitempty"`
}

// Workflow materializes project proposals
type Workflow struct {
	store  Store
	logger zerolog.Logger
	now    func() time.Time
}

type Option func(*Workflow)

func WithClock(now func() time.Time) Option {
	return func(w *Workflow) {
		w.now = now
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(w *Workflow) {
		w.logger = logger
	}
}

func NewWorkflow(store Store, opts ...Option) *Workflow {
	w := &Workflow{
		store:  store,
		logger: log.With().Str("component", "projectIngestion").Logger(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// written is what one transaction inserted, kept to answer without the
// post-commit read.
type written struct {
	project   models.Project
	languages []LanguageAcceptance
	topics    []TopicLink
	level     string
}

// CreateProjectFromProposal creates the project, its language and topic links,
// the owner membership and a notification in one transaction, then reads the
// complete project back. Either everything is committed or nothing is.
func (w *Workflow) CreateProjectFromProposal(ctx context.Context, userID uuid.UUID, proposal ProjectProposal) (*CreateResult, error) {
	if err := proposal.check(); err != nil {
		return nil, err
	}
	if userID == uuid.Nil {
		return nil, errs.NewMissingRequiredFieldError("user_id")
	}

	logger := w.logger.With().Str("userID", userID.String()).Logger()

	var out written
	err := w.store.Transaction(ctx, func(tx Tx) error {
		var err error
		out, err = w.materialize(ctx, tx, userID, proposal, logger)
		return err
	})
	if err != nil {
		logger.Error().Err(err).
			Str("title", proposal.Title).
			Bool("uniqueViolation", errs.IsUniqueConstraintViolationError(err)).
			Bool("foreignKeyViolation", errs.IsForeignKeyConstraintError(err)).
			Msg("project creation rolled back")
		return nil, errs.Wrap(http.StatusInternalServerError, ErrProjectCreationFailed, "",
			errs.NewTransactionFailedError("project creation", err))
	}

	logger.Info().
		Str("projectID", out.project.ID.String()).
		Int("languages", len(out.languages)).
		Int("topics", len(out.topics)).
		Msg("project created")

	complete, err := w.store.FindCompleteProject(ctx, out.project.ID)
	if err != nil {
		logger.Warn().Err(err).Str("projectID", out.project.ID.String()).Msg("post-commit read failed, answering from written rows")
		fallback := out.complete()
		return &CreateResult{Project: &fallback, Warning: PostCommitReadWarning}, nil
	}
	return &CreateResult{Project: complete}, nil
}

func (w *Workflow) materialize(ctx context.Context, tx Tx, userID uuid.UUID, p ProjectProposal, logger zerolog.Logger) (written, error) {
	now := w.now().UTC()
	out := written{level: p.experienceLevel()}

	out.project = models.Project{
		ID:                      uuid.New(),
		OwnerID:                 userID,
		Title:                   p.Title,
		Description:             p.Description,
		DetailedDescription:     p.DetailedDescription,
		RequiredExperienceLevel: p.experienceLevel(),
		MaximumMembers:          p.maximumMembers(),
		EstimatedDurationWeeks:  p.EstimatedDurationWeeks,
		DifficultyLevel:         p.difficultyLevel(),
		GithubRepoURL:           p.GithubRepoURL,
		Deadline:                p.Deadline,
		Status:                  models.ProjectStatusRecruiting,
		CreatedAt:               now,
		UpdatedAt:               now,
	}
	if err := tx.CreateProject(ctx, &out.project); err != nil {
		return out, fmt.Errorf("insert project: %w", err)
	}
	projectID := out.project.ID

	catalog, err := tx.ActiveLanguages(ctx)
	if err != nil {
		return out, fmt.Errorf("load language catalog: %w", err)
	}

	reconciled := ReconcileLanguages(p.ProgrammingLanguages, catalog)
	for _, name := range reconciled.Dropped {
		logger.Info().Str("language", name).Msg("dropping language not in catalog")
	}
	out.languages = reconciled.Accepted
	if len(out.languages) == 0 {
		if fallback, ok := DefaultLanguage(catalog); ok {
			logger.Info().Str("language", fallback.Name).Msg("no proposed language matched, using fallback")
			out.languages = []LanguageAcceptance{fallback}
		} else {
			logger.Warn().Msg("no proposed language matched and fallback is not in catalog")
		}
	}

	for i, lang := range out.languages {
		link := models.ProjectLanguage{
			ProjectID:     projectID,
			LanguageID:    lang.LanguageID,
			IsPrimary:     lang.IsPrimary,
			RequiredLevel: out.level,
			Position:      i,
		}
		if err := tx.AddProjectLanguage(ctx, &link); err != nil {
			return out, fmt.Errorf("link language %s: %w", lang.Name, err)
		}
	}

	out.topics, err = ReconcileTopics(ctx, tx, p.Topics, userID, now)
	if err != nil {
		return out, err
	}
	for i, topic := range out.topics {
		link := models.ProjectTopic{
			ProjectID: projectID,
			TopicID:   topic.TopicID,
			IsPrimary: topic.IsPrimary,
			Position:  i,
		}
		if err := tx.AddProjectTopic(ctx, &link); err != nil {
			return out, fmt.Errorf("link topic %s: %w", topic.Name, err)
		}
	}

	member := models.ProjectMember{
		ProjectID: projectID,
		UserID:    userID,
		Role:      models.MemberRoleOwner,
		Status:    models.MemberStatusActive,
		JoinedAt:  now,
	}
	if err := tx.AddProjectMember(ctx, &member); err != nil {
		return out, fmt.Errorf("add owner membership: %w", err)
	}

	notification := models.Notification{
		ID:               uuid.New(),
		UserID:           userID,
		ProjectID:        &projectID,
		NotificationType: models.NotificationTypeProjectCreated,
		Title:            "Project created",
		Message:          fmt.Sprintf("Your project %q is live and recruiting collaborators.", p.Title),
		CreatedAt:        now,
	}
	if err := tx.CreateNotification(ctx, &notification); err != nil {
		return out, fmt.Errorf("create notification: %w", err)
	}

	return out, nil
}

func (o written) complete() models.CompleteProject {
	p := o.project
	p.Languages = make([]models.ProjectLanguage, 0, len(o.languages))
	for i, l := range o.languages {
		p.Languages = append(p.Languages, models.ProjectLanguage{
			ProjectID:     p.ID,
			LanguageID:    l.LanguageID,
			IsPrimary:     l.IsPrimary,
			RequiredLevel: o.level,
			Position:      i,
			Language:      models.ProgrammingLanguage{ID: l.LanguageID, Name: l.Name, IsActive: true},
		})
	}
	p.Topics = make([]models.ProjectTopic, 0, len(o.topics))
	for i, t := range o.topics {
		p.Topics = append(p.Topics, models.ProjectTopic{
			ProjectID: p.ID,
			TopicID:   t.TopicID,
			IsPrimary: t.IsPrimary,
			Position:  i,
			Topic:     models.Topic{ID: t.TopicID, Name: t.Name},
		})
	}
	return models.NewCompleteProject(p)
}
