package database

import (
	"context"

	"github.com/google/uuid"
	"github.com/techsync/techsync-backend/errs"
	"github.com/techsync/techsync-backend/ingestion"
	"github.com/techsync/techsync-backend/models"
)

// IngestionStore backs the project ingestion workflow with the repositories
type IngestionStore struct {
	database Database
}

func NewIngestionStore(database Database) *IngestionStore {
	return &IngestionStore{database: database}
}

func (s *IngestionStore) Transaction(ctx context.Context, fn func(tx ingestion.Tx) error) error {
	return s.database.Transaction(ctx, func(tx Database) error {
		return fn(ingestionTx{tx})
	})
}

func (s *IngestionStore) FindCompleteProject(ctx context.Context, projectID uuid.UUID) (*models.CompleteProject, error) {
	return s.database.ProjectRepo().FindComplete(ctx, projectID)
}

// ingestionTx exposes one transaction's repositories as an ingestion.Tx
type ingestionTx struct {
	tx Database
}

func (t ingestionTx) CreateProject(ctx context.Context, project *models.Project) error {
	return classify("create", "project", t.tx.ProjectRepo().Add(ctx, project))
}

func (t ingestionTx) ActiveLanguages(ctx context.Context) ([]models.ProgrammingLanguage, error) {
	languages, err := t.tx.LanguageRepo().FindActive(ctx)
	return languages, classify("load", "programming languages", err)
}

func (t ingestionTx) AddProjectLanguage(ctx context.Context, link *models.ProjectLanguage) error {
	return classify("link", "project language", t.tx.ProjectRepo().AddLanguage(ctx, link))
}

func (t ingestionTx) FindTopicByName(ctx context.Context, name string) (*models.Topic, error) {
	topic, err := t.tx.TopicRepo().FindByName(ctx, name)
	return topic, classify("find", "topic", err)
}

func (t ingestionTx) CreateTopic(ctx context.Context, topic *models.Topic) error {
	return classify("create", "topic", t.tx.TopicRepo().Add(ctx, topic))
}

func (t ingestionTx) AddProjectTopic(ctx context.Context, link *models.ProjectTopic) error {
	return classify("link", "project topic", t.tx.ProjectRepo().AddTopic(ctx, link))
}

func (t ingestionTx) AddProjectMember(ctx context.Context, member *models.ProjectMember) error {
	return classify("create", "project member", t.tx.ProjectMemberRepo().Add(ctx, member))
}

func (t ingestionTx) CreateNotification(ctx context.Context, notification *models.Notification) error {
	return classify("create", "notification", t.tx.NotificationRepo().Add(ctx, notification))
}

// classify maps driver errors onto the errs database sentinels
func classify(operation, entity string, err error) error {
	if err == nil {
		return nil
	}
	return errs.NewDatabaseError(operation, entity, err)
}

var (
	_ ingestion.Store = (*IngestionStore)(nil)
	_ ingestion.Tx    = ingestionTx{}
)
