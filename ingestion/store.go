package ingestion

import (
	"context"

	"github.com/google/uuid"
	"github.com/techsync/techsync-backend/models"
)

// TopicStore finds and creates topics
type TopicStore interface {
	// FindTopicByName returns the topic whose name equals name ignoring case,
	// or nil when there is none.
	FindTopicByName(ctx context.Context, name string) (*models.Topic, error)
	CreateTopic(ctx context.Context, topic *models.Topic) error
}

// Tx is everything the workflow reads and writes inside its transaction
type Tx interface {
	TopicStore

	CreateProject(ctx context.Context, project *models.Project) error
	ActiveLanguages(ctx context.Context) ([]models.ProgrammingLanguage, error)
	AddProjectLanguage(ctx context.Context, link *models.ProjectLanguage) error
	AddProjectTopic(ctx context.Context, link *models.ProjectTopic) error
	AddProjectMember(ctx context.Context, member *models.ProjectMember) error
	CreateNotification(ctx context.Context, notification *models.Notification) error
}

type Store interface {
	// Transaction runs fn in one database transaction. It commits when fn
	// returns nil and rolls back otherwise.
	Transaction(ctx context.Context, fn func(tx Tx) error) error
	FindCompleteProject(ctx context.Context, projectID uuid.UUID) (*models.CompleteProject, error)
}
