package database

import (
	"context"

	"github.com/google/uuid"
	"github.com/techsync/techsync-backend/models"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// Add inserts a new project into the database
func (r *ProjectRepo) Add(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

// FindComplete loads a project with its owner, languages and topics. The read
// goes to the primary so a project committed a moment ago is always visible.
func (r *ProjectRepo) FindComplete(ctx context.Context, id uuid.UUID) (*models.CompleteProject, error) {
	var project models.Project
	err := r.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Preload("Owner").
		Preload("Languages", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("Languages.Language").
		Preload("Topics", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("Topics.Topic").
		First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	complete := models.NewCompleteProject(project)
	return &complete, nil
}

// AddLanguage links a catalog language to a project
func (r *ProjectRepo) AddLanguage(ctx context.Context, link *models.ProjectLanguage) error {
	return r.db.WithContext(ctx).Create(link).Error
}

// AddTopic links a topic to a project
func (r *ProjectRepo) AddTopic(ctx context.Context, link *models.ProjectTopic) error {
	return r.db.WithContext(ctx).Create(link).Error
}
