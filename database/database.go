package database

import (
	"context"

	"github.com/techsync/techsync-backend/errs"
	"github.com/techsync/techsync-backend/models"
	"gorm.io/gorm"
)

type Database struct {
	db                *gorm.DB
	projectRepo       *ProjectRepo
	languageRepo      *LanguageRepo
	topicRepo         *TopicRepo
	projectMemberRepo *ProjectMemberRepo
	notificationRepo  *NotificationRepo
	userRepo          *UserRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		db:                db,
		projectRepo:       NewProjectRepo(db),
		languageRepo:      NewLanguageRepo(db),
		topicRepo:         NewTopicRepo(db),
		projectMemberRepo: NewProjectMemberRepo(db),
		notificationRepo:  NewNotificationRepo(db),
		userRepo:          NewUserRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) LanguageRepo() *LanguageRepo {
	return d.languageRepo
}

func (d Database) TopicRepo() *TopicRepo {
	return d.topicRepo
}

func (d Database) ProjectMemberRepo() *ProjectMemberRepo {
	return d.projectMemberRepo
}

func (d Database) NotificationRepo() *NotificationRepo {
	return d.notificationRepo
}

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

// Transaction runs fn with a Database whose repositories all share one
// transaction. It commits when fn returns nil and rolls back otherwise.
func (d Database) Transaction(ctx context.Context, fn func(tx Database) error) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(New(tx))
	})
}

// Ping checks that the primary connection is alive
func (d Database) Ping(ctx context.Context) error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Migrate creates or updates the tables of every model
func (d Database) Migrate() error {
	if d.db == nil {
		return errs.BadRequest("database connection cannot be nil")
	}
	return models.Migrate(d.db)
}
