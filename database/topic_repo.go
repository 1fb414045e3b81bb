package database

import (
	"context"
	"errors"

	"github.com/techsync/techsync-backend/models"
	"gorm.io/gorm"
)

type TopicRepo struct {
	db *gorm.DB
}

func NewTopicRepo(db *gorm.DB) *TopicRepo {
	return &TopicRepo{db}
}

// FindAll returns all topics, predefined ones first
func (r *TopicRepo) FindAll(ctx context.Context) ([]*models.Topic, error) {
	var topics []*models.Topic
	err := r.db.WithContext(ctx).Order("is_predefined DESC").Order("name").Find(&topics).Error
	return topics, err
}

// FindByName returns the oldest topic whose name matches ignoring case, or nil
func (r *TopicRepo) FindByName(ctx context.Context, name string) (*models.Topic, error) {
	var topic models.Topic
	err := r.db.WithContext(ctx).Where("LOWER(name) = LOWER(?)", name).Order("id").First(&topic).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &topic, nil
}

// Add inserts a new topic and fills in its ID
func (r *TopicRepo) Add(ctx context.Context, topic *models.Topic) error {
	return r.db.WithContext(ctx).Create(topic).Error
}
