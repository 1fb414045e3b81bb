package models

import (
	"time"

	"github.com/google/uuid"
)

// Topic is an open-vocabulary subject tag. Unknown topics are created on demand
// and attributed to the user who proposed them.
type Topic struct {
	ID           int        `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Name         string     `json:"name" db:"name" gorm:"type:text;not null;index:idx_topic_name"`
	IsPredefined bool       `json:"is_predefined" db:"is_predefined" gorm:"not null;default:false"`
	CreatedBy    *uuid.UUID `json:"created_by,omitempty" db:"created_by" gorm:"type:uuid"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}

// ProjectTopic links a project to a topic
type ProjectTopic struct {
	ProjectID uuid.UUID `json:"project_id" db:"project_id" gorm:"type:uuid;primaryKey;index:idx_project_topic_project_id"`
	TopicID   int       `json:"topic_id" db:"topic_id" gorm:"primaryKey"`
	IsPrimary bool      `json:"is_primary" db:"is_primary" gorm:"not null;default:false"`
	Position  int       `json:"position" db:"position" gorm:"type:integer;not null;default:0"`

	Topic Topic `json:"topic,omitempty" gorm:"foreignKey:TopicID;references:ID"`
}
