package models

import (
	"time"

	"github.com/google/uuid"
)

const NotificationTypeProjectCreated = "project_created"

type Notification struct {
	ID               uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	UserID           uuid.UUID  `json:"user_id" db:"user_id" gorm:"type:uuid;not null;index:idx_notification_user_id"`
	ProjectID        *uuid.UUID `json:"project_id,omitempty" db:"project_id" gorm:"type:uuid"`
	NotificationType string     `json:"notification_type" db:"notification_type" gorm:"type:text;not null"`
	Title            string     `json:"title" db:"title" gorm:"type:text;not null"`
	Message          string     `json:"message" db:"message" gorm:"type:text;not null"`
	IsRead           bool       `json:"is_read" db:"is_read" gorm:"not null;default:false"`
	CreatedAt        time.Time  `json:"created_at" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}
