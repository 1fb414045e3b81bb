package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ProjectStatusRecruiting = "recruiting"
	ProjectStatusActive     = "active"
	ProjectStatusCompleted  = "completed"
)

// Project represents a collaborative coding project owned by a single user
type Project struct {
	ID                      uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	OwnerID                 uuid.UUID  `json:"owner_id" db:"owner_id" gorm:"type:uuid;not null;index:idx_project_owner_id"`
	Title                   string     `json:"title" db:"title" gorm:"type:text;not null"`
	Description             string     `json:"description" db:"description" gorm:"type:text;not null"`
	DetailedDescription     *string    `json:"detailed_description,omitempty" db:"detailed_description" gorm:"type:text"`
	RequiredExperienceLevel string     `json:"required_experience_level" db:"required_experience_level" gorm:"type:text;not null;default:'intermediate'"`
	MaximumMembers          int        `json:"maximum_members" db:"maximum_members" gorm:"type:integer;not null;default:10"`
	EstimatedDurationWeeks  *int       `json:"estimated_duration_weeks,omitempty" db:"estimated_duration_weeks" gorm:"type:integer"`
	DifficultyLevel         string     `json:"difficulty_level" db:"difficulty_level" gorm:"type:text;not null;default:'medium'"`
	GithubRepoURL           *string    `json:"github_repo_url,omitempty" db:"github_repo_url" gorm:"type:text"`
	Deadline                *time.Time `json:"deadline,omitempty" db:"deadline" gorm:"type:timestamp"`
	Status                  string     `json:"status" db:"status" gorm:"type:text;not null;default:'recruiting'"`
	CreatedAt               time.Time  `json:"created_at" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt               time.Time  `json:"updated_at" db:"updated_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`

	Owner     User              `json:"-" gorm:"foreignKey:OwnerID;references:ID"`
	Languages []ProjectLanguage `json:"-" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
	Topics    []ProjectTopic    `json:"-" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
}
