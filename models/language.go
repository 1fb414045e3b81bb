package models

import "github.com/google/uuid"

// ProgrammingLanguage is a curated catalog entry. Rows are managed by
// administrators and never created by the application.
type ProgrammingLanguage struct {
	ID       int    `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Name     string `json:"name" db:"name" gorm:"type:text;not null;uniqueIndex:idx_programming_language_name"`
	IsActive bool   `json:"is_active" db:"is_active" gorm:"not null;default:true"`
}

// ProjectLanguage links a project to one catalog language
type ProjectLanguage struct {
	ProjectID     uuid.UUID `json:"project_id" db:"project_id" gorm:"type:uuid;primaryKey;index:idx_project_language_project_id"`
	LanguageID    int       `json:"language_id" db:"language_id" gorm:"primaryKey"`
	IsPrimary     bool      `json:"is_primary" db:"is_primary" gorm:"not null;default:false"`
	RequiredLevel string    `json:"required_level" db:"required_level" gorm:"type:text;not null;default:'intermediate'"`
	Position      int       `json:"position" db:"position" gorm:"type:integer;not null;default:0"`

	Language ProgrammingLanguage `json:"language,omitempty" gorm:"foreignKey:LanguageID;references:ID"`
}
