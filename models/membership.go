package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	MemberRoleOwner  = "owner"
	MemberRoleMember = "member"

	MemberStatusActive = "active"
)

// ProjectMember binds a user to a project with a role
type ProjectMember struct {
	ProjectID uuid.UUID `json:"project_id" db:"project_id" gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `json:"user_id" db:"user_id" gorm:"type:uuid;primaryKey;index:idx_project_member_user_id"`
	Role      string    `json:"role" db:"role" gorm:"type:text;not null"`
	Status    string    `json:"status" db:"status" gorm:"type:text;not null;default:'active'"`
	JoinedAt  time.Time `json:"joined_at" db:"joined_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}
