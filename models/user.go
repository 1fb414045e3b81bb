package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Username  string    `json:"username" db:"username" gorm:"type:text;not null;uniqueIndex:idx_user_username"`
	Email     string    `json:"-" db:"email" gorm:"type:text;not null;uniqueIndex:idx_user_email"`
	FullName  *string   `json:"full_name,omitempty" db:"full_name" gorm:"type:text"`
	AvatarURL *string   `json:"avatar_url,omitempty" db:"avatar_url" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}

// PublicUser is the subset of user fields that may be shown to other users
type PublicUser struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	FullName  *string   `json:"full_name,omitempty"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
}

func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Username:  u.Username,
		FullName:  u.FullName,
		AvatarURL: u.AvatarURL,
	}
}
