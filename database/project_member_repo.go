package database

import (
	"context"

	"github.com/techsync/techsync-backend/models"
	"gorm.io/gorm"
)

type ProjectMemberRepo struct {
	db *gorm.DB
}

func NewProjectMemberRepo(db *gorm.DB) *ProjectMemberRepo {
	return &ProjectMemberRepo{db}
}

func (r *ProjectMemberRepo) Add(ctx context.Context, member *models.ProjectMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}
