package database

import (
	"context"

	"github.com/techsync/techsync-backend/models"
	"gorm.io/gorm"
)

type LanguageRepo struct {
	db *gorm.DB
}

func NewLanguageRepo(db *gorm.DB) *LanguageRepo {
	return &LanguageRepo{db}
}

// FindActive returns the languages projects may link to
func (r *LanguageRepo) FindActive(ctx context.Context) ([]models.ProgrammingLanguage, error) {
	var languages []models.ProgrammingLanguage
	err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("name").Find(&languages).Error
	return languages, err
}
