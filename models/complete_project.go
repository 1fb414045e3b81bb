package models

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// CompleteProject is the denormalized view of a project returned to clients
type CompleteProject struct {
	ID                      uuid.UUID         `json:"id"`
	OwnerID                 uuid.UUID         `json:"owner_id"`
	Title                   string            `json:"title"`
	Description             string            `json:"description"`
	DetailedDescription     *string           `json:"detailed_description,omitempty"`
	RequiredExperienceLevel string            `json:"required_experience_level"`
	MaximumMembers          int               `json:"maximum_members"`
	EstimatedDurationWeeks  *int              `json:"estimated_duration_weeks,omitempty"`
	DifficultyLevel         string            `json:"difficulty_level"`
	GithubRepoURL           *string           `json:"github_repo_url,omitempty"`
	Deadline                *time.Time        `json:"deadline,omitempty"`
	Status                  string            `json:"status"`
	CreatedAt               time.Time         `json:"created_at"`
	UpdatedAt               time.Time         `json:"updated_at"`
	Owner                   *PublicUser       `json:"owner,omitempty"`
	Languages               []LanguageSummary `json:"programming_languages"`
	Topics                  []TopicSummary    `json:"topics"`
}

type LanguageSummary struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	IsPrimary     bool   `json:"is_primary"`
	RequiredLevel string `json:"required_level"`
}

type TopicSummary struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	IsPrimary bool   `json:"is_primary"`
}

// NewCompleteProject flattens a project whose Owner, Languages.Language and
// Topics.Topic associations have been loaded. Links are returned in insertion
// order.
func NewCompleteProject(p Project) CompleteProject {
	cp := CompleteProject{
		ID:                      p.ID,
		OwnerID:                 p.OwnerID,
		Title:                   p.Title,
		Description:             p.Description,
		DetailedDescription:     p.DetailedDescription,
		RequiredExperienceLevel: p.RequiredExperienceLevel,
		MaximumMembers:          p.MaximumMembers,
		EstimatedDurationWeeks:  p.EstimatedDurationWeeks,
		DifficultyLevel:         p.DifficultyLevel,
		GithubRepoURL:           p.GithubRepoURL,
		Deadline:                p.Deadline,
		Status:                  p.Status,
		CreatedAt:               p.CreatedAt,
		UpdatedAt:               p.UpdatedAt,
		Languages:               make([]LanguageSummary, 0, len(p.Languages)),
		Topics:                  make([]TopicSummary, 0, len(p.Topics)),
	}
	if p.Owner.ID != uuid.Nil {
		owner := p.Owner.Public()
		cp.Owner = &owner
	}

	languages := append([]ProjectLanguage(nil), p.Languages...)
	sort.SliceStable(languages, func(i, j int) bool { return languages[i].Position < languages[j].Position })
	for _, l := range languages {
		cp.Languages = append(cp.Languages, LanguageSummary{
			ID:            l.LanguageID,
			Name:          l.Language.Name,
			IsPrimary:     l.IsPrimary,
			RequiredLevel: l.RequiredLevel,
		})
	}

	topics := append([]ProjectTopic(nil), p.Topics...)
	sort.SliceStable(topics, func(i, j int) bool { return topics[i].Position < topics[j].Position })
	for _, t := range topics {
		cp.Topics = append(cp.Topics, TopicSummary{
			ID:        t.TopicID,
			Name:      t.Topic.Name,
			IsPrimary: t.IsPrimary,
		})
	}
	return cp
}
