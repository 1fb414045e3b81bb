package ingestion

import (
	"strings"
	"time"

	"github.com/techsync/techsync-backend/errs"
)

const (
	DefaultExperienceLevel = "intermediate"
	DefaultDifficultyLevel = "medium"
	DefaultMaximumMembers  = 10
)

// ProjectProposal is a loosely structured project description, usually
// produced by the AI assistant. Languages and topics are untrusted free text;
// entries that are not strings are ignored.
type ProjectProposal struct {
	Title                   string     `json:"title" validate:"notblank,max=200"`
	Description             string     `json:"description" validate:"notblank,max=5000"`
	DetailedDescription     *string    `json:"detailed_description,omitempty"`
	RequiredExperienceLevel string     `json:"required_experience_level,omitempty" validate:"omitempty,oneof=beginner intermediate advanced expert"`
	MaximumMembers          *int       `json:"maximum_members,omitempty" validate:"omitempty,min=1,max=100"`
	EstimatedDurationWeeks  *int       `json:"estimated_duration_weeks,omitempty" validate:"omitempty,min=1,max=520"`
	DifficultyLevel         string     `json:"difficulty_level,omitempty" validate:"omitempty,oneof=easy medium hard expert"`
	GithubRepoURL           *string    `json:"github_repo_url,omitempty" validate:"omitempty,url"`
	Deadline                *time.Time `json:"deadline,omitempty"`
	ProgrammingLanguages    []any      `json:"programming_languages"`
	Topics                  []any      `json:"topics"`
}

// Strings converts a string slice to proposal list values
func Strings(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

// check re-validates the fields the workflow cannot do without
func (p ProjectProposal) check() error {
	if strings.TrimSpace(p.Title) == "" {
		return errs.NewMissingRequiredFieldError("title")
	}
	if strings.TrimSpace(p.Description) == "" {
		return errs.NewMissingRequiredFieldError("description")
	}
	return nil
}

// NormalizeLevels lower-cases and trims the experience and difficulty levels
// so "Intermediate" validates like "intermediate"
func (p *ProjectProposal) NormalizeLevels() {
	p.RequiredExperienceLevel = normalizeLevel(p.RequiredExperienceLevel)
	p.DifficultyLevel = normalizeLevel(p.DifficultyLevel)
}

func normalizeLevel(level string) string {
	return strings.ToLower(strings.TrimSpace(level))
}

func (p ProjectProposal) experienceLevel() string {
	if level := normalizeLevel(p.RequiredExperienceLevel); level != "" {
		return level
	}
	return DefaultExperienceLevel
}

func (p ProjectProposal) difficultyLevel() string {
	if level := normalizeLevel(p.DifficultyLevel); level != "" {
		return level
	}
	return DefaultDifficultyLevel
}

func (p ProjectProposal) maximumMembers() int {
	if p.MaximumMembers == nil || *p.MaximumMembers < 1 {
		return DefaultMaximumMembers
	}
	return *p.MaximumMembers
}
