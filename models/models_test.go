package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindColumnMismatches(t *testing.T) {
	got := findColumnMismatches(
		[]string{"id", "title", "legacy_slug", "archived"},
		[]string{"id", "title"},
	)
	assert.Equal(t, []string{"archived", "legacy_slug"}, got)

	assert.Empty(t, findColumnMismatches([]string{"id"}, []string{"id", "title"}))
}

func TestNewCompleteProject(t *testing.T) {
	ownerID := uuid.New()
	projectID := uuid.New()
	fullName := "Ada Lovelace"

	p := Project{
		ID:          projectID,
		OwnerID:     ownerID,
		Title:       "Chess AI",
		Description: "A chess engine",
		Status:      ProjectStatusRecruiting,
		CreatedAt:   time.Now(),
		Owner:       User{ID: ownerID, Username: "ada", Email: "[email protected]", FullName: &fullName},
		Languages: []ProjectLanguage{
			{ProjectID: projectID, LanguageID: 7, Position: 1, RequiredLevel: "intermediate", Language: ProgrammingLanguage{ID: 7, Name: "SQL"}},
			{ProjectID: projectID, LanguageID: 3, Position: 0, IsPrimary: true, RequiredLevel: "intermediate", Language: ProgrammingLanguage{ID: 3, Name: "Python"}},
		},
		Topics: []ProjectTopic{
			{ProjectID: projectID, TopicID: 2, Position: 1, Topic: Topic{ID: 2, Name: "Games"}},
			{ProjectID: projectID, TopicID: 1, Position: 0, IsPrimary: true, Topic: Topic{ID: 1, Name: "AI"}},
		},
	}

	cp := NewCompleteProject(p)

	require.NotNil(t, cp.Owner)
	assert.Equal(t, "ada", cp.Owner.Username)
	assert.Equal(t, &fullName, cp.Owner.FullName)

	require.Len(t, cp.Languages, 2)
	assert.Equal(t, LanguageSummary{ID: 3, Name: "Python", IsPrimary: true, RequiredLevel: "intermediate"}, cp.Languages[0])
	assert.Equal(t, "SQL", cp.Languages[1].Name)

	require.Len(t, cp.Topics, 2)
	assert.Equal(t, TopicSummary{ID: 1, Name: "AI", IsPrimary: true}, cp.Topics[0])
	assert.Equal(t, TopicSummary{ID: 2, Name: "Games", IsPrimary: false}, cp.Topics[1])
}

func TestNewCompleteProject_NoAssociations(t *testing.T) {
	cp := NewCompleteProject(Project{ID: uuid.New(), Title: "Solo"})

	assert.Nil(t, cp.Owner)
	assert.NotNil(t, cp.Languages)
	assert.Empty(t, cp.Languages)
	assert.NotNil(t, cp.Topics)
	assert.Empty(t, cp.Topics)
}
