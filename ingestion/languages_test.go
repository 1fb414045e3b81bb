package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techsync/techsync-backend/models"
)

var testCatalog = []models.ProgrammingLanguage{
	{ID: 1, Name: "JavaScript", IsActive: true},
	{ID: 2, Name: "TypeScript", IsActive: true},
	{ID: 3, Name: "Python", IsActive: true},
	{ID: 4, Name: "Go", IsActive: true},
	{ID: 5, Name: "SQL", IsActive: true},
}

func TestReconcileLanguages_DedupByNormalizedName(t *testing.T) {
	got := ReconcileLanguages(Strings([]string{"React", "reactjs", "**Python**", "django", "python"}), testCatalog)

	require.Len(t, got.Accepted, 2)
	assert.Equal(t, LanguageAcceptance{LanguageID: 1, Name: "JavaScript", IsPrimary: true}, got.Accepted[0])
	assert.Equal(t, LanguageAcceptance{LanguageID: 3, Name: "Python", IsPrimary: false}, got.Accepted[1])
	assert.Empty(t, got.Dropped)
}

func TestReconcileLanguages_PrimaryIsFirstAccepted(t *testing.T) {
	got := ReconcileLanguages(Strings([]string{"Brainfuck", "COBOL", "golang", "postgres"}), testCatalog)

	require.Len(t, got.Accepted, 2)
	assert.Equal(t, "Go", got.Accepted[0].Name)
	assert.True(t, got.Accepted[0].IsPrimary)
	assert.Equal(t, "SQL", got.Accepted[1].Name)
	assert.False(t, got.Accepted[1].IsPrimary)
	assert.Equal(t, []string{"Brainfuck", "Cobol"}, got.Dropped)
}

func TestReconcileLanguages_CaseInsensitiveMatch(t *testing.T) {
	catalog := []models.ProgrammingLanguage{
		{ID: 9, Name: "Javascript", IsActive: true},
		{ID: 10, Name: "HASKELL", IsActive: true},
	}

	got := ReconcileLanguages(Strings([]string{"vue", "haskell"}), catalog)

	require.Len(t, got.Accepted, 2)
	assert.Equal(t, 9, got.Accepted[0].LanguageID)
	assert.Equal(t, "Javascript", got.Accepted[0].Name)
	assert.Equal(t, 10, got.Accepted[1].LanguageID)
}

func TestReconcileLanguages_ExactMatchWins(t *testing.T) {
	catalog := []models.ProgrammingLanguage{
		{ID: 1, Name: "PYTHON", IsActive: true},
		{ID: 2, Name: "Python", IsActive: true},
	}

	got := ReconcileLanguages(Strings([]string{"python"}), catalog)

	require.Len(t, got.Accepted, 1)
	assert.Equal(t, 2, got.Accepted[0].LanguageID)
}

func TestReconcileLanguages_SkipsNonStrings(t *testing.T) {
	got := ReconcileLanguages([]any{nil, 7, "", "  ", map[string]any{}, "typescript"}, testCatalog)

	require.Len(t, got.Accepted, 1)
	assert.Equal(t, "TypeScript", got.Accepted[0].Name)
	assert.True(t, got.Accepted[0].IsPrimary)
}

func TestReconcileLanguages_Empty(t *testing.T) {
	got := ReconcileLanguages(nil, testCatalog)
	assert.Empty(t, got.Accepted)

	got = ReconcileLanguages(Strings([]string{"python"}), nil)
	assert.Empty(t, got.Accepted)
	assert.Equal(t, []string{"Python"}, got.Dropped)
}

func TestDefaultLanguage(t *testing.T) {
	lang, ok := DefaultLanguage(testCatalog)
	require.True(t, ok)
	assert.Equal(t, LanguageAcceptance{LanguageID: 1, Name: "JavaScript", IsPrimary: true}, lang)

	_, ok = DefaultLanguage([]models.ProgrammingLanguage{{ID: 3, Name: "Python", IsActive: true}})
	assert.False(t, ok)
}
