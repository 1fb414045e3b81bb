package ingestion

import (
	"strings"

	"github.com/techsync/techsync-backend/models"
)

// FallbackLanguage is linked when none of the proposed languages is in the catalog
const FallbackLanguage = "JavaScript"

type LanguageAcceptance struct {
	LanguageID int
	Name       string
	IsPrimary  bool
}

type LanguageReconciliation struct {
	Accepted []LanguageAcceptance
	// Dropped holds the normalized names that matched no catalog entry
	Dropped []string
}

// ReconcileLanguages matches proposed names against a catalog snapshot. The
// result keeps input order, holds each canonical language at most once and
// marks the first acceptance primary. It never invents languages.
func ReconcileLanguages(raw []any, catalog []models.ProgrammingLanguage) LanguageReconciliation {
	var (
		result LanguageReconciliation
		seen   = make(map[string]struct{}, len(raw))
	)

	for _, v := range raw {
		name, ok := NormalizeLanguageValue(v)
		if !ok {
			continue
		}
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			continue
		}

		lang, found := lookupLanguage(catalog, name)
		if !found {
			result.Dropped = append(result.Dropped, name)
			continue
		}

		result.Accepted = append(result.Accepted, LanguageAcceptance{
			LanguageID: lang.ID,
			Name:       lang.Name,
			IsPrimary:  len(result.Accepted) == 0,
		})
		seen[key] = struct{}{}
	}
	return result
}

// DefaultLanguage returns the fallback acceptance when the catalog has it
func DefaultLanguage(catalog []models.ProgrammingLanguage) (LanguageAcceptance, bool) {
	lang, found := lookupLanguage(catalog, FallbackLanguage)
	if !found {
		return LanguageAcceptance{}, false
	}
	return LanguageAcceptance{LanguageID: lang.ID, Name: lang.Name, IsPrimary: true}, true
}

// lookupLanguage prefers an exact name match over a case-insensitive one
func lookupLanguage(catalog []models.ProgrammingLanguage, name string) (models.ProgrammingLanguage, bool) {
	for _, l := range catalog {
		if l.Name == name {
			return l, true
		}
	}
	for _, l := range catalog {
		if strings.EqualFold(l.Name, name) {
			return l, true
		}
	}
	return models.ProgrammingLanguage{}, false
}
