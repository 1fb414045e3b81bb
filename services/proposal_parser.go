package services

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/techsync/techsync-backend/ingestion"
)

const (
	DefaultProposalTitle       = "Untitled Project"
	DefaultProposalDescription = "No description provided"

	maxTitleLength       = 200
	maxDescriptionLength = 5000
)

// proposalField identifies which proposal field a label line fills
type proposalField int

const (
	fieldNone proposalField = iota
	fieldTitle
	fieldDescription
	fieldDetailedDescription
	fieldLanguages
	fieldTopics
	fieldDifficulty
	fieldExperience
	fieldDuration
	fieldTeamSize
)

var proposalLabels = map[string]proposalField{
	"title":                 fieldTitle,
	"project title":         fieldTitle,
	"project name":          fieldTitle,
	"name":                  fieldTitle,
	"description":           fieldDescription,
	"short description":     fieldDescription,
	"summary":               fieldDescription,
	"detailed description":  fieldDetailedDescription,
	"details":               fieldDetailedDescription,
	"overview":              fieldDetailedDescription,
	"languages":             fieldLanguages,
	"programming languages": fieldLanguages,
	"tech stack":            fieldLanguages,
	"technologies":          fieldLanguages,
	"topics":                fieldTopics,
	"tags":                  fieldTopics,
	"categories":            fieldTopics,
	"difficulty":            fieldDifficulty,
	"difficulty level":      fieldDifficulty,
	"experience":            fieldExperience,
	"experience level":      fieldExperience,
	"required experience":   fieldExperience,
	"duration":              fieldDuration,
	"estimated duration":    fieldDuration,
	"timeline":              fieldDuration,
	"team size":             fieldTeamSize,
	"maximum members":       fieldTeamSize,
	"max members":           fieldTeamSize,
}

var difficultyLevels = map[string]string{
	"easy":         "easy",
	"beginner":     "easy",
	"medium":       "medium",
	"moderate":     "medium",
	"intermediate": "medium",
	"hard":         "hard",
	"advanced":     "hard",
	"expert":       "expert",
}

var experienceLevels = map[string]string{
	"beginner":     "beginner",
	"easy":         "beginner",
	"intermediate": "intermediate",
	"medium":       "intermediate",
	"advanced":     "advanced",
	"hard":         "advanced",
	"expert":       "expert",
}

var (
	numberPattern = regexp.MustCompile(`\d+`)
	bulletPattern = regexp.MustCompile(`^\s*(?:[-*+•]|\d+[.)])\s+`)
)

// ParseProposal turns free-form assistant output into a proposal. It never
// fails: a JSON object in the text is used when it carries a title, otherwise
// labelled lines are read. Every field that cannot be found falls back to its
// default on its own.
func ParseProposal(text string) ingestion.ProjectProposal {
	proposal, ok := parseJSONProposal(text)
	if !ok {
		proposal = parseLabelledProposal(text)
	}

	proposal.Title = truncate(strings.TrimSpace(proposal.Title), maxTitleLength)
	if proposal.Title == "" {
		proposal.Title = truncate(firstContentLine(text), maxTitleLength)
	}
	if proposal.Title == "" {
		proposal.Title = DefaultProposalTitle
	}

	proposal.Description = truncate(strings.TrimSpace(proposal.Description), maxDescriptionLength)
	if proposal.Description == "" && proposal.DetailedDescription != nil {
		proposal.Description = truncate(*proposal.DetailedDescription, maxDescriptionLength)
	}
	if proposal.Description == "" {
		proposal.Description = DefaultProposalDescription
	}

	if proposal.ProgrammingLanguages == nil {
		proposal.ProgrammingLanguages = []any{}
	}
	if proposal.Topics == nil {
		proposal.Topics = []any{}
	}
	return proposal
}

type jsonProposal struct {
	Title                   string   `json:"title"`
	Description             string   `json:"description"`
	DetailedDescription     string   `json:"detailed_description"`
	ProgrammingLanguages    []any    `json:"programming_languages"`
	Languages               []any    `json:"languages"`
	Topics                  []any    `json:"topics"`
	DifficultyLevel         string   `json:"difficulty_level"`
	RequiredExperienceLevel string   `json:"required_experience_level"`
	EstimatedDurationWeeks  *float64 `json:"estimated_duration_weeks"`
	MaximumMembers          *float64 `json:"maximum_members"`
}

func parseJSONProposal(text string) (ingestion.ProjectProposal, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return ingestion.ProjectProposal{}, false
	}

	var raw jsonProposal
	if err := json.Unmarshal([]byte(text[start:end+1]), &raw); err != nil {
		return ingestion.ProjectProposal{}, false
	}
	if strings.TrimSpace(raw.Title) == "" {
		return ingestion.ProjectProposal{}, false
	}

	proposal := ingestion.ProjectProposal{
		Title:                   raw.Title,
		Description:             raw.Description,
		DifficultyLevel:         difficultyLevels[strings.ToLower(strings.TrimSpace(raw.DifficultyLevel))],
		RequiredExperienceLevel: experienceLevels[strings.ToLower(strings.TrimSpace(raw.RequiredExperienceLevel))],
		ProgrammingLanguages:    raw.ProgrammingLanguages,
		Topics:                  raw.Topics,
	}
	if proposal.ProgrammingLanguages == nil {
		proposal.ProgrammingLanguages = raw.Languages
	}
	if detail := strings.TrimSpace(raw.DetailedDescription); detail != "" {
		proposal.DetailedDescription = &detail
	}
	if raw.EstimatedDurationWeeks != nil {
		proposal.EstimatedDurationWeeks = boundedInt(int(*raw.EstimatedDurationWeeks), 1, 520)
	}
	if raw.MaximumMembers != nil {
		proposal.MaximumMembers = boundedInt(int(*raw.MaximumMembers), 1, 100)
	}
	return proposal, true
}

func parseLabelledProposal(text string) ingestion.ProjectProposal {
	var (
		proposal ingestion.ProjectProposal
		section  = fieldNone
		detail   []string
	)

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		if field, value, ok := labelledLine(line); ok {
			section = field
			if value != "" {
				applyValue(&proposal, field, value, &detail)
			}
			continue
		}

		item := stripMarkup(bulletPattern.ReplaceAllString(line, ""))
		if item == "" {
			continue
		}
		switch section {
		case fieldLanguages, fieldTopics:
			// "- Python: engine core" lists Python
			name, _, _ := strings.Cut(item, ":")
			applyValue(&proposal, section, stripMarkup(name), &detail)
		case fieldDescription:
			proposal.Description = joinSentence(proposal.Description, item)
		case fieldDetailedDescription:
			detail = append(detail, item)
		}
	}

	if len(detail) > 0 {
		joined := strings.Join(detail, "\n")
		proposal.DetailedDescription = &joined
	}
	return proposal
}

// labelledLine recognizes "Label: value" lines, including markdown headings
// and bold labels such as "## Languages" or "**Title:** Chess AI".
func labelledLine(line string) (proposalField, string, bool) {
	trimmed := strings.TrimSpace(bulletPattern.ReplaceAllString(line, ""))
	isHeading := strings.HasPrefix(trimmed, "#")

	label, value, found := strings.Cut(trimmed, ":")
	if !found {
		if !isHeading {
			return fieldNone, "", false
		}
		label, value = trimmed, ""
	}

	field, ok := proposalLabels[strings.ToLower(stripMarkup(label))]
	if !ok {
		return fieldNone, "", false
	}
	return field, stripMarkup(value), true
}

func applyValue(p *ingestion.ProjectProposal, field proposalField, value string, detail *[]string) {
	switch field {
	case fieldTitle:
		if p.Title == "" {
			p.Title = value
		}
	case fieldDescription:
		p.Description = joinSentence(p.Description, value)
	case fieldDetailedDescription:
		*detail = append(*detail, value)
	case fieldLanguages:
		p.ProgrammingLanguages = append(p.ProgrammingLanguages, splitList(value)...)
	case fieldTopics:
		p.Topics = append(p.Topics, splitList(value)...)
	case fieldDifficulty:
		if level, ok := matchLevel(value, difficultyLevels); ok {
			p.DifficultyLevel = level
		}
	case fieldExperience:
		if level, ok := matchLevel(value, experienceLevels); ok {
			p.RequiredExperienceLevel = level
		}
	case fieldDuration:
		if n, ok := firstNumber(value); ok {
			if strings.Contains(strings.ToLower(value), "month") {
				n *= 4
			}
			p.EstimatedDurationWeeks = boundedInt(n, 1, 520)
		}
	case fieldTeamSize:
		if n, ok := firstNumber(value); ok {
			p.MaximumMembers = boundedInt(n, 1, 100)
		}
	}
}

func splitList(value string) []any {
	var out []any
	for _, part := range strings.FieldsFunc(value, func(r rune) bool { return r == ',' || r == ';' || r == '|' }) {
		if item := stripMarkup(part); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func matchLevel(value string, levels map[string]string) (string, bool) {
	for _, word := range strings.Fields(strings.ToLower(value)) {
		if level, ok := levels[strings.Trim(word, ".,;:!()")]; ok {
			return level, true
		}
	}
	return "", false
}

func firstNumber(value string) (int, bool) {
	match := numberPattern.FindString(value)
	if match == "" {
		return 0, false
	}
	n, err := strconv.Atoi(match)
	return n, err == nil
}

func boundedInt(n, low, high int) *int {
	if n < low || n > high {
		return nil
	}
	return &n
}

func firstContentLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if s := stripMarkup(bulletPattern.ReplaceAllString(line, "")); s != "" {
			return s
		}
	}
	return ""
}

// stripMarkup removes markdown emphasis, heading marks and surrounding quotes
func stripMarkup(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimLeft(s, "# ")
	s = strings.NewReplacer("**", "", "__", "", "`", "").Replace(s)
	s = strings.Trim(s, " \t\"'*_")
	return strings.TrimSpace(s)
}

func joinSentence(existing, next string) string {
	if existing == "" {
		return next
	}
	return existing + " " + next
}

func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return strings.TrimSpace(string([]rune(s)[:limit]))
}
