package checklist

import (
	"regexp"
	"strings"
)

const (
	CheckboxUnchecked = `- [ ]`
	CheckboxChecked   = `- [x]`
	// Example: "  - [x] Drink water" → groups: ["  ", "x", "Drink water"]
	CheckboxPattern = `(?m)^(\s*)- \[([ xX])\] (.+)$`
)

var (
	fencedCodeBlockPattern = regexp.MustCompile("(?s)```.*?```")
	inlineCodePattern      = regexp.MustCompile("`[^`]+`")
)

// Service parses and edits markdown checklists embedded in note content.
type Service interface {
	// ParseCheckboxes extracts all checkboxes from markdown content
	ParseCheckboxes(content string) []Checkbox

	// GetStats calculates checklist statistics
	GetStats(content string) Stats

	// SetCheckbox updates checkbox state by text match
	SetCheckbox(input SetCheckboxInput) SetCheckboxOutput

	// IsFullyCompleted checks if all checkboxes are checked
	IsFullyCompleted(content string) bool
}

type service struct {
	pattern *regexp.Regexp
}

func New() Service {
	return &service{
		pattern: regexp.MustCompile(CheckboxPattern),
	}
}

// sanitizeContent removes code blocks so example checkboxes inside them are ignored.
func sanitizeContent(content string) string {
	sanitized := fencedCodeBlockPattern.ReplaceAllString(content, "")
	return inlineCodePattern.ReplaceAllString(sanitized, "")
}

// ParseCheckboxes extracts all checkboxes from markdown
func (s *service) ParseCheckboxes(content string) []Checkbox {
	matches := s.pattern.FindAllStringSubmatch(sanitizeContent(content), -1)
	checkboxes := make([]Checkbox, 0, len(matches))

	for i, match := range matches {
		if len(match) != 4 {
			continue
		}
		checkboxes = append(checkboxes, Checkbox{
			Line:    i,
			Indent:  match[1],
			Checked: strings.EqualFold(match[2], "x"),
			Text:    strings.TrimSpace(match[3]),
			RawLine: match[0],
		})
	}

	return checkboxes
}

// GetStats calculates checklist statistics
func (s *service) GetStats(content string) Stats {
	var stats Stats
	for _, cb := range s.ParseCheckboxes(content) {
		done := Stats{Total: 1}
		if cb.Checked {
			done.Completed = 1
		}
		stats = stats.Add(done)
	}
	return stats
}

// SetCheckbox updates every checkbox whose text contains CheckboxText (case-insensitive).
func (s *service) SetCheckbox(input SetCheckboxInput) SetCheckboxOutput {
	searchText := strings.ToLower(strings.TrimSpace(input.CheckboxText))
	if input.Content == "" || searchText == "" {
		return SetCheckboxOutput{Content: input.Content}
	}

	lines := strings.Split(input.Content, "\n")
	count := 0
	state := CheckboxUnchecked
	if input.Checked {
		state = CheckboxChecked
	}

	for i, line := range lines {
		if !strings.Contains(line, "- [") {
			continue
		}
		matches := s.pattern.FindStringSubmatch(line)
		if len(matches) != 4 {
			continue
		}
		if !strings.Contains(strings.ToLower(matches[3]), searchText) {
			continue
		}

		updated := matches[1] + state + " " + matches[3]
		if updated != line {
			lines[i] = updated
			count++
		}
	}

	return SetCheckboxOutput{
		Content: strings.Join(lines, "\n"),
		Updated: count > 0,
		Count:   count,
	}
}

// IsFullyCompleted checks if all checkboxes are checked
func (s *service) IsFullyCompleted(content string) bool {
	checkboxes := s.ParseCheckboxes(content)
	if len(checkboxes) == 0 {
		return false
	}
	for _, cb := range checkboxes {
		if !cb.Checked {
			return false
		}
	}
	return true
}
