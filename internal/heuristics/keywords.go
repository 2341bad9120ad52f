// Package heuristics holds the fixed keyword and pattern tables that drive
// tagging, reminder extraction and insights. The lists are hand-tuned and
// kept verbatim; change them here and nowhere else.
package heuristics

import (
	"regexp"
	"strings"
)

const (
	CategoryFitness     = "fitness"
	CategoryHydration   = "hydration"
	CategorySleep       = "sleep"
	CategoryMindfulness = "mindfulness"
	CategoryLearning    = "learning"
	CategoryWork        = "work"
	CategoryNutrition   = "nutrition"
	CategoryGeneral     = "general"
)

// KeywordGroup is a named set of whole-word keywords.
type KeywordGroup struct {
	Name     string
	Keywords []string
	pattern  *regexp.Regexp
}

// Matches reports whether text contains any keyword of the group as a whole
// word or phrase, ignoring case.
func (g KeywordGroup) Matches(text string) bool {
	return g.pattern.MatchString(text)
}

func newGroup(name string, keywords ...string) KeywordGroup {
	quoted := make([]string, len(keywords))
	for i, kw := range keywords {
		quoted[i] = regexp.QuoteMeta(kw)
	}
	return KeywordGroup{
		Name:     name,
		Keywords: keywords,
		pattern:  regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`),
	}
}

// CategoryGroups is evaluated in order; the first matching group wins.
var CategoryGroups = []KeywordGroup{
	newGroup(CategoryFitness,
		"exercise", "exercising", "workout", "work out", "working out", "gym", "run", "running", "jog", "jogging",
		"walk", "walking", "stretch", "stretching", "yoga", "fitness", "train", "training", "cardio", "pushups", "squats"),
	newGroup(CategoryHydration,
		"water", "drink", "drinking", "hydrate", "hydrated", "hydration", "fluids"),
	newGroup(CategorySleep,
		"sleep", "sleeping", "bed", "bedtime", "nap", "rest", "wake up", "alarm"),
	newGroup(CategoryMindfulness,
		"meditate", "meditation", "mindful", "mindfulness", "breathe", "breathing", "journal", "journaling",
		"gratitude", "relax", "calm"),
	newGroup(CategoryLearning,
		"read", "reading", "study", "studying", "learn", "learning", "course", "practice", "book", "lesson", "review"),
	newGroup(CategoryWork,
		"work", "meeting", "email", "project", "deadline", "call", "report", "client", "presentation", "boss"),
	newGroup(CategoryNutrition,
		"eat", "eating", "meal", "food", "vegetables", "fruit", "cook", "cooking", "breakfast", "lunch", "dinner",
		"diet", "protein", "snack"),
}

// UrgentKeywords mark a reminder as high priority.
var UrgentKeywords = newGroup("urgent",
	"urgent", "urgently", "asap", "important", "critical", "immediately", "emergency", "deadline", "right away")

// TentativeKeywords mark a reminder as low priority when no urgent keyword is present.
var TentativeKeywords = newGroup("tentative",
	"maybe", "perhaps", "someday", "eventually", "sometime", "later", "if possible", "when possible",
	"might", "could", "if i have time")

// Categorize returns the name of the first category group matching text, or
// CategoryGeneral.
func Categorize(text string) string {
	for _, g := range CategoryGroups {
		if g.Matches(text) {
			return g.Name
		}
	}
	return CategoryGeneral
}

// MatchingCategories returns every category group matching text, in order.
func MatchingCategories(text string) []string {
	var out []string
	for _, g := range CategoryGroups {
		if g.Matches(text) {
			out = append(out, g.Name)
		}
	}
	return out
}

// Categories lists all category names in evaluation order, then CategoryGeneral.
func Categories() []string {
	out := make([]string, 0, len(CategoryGroups)+1)
	for _, g := range CategoryGroups {
		out = append(out, g.Name)
	}
	return append(out, CategoryGeneral)
}
