package heuristics

import "regexp"

// PatternKind separates explicit trigger phrases from habit-topic matches.
type PatternKind string

const (
	KindTrigger PatternKind = "trigger"
	KindTopic   PatternKind = "topic"
)

// ReminderPattern is one entry of the ordered extraction table. The reminder
// text is built from the pattern's non-empty capture groups, or the full
// match when the pattern has none.
type ReminderPattern struct {
	Name    string
	Kind    PatternKind
	Pattern *regexp.Regexp
}

// clause is the tail of a phrase up to the next sentence break.
const clause = `[^.!?;\n]+`

// ReminderPatterns is applied to every note body in this order.
var ReminderPatterns = []ReminderPattern{
	{Name: "remind-me", Kind: KindTrigger, Pattern: regexp.MustCompile(`(?i)\bremind me to\s+(` + clause + `)`)},
	{Name: "dont-forget", Kind: KindTrigger, Pattern: regexp.MustCompile(`(?i)\bdon'?t forget to\s+(` + clause + `)`)},
	{Name: "need-to", Kind: KindTrigger, Pattern: regexp.MustCompile(`(?i)\b(?:need|have|want|plan|going) to\s+(` + clause + `)`)},
	{Name: "should", Kind: KindTrigger, Pattern: regexp.MustCompile(`(?i)\bshould\s+(` + clause + `)`)},
	{Name: "must", Kind: KindTrigger, Pattern: regexp.MustCompile(`(?i)\bmust\s+(` + clause + `)`)},
	{Name: "flagged", Kind: KindTrigger, Pattern: regexp.MustCompile(`(?i)\b((?:urgent|important)\b\s*[:\-]\s*` + clause + `)`)},
	{Name: "todo", Kind: KindTrigger, Pattern: regexp.MustCompile(`(?i)\btodo\s*[:\-]\s*(` + clause + `)`)},
	{Name: "checkbox", Kind: KindTrigger, Pattern: regexp.MustCompile(`(?m)^\s*[-*] \[ \] (.+)$`)},

	{Name: "fitness", Kind: KindTopic, Pattern: regexp.MustCompile(`(?i)\b((?:exercise|work ?out|go (?:to the gym|for a (?:run|walk|jog))|hit the gym|stretch)[^.!?;,\n]*)`)},
	{Name: "hydration", Kind: KindTopic, Pattern: regexp.MustCompile(`(?i)\b(drink)\b[^.!?;,\n]*?\b(water)\b`)},
	{Name: "sleep", Kind: KindTopic, Pattern: regexp.MustCompile(`(?i)\b((?:go to (?:bed|sleep)|sleep (?:early|more|by)|bedtime)[^.!?;,\n]*)`)},
	{Name: "mindfulness", Kind: KindTopic, Pattern: regexp.MustCompile(`(?i)\b((?:meditate|practice (?:mindfulness|gratitude)|journal about|do (?:some )?breathing)[^.!?;,\n]*)`)},
	{Name: "learning", Kind: KindTopic, Pattern: regexp.MustCompile(`(?i)\b((?:read|study|learn|practice) (?:a |an |the |my |some |more )?(?:book|chapter|pages?|course|lesson|language|spanish|french|guitar|piano|code|coding)[^.!?;,\n]*)`)},
}

// TimeHint is one entry of the ordered time-hint table.
type TimeHint struct {
	Pattern *regexp.Regexp
}

// TimeHints are checked in order against the whole note body; the first one
// that matches supplies the reminder's suggested time.
var TimeHints = []TimeHint{
	{Pattern: regexp.MustCompile(`(?i)\btomorrow\b`)},
	{Pattern: regexp.MustCompile(`(?i)\btoday\b`)},
	{Pattern: regexp.MustCompile(`(?i)\btonight\b`)},
	{Pattern: regexp.MustCompile(`(?i)\bthis\s+morning\b`)},
	{Pattern: regexp.MustCompile(`(?i)\bthis\s+afternoon\b`)},
	{Pattern: regexp.MustCompile(`(?i)\bthis\s+evening\b`)},
	{Pattern: regexp.MustCompile(`(?i)\bthis\s+weekend\b`)},
	{Pattern: regexp.MustCompile(`(?i)\bnext\s+week\b`)},
	{Pattern: regexp.MustCompile(`(?i)\bnext\s+(?:monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)},
	{Pattern: regexp.MustCompile(`(?i)\bin\s+\d+\s+(?:days?|weeks?|months?)\b`)},
}

// SuggestedTime returns the first time hint found in body, lowercased, or "".
func SuggestedTime(body string) string {
	for _, h := range TimeHints {
		if m := h.Pattern.FindString(body); m != "" {
			return normalizeHint(m)
		}
	}
	return ""
}
