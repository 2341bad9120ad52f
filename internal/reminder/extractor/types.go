package extractor

import (
	"time"

	"habit-notes/internal/model"
)

// ContextChars is how many characters of surrounding note text are kept on
// each side of a match for ExtractedFrom.
const ContextChars = 20

// MinTextLength is the longest candidate text that is still discarded.
const MinTextLength = 3

// Candidate is a single pattern match before deduplication.
type Candidate struct {
	NoteID        string
	Pattern       string
	Text          string
	ExtractedFrom string
	Priority      model.Priority
	Category      string
	SuggestedTime string

	noteTime   time.Time
	noteTimeOK bool
}
