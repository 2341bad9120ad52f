package model

import "time"

// Priority is the coarse urgency bucket of a reminder.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Weight orders priorities: high=3, medium=2, low=1.
func (p Priority) Weight() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// IsValid reports whether p is a known priority.
func (p Priority) IsValid() bool {
	return p.Weight() > 0
}

// Reminder is an actionable item derived from note text. Reminders are
// recomputed from the note set; only the completion and dismissal flags are
// user-owned.
type Reminder struct {
	ID            string
	NoteID        string
	Text          string
	ExtractedFrom string
	Priority      Priority
	Category      string
	SuggestedTime string     // raw time hint such as "tomorrow"; empty when absent
	DueAt         *time.Time // SuggestedTime resolved against the note timestamp
	IsCompleted   bool
	IsDismissed   bool
	CreatedAt     time.Time
}

// IsActive reports whether the reminder still needs attention.
func (r Reminder) IsActive() bool {
	return !r.IsCompleted && !r.IsDismissed
}

// ReminderKey identifies a reminder across recomputations.
type ReminderKey struct {
	NoteID string
	Text   string
}

// Key returns the merge key used to carry user flags forward.
func (r Reminder) Key() ReminderKey {
	return ReminderKey{NoteID: r.NoteID, Text: r.Text}
}
