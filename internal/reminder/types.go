package reminder

import (
	"time"

	"habit-notes/internal/model"
)

// --- UseCase Inputs ---

// ListRemindersInput filters the current reminder list. Completed and
// dismissed reminders are hidden unless asked for.
type ListRemindersInput struct {
	IncludeCompleted bool
	IncludeDismissed bool
	Category         string
	Priority         model.Priority
}

// --- UseCase Outputs ---

type ListRemindersOutput struct {
	Reminders []model.Reminder
	Total     int
}

type ScheduleOutput struct {
	Reminder  model.Reminder
	EventID   string
	EventLink string
	Start     time.Time
	End       time.Time
	AllDay    bool
}
