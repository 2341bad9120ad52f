package usecase

import (
	"time"

	"habit-notes/internal/model"
	"habit-notes/internal/reminder"
)

// indexOf returns the position of the reminder with id, or -1. Callers hold uc.mu.
func (uc *implUseCase) indexOf(id string) int {
	for i, r := range uc.reminders {
		if r.ID == id {
			return i
		}
	}
	return -1
}

func (uc *implUseCase) matches(r model.Reminder, input reminder.ListRemindersInput) bool {
	if r.IsCompleted && !input.IncludeCompleted {
		return false
	}
	if r.IsDismissed && !input.IncludeDismissed {
		return false
	}
	if input.Category != "" && r.Category != input.Category {
		return false
	}
	if input.Priority != "" && r.Priority != input.Priority {
		return false
	}
	return true
}

// isAllDay reports whether t sits exactly on midnight in the configured timezone.
func (uc *implUseCase) isAllDay(t time.Time) bool {
	h, m, s := t.In(uc.dateMath.Location()).Clock()
	return h == 0 && m == 0 && s == 0 && t.Nanosecond() == 0
}
