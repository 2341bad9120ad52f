package usecase

import (
	"context"

	"habit-notes/internal/model"
	"habit-notes/internal/reminder"
)

// List returns the reminders matching input, in priority order.
func (uc *implUseCase) List(ctx context.Context, input reminder.ListRemindersInput) (reminder.ListRemindersOutput, error) {
	if input.Priority != "" && !input.Priority.IsValid() {
		return reminder.ListRemindersOutput{}, reminder.ErrInvalidPriority
	}

	uc.mu.RLock()
	defer uc.mu.RUnlock()

	out := make([]model.Reminder, 0, len(uc.reminders))
	for _, r := range uc.reminders {
		if uc.matches(r, input) {
			out = append(out, r)
		}
	}
	return reminder.ListRemindersOutput{
		Reminders: out,
		Total:     len(out),
	}, nil
}
