package usecase

import (
	"context"

	"habit-notes/internal/model"
	"habit-notes/internal/reminder"
)

// Complete sets or clears the completion flag of a reminder.
func (uc *implUseCase) Complete(ctx context.Context, id string, completed bool) (model.Reminder, error) {
	return uc.update(ctx, id, func(r *model.Reminder) {
		r.IsCompleted = completed
	})
}

// Dismiss hides a reminder until the note that produced it changes its text.
func (uc *implUseCase) Dismiss(ctx context.Context, id string) (model.Reminder, error) {
	return uc.update(ctx, id, func(r *model.Reminder) {
		r.IsDismissed = true
	})
}

func (uc *implUseCase) update(ctx context.Context, id string, fn func(*model.Reminder)) (model.Reminder, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	i := uc.indexOf(id)
	if i < 0 {
		uc.l.Warnf(ctx, "reminder.usecase.update: reminder %s not found", id)
		return model.Reminder{}, reminder.ErrReminderNotFound
	}
	fn(&uc.reminders[i])
	return uc.reminders[i], nil
}
