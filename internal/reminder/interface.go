package reminder

import (
	"context"

	"habit-notes/internal/model"
)

// UseCase owns the current reminder list. Reminders are derived state: they
// are recomputed from the full note set on every change, and only the
// completion and dismissal flags are set by users.
type UseCase interface {
	// NotesChanged recomputes reminders for the given note set, carrying user flags forward.
	NotesChanged(ctx context.Context, notes []model.Note) error

	List(ctx context.Context, input ListRemindersInput) (ListRemindersOutput, error)
	Complete(ctx context.Context, id string, completed bool) (model.Reminder, error)
	Dismiss(ctx context.Context, id string) (model.Reminder, error)

	// Schedule places the reminder on the configured calendar at its resolved due time.
	Schedule(ctx context.Context, id string) (ScheduleOutput, error)
}
