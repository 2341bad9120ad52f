package usecase

import (
	"context"

	"habit-notes/internal/model"
)

// NotesChanged recomputes the reminder list from scratch. The lock is held
// for the whole extraction so a flag flipped concurrently is not lost.
func (uc *implUseCase) NotesChanged(ctx context.Context, notes []model.Note) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	next := uc.extractor.Extract(notes, uc.reminders)
	uc.l.Debugf(ctx, "reminder.usecase.NotesChanged: %d notes -> %d reminders (was %d)", len(notes), len(next), len(uc.reminders))
	uc.reminders = next
	return nil
}
