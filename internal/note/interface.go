package note

import (
	"context"

	"habit-notes/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Note CRUD
	Create(ctx context.Context, input CreateNoteInput) (CreateNoteOutput, error)
	List(ctx context.Context, input ListNotesInput) (ListNotesOutput, error)
	Detail(ctx context.Context, id string) (DetailNoteOutput, error)
	Update(ctx context.Context, input UpdateNoteInput) (UpdateNoteOutput, error)
	Delete(ctx context.Context, id string) error

	// ToggleChecklistItem checks or unchecks the markdown checkboxes of a note matching Text.
	ToggleChecklistItem(ctx context.Context, input ToggleChecklistItemInput) (UpdateNoteOutput, error)

	// All returns the full collection in stored order (oldest first).
	All(ctx context.Context) ([]model.Note, error)
}

// ChangeListener is told about the full note set after every mutation.
type ChangeListener interface {
	NotesChanged(ctx context.Context, notes []model.Note) error
}
