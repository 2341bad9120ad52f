package usecase

import (
	"context"

	"habit-notes/internal/model"
	"habit-notes/internal/note"
)

// List returns a page of notes, newest first. A non-positive limit returns
// everything after offset.
func (uc *implUseCase) List(ctx context.Context, input note.ListNotesInput) (note.ListNotesOutput, error) {
	if input.Type != "" && !input.Type.IsValid() {
		return note.ListNotesOutput{}, note.ErrInvalidType
	}

	notes, err := uc.All(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List All: %v", err)
		return note.ListNotesOutput{}, err
	}

	filtered := make([]model.Note, 0, len(notes))
	for i := len(notes) - 1; i >= 0; i-- {
		n := notes[i]
		if input.Type != "" && n.Type != input.Type {
			continue
		}
		if input.Tag != "" && !n.HasTag(normalizeTag(input.Tag)) {
			continue
		}
		filtered = append(filtered, n)
	}

	return note.ListNotesOutput{
		Notes:  paginate(filtered, input.Limit, input.Offset),
		Total:  len(filtered),
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}

// All returns the stored collection, oldest first.
func (uc *implUseCase) All(ctx context.Context) ([]model.Note, error) {
	return uc.load(ctx)
}
