package usecase

import (
	"context"
	"strings"

	"habit-notes/internal/note"
)

// Detail retrieves a single note by ID. Returns ErrNoteNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id string) (note.DetailNoteOutput, error) {
	notes, err := uc.load(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail load: %v", err)
		return note.DetailNoteOutput{}, err
	}
	i := indexOf(notes, id)
	if i < 0 {
		return note.DetailNoteOutput{}, note.ErrNoteNotFound
	}
	return note.DetailNoteOutput{Note: notes[i]}, nil
}

// Update edits content and/or tags. A content change re-derives the
// automatic tags while keeping the ones the user added.
func (uc *implUseCase) Update(ctx context.Context, input note.UpdateNoteInput) (note.UpdateNoteOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	notes, err := uc.load(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update load: %v", err)
		return note.UpdateNoteOutput{}, err
	}
	i := indexOf(notes, input.ID)
	if i < 0 {
		return note.UpdateNoteOutput{}, note.ErrNoteNotFound
	}

	old := notes[i]
	updated := old
	if input.Content != nil {
		updated.Content = strings.TrimSpace(*input.Content)
		if strings.TrimSpace(updated.Body()) == "" {
			return note.UpdateNoteOutput{}, note.ErrEmptyContent
		}
	}

	userTags := input.Tags
	if userTags == nil {
		userTags = userTagsOf(old)
	}
	updated.Tags = normalizeTags(userTags, autoTags(updated))

	notes[i] = updated
	if err := uc.save(ctx, notes); err != nil {
		uc.l.Errorf(ctx, "uc.Update save: %v", err)
		return note.UpdateNoteOutput{}, err
	}
	return note.UpdateNoteOutput{Note: updated}, nil
}

// Delete removes a note by ID. Returns ErrNoteNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	notes, err := uc.load(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete load: %v", err)
		return err
	}
	i := indexOf(notes, id)
	if i < 0 {
		return note.ErrNoteNotFound
	}

	notes = append(notes[:i], notes[i+1:]...)
	if err := uc.save(ctx, notes); err != nil {
		uc.l.Errorf(ctx, "uc.Delete save: %v", err)
		return err
	}
	return nil
}
