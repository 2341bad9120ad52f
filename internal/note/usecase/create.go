package usecase

import (
	"context"
	"strings"
	"time"

	"habit-notes/internal/model"
	"habit-notes/internal/note"
)

// Create validates and appends a new note, then tags it.
func (uc *implUseCase) Create(ctx context.Context, input note.CreateNoteInput) (note.CreateNoteOutput, error) {
	typ := input.Type
	if typ == "" {
		typ = model.NoteTypeText
	}
	if !typ.IsValid() {
		return note.CreateNoteOutput{}, note.ErrInvalidType
	}

	n := model.Note{
		ID:         uc.newID(),
		Content:    strings.TrimSpace(input.Content),
		Transcript: strings.TrimSpace(input.Transcript),
		Timestamp:  uc.now().UTC().Format(time.RFC3339),
		Type:       typ,
	}
	if strings.TrimSpace(n.Body()) == "" {
		return note.CreateNoteOutput{}, note.ErrEmptyContent
	}
	n.Tags = normalizeTags(input.Tags, autoTags(n))

	uc.mu.Lock()
	defer uc.mu.Unlock()

	notes, err := uc.load(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create load: %v", err)
		return note.CreateNoteOutput{}, err
	}
	notes = append(notes, n)
	if err := uc.save(ctx, notes); err != nil {
		uc.l.Errorf(ctx, "uc.Create save: %v", err)
		return note.CreateNoteOutput{}, err
	}

	return note.CreateNoteOutput{Note: n}, nil
}
