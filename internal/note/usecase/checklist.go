package usecase

import (
	"context"
	"strings"

	"habit-notes/internal/checklist"
	"habit-notes/internal/note"
)

// ToggleChecklistItem sets the state of every checkbox in the note whose text
// contains input.Text. Checking an item removes the reminder it produced.
func (uc *implUseCase) ToggleChecklistItem(ctx context.Context, input note.ToggleChecklistItemInput) (note.UpdateNoteOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return note.UpdateNoteOutput{}, note.ErrChecklistItemMissing
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	notes, err := uc.load(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ToggleChecklistItem load: %v", err)
		return note.UpdateNoteOutput{}, err
	}
	i := indexOf(notes, input.NoteID)
	if i < 0 {
		return note.UpdateNoteOutput{}, note.ErrNoteNotFound
	}

	out := uc.checklist.SetCheckbox(checklist.SetCheckboxInput{
		Content:      notes[i].Content,
		CheckboxText: input.Text,
		Checked:      input.Checked,
	})
	if !out.Updated {
		if !uc.hasCheckbox(notes[i].Content, input.Text) {
			return note.UpdateNoteOutput{}, note.ErrChecklistItemMissing
		}
		return note.UpdateNoteOutput{Note: notes[i]}, nil
	}

	notes[i].Content = out.Content
	if err := uc.save(ctx, notes); err != nil {
		uc.l.Errorf(ctx, "uc.ToggleChecklistItem save: %v", err)
		return note.UpdateNoteOutput{}, err
	}
	uc.l.Debugf(ctx, "uc.ToggleChecklistItem: %d item(s) in note %s set to %v", out.Count, input.NoteID, input.Checked)
	return note.UpdateNoteOutput{Note: notes[i]}, nil
}

func (uc *implUseCase) hasCheckbox(content, text string) bool {
	needle := strings.ToLower(strings.TrimSpace(text))
	for _, cb := range uc.checklist.ParseCheckboxes(content) {
		if strings.Contains(strings.ToLower(cb.Text), needle) {
			return true
		}
	}
	return false
}
