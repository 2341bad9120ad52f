package note

import "habit-notes/internal/model"

// --- UseCase Inputs ---

type CreateNoteInput struct {
	Content    string
	Transcript string
	Type       model.NoteType // defaults to text
	Tags       []string
}

type ListNotesInput struct {
	Type   model.NoteType
	Tag    string
	Limit  int
	Offset int
}

// UpdateNoteInput edits a note. Nil fields are left unchanged; a non-nil
// Tags replaces the user tag set.
type UpdateNoteInput struct {
	ID      string
	Content *string
	Tags    []string
}

type ToggleChecklistItemInput struct {
	NoteID  string
	Text    string
	Checked bool
}

// --- UseCase Outputs ---

type CreateNoteOutput struct {
	Note model.Note
}

type ListNotesOutput struct {
	Notes  []model.Note
	Total  int
	Limit  int
	Offset int
}

type DetailNoteOutput struct {
	Note model.Note
}

type UpdateNoteOutput struct {
	Note model.Note
}
