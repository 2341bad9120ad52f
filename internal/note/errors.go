package note

import "errors"

var (
	ErrNoteNotFound         = errors.New("note not found")
	ErrEmptyContent         = errors.New("note content is empty")
	ErrInvalidType          = errors.New("invalid note type")
	ErrChecklistItemMissing = errors.New("no checklist item matches")
)
