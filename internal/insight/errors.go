package insight

import "errors"

var (
	ErrLoadNotes     = errors.New("failed to load notes")
	ErrLoadReminders = errors.New("failed to load reminders")
)
