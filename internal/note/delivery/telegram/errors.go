package telegram

import (
	"errors"

	"habit-notes/internal/note"
)

// errorMessage returns a user-facing error string for the given error.
func errorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, note.ErrEmptyContent):
		return msgEmptyNote
	default:
		return msgProcessingFailed
	}
}
