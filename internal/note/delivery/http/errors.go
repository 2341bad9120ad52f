package http

import (
	"net/http"

	"habit-notes/internal/note"
	pkgErrors "habit-notes/pkg/errors"
)

// mapError translates note errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case note.ErrNoteNotFound, note.ErrChecklistItemMissing:
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case note.ErrEmptyContent, note.ErrInvalidType:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
