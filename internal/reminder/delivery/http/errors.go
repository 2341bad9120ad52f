package http

import (
	"net/http"

	"habit-notes/internal/reminder"
	pkgErrors "habit-notes/pkg/errors"
)

// mapError translates reminder errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case reminder.ErrReminderNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case reminder.ErrNoSuggestedTime, reminder.ErrInvalidPriority:
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	case reminder.ErrCalendarDisabled:
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
