package http

import (
	pkgErrors "habit-notes/pkg/errors"
)

// mapError hides storage failures behind a generic 500.
func (h *handler) mapError(err error) error {
	return pkgErrors.ErrInternalServerError
}
