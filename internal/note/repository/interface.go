package repository

import (
	"context"

	"habit-notes/internal/model"
)

// Repository stores the whole note collection as one blob under a key.
type Repository interface {
	// LoadNotes returns the stored collection. A missing key yields an empty
	// collection and no error.
	LoadNotes(ctx context.Context, opt LoadNotesOptions) ([]model.Note, error)
	// SaveNotes replaces the stored collection.
	SaveNotes(ctx context.Context, opt SaveNotesOptions) error
	Close() error
}
