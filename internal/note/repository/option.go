package repository

import "habit-notes/internal/model"

// DefaultNotesKey is the key the collection is stored under.
const DefaultNotesKey = "habit-tracker-notes"

// LoadNotesOptions selects which collection to load.
type LoadNotesOptions struct {
	Key string
}

// SaveNotesOptions holds the collection to write.
type SaveNotesOptions struct {
	Key   string
	Notes []model.Note
}

// KeyOrDefault returns key, or DefaultNotesKey when it is empty.
func KeyOrDefault(key string) string {
	if key == "" {
		return DefaultNotesKey
	}
	return key
}
