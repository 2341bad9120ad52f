package repository

import (
	"encoding/json"
	"fmt"

	"habit-notes/internal/model"
)

// EncodeNotes serializes the collection to its stored JSON array form.
func EncodeNotes(notes []model.Note) ([]byte, error) {
	if notes == nil {
		notes = []model.Note{}
	}
	return json.Marshal(notes)
}

// DecodeNotes parses a stored blob. Empty input is an empty collection.
func DecodeNotes(raw []byte) ([]model.Note, error) {
	if len(raw) == 0 {
		return []model.Note{}, nil
	}
	var notes []model.Note
	if err := json.Unmarshal(raw, &notes); err != nil {
		return nil, fmt.Errorf("decode notes blob: %w", err)
	}
	if notes == nil {
		notes = []model.Note{}
	}
	return notes, nil
}
