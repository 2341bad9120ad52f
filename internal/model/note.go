package model

import (
	"strings"
	"time"
)

// NoteType distinguishes typed notes from transcribed voice notes.
type NoteType string

const (
	NoteTypeText  NoteType = "text"
	NoteTypeVoice NoteType = "voice"
)

// IsValid reports whether t is a known note type.
func (t NoteType) IsValid() bool {
	return t == NoteTypeText || t == NoteTypeVoice
}

// Note is a user-authored entry. The whole collection is persisted as one
// JSON array, so the json tags define the stored format.
type Note struct {
	ID         string   `json:"id"`
	Content    string   `json:"content"`
	Transcript string   `json:"transcript,omitempty"`
	Timestamp  string   `json:"timestamp"` // ISO-8601, kept verbatim
	Type       NoteType `json:"type"`
	Tags       []string `json:"tags"`
}

// Body returns the text that reminders and tags are derived from: the
// transcript when present, otherwise the content.
func (n Note) Body() string {
	if strings.TrimSpace(n.Transcript) != "" {
		return n.Transcript
	}
	return n.Content
}

// Time parses Timestamp. ok is false for missing or malformed values.
func (n Note) Time() (t time.Time, ok bool) {
	ts := strings.TrimSpace(n.Timestamp)
	if ts == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if parsed, err := time.Parse(layout, ts); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// HasTag reports whether the note carries tag (case-insensitive).
func (n Note) HasTag(tag string) bool {
	for _, t := range n.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}
