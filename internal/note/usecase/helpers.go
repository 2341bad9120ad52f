package usecase

import (
	"context"
	"regexp"
	"sort"
	"strings"

	"habit-notes/internal/heuristics"
	"habit-notes/internal/model"
	"habit-notes/internal/note/repository"
)

// VoiceTag is added to every voice note.
const VoiceTag = "voice"

var hashtagPattern = regexp.MustCompile(`(?:^|\s)#([\p{L}\p{N}_][\p{L}\p{N}_/-]*)`)

func (uc *implUseCase) load(ctx context.Context) ([]model.Note, error) {
	return uc.repo.LoadNotes(ctx, repository.LoadNotesOptions{Key: uc.notesKey})
}

// save writes the whole collection and then notifies listeners. Listener
// failures are logged; the write already happened.
func (uc *implUseCase) save(ctx context.Context, notes []model.Note) error {
	if err := uc.repo.SaveNotes(ctx, repository.SaveNotesOptions{Key: uc.notesKey, Notes: notes}); err != nil {
		return err
	}
	for _, lst := range uc.listeners {
		if err := lst.NotesChanged(ctx, notes); err != nil {
			uc.l.Warnf(ctx, "uc.save NotesChanged: %v", err)
		}
	}
	return nil
}

func indexOf(notes []model.Note, id string) int {
	for i, n := range notes {
		if n.ID == id {
			return i
		}
	}
	return -1
}

// autoTags derives tags from the note: matching category groups, inline
// #hashtags and the voice marker.
func autoTags(n model.Note) []string {
	body := n.Body()
	tags := heuristics.MatchingCategories(body)
	for _, m := range hashtagPattern.FindAllStringSubmatch(body, -1) {
		tags = append(tags, m[1])
	}
	if n.Type == model.NoteTypeVoice {
		tags = append(tags, VoiceTag)
	}
	return tags
}

// userTagsOf returns the tags of n that autoTags would not produce.
func userTagsOf(n model.Note) []string {
	auto := make(map[string]struct{})
	for _, t := range normalizeTags(autoTags(n)) {
		auto[t] = struct{}{}
	}
	var out []string
	for _, t := range n.Tags {
		if _, ok := auto[normalizeTag(t)]; !ok {
			out = append(out, t)
		}
	}
	return out
}

func normalizeTag(t string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(t), "#"))
}

// normalizeTags merges tag lists into a sorted set of lowercased tags.
func normalizeTags(lists ...[]string) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, list := range lists {
		for _, t := range list {
			t = normalizeTag(t)
			if t == "" {
				continue
			}
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	sort.Strings(out)
	return out
}

func paginate(notes []model.Note, limit, offset int) []model.Note {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(notes) {
		return []model.Note{}
	}
	notes = notes[offset:]
	if limit > 0 && limit < len(notes) {
		notes = notes[:limit]
	}
	return notes
}
