// Package extractor derives reminders from note text.
//
// Extraction is a pure function of the note sequence and the previous
// reminder set: every note body is scanned with the fixed pattern table in
// internal/heuristics, near-duplicate candidates are dropped (first one
// wins), and the survivors are stably sorted by priority. User flags are
// carried forward by (note id, text).
package extractor

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"habit-notes/internal/heuristics"
	"habit-notes/internal/model"
	"habit-notes/pkg/datemath"
	"habit-notes/pkg/textsim"
)

var reminderNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("habit-notes/reminder"))

// Extractor turns notes into reminders. It is safe for concurrent use.
type Extractor struct {
	patterns []heuristics.ReminderPattern
	now      func() time.Time
	dateMath *datemath.Parser
	cache    *lru.Cache[string, []Candidate]
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithClock sets the clock used for CreatedAt of reminders seen for the first time.
func WithClock(now func() time.Time) Option {
	return func(e *Extractor) {
		if now != nil {
			e.now = now
		}
	}
}

// WithDateMath resolves suggested times into DueAt using the note timestamp.
func WithDateMath(p *datemath.Parser) Option {
	return func(e *Extractor) {
		e.dateMath = p
	}
}

// WithCache keeps the raw candidates of up to size notes, keyed by note id,
// timestamp and body. Sizes <= 0 disable the cache.
func WithCache(size int) Option {
	return func(e *Extractor) {
		if size <= 0 {
			return
		}
		if c, err := lru.New[string, []Candidate](size); err == nil {
			e.cache = c
		}
	}
}

// WithPatterns replaces the pattern table. Used by tests.
func WithPatterns(patterns []heuristics.ReminderPattern) Option {
	return func(e *Extractor) {
		e.patterns = patterns
	}
}

// New creates an Extractor over heuristics.ReminderPatterns.
func New(opts ...Option) *Extractor {
	e := &Extractor{
		patterns: heuristics.ReminderPatterns,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract derives the reminder list for notes. previous is the last
// reminder list; its completion/dismissal flags and creation times are
// carried over by exact (note id, text) match.
func (e *Extractor) Extract(notes []model.Note, previous []model.Reminder) []model.Reminder {
	prior := make(map[model.ReminderKey]model.Reminder, len(previous))
	for _, r := range previous {
		prior[r.Key()] = r
	}

	kept := e.dedupe(notes)
	now := e.now()

	reminders := make([]model.Reminder, 0, len(kept))
	for _, c := range kept {
		r := model.Reminder{
			ID:            ReminderID(c.NoteID, c.Text),
			NoteID:        c.NoteID,
			Text:          c.Text,
			ExtractedFrom: c.ExtractedFrom,
			Priority:      c.Priority,
			Category:      c.Category,
			SuggestedTime: c.SuggestedTime,
			DueAt:         e.resolveDue(c),
			CreatedAt:     now,
		}
		if old, ok := prior[r.Key()]; ok {
			r.IsCompleted = old.IsCompleted
			r.IsDismissed = old.IsDismissed
			if !old.CreatedAt.IsZero() {
				r.CreatedAt = old.CreatedAt
			}
		}
		reminders = append(reminders, r)
	}

	SortByPriority(reminders)
	return reminders
}

// dedupe collects candidates across notes in order, dropping any whose text
// is a near-duplicate of an earlier kept candidate.
func (e *Extractor) dedupe(notes []model.Note) []Candidate {
	var kept []Candidate
	var keptTexts []string

	for _, note := range notes {
		for _, c := range e.Candidates(note) {
			text := strings.ToLower(c.Text)
			duplicate := false
			for _, k := range keptTexts {
				if textsim.IsDuplicate(text, k) {
					duplicate = true
					break
				}
			}
			if duplicate {
				continue
			}
			kept = append(kept, c)
			keptTexts = append(keptTexts, text)
		}
	}
	return kept
}

// Candidates returns the raw matches for one note, in pattern order.
func (e *Extractor) Candidates(note model.Note) []Candidate {
	body := note.Body()
	if strings.TrimSpace(body) == "" {
		return nil
	}

	key := cacheKey(note, body)
	if e.cache != nil {
		if cached, ok := e.cache.Get(key); ok {
			return cached
		}
	}

	suggested := heuristics.SuggestedTime(body)
	noteTime, noteTimeOK := note.Time()

	var out []Candidate
	for _, p := range e.patterns {
		for _, loc := range p.Pattern.FindAllStringSubmatchIndex(body, -1) {
			text := matchText(body, loc)
			if utf8.RuneCountInString(text) <= MinTextLength {
				continue
			}
			out = append(out, Candidate{
				NoteID:        note.ID,
				Pattern:       p.Name,
				Text:          text,
				ExtractedFrom: window(body, loc[0], loc[1]),
				Priority:      PriorityOf(text),
				Category:      heuristics.Categorize(text),
				SuggestedTime: suggested,
				noteTime:      noteTime,
				noteTimeOK:    noteTimeOK,
			})
		}
	}

	if e.cache != nil {
		e.cache.Add(key, out)
	}
	return out
}

func (e *Extractor) resolveDue(c Candidate) *time.Time {
	if e.dateMath == nil || c.SuggestedTime == "" || !c.noteTimeOK {
		return nil
	}
	res, err := e.dateMath.Resolve(c.SuggestedTime, c.noteTime)
	if err != nil {
		return nil
	}
	due := res.AbsoluteTime
	return &due
}

// PriorityOf buckets text by keyword: urgent beats tentative, default medium.
func PriorityOf(text string) model.Priority {
	switch {
	case heuristics.UrgentKeywords.Matches(text):
		return model.PriorityHigh
	case heuristics.TentativeKeywords.Matches(text):
		return model.PriorityLow
	default:
		return model.PriorityMedium
	}
}

// SortByPriority orders reminders high → medium → low, keeping the
// relative order of equal priorities.
func SortByPriority(reminders []model.Reminder) {
	sort.SliceStable(reminders, func(i, j int) bool {
		return reminders[i].Priority.Weight() > reminders[j].Priority.Weight()
	})
}

// ReminderID is stable for a (note id, text) pair so that recomputation
// over an unchanged note set yields the same ids.
func ReminderID(noteID, text string) string {
	return uuid.NewSHA1(reminderNamespace, []byte(noteID+"\x00"+text)).String()
}

// matchText joins the non-empty capture groups of a match, falling back to
// the full match when there are none.
func matchText(body string, loc []int) string {
	var parts []string
	for i := 2; i+1 < len(loc); i += 2 {
		if loc[i] < 0 {
			continue
		}
		if part := strings.TrimSpace(body[loc[i]:loc[i+1]]); part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) == 0 {
		return strings.TrimSpace(body[loc[0]:loc[1]])
	}
	return strings.Join(parts, " ")
}

// window returns the match plus up to ContextChars runes on either side.
func window(body string, start, end int) string {
	lo := start
	for i := 0; i < ContextChars && lo > 0; i++ {
		_, size := utf8.DecodeLastRuneInString(body[:lo])
		lo -= size
	}
	hi := end
	for i := 0; i < ContextChars && hi < len(body); i++ {
		_, size := utf8.DecodeRuneInString(body[hi:])
		hi += size
	}
	return strings.TrimSpace(body[lo:hi])
}

func cacheKey(note model.Note, body string) string {
	sum := sha256.Sum256([]byte(note.Timestamp + "\x00" + body))
	return note.ID + ":" + hex.EncodeToString(sum[:])
}
