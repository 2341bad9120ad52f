package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"habit-notes/internal/model"
	"habit-notes/internal/reminder"
	"habit-notes/internal/reminder/extractor"
	"habit-notes/pkg/datemath"
	"habit-notes/pkg/gcalendar"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type mockCalendar struct {
	mu     sync.Mutex
	events []gcalendar.ReminderEvent
	err    error
}

func (m *mockCalendar) ScheduleReminder(ctx context.Context, ev gcalendar.ReminderEvent) (gcalendar.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return gcalendar.Event{}, m.err
	}
	m.events = append(m.events, ev)
	end := ev.Start.Add(gcalendar.DefaultDuration)
	if ev.AllDay {
		end = ev.Start.AddDate(0, 0, 1)
	}
	return gcalendar.Event{ID: "evt-1", Title: ev.Title, Link: "https://cal/evt-1", Start: ev.Start, End: end, AllDay: ev.AllDay}, nil
}

var fixedNow = time.Date(2024, 5, 1, 16, 0, 0, 0, time.UTC)

func newTestUseCase(t *testing.T, cal gcalendar.ICalendar) *implUseCase {
	t.Helper()
	dm, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("datemath.NewParser: %v", err)
	}
	ex := extractor.New(
		extractor.WithClock(func() time.Time { return fixedNow }),
		extractor.WithDateMath(dm),
	)
	uc := New(&mockLogger{}, ex, cal, dm, "primary")
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func testNotes() []model.Note {
	return []model.Note{
		{ID: "n1", Content: "I need to exercise tomorrow", Timestamp: "2024-05-01T15:30:00Z", Type: model.NoteTypeText},
		{ID: "n2", Content: "urgent: call the doctor asap", Timestamp: "2024-05-01T15:31:00Z", Type: model.NoteTypeText},
		{ID: "n3", Content: "remind me to meditate later tonight", Timestamp: "2024-05-01T15:32:00Z", Type: model.NoteTypeText},
	}
}

func TestNotesChangedAndList(t *testing.T) {
	uc := newTestUseCase(t, nil)
	ctx := context.Background()

	if err := uc.NotesChanged(ctx, testNotes()); err != nil {
		t.Fatalf("NotesChanged: %v", err)
	}

	out, err := uc.List(ctx, reminder.ListRemindersInput{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if out.Total != 3 {
		t.Fatalf("expected 3 reminders, got %d: %+v", out.Total, out.Reminders)
	}
	if out.Reminders[0].Priority != model.PriorityHigh || out.Reminders[2].Priority != model.PriorityLow {
		t.Errorf("unexpected order: %+v", out.Reminders)
	}

	t.Run("Filter by category", func(t *testing.T) {
		out, _ := uc.List(ctx, reminder.ListRemindersInput{Category: "fitness"})
		if out.Total != 1 || out.Reminders[0].NoteID != "n1" {
			t.Errorf("unexpected fitness reminders: %+v", out.Reminders)
		}
	})

	t.Run("Filter by priority", func(t *testing.T) {
		out, _ := uc.List(ctx, reminder.ListRemindersInput{Priority: model.PriorityLow})
		if out.Total != 1 || out.Reminders[0].NoteID != "n3" {
			t.Errorf("unexpected low reminders: %+v", out.Reminders)
		}
	})

	t.Run("Invalid priority", func(t *testing.T) {
		_, err := uc.List(ctx, reminder.ListRemindersInput{Priority: "urgent"})
		if !errors.Is(err, reminder.ErrInvalidPriority) {
			t.Errorf("expected ErrInvalidPriority, got %v", err)
		}
	})
}

func TestCompleteSurvivesRecompute(t *testing.T) {
	uc := newTestUseCase(t, nil)
	ctx := context.Background()
	notes := testNotes()
	_ = uc.NotesChanged(ctx, notes)

	all, _ := uc.List(ctx, reminder.ListRemindersInput{})
	target := all.Reminders[1]

	r, err := uc.Complete(ctx, target.ID, true)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if !r.IsCompleted {
		t.Errorf("expected completed reminder")
	}

	notes = append(notes, model.Note{ID: "n4", Content: "should drink water", Timestamp: "2024-05-01T16:00:00Z", Type: model.NoteTypeText})
	_ = uc.NotesChanged(ctx, notes)

	pending, _ := uc.List(ctx, reminder.ListRemindersInput{})
	for _, p := range pending.Reminders {
		if p.ID == target.ID {
			t.Errorf("completed reminder still listed as pending")
		}
	}
	withDone, _ := uc.List(ctx, reminder.ListRemindersInput{IncludeCompleted: true})
	found := false
	for _, p := range withDone.Reminders {
		if p.ID == target.ID {
			found = p.IsCompleted
		}
	}
	if !found {
		t.Errorf("completion flag lost after recomputation")
	}

	r, err = uc.Complete(ctx, target.ID, false)
	if err != nil || r.IsCompleted {
		t.Errorf("uncomplete failed: %+v %v", r, err)
	}
}

func TestDismiss(t *testing.T) {
	uc := newTestUseCase(t, nil)
	ctx := context.Background()
	_ = uc.NotesChanged(ctx, testNotes())

	all, _ := uc.List(ctx, reminder.ListRemindersInput{})
	if _, err := uc.Dismiss(ctx, all.Reminders[0].ID); err != nil {
		t.Fatalf("Dismiss: %v", err)
	}

	out, _ := uc.List(ctx, reminder.ListRemindersInput{})
	if out.Total != 2 {
		t.Errorf("expected dismissed reminder to be hidden, got %d", out.Total)
	}
	out, _ = uc.List(ctx, reminder.ListRemindersInput{IncludeDismissed: true})
	if out.Total != 3 {
		t.Errorf("expected dismissed reminder with IncludeDismissed, got %d", out.Total)
	}

	if _, err := uc.Dismiss(ctx, "missing"); !errors.Is(err, reminder.ErrReminderNotFound) {
		t.Errorf("expected ErrReminderNotFound, got %v", err)
	}
	if _, err := uc.Complete(ctx, "missing", true); !errors.Is(err, reminder.ErrReminderNotFound) {
		t.Errorf("expected ErrReminderNotFound, got %v", err)
	}
}

func findByNote(t *testing.T, uc *implUseCase, noteID string) model.Reminder {
	t.Helper()
	out, _ := uc.List(context.Background(), reminder.ListRemindersInput{IncludeCompleted: true, IncludeDismissed: true})
	for _, r := range out.Reminders {
		if r.NoteID == noteID {
			return r
		}
	}
	t.Fatalf("no reminder for note %s", noteID)
	return model.Reminder{}
}

func TestSchedule(t *testing.T) {
	ctx := context.Background()

	t.Run("All-day reminder", func(t *testing.T) {
		cal := &mockCalendar{}
		uc := newTestUseCase(t, cal)
		_ = uc.NotesChanged(ctx, testNotes())

		out, err := uc.Schedule(ctx, findByNote(t, uc, "n1").ID)
		if err != nil {
			t.Fatalf("Schedule: %v", err)
		}
		if !out.AllDay || !out.Start.Equal(time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected schedule output: %+v", out)
		}
		if len(cal.events) != 1 || cal.events[0].Title != "exercise tomorrow" || cal.events[0].CalendarID != "primary" {
			t.Errorf("unexpected calendar request: %+v", cal.events)
		}
	})

	t.Run("Timed reminder", func(t *testing.T) {
		cal := &mockCalendar{}
		uc := newTestUseCase(t, cal)
		_ = uc.NotesChanged(ctx, testNotes())

		out, err := uc.Schedule(ctx, findByNote(t, uc, "n3").ID)
		if err != nil {
			t.Fatalf("Schedule: %v", err)
		}
		if out.AllDay || out.Start.Hour() != datemath.NightHour {
			t.Errorf("expected a timed event at %d:00, got %+v", datemath.NightHour, out)
		}
	})

	t.Run("Unparseable note timestamp resolves against now", func(t *testing.T) {
		cal := &mockCalendar{}
		uc := newTestUseCase(t, cal)
		_ = uc.NotesChanged(ctx, []model.Note{{ID: "x", Content: "remind me to stretch tomorrow", Timestamp: "garbage"}})

		out, err := uc.Schedule(ctx, findByNote(t, uc, "x").ID)
		if err != nil {
			t.Fatalf("Schedule: %v", err)
		}
		if !out.Start.Equal(time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("Start = %v", out.Start)
		}
	})

	t.Run("No suggested time", func(t *testing.T) {
		uc := newTestUseCase(t, &mockCalendar{})
		_ = uc.NotesChanged(ctx, testNotes())

		_, err := uc.Schedule(ctx, findByNote(t, uc, "n2").ID)
		if !errors.Is(err, reminder.ErrNoSuggestedTime) {
			t.Errorf("expected ErrNoSuggestedTime, got %v", err)
		}
	})

	t.Run("Calendar disabled", func(t *testing.T) {
		uc := newTestUseCase(t, nil)
		_ = uc.NotesChanged(ctx, testNotes())

		_, err := uc.Schedule(ctx, findByNote(t, uc, "n1").ID)
		if !errors.Is(err, reminder.ErrCalendarDisabled) {
			t.Errorf("expected ErrCalendarDisabled, got %v", err)
		}
	})

	t.Run("Calendar error", func(t *testing.T) {
		calErr := errors.New("boom")
		uc := newTestUseCase(t, &mockCalendar{err: calErr})
		_ = uc.NotesChanged(ctx, testNotes())

		_, err := uc.Schedule(ctx, findByNote(t, uc, "n1").ID)
		if !errors.Is(err, calErr) {
			t.Errorf("expected calendar error, got %v", err)
		}
	})

	t.Run("Unknown reminder", func(t *testing.T) {
		uc := newTestUseCase(t, &mockCalendar{})
		if _, err := uc.Schedule(ctx, "missing"); !errors.Is(err, reminder.ErrReminderNotFound) {
			t.Errorf("expected ErrReminderNotFound, got %v", err)
		}
	})
}

func TestConcurrentAccess(t *testing.T) {
	uc := newTestUseCase(t, nil)
	ctx := context.Background()
	notes := testNotes()
	_ = uc.NotesChanged(ctx, notes)
	all, _ := uc.List(ctx, reminder.ListRemindersInput{})
	id := all.Reminders[0].ID

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = uc.NotesChanged(ctx, notes)
		}()
		go func() {
			defer wg.Done()
			_, _ = uc.Complete(ctx, id, true)
			_, _ = uc.List(ctx, reminder.ListRemindersInput{})
		}()
	}
	wg.Wait()

	r := findByNote(t, uc, all.Reminders[0].NoteID)
	if !r.IsCompleted {
		t.Errorf("completion lost under concurrent recomputation")
	}
}
