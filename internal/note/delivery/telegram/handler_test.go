package telegram_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"habit-notes/internal/insight"
	"habit-notes/internal/model"
	"habit-notes/internal/note"
	"habit-notes/internal/note/delivery/telegram"
	"habit-notes/internal/reminder"
	pkgTelegram "habit-notes/pkg/telegram"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

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

type mockNoteUseCase struct {
	mu        sync.Mutex
	created   []note.CreateNoteInput
	createOut note.CreateNoteOutput
	createErr error
}

func (m *mockNoteUseCase) Create(ctx context.Context, input note.CreateNoteInput) (note.CreateNoteOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.created = append(m.created, input)
	return m.createOut, m.createErr
}
func (m *mockNoteUseCase) List(ctx context.Context, input note.ListNotesInput) (note.ListNotesOutput, error) {
	return note.ListNotesOutput{}, nil
}
func (m *mockNoteUseCase) Detail(ctx context.Context, id string) (note.DetailNoteOutput, error) {
	return note.DetailNoteOutput{}, nil
}
func (m *mockNoteUseCase) Update(ctx context.Context, input note.UpdateNoteInput) (note.UpdateNoteOutput, error) {
	return note.UpdateNoteOutput{}, nil
}
func (m *mockNoteUseCase) Delete(ctx context.Context, id string) error { return nil }
func (m *mockNoteUseCase) ToggleChecklistItem(ctx context.Context, input note.ToggleChecklistItemInput) (note.UpdateNoteOutput, error) {
	return note.UpdateNoteOutput{}, nil
}
func (m *mockNoteUseCase) All(ctx context.Context) ([]model.Note, error) { return nil, nil }

func (m *mockNoteUseCase) lastCreated() (note.CreateNoteInput, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.created) == 0 {
		return note.CreateNoteInput{}, 0
	}
	return m.created[len(m.created)-1], len(m.created)
}

type mockReminderUseCase struct {
	reminders []model.Reminder
	listErr   error
}

func (m *mockReminderUseCase) NotesChanged(ctx context.Context, notes []model.Note) error { return nil }
func (m *mockReminderUseCase) List(ctx context.Context, input reminder.ListRemindersInput) (reminder.ListRemindersOutput, error) {
	return reminder.ListRemindersOutput{Reminders: m.reminders, Total: len(m.reminders)}, m.listErr
}
func (m *mockReminderUseCase) Complete(ctx context.Context, id string, completed bool) (model.Reminder, error) {
	return model.Reminder{}, nil
}
func (m *mockReminderUseCase) Dismiss(ctx context.Context, id string) (model.Reminder, error) {
	return model.Reminder{}, nil
}
func (m *mockReminderUseCase) Schedule(ctx context.Context, id string) (reminder.ScheduleOutput, error) {
	return reminder.ScheduleOutput{}, nil
}

type mockInsightUseCase struct {
	out insight.Insights
	err error
}

func (m *mockInsightUseCase) Generate(ctx context.Context) (insight.Insights, error) { return m.out, m.err }

type sentMessages struct {
	mu   sync.Mutex
	msgs []string
}

func (s *sentMessages) add(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.msgs = append(s.msgs, text)
}

func (s *sentMessages) snapshot() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.msgs...)
}

// ── Test Helpers ───────────────────────────────────────────────────────────

type testEnv struct {
	engine    *gin.Engine
	notes     *mockNoteUseCase
	reminders *mockReminderUseCase
	insights  *mockInsightUseCase
	sent      *sentMessages
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sent := &sentMessages{}
	tgServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req pkgTelegram.SendMessageRequest
		json.NewDecoder(r.Body).Decode(&req)
		sent.add(req.Text)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"ok": true}`))
	}))
	t.Cleanup(tgServer.Close)

	bot := pkgTelegram.NewBot("test-token")
	bot.SetAPIURL(tgServer.URL)

	env := &testEnv{
		engine:    gin.New(),
		notes:     &mockNoteUseCase{},
		reminders: &mockReminderUseCase{},
		insights:  &mockInsightUseCase{},
		sent:      sent,
	}
	h := telegram.New(&mockLogger{}, env.notes, env.reminders, env.insights, bot)
	env.engine.POST("/webhook/telegram", h.HandleWebhook)
	return env
}

func sendUpdate(engine *gin.Engine, msg *pkgTelegram.Message) *httptest.ResponseRecorder {
	body, _ := json.Marshal(pkgTelegram.Update{UpdateID: 1, Message: msg})
	req, _ := http.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func sendWebhook(engine *gin.Engine, text string) *httptest.ResponseRecorder {
	return sendUpdate(engine, &pkgTelegram.Message{
		MessageID: 1,
		Chat:      &pkgTelegram.Chat{ID: 123},
		From:      &pkgTelegram.User{ID: 456},
		Text:      text,
	})
}

func waitForMessages(sent *sentMessages, atLeast int, timeout time.Duration) []string {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) && len(sent.snapshot()) < atLeast {
		time.Sleep(20 * time.Millisecond)
	}
	return sent.snapshot()
}

func assertContains(t *testing.T, msgs []string, substr string) {
	t.Helper()
	for _, m := range msgs {
		if strings.Contains(m, substr) {
			return
		}
	}
	t.Errorf("expected a message containing %q, got: %v", substr, msgs)
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestHandleWebhook_InvalidJSON(t *testing.T) {
	env := newTestEnv(t)

	req, _ := http.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBufferString("{bad json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.engine.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestHandleWebhook_NonMessageUpdate(t *testing.T) {
	env := newTestEnv(t)

	w := sendUpdate(env.engine, nil)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "ignored") {
		t.Errorf("expected ignored status, got %s", w.Body.String())
	}
}

func TestHandleStart(t *testing.T) {
	env := newTestEnv(t)

	w := sendWebhook(env.engine, "/start")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	assertContains(t, waitForMessages(env.sent, 1, 500*time.Millisecond), "Welcome")
}

func TestHandleHelp(t *testing.T) {
	env := newTestEnv(t)

	sendWebhook(env.engine, "/help@habit_notes_bot")
	assertContains(t, waitForMessages(env.sent, 1, 500*time.Millisecond), "/reminders")
}

func TestHandleUnknownCommand(t *testing.T) {
	env := newTestEnv(t)

	sendWebhook(env.engine, "/dance now")
	assertContains(t, waitForMessages(env.sent, 1, 500*time.Millisecond), "Unknown command")
}

func TestHandleTextNote(t *testing.T) {
	env := newTestEnv(t)
	env.notes.createOut = note.CreateNoteOutput{Note: model.Note{ID: "n1", Tags: []string{"fitness"}}}
	env.reminders.reminders = []model.Reminder{
		{NoteID: "n1", Text: "exercise tomorrow", Priority: model.PriorityMedium, SuggestedTime: "tomorrow"},
		{NoteID: "other", Text: "call mom", Priority: model.PriorityMedium},
	}

	w := sendWebhook(env.engine, "I need to exercise tomorrow")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	msgs := waitForMessages(env.sent, 1, 500*time.Millisecond)
	assertContains(t, msgs, "Note saved")
	assertContains(t, msgs, "Tags: fitness")
	assertContains(t, msgs, "[medium] exercise tomorrow (tomorrow)")
	for _, m := range msgs {
		if strings.Contains(m, "call mom") {
			t.Errorf("reminders of other notes should not be echoed: %q", m)
		}
	}

	input, n := env.notes.lastCreated()
	if n != 1 || input.Content != "I need to exercise tomorrow" || input.Type != model.NoteTypeText {
		t.Errorf("unexpected create input %+v", input)
	}
}

func TestHandleVoiceNote(t *testing.T) {
	env := newTestEnv(t)
	env.notes.createOut = note.CreateNoteOutput{Note: model.Note{ID: "v1", Tags: []string{"voice"}}}

	sendUpdate(env.engine, &pkgTelegram.Message{
		Chat:    &pkgTelegram.Chat{ID: 123},
		Voice:   &pkgTelegram.Voice{FileID: "f1", Duration: 3},
		Caption: "drink more water",
	})
	assertContains(t, waitForMessages(env.sent, 1, 500*time.Millisecond), "Note saved")

	input, _ := env.notes.lastCreated()
	if input.Type != model.NoteTypeVoice || input.Transcript != "drink more water" {
		t.Errorf("unexpected create input %+v", input)
	}
}

func TestHandleVoiceNote_NoCaption(t *testing.T) {
	env := newTestEnv(t)

	sendUpdate(env.engine, &pkgTelegram.Message{
		Chat:  &pkgTelegram.Chat{ID: 123},
		Voice: &pkgTelegram.Voice{FileID: "f1"},
	})
	assertContains(t, waitForMessages(env.sent, 1, 500*time.Millisecond), "caption")

	if _, n := env.notes.lastCreated(); n != 0 {
		t.Errorf("expected no note to be created, got %d", n)
	}
}

func TestHandleCreate_Error(t *testing.T) {
	env := newTestEnv(t)
	env.notes.createErr = errors.New("disk full")

	sendWebhook(env.engine, "went for a walk")
	assertContains(t, waitForMessages(env.sent, 1, 500*time.Millisecond), "Something went wrong")
}

func TestHandleReminders(t *testing.T) {
	env := newTestEnv(t)
	env.reminders.reminders = []model.Reminder{
		{Text: "urgent: call the doctor asap", Priority: model.PriorityHigh},
		{Text: "exercise tomorrow", Priority: model.PriorityMedium, SuggestedTime: "tomorrow"},
	}

	sendWebhook(env.engine, "/reminders")
	msgs := waitForMessages(env.sent, 1, 500*time.Millisecond)
	assertContains(t, msgs, "2 pending reminder(s)")
	assertContains(t, msgs, "1. ⏰ [high] urgent: call the doctor asap")
}

func TestHandleReminders_Empty(t *testing.T) {
	env := newTestEnv(t)

	sendWebhook(env.engine, "/reminders")
	assertContains(t, waitForMessages(env.sent, 1, 500*time.Millisecond), "No pending reminders")
}

func TestHandleInsights(t *testing.T) {
	env := newTestEnv(t)
	env.insights.out = insight.Insights{
		TotalNotes:    3,
		TextNotes:     2,
		VoiceNotes:    1,
		CurrentStreak: 2,
		LongestStreak: 5,
		TopTags:       []insight.TagCount{{Tag: "fitness", Count: 2}},
		Highlights:    []string{"You are on a 2-day streak."},
	}

	sendWebhook(env.engine, "/insights")
	msgs := waitForMessages(env.sent, 1, 500*time.Millisecond)
	assertContains(t, msgs, "3 note(s): 2 text, 1 voice")
	assertContains(t, msgs, "fitness (2)")
	assertContains(t, msgs, "2-day streak")
}

func TestHandleInsights_Error(t *testing.T) {
	env := newTestEnv(t)
	env.insights.err = insight.ErrLoadNotes

	sendWebhook(env.engine, "/insights")
	assertContains(t, waitForMessages(env.sent, 1, 500*time.Millisecond), "Something went wrong")
}
