package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"habit-notes/internal/insight"
)

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

type mockUseCase struct {
	out insight.Insights
	err error
}

func (m *mockUseCase) Generate(ctx context.Context) (insight.Insights, error) { return m.out, m.err }

func get(uc *mockUseCase) (*httptest.ResponseRecorder, map[string]any) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(&mockLogger{}, uc))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/insights", nil))
	var body map[string]any
	json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestGenerate(t *testing.T) {
	w, body := get(&mockUseCase{out: insight.Insights{
		TotalNotes:     2,
		TopTags:        []insight.TagCount{{Tag: "fitness", Count: 2}},
		MostActiveHour: 7,
		Reminders:      insight.ReminderStats{Total: 4, Completed: 1, CompletionRate: 25},
		Highlights:     []string{"You write most often around 07:00."},
	}})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	data, _ := body["data"].(map[string]any)
	if data["total_notes"] != float64(2) || data["most_active_hour"] != float64(7) {
		t.Errorf("unexpected body %v", data)
	}
	tags, _ := data["top_tags"].([]any)
	if len(tags) != 1 || tags[0].(map[string]any)["tag"] != "fitness" {
		t.Errorf("unexpected top_tags %v", data["top_tags"])
	}
	rems, _ := data["reminders"].(map[string]any)
	if rems["completion_rate"] != float64(25) {
		t.Errorf("unexpected reminders %v", rems)
	}
}

func TestGenerateNoActivity(t *testing.T) {
	w, body := get(&mockUseCase{out: insight.Insights{MostActiveHour: -1}})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	data, _ := body["data"].(map[string]any)
	if v, ok := data["most_active_hour"]; !ok || v != nil {
		t.Errorf("expected null most_active_hour, got %v", v)
	}
	if hl, ok := data["highlights"].([]any); !ok || len(hl) != 0 {
		t.Errorf("expected empty highlights array, got %v", data["highlights"])
	}
}

func TestGenerateError(t *testing.T) {
	w, _ := get(&mockUseCase{err: errors.New("disk on fire")})
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}
}
