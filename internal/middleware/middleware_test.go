package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"

	"habit-notes/internal/middleware"
	"habit-notes/pkg/log"
)

type recordingLogger struct {
	mu    sync.Mutex
	lines []string
	ids   []string
}

func (m *recordingLogger) record(ctx context.Context, s string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lines = append(m.lines, s)
	m.ids = append(m.ids, log.RequestID(ctx))
}

func (m *recordingLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *recordingLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *recordingLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *recordingLogger) Infof(ctx context.Context, template string, arg ...any)   { m.record(ctx, template) }
func (m *recordingLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *recordingLogger) Warnf(ctx context.Context, template string, arg ...any)   { m.record(ctx, template) }
func (m *recordingLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *recordingLogger) Errorf(ctx context.Context, template string, arg ...any)  { m.record(ctx, template) }
func (m *recordingLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *recordingLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *recordingLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *recordingLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *recordingLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *recordingLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func newEngine(mw middleware.Middleware, handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers...)
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.POST("/webhook", mw.TelegramSecret(), func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	return r
}

func TestRequestID(t *testing.T) {
	l := &recordingLogger{}
	mw := middleware.New(l, middleware.Config{})
	r := newEngine(mw, mw.RequestID(), mw.AccessLog())

	t.Run("Generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if w.Header().Get(middleware.RequestIDHeader) == "" {
			t.Errorf("expected a generated request id")
		}
	})

	t.Run("Propagated to logs", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(middleware.RequestIDHeader, "req-42")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if got := w.Header().Get(middleware.RequestIDHeader); got != "req-42" {
			t.Errorf("expected echoed id, got %q", got)
		}
		l.mu.Lock()
		defer l.mu.Unlock()
		if len(l.ids) == 0 || l.ids[len(l.ids)-1] != "req-42" {
			t.Errorf("access log did not carry the request id: %v", l.ids)
		}
	})
}

func TestRateLimit(t *testing.T) {
	l := &recordingLogger{}
	mw := middleware.New(l, middleware.Config{RateLimitPerMin: 10})
	r := newEngine(mw, mw.RateLimit())

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		codes = append(codes, w.Code)
	}
	if codes[0] != http.StatusOK {
		t.Errorf("first request should pass, got %d", codes[0])
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Errorf("expected 429 once the burst is spent, got %v", codes)
	}
}

func TestRateLimitDisabled(t *testing.T) {
	mw := middleware.New(&recordingLogger{}, middleware.Config{})
	r := newEngine(mw, mw.RateLimit())

	for i := 0; i < 50; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d rejected with %d", i, w.Code)
		}
	}
}

func TestTelegramSecret(t *testing.T) {
	mw := middleware.New(&recordingLogger{}, middleware.Config{TelegramSecretToken: "s3cret"})
	r := newEngine(mw)

	tests := []struct {
		name  string
		token string
		want  int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"wrong", "nope", http.StatusUnauthorized},
		{"valid", "s3cret", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/webhook", nil)
			if tt.token != "" {
				req.Header.Set(middleware.TelegramSecretHeader, tt.token)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tt.want {
				t.Errorf("got %d, want %d", w.Code, tt.want)
			}
		})
	}
}
