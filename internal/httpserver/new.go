package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"habit-notes/internal/insight"
	"habit-notes/internal/middleware"
	"habit-notes/internal/note"
	tgDelivery "habit-notes/internal/note/delivery/telegram"
	"habit-notes/internal/reminder"
	"habit-notes/pkg/log"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration
	mw              middleware.Middleware

	// Domains
	noteUC     note.UseCase
	reminderUC reminder.UseCase
	insightUC  insight.UseCase

	// Telegram webhook (optional)
	telegramHandler tgDelivery.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	// Middleware
	RateLimitPerMin     int
	TelegramSecretToken string

	// Domains
	NoteUC     note.UseCase
	ReminderUC reminder.UseCase
	InsightUC  insight.UseCase

	// Telegram webhook (optional)
	TelegramHandler tgDelivery.Handler
}

// New creates a new HTTPServer instance with every route registered.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		noteUC:          cfg.NoteUC,
		reminderUC:      cfg.ReminderUC,
		insightUC:       cfg.InsightUC,
		telegramHandler: cfg.TelegramHandler,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = defaultShutdownTimeout
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mw = middleware.New(logger, middleware.Config{
		RateLimitPerMin:     cfg.RateLimitPerMin,
		TelegramSecretToken: cfg.TelegramSecretToken,
	})

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.noteUC == nil || srv.reminderUC == nil || srv.insightUC == nil {
		return errors.New("note, reminder and insight usecases are required")
	}
	return nil
}
