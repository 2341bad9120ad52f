package telegram

import (
	"github.com/gin-gonic/gin"

	"habit-notes/internal/insight"
	"habit-notes/internal/note"
	"habit-notes/internal/reminder"
	pkgLog "habit-notes/pkg/log"
	pkgTelegram "habit-notes/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

type handler struct {
	l         pkgLog.Logger
	notes     note.UseCase
	reminders reminder.UseCase
	insights  insight.UseCase
	bot       *pkgTelegram.Bot
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, notes note.UseCase, reminders reminder.UseCase, insights insight.UseCase, bot *pkgTelegram.Bot) Handler {
	return &handler{
		l:         l,
		notes:     notes,
		reminders: reminders,
		insights:  insights,
		bot:       bot,
	}
}
