package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	reminderHTTP "habit-notes/internal/reminder/delivery/http"
)

// setupReminderDomain registers /api/v1/reminders.
func (srv HTTPServer) setupReminderDomain(ctx context.Context, api *gin.RouterGroup) {
	h := reminderHTTP.New(srv.l, srv.reminderUC)
	reminderHTTP.RegisterRoutes(api, h, srv.mw)

	srv.l.Infof(ctx, "Reminder domain registered")
}
