package http

import (
	"github.com/gin-gonic/gin"

	"habit-notes/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Flag changes are cheap; scheduling talks to the calendar and is rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	reminders := rg.Group("/reminders")
	{
		reminders.GET("", h.List)
		reminders.POST("/:id/complete", h.Complete)
		reminders.POST("/:id/uncomplete", h.Uncomplete)
		reminders.POST("/:id/dismiss", h.Dismiss)
		reminders.POST("/:id/schedule", mw.RateLimit(), h.Schedule)
	}
}
