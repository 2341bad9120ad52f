package http

import (
	"github.com/gin-gonic/gin"

	"habit-notes/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods. Writes are rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	notes := rg.Group("/notes")
	{
		notes.POST("", mw.RateLimit(), h.Create)
		notes.GET("", h.List)
		notes.GET("/:id", h.Detail)
		notes.PUT("/:id", mw.RateLimit(), h.Update)
		notes.DELETE("/:id", mw.RateLimit(), h.Delete)
		notes.POST("/:id/checklist", mw.RateLimit(), h.ToggleChecklistItem)
	}
}
