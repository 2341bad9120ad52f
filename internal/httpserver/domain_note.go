package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	noteHTTP "habit-notes/internal/note/delivery/http"
)

// setupNoteDomain registers /api/v1/notes.
func (srv HTTPServer) setupNoteDomain(ctx context.Context, api *gin.RouterGroup) {
	h := noteHTTP.New(srv.l, srv.noteUC)
	noteHTTP.RegisterRoutes(api, h, srv.mw)

	srv.l.Infof(ctx, "Note domain registered")
}
