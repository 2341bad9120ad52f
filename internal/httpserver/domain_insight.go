package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	insightHTTP "habit-notes/internal/insight/delivery/http"
)

// setupInsightDomain registers /api/v1/insights.
func (srv HTTPServer) setupInsightDomain(ctx context.Context, api *gin.RouterGroup) {
	h := insightHTTP.New(srv.l, srv.insightUC)
	insightHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Insight domain registered")
}
