package http

import (
	"github.com/gin-gonic/gin"

	"habit-notes/pkg/response"
)

// Generate godoc
// @Summary     Note insights
// @Description Frequency counts over notes and reminders: tags, categories, weekdays, streaks and checklist progress.
// @Tags        Insights
// @Produce     json
// @Success     200 {object} insightsResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/insights [GET]
func (h *handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Generate(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Generate: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newInsightsResp(output))
}
