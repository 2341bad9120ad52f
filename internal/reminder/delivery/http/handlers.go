package http

import (
	"github.com/gin-gonic/gin"

	"habit-notes/pkg/response"
)

// List godoc
// @Summary     List reminders
// @Description Returns reminders derived from the notes, highest priority first. Completed and dismissed reminders are hidden unless requested.
// @Tags        Reminders
// @Produce     json
// @Param       include_completed query bool   false "Include completed reminders"
// @Param       include_dismissed query bool   false "Include dismissed reminders"
// @Param       category          query string false "Filter by category"
// @Param       priority          query string false "Filter by priority (high/medium/low)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/reminders [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Complete godoc
// @Summary     Complete a reminder
// @Tags        Reminders
// @Produce     json
// @Param       id path string true "Reminder ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/reminders/{id}/complete [POST]
func (h *handler) Complete(c *gin.Context) {
	h.setCompleted(c, true)
}

// Uncomplete godoc
// @Summary     Mark a reminder as not completed
// @Tags        Reminders
// @Produce     json
// @Param       id path string true "Reminder ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/reminders/{id}/uncomplete [POST]
func (h *handler) Uncomplete(c *gin.Context) {
	h.setCompleted(c, false)
}

func (h *handler) setCompleted(c *gin.Context, completed bool) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	r, err := h.uc.Complete(ctx, id, completed)
	if err != nil {
		h.l.Errorf(ctx, "uc.Complete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDetailResp(r))
}

// Dismiss godoc
// @Summary     Dismiss a reminder
// @Description Hides the reminder. The flag survives recomputation as long as the note still yields the same reminder text.
// @Tags        Reminders
// @Produce     json
// @Param       id path string true "Reminder ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/reminders/{id}/dismiss [POST]
func (h *handler) Dismiss(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	r, err := h.uc.Dismiss(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Dismiss: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDetailResp(r))
}

// Schedule godoc
// @Summary     Schedule a reminder
// @Description Creates a Google Calendar event at the reminder's suggested time.
// @Tags        Reminders
// @Produce     json
// @Param       id path string true "Reminder ID"
// @Success     200 {object} scheduleResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     422 {object} response.Resp "Reminder has no suggested time"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     503 {object} response.Resp "Calendar not configured"
// @Router      /api/v1/reminders/{id}/schedule [POST]
func (h *handler) Schedule(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Schedule(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Schedule: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newScheduleResp(output))
}
