package http

import (
	"github.com/gin-gonic/gin"

	"habit-notes/pkg/response"
)

// Create godoc
// @Summary     Create a note
// @Description Stores a text or voice note. Tags are merged with tags derived from the note text.
// @Tags        Notes
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Note data"
// @Success     200  {object} detailResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/notes [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDetailResp(output.Note))
}

// List godoc
// @Summary     List notes
// @Description Returns notes newest first, optionally filtered by type or tag.
// @Tags        Notes
// @Produce     json
// @Param       type   query string false "Filter by type (text/voice)"
// @Param       tag    query string false "Filter by tag"
// @Param       limit  query int    false "Page size (default: 20)"
// @Param       offset query int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/notes [GET]
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

// Detail godoc
// @Summary     Get a note
// @Tags        Notes
// @Produce     json
// @Param       id path string true "Note ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/notes/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDetailResp(output.Note))
}

// Update godoc
// @Summary     Update a note
// @Description Edits the content and/or replaces the user tags. Omitted fields are left unchanged.
// @Tags        Notes
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Note ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/notes/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDetailResp(output.Note))
}

// Delete godoc
// @Summary     Delete a note
// @Tags        Notes
// @Produce     json
// @Param       id path string true "Note ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/notes/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// ToggleChecklistItem godoc
// @Summary     Check or uncheck a checklist item
// @Description Sets every markdown checkbox of the note whose text contains the given text.
// @Tags        Notes
// @Accept      json
// @Produce     json
// @Param       id   path string             true "Note ID"
// @Param       body body toggleChecklistReq true "Item text and state"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Note or item not found"
// @Router      /api/v1/notes/{id}/checklist [POST]
func (h *handler) ToggleChecklistItem(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processToggleChecklistReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ToggleChecklistItem(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ToggleChecklistItem: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDetailResp(output.Note))
}
