package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "habit-notes/pkg/errors"
)

var errIDRequired = pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")

// processCreateReq binds the create note request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processListReq binds the list notes query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processUpdateReq binds the update request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errIDRequired
	}
	return req, nil
}

// processToggleChecklistReq binds the checklist toggle body + URI param.
func (h *handler) processToggleChecklistReq(c *gin.Context) (toggleChecklistReq, error) {
	var req toggleChecklistReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.NoteID = c.Param("id")
	if req.NoteID == "" {
		return req, errIDRequired
	}
	return req, nil
}

func (h *handler) processIDParam(c *gin.Context) (string, error) {
	id := c.Param("id")
	if id == "" {
		return "", errIDRequired
	}
	return id, nil
}
