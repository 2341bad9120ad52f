package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "habit-notes/pkg/errors"
)

// processListReq binds the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processIDParam reads the :id path parameter.
func (h *handler) processIDParam(c *gin.Context) (string, error) {
	id := c.Param("id")
	if id == "" {
		return "", pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")
	}
	return id, nil
}
