package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"venue-calendar/internal/calsync"
	"venue-calendar/pkg/response"
)

func (h *handler) writeError(c *gin.Context, err error) {
	if errors.Is(err, calsync.ErrInvalidCredentials) {
		response.ErrorWithStatus(c, http.StatusBadRequest, calsync.ErrInvalidCredentials, nil)
		return
	}
	response.InternalError(c, err)
}
