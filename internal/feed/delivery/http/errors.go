package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"venue-calendar/internal/feed"
	"venue-calendar/pkg/response"
)

// mapError translates feed errors into HTTP status codes.
func (h *handler) mapError(err error) int {
	switch {
	case errors.Is(err, feed.ErrInvalidToken):
		return http.StatusBadRequest
	case errors.Is(err, feed.ErrTokenNotFound), errors.Is(err, feed.ErrFeedDisabled):
		return http.StatusNotFound
	case errors.Is(err, feed.ErrAccessDenied):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func (h *handler) writeError(c *gin.Context, err error) {
	status := h.mapError(err)
	if status == http.StatusInternalServerError {
		response.InternalError(c, err)
		return
	}
	response.ErrorWithStatus(c, status, err, nil)
}
