package http

import (
	"github.com/gin-gonic/gin"

	"venue-calendar/internal/calsync"
	"venue-calendar/pkg/log"
)

// Handler is the public interface for the calendar sync HTTP delivery layer.
type Handler interface {
	Sync(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc calsync.UseCase
}

// New creates a new HTTP handler for the calendar sync domain.
func New(l log.Logger, uc calsync.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
