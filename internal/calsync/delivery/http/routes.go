package http

import (
	"github.com/gin-gonic/gin"

	"venue-calendar/internal/middleware"
)

// RegisterRoutes maps the sync trigger behind the internal key.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("", mw.InternalAuth(), h.Sync)
}
