package http

import (
	"github.com/gin-gonic/gin"

	"venue-calendar/internal/middleware"
)

// RegisterRoutes maps the admin token endpoints. All of them require the
// internal key. The public feed itself is served by Gate.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.Use(mw.InternalAuth())
	{
		rg.GET("/url", h.GetFeedURL)
		rg.POST("/token/regenerate", h.RegenerateToken)
		rg.PUT("/token", h.SetToken)
	}
}
