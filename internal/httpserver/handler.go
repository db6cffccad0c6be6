package httpserver

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	syncHTTP "venue-calendar/internal/calsync/delivery/http"
	feedHTTP "venue-calendar/internal/feed/delivery/http"
	"venue-calendar/internal/model"
	"venue-calendar/pkg/log"
)

const requestIDHeader = "X-Request-ID"

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.requestLogger())

	// The feed is served from any path carrying the feed parameter, so the
	// gate runs ahead of routing.
	srv.gin.Use(srv.feedHandler.Gate())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Server mode: production")
	} else {
		srv.l.Infof(ctx, "Server mode: %s", srv.environment)
	}
}

// requestLogger tags the request context with a request id and logs one
// line per request without the query string, which may carry the feed token.
func (srv HTTPServer) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(requestIDHeader, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))

		c.Next()
		srv.l.Debugf(c.Request.Context(), "%s %s %d %s",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	feedHTTP.RegisterRoutes(api.Group("/feed"), srv.feedHandler, srv.mw)
	srv.l.Infof(ctx, "Feed admin routes registered at /api/v1/feed")

	if srv.syncHandler != nil {
		syncHTTP.RegisterRoutes(api.Group("/calendar-sync"), srv.syncHandler, srv.mw)
		srv.l.Infof(ctx, "Calendar sync route registered at POST /api/v1/calendar-sync")
	} else {
		srv.l.Infof(ctx, "Calendar sync not configured, skipping trigger route")
	}

	return nil
}
