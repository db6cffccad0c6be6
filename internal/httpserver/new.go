package httpserver

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	syncHTTP "venue-calendar/internal/calsync/delivery/http"
	feedHTTP "venue-calendar/internal/feed/delivery/http"
	"venue-calendar/internal/middleware"
	"venue-calendar/pkg/log"
)

// HealthChecker reports whether a backing store is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Storage
	db HealthChecker

	// Domains
	mw          middleware.Middleware
	feedHandler feedHTTP.Handler
	syncHandler syncHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	DB HealthChecker

	Middleware  middleware.Middleware
	FeedHandler feedHTTP.Handler
	// SyncHandler is optional; without it the sync trigger is not exposed.
	SyncHandler syncHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		db:          cfg.DB,
		mw:          cfg.Middleware,
		feedHandler: cfg.FeedHandler,
		syncHandler: cfg.SyncHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.feedHandler == nil {
		return errors.New("feed handler is required")
	}
	return nil
}
