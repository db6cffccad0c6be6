package http

import (
	"github.com/gin-gonic/gin"

	"venue-calendar/internal/feed"
	"venue-calendar/pkg/log"
)

// Handler is the public interface for the feed HTTP delivery layer.
type Handler interface {
	Gate() gin.HandlerFunc
	GetFeedURL(c *gin.Context)
	RegenerateToken(c *gin.Context)
	SetToken(c *gin.Context)
}

// Limiter decides whether a client may make one more feed request.
type Limiter interface {
	Allow(key string) bool
}

// GateConfig names the query parameters and the download filename.
type GateConfig struct {
	QueryParam string
	TokenParam string
	Filename   string
}

type handler struct {
	l       log.Logger
	uc      feed.UseCase
	cfg     GateConfig
	limiter Limiter
}

// New creates a new HTTP handler for the feed domain. A nil limiter
// disables rate limiting.
func New(l log.Logger, uc feed.UseCase, cfg GateConfig, limiter Limiter) *handler {
	if cfg.QueryParam == "" {
		cfg.QueryParam = "calendar_feed"
	}
	if cfg.TokenParam == "" {
		cfg.TokenParam = "token"
	}
	if cfg.Filename == "" {
		cfg.Filename = "events.ics"
	}
	return &handler{
		l:       l,
		uc:      uc,
		cfg:     cfg,
		limiter: limiter,
	}
}
