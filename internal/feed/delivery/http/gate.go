package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"venue-calendar/internal/feed"
)

const (
	calendarContentType = "text/calendar; charset=utf-8"
	plainContentType    = "text/plain; charset=utf-8"
	feedCacheControl    = "private, max-age=900"
)

// Gate serves the calendar feed on any path carrying the feed query
// parameter. Other requests pass through untouched.
func (h *handler) Gate() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.GetQuery(h.cfg.QueryParam); !ok {
			c.Next()
			return
		}
		ctx := c.Request.Context()

		if !h.uc.Enabled() {
			h.deny(c, http.StatusNotFound, "Not found")
			return
		}
		if h.limiter != nil && !h.limiter.Allow(c.ClientIP()) {
			h.deny(c, http.StatusTooManyRequests, "Too many requests")
			return
		}

		if err := h.uc.Authorize(ctx, c.Query(h.cfg.TokenParam)); err != nil {
			switch {
			case errors.Is(err, feed.ErrFeedDisabled):
				h.deny(c, http.StatusNotFound, "Not found")
			case errors.Is(err, feed.ErrAccessDenied):
				h.deny(c, http.StatusForbidden, "Access denied")
			default:
				h.l.Errorf(ctx, "feed.http.Gate: authorize: %v", err)
				h.deny(c, http.StatusForbidden, "Access denied")
			}
			return
		}

		body := h.uc.Feed(ctx)

		header := c.Writer.Header()
		header.Del("Pragma")
		header.Del("Expires")
		header.Set("Cache-Control", feedCacheControl)
		header.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", h.cfg.Filename))
		c.Data(http.StatusOK, calendarContentType, body)
		c.Abort()
	}
}

func (h *handler) deny(c *gin.Context, status int, message string) {
	c.Header("Cache-Control", "no-store")
	c.Data(status, plainContentType, []byte(message))
	c.Abort()
}
