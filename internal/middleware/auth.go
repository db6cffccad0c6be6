package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"venue-calendar/pkg/response"
)

// InternalKeyHeader carries the shared admin key.
const InternalKeyHeader = "X-Internal-Key"

// InternalAuth admits requests whose X-Internal-Key matches the configured key.
func (m Middleware) InternalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(InternalKeyHeader)
		if m.internalKey == "" || subtle.ConstantTimeCompare([]byte(key), []byte(m.internalKey)) != 1 {
			m.l.Warnf(c.Request.Context(), "middleware.InternalAuth: rejected %s %s from %s", c.Request.Method, c.FullPath(), c.ClientIP())
			response.Unauthorized(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
