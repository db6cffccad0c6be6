package http

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

// processSyncReq binds the sync request. An empty body means "use the
// configured target".
func (h *handler) processSyncReq(c *gin.Context) (syncReq, error) {
	var req syncReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, err
	}
	return req, nil
}
