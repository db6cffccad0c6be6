package http

import (
	"github.com/gin-gonic/gin"
)

// processFeedURLReq binds the feed URL query parameters.
func (h *handler) processFeedURLReq(c *gin.Context) (feedURLReq, error) {
	var req feedURLReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processSetTokenReq binds and validates the set token request body.
func (h *handler) processSetTokenReq(c *gin.Context) (setTokenReq, error) {
	var req setTokenReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
