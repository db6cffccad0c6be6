package http

import (
	"github.com/gin-gonic/gin"

	"venue-calendar/internal/feed"
	"venue-calendar/pkg/response"
)

// GetFeedURL godoc
// @Summary     Get the calendar feed URL
// @Description Returns the subscription URL. With create=true a token is generated when none exists.
// @Tags        Feed
// @Produce     json
// @Param       X-Internal-Key header string true "Internal API key"
// @Param       create query bool false "Generate a token if none exists"
// @Success     200 {object} feedURLResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "No token yet"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/feed/url [GET]
func (h *handler) GetFeedURL(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processFeedURLReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.FeedURL(ctx, feed.FeedURLInput{Create: req.Create})
	if err != nil {
		h.l.Errorf(ctx, "feed.http.GetFeedURL: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, newFeedURLResp(output))
}

// RegenerateToken godoc
// @Summary     Regenerate the feed token
// @Description Replaces the feed token. Previously distributed URLs stop working.
// @Tags        Feed
// @Produce     json
// @Param       X-Internal-Key header string true "Internal API key"
// @Success     200 {object} feedURLResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/feed/token/regenerate [POST]
func (h *handler) RegenerateToken(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.RegenerateToken(ctx)
	if err != nil {
		h.l.Errorf(ctx, "feed.http.RegenerateToken: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, newFeedURLResp(output))
}

// SetToken godoc
// @Summary     Set the feed token
// @Description Stores an externally supplied token, keeping letters and digits only (max 64).
// @Tags        Feed
// @Accept      json
// @Produce     json
// @Param       X-Internal-Key header string true "Internal API key"
// @Param       body body setTokenReq true "Token"
// @Success     200 {object} feedURLResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/feed/token [PUT]
func (h *handler) SetToken(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSetTokenReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SetToken(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "feed.http.SetToken: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, newFeedURLResp(output))
}
