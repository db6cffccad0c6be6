package http

import (
	"github.com/gin-gonic/gin"

	"venue-calendar/pkg/response"
)

// Sync godoc
// @Summary     Sync the feed into a remote calendar
// @Description Upserts every feed occurrence into Google Calendar. Blank fields fall back to configuration. Per-item failures are reported, not fatal.
// @Tags        Calendar sync
// @Accept      json
// @Produce     json
// @Param       X-Internal-Key header string true "Internal API key"
// @Param       body body syncReq false "Sync target and options"
// @Success     200 {object} syncResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/calendar-sync [POST]
func (h *handler) Sync(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSyncReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Sync(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "calsync.http.Sync: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, newSyncResp(output))
}
