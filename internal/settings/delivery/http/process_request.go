package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processUpdateSettingsRequest(c *gin.Context) (updateSettingsReq, error) {
	var req updateSettingsReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "settings.delivery.http.processUpdateSettingsRequest: ShouldBindJSON failed: %v", err)
		return req, errInvalidRequest
	}

	return req, nil
}
