package http

import (
	"aegis-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Get settings
// @Tags Settings
// @Produce json
// @Success 200 {object} settingsResp
// @Failure 500 {object} response.Resp
// @Router /api/v1/settings [get]
func (h *handler) GetSettings(c *gin.Context) {
	ctx := c.Request.Context()

	s, err := h.uc.Get(ctx)
	if err != nil {
		h.l.Errorf(ctx, "settings.delivery.http.GetSettings: usecase Get failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newSettingsResp(s))
}

// @Summary Update settings
// @Description Partial update; omitted fields keep their current value
// @Tags Settings
// @Accept json
// @Produce json
// @Param body body updateSettingsReq true "Settings patch"
// @Success 200 {object} settingsResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/settings [put]
func (h *handler) UpdateSettings(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateSettingsRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	s, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "settings.delivery.http.UpdateSettings: usecase Update failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newSettingsResp(s))
}

// @Summary Reset settings to defaults
// @Tags Settings
// @Produce json
// @Success 200 {object} settingsResp
// @Router /api/v1/settings [delete]
func (h *handler) ResetSettings(c *gin.Context) {
	ctx := c.Request.Context()

	s, err := h.uc.Reset(ctx)
	if err != nil {
		h.l.Errorf(ctx, "settings.delivery.http.ResetSettings: usecase Reset failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newSettingsResp(s))
}
