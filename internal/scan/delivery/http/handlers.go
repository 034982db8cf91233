package http

import (
	"aegis-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Run a scan
// @Description Match the monitored corpus against a query and watchlist, then synthesise threat and piracy findings
// @Tags Scan
// @Accept json
// @Produce json
// @Param body body runScanReq false "Scan request; empty mode uses the configured default"
// @Success 200 {object} scanResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/scans [post]
func (h *handler) RunScan(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRunScanRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	res, err := h.uc.Run(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "scan.delivery.http.RunScan: usecase Run failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newScanResp(res))
}

// @Summary Analyze a YouTube video
// @Description Classify video comments with the external analyzer and store the result as a scan
// @Tags Scan
// @Accept json
// @Produce json
// @Param body body analyzeReq true "Video to analyze"
// @Success 200 {object} scanResp
// @Failure 400 {object} response.Resp
// @Failure 503 {object} response.Resp
// @Router /api/v1/scans/analyze [post]
func (h *handler) AnalyzeVideo(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAnalyzeRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	res, err := h.uc.Analyze(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "scan.delivery.http.AnalyzeVideo: usecase Analyze failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newScanResp(res))
}

// @Summary Recent scans
// @Tags Scan
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} historyResp
// @Router /api/v1/scans/history [get]
func (h *handler) ListHistory(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processHistoryRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.History(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "scan.delivery.http.ListHistory: usecase History failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newHistoryResp(o))
}

// @Summary Get a stored scan
// @Tags Scan
// @Produce json
// @Param scan_id path string true "Scan ID"
// @Success 200 {object} scanResp
// @Failure 404 {object} response.Resp
// @Router /api/v1/scans/{scan_id} [get]
func (h *handler) GetScan(c *gin.Context) {
	ctx := c.Request.Context()

	res, err := h.uc.GetResult(ctx, c.Param("scan_id"))
	if err != nil {
		h.l.Errorf(ctx, "scan.delivery.http.GetScan: usecase GetResult failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newScanResp(res))
}

// @Summary Prepare a takedown notice
// @Description Mock takedown for a piracy item id or flagged account handle of a stored scan
// @Tags Scan
// @Produce json
// @Param scan_id path string true "Scan ID"
// @Param item_id path string true "Piracy item id or account handle"
// @Success 200 {object} takedownResp
// @Failure 404 {object} response.Resp
// @Router /api/v1/scans/{scan_id}/takedown/{item_id} [post]
func (h *handler) Takedown(c *gin.Context) {
	ctx := c.Request.Context()

	o, err := h.uc.Takedown(ctx, h.processTakedownRequest(c).toInput())
	if err != nil {
		h.l.Errorf(ctx, "scan.delivery.http.Takedown: usecase Takedown failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newTakedownResp(o))
}
