package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processRunScanRequest(c *gin.Context) (runScanReq, error) {
	var req runScanReq

	ctx := c.Request.Context()
	if c.Request.ContentLength == 0 {
		return req, nil
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "scan.delivery.http.processRunScanRequest: ShouldBindJSON failed: %v", err)
		return req, errInvalidRequest
	}

	return req, nil
}

func (h *handler) processAnalyzeRequest(c *gin.Context) (analyzeReq, error) {
	var req analyzeReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "scan.delivery.http.processAnalyzeRequest: ShouldBindJSON failed: %v", err)
		return req, errInvalidRequest
	}

	return req, nil
}

func (h *handler) processHistoryRequest(c *gin.Context) (historyReq, error) {
	var req historyReq

	ctx := c.Request.Context()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Errorf(ctx, "scan.delivery.http.processHistoryRequest: ShouldBindQuery failed: %v", err)
		return req, errInvalidRequest
	}

	return req, nil
}

func (h *handler) processTakedownRequest(c *gin.Context) takedownReq {
	return takedownReq{
		ScanID: c.Param("scan_id"),
		ItemID: c.Param("item_id"),
	}
}
