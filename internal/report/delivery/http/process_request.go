package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processGenerateReportRequest(c *gin.Context) (generateReportReq, error) {
	var req generateReportReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "report.delivery.http.processGenerateReportRequest: ShouldBindJSON failed: %v", err)
		return req, errInvalidRequest
	}

	return req, nil
}

func (h *handler) processListReportsRequest(c *gin.Context) (listReportsReq, error) {
	var req listReportsReq

	ctx := c.Request.Context()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Errorf(ctx, "report.delivery.http.processListReportsRequest: ShouldBindQuery failed: %v", err)
		return req, errInvalidRequest
	}

	return req, nil
}

func (h *handler) processGetReportRequest(c *gin.Context) getReportReq {
	return getReportReq{
		ReportID: c.Param("report_id"),
	}
}

func (h *handler) processDownloadReportRequest(c *gin.Context) downloadReportReq {
	return downloadReportReq{
		ReportID: c.Param("report_id"),
		Format:   c.Query("format"),
	}
}
