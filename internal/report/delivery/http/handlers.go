package http

import (
	"aegis-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Generate a report
// @Description Start async generation of a cybercrime or copyright report for a stored scan
// @Tags Report
// @Accept json
// @Produce json
// @Param body body generateReportReq true "Report generation request"
// @Success 200 {object} generateReportResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/reports [post]
func (h *handler) GenerateReport(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGenerateReportRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Generate(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.GenerateReport: usecase Generate failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newGenerateReportResp(o))
}

// @Summary Preview a report
// @Description Render the report text synchronously without storing it
// @Tags Report
// @Accept json
// @Produce json
// @Param body body generateReportReq true "Report preview request"
// @Success 200 {object} previewResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/reports/preview [post]
func (h *handler) PreviewReport(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGenerateReportRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Preview(ctx, req.toPreviewInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.PreviewReport: usecase Preview failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newPreviewResp(o))
}

// @Summary List reports
// @Description Page through reports, newest first
// @Tags Report
// @Produce json
// @Param scan_id query string false "Scan ID"
// @Param kind query string false "cybercrime or copyright"
// @Param status query string false "PROCESSING, COMPLETED or FAILED"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} listReportsResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/reports [get]
func (h *handler) ListReports(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReportsRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.ListReports(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.ListReports: usecase ListReports failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListReportsResp(o))
}

// @Summary Get report status and metadata
// @Tags Report
// @Produce json
// @Param report_id path string true "Report ID"
// @Success 200 {object} reportResp
// @Failure 404 {object} response.Resp
// @Router /api/v1/reports/{report_id} [get]
func (h *handler) GetReport(c *gin.Context) {
	ctx := c.Request.Context()

	o, err := h.uc.GetReport(ctx, h.processGetReportRequest(c).toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.GetReport: usecase GetReport failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newReportResp(o))
}

// @Summary Download report file
// @Description Presigned URL for the text (default) or xlsx artifact of a completed report
// @Tags Report
// @Produce json
// @Param report_id path string true "Report ID"
// @Param format query string false "text or xlsx"
// @Success 200 {object} downloadResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/reports/{report_id}/download [get]
func (h *handler) DownloadReport(c *gin.Context) {
	ctx := c.Request.Context()

	o, err := h.uc.DownloadReport(ctx, h.processDownloadReportRequest(c).toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.DownloadReport: usecase DownloadReport failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newDownloadResp(o))
}
