package http

import (
	"aegis-srv/internal/model"
	"aegis-srv/internal/report"
	"aegis-srv/pkg/paginator"
)

type generateReportReq struct {
	ScanID string `json:"scan_id" binding:"required"`
	Kind   string `json:"kind" binding:"required"`
}

func (r generateReportReq) toInput() report.GenerateInput {
	return report.GenerateInput{
		ScanID: r.ScanID,
		Kind:   model.ReportKind(r.Kind),
	}
}

func (r generateReportReq) toPreviewInput() report.PreviewInput {
	return report.PreviewInput{
		ScanID: r.ScanID,
		Kind:   model.ReportKind(r.Kind),
	}
}

type listReportsReq struct {
	ScanID string `form:"scan_id"`
	Kind   string `form:"kind"`
	Status string `form:"status"`
	paginator.PaginateQuery
}

func (r listReportsReq) toInput() report.ListReportsInput {
	return report.ListReportsInput{
		ScanID: r.ScanID,
		Kind:   model.ReportKind(r.Kind),
		Status: r.Status,
		Paging: r.PaginateQuery,
	}
}

type getReportReq struct {
	ReportID string
}

func (r getReportReq) toInput() report.GetReportInput {
	return report.GetReportInput{
		ReportID: r.ReportID,
	}
}

type downloadReportReq struct {
	ReportID string
	Format   string
}

func (r downloadReportReq) toInput() report.DownloadReportInput {
	return report.DownloadReportInput{
		ReportID: r.ReportID,
		Format:   r.Format,
	}
}

type generateReportResp struct {
	ReportID string `json:"report_id,omitempty"`
	Status   string `json:"status"`
	Message  string `json:"message"`
}

type previewResp struct {
	ScanID    string `json:"scan_id"`
	Kind      string `json:"kind"`
	Generator string `json:"generator"`
	FileName  string `json:"file_name"`
	Content   string `json:"content"`
}

type reportResp struct {
	ID               string  `json:"id"`
	ScanID           string  `json:"scan_id"`
	Kind             string  `json:"kind"`
	Generator        string  `json:"generator"`
	Status           string  `json:"status"`
	ErrorMessage     string  `json:"error_message,omitempty"`
	TextSizeBytes    int64   `json:"text_size_bytes,omitempty"`
	XLSXSizeBytes    int64   `json:"xlsx_size_bytes,omitempty"`
	FlaggedCount     int     `json:"flagged_count"`
	PiracyCount      int     `json:"piracy_count"`
	GenerationTimeMs int64   `json:"generation_time_ms,omitempty"`
	CompletedAt      *string `json:"completed_at,omitempty"`
	CreatedAt        string  `json:"created_at"`
}

type listReportsResp struct {
	Reports   []reportResp                `json:"reports"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

type downloadResp struct {
	DownloadURL string `json:"download_url"`
	ExpiresAt   string `json:"expires_at"`
	FileName    string `json:"file_name"`
	FileSize    int64  `json:"file_size"`
}

func (h *handler) newGenerateReportResp(o report.GenerateOutput) generateReportResp {
	return generateReportResp{
		ReportID: o.ReportID,
		Status:   o.Status,
		Message:  o.Message,
	}
}

func (h *handler) newPreviewResp(o report.PreviewOutput) previewResp {
	return previewResp{
		ScanID:    o.ScanID,
		Kind:      string(o.Kind),
		Generator: o.Generator,
		FileName:  o.FileName,
		Content:   o.Content,
	}
}

func (h *handler) newReportResp(o report.ReportOutput) reportResp {
	return reportResp{
		ID:               o.ID,
		ScanID:           o.ScanID,
		Kind:             string(o.Kind),
		Generator:        o.Generator,
		Status:           o.Status,
		ErrorMessage:     o.ErrorMessage,
		TextSizeBytes:    o.TextSizeBytes,
		XLSXSizeBytes:    o.XLSXSizeBytes,
		FlaggedCount:     o.FlaggedCount,
		PiracyCount:      o.PiracyCount,
		GenerationTimeMs: o.GenerationTimeMs,
		CompletedAt:      o.CompletedAt,
		CreatedAt:        o.CreatedAt,
	}
}

func (h *handler) newListReportsResp(o report.ListReportsOutput) listReportsResp {
	resp := listReportsResp{
		Reports:   make([]reportResp, 0, len(o.Reports)),
		Paginator: o.Paginator.ToResponse(),
	}
	for _, r := range o.Reports {
		resp.Reports = append(resp.Reports, h.newReportResp(r))
	}
	return resp
}

func (h *handler) newDownloadResp(o report.DownloadOutput) downloadResp {
	return downloadResp{
		DownloadURL: o.DownloadURL,
		ExpiresAt:   o.ExpiresAt,
		FileName:    o.FileName,
		FileSize:    o.FileSize,
	}
}
