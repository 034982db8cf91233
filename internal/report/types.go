package report

import (
	"aegis-srv/internal/model"
	"aegis-srv/pkg/paginator"
)

const (
	StatusProcessing = "PROCESSING"
	StatusCompleted  = "COMPLETED"
	StatusFailed     = "FAILED"

	FormatText = "text"
	FormatXLSX = "xlsx"
)

type GenerateInput struct {
	ScanID string
	Kind   model.ReportKind
}

type GenerateOutput struct {
	ReportID string `json:"report_id"`
	Status   string `json:"status"`
	Message  string `json:"message"`
}

type PreviewInput struct {
	ScanID string
	Kind   model.ReportKind
}

type PreviewOutput struct {
	ScanID    string
	Kind      model.ReportKind
	Generator string
	FileName  string
	Content   string
}

type GetReportInput struct {
	ReportID string
}

type ListReportsInput struct {
	ScanID string
	Kind   model.ReportKind
	Status string
	Paging paginator.PaginateQuery
}

type ListReportsOutput struct {
	Reports   []ReportOutput
	Paginator paginator.Paginator
}

type DownloadReportInput struct {
	ReportID string
	Format   string
}

type ReportOutput struct {
	ID               string
	ScanID           string
	Kind             model.ReportKind
	Generator        string
	Status           string
	ErrorMessage     string
	TextSizeBytes    int64
	XLSXSizeBytes    int64
	FlaggedCount     int
	PiracyCount      int
	GenerationTimeMs int64
	CompletedAt      *string
	CreatedAt        string
}

type DownloadOutput struct {
	DownloadURL string
	ExpiresAt   string
	FileName    string
	FileSize    int64
}
