package report

import (
	"context"

	"aegis-srv/internal/model"
)

// Generator turns a scan context into report text.
//
//go:generate mockery --name Generator
type Generator interface {
	Name() string
	Generate(ctx context.Context, kind model.ReportKind, sc model.ScanContext) (string, error)
}

// ScanReader resolves a stored scan result by id.
type ScanReader interface {
	GetResult(ctx context.Context, scanID string) (model.ScanResult, error)
}

//go:generate mockery --name UseCase
type UseCase interface {
	Generate(ctx context.Context, input GenerateInput) (GenerateOutput, error)
	Preview(ctx context.Context, input PreviewInput) (PreviewOutput, error)
	GetReport(ctx context.Context, input GetReportInput) (ReportOutput, error)
	ListReports(ctx context.Context, input ListReportsInput) (ListReportsOutput, error)
	DownloadReport(ctx context.Context, input DownloadReportInput) (DownloadOutput, error)
}
