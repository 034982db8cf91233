package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"aegis-srv/internal/model"
	"aegis-srv/internal/report"
	"aegis-srv/internal/report/repository"
	"aegis-srv/pkg/minio"
	"aegis-srv/pkg/paginator"
)

// Generate creates a new report or returns an existing one for the same scan, kind and generator.
// Flow: validate → load scan → hash params → dedup → create record → kick off background generation.
func (uc *implUseCase) Generate(ctx context.Context, input report.GenerateInput) (report.GenerateOutput, error) {
	if !input.Kind.IsValid() {
		return report.GenerateOutput{}, report.ErrInvalidKind
	}
	if input.ScanID == "" {
		return report.GenerateOutput{}, report.ErrScanRequired
	}

	result, err := uc.loadScan(ctx, input.ScanID)
	if err != nil {
		return report.GenerateOutput{}, err
	}

	paramsHash := generateParamsHash(input.ScanID, input.Kind, uc.generator.Name())

	existing, err := uc.repo.FindByParamsHash(ctx, repository.FindByParamsHashOptions{
		ParamsHash: paramsHash,
		Status:     report.StatusProcessing,
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.Generate: Failed to check existing report: %v", err)
		return report.GenerateOutput{}, report.ErrGenerationFailed
	}
	if existing != nil && uc.isStale(existing) {
		uc.l.Warnf(ctx, "report.usecase.Generate: report %s stuck in PROCESSING since %s, marking failed", existing.ID, existing.UpdatedAt.Format(time.RFC3339))
		uc.fail(ctx, existing, "abandoned: no progress before stale timeout")
		existing = nil
	}
	if existing != nil {
		return report.GenerateOutput{
			ReportID: existing.ID,
			Status:   existing.Status,
			Message:  "Report is already being generated",
		}, nil
	}

	completed, err := uc.repo.FindByParamsHash(ctx, repository.FindByParamsHashOptions{
		ParamsHash: paramsHash,
		Status:     report.StatusCompleted,
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.Generate: Failed to check completed report: %v", err)
		return report.GenerateOutput{}, report.ErrGenerationFailed
	}
	if completed != nil && uc.now().Sub(completed.CreatedAt) < uc.config.ReuseWindow {
		return report.GenerateOutput{
			ReportID: completed.ID,
			Status:   completed.Status,
			Message:  "Report already completed",
		}, nil
	}

	rpt, err := uc.repo.CreateReport(ctx, repository.CreateReportOptions{
		ID:         uuid.New().String(),
		ScanID:     input.ScanID,
		Kind:       input.Kind,
		Generator:  uc.generator.Name(),
		ParamsHash: paramsHash,
	})
	if errors.Is(err, repository.ErrDuplicateProcessing) {
		// Lost the race against a concurrent request for the same parameters.
		return report.GenerateOutput{
			Status:  report.StatusProcessing,
			Message: "Report is already being generated",
		}, nil
	}
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.Generate: Failed to create report: %v", err)
		return report.GenerateOutput{}, report.ErrGenerationFailed
	}

	go uc.generateInBackground(rpt, result.Context())

	return report.GenerateOutput{
		ReportID: rpt.ID,
		Status:   report.StatusProcessing,
		Message:  "Report generation started",
	}, nil
}

// Preview renders the report text synchronously without storing it.
func (uc *implUseCase) Preview(ctx context.Context, input report.PreviewInput) (report.PreviewOutput, error) {
	if !input.Kind.IsValid() {
		return report.PreviewOutput{}, report.ErrInvalidKind
	}
	if input.ScanID == "" {
		return report.PreviewOutput{}, report.ErrScanRequired
	}

	result, err := uc.loadScan(ctx, input.ScanID)
	if err != nil {
		return report.PreviewOutput{}, err
	}

	content, err := uc.generator.Generate(ctx, input.Kind, result.Context())
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.Preview: generator %s failed: %v", uc.generator.Name(), err)
		return report.PreviewOutput{}, report.ErrGenerationFailed
	}

	return report.PreviewOutput{
		ScanID:    input.ScanID,
		Kind:      input.Kind,
		Generator: uc.generator.Name(),
		FileName:  input.Kind.FileName(input.ScanID) + textExt,
		Content:   content,
	}, nil
}

// GetReport returns the current status and metadata of a report.
func (uc *implUseCase) GetReport(ctx context.Context, input report.GetReportInput) (report.ReportOutput, error) {
	rpt, err := uc.getReport(ctx, input.ReportID)
	if err != nil {
		return report.ReportOutput{}, err
	}

	return buildReportOutput(rpt), nil
}

// ListReports pages through reports, newest first.
func (uc *implUseCase) ListReports(ctx context.Context, input report.ListReportsInput) (report.ListReportsOutput, error) {
	if input.Kind != "" && !input.Kind.IsValid() {
		return report.ListReportsOutput{}, report.ErrInvalidKind
	}
	input.Paging.Adjust()

	rpts, total, err := uc.repo.ListReports(ctx, repository.ListReportsOptions{
		ScanID: input.ScanID,
		Kind:   input.Kind,
		Status: input.Status,
		Limit:  input.Paging.Limit,
		Offset: input.Paging.Offset(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.ListReports: Failed to list reports: %v", err)
		return report.ListReportsOutput{}, err
	}

	out := report.ListReportsOutput{
		Reports: make([]report.ReportOutput, 0, len(rpts)),
		Paginator: paginator.Paginator{
			Total:       total,
			Count:       int64(len(rpts)),
			PerPage:     input.Paging.Limit,
			CurrentPage: input.Paging.Page,
		},
	}
	for _, rpt := range rpts {
		out.Reports = append(out.Reports, buildReportOutput(rpt))
	}
	return out, nil
}

// DownloadReport generates a presigned download URL for one artifact of a completed report.
func (uc *implUseCase) DownloadReport(ctx context.Context, input report.DownloadReportInput) (report.DownloadOutput, error) {
	format := input.Format
	if format == "" {
		format = report.FormatText
	}
	if format != report.FormatText && format != report.FormatXLSX {
		return report.DownloadOutput{}, report.ErrInvalidFormat
	}

	rpt, err := uc.getReport(ctx, input.ReportID)
	if err != nil {
		return report.DownloadOutput{}, err
	}
	if rpt.Status != report.StatusCompleted {
		return report.DownloadOutput{}, report.ErrReportNotCompleted
	}

	objectName, ext, size := rpt.TextObject, textExt, rpt.TextSizeBytes
	if format == report.FormatXLSX {
		objectName, ext, size = rpt.XLSXObject, xlsxExt, rpt.XLSXSizeBytes
	}
	fileName := rpt.Kind.FileName(rpt.ScanID) + ext

	presigned, err := uc.minio.GetPresignedDownloadURL(ctx, &minio.PresignedURLRequest{
		BucketName: uc.config.ReportBucket,
		ObjectName: objectName,
		Expiry:     uc.config.DownloadExpiry,
		FileName:   fileName,
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.DownloadReport: Failed to generate presigned URL: %v", err)
		return report.DownloadOutput{}, report.ErrDownloadURLFailed
	}

	return report.DownloadOutput{
		DownloadURL: presigned.URL,
		ExpiresAt:   presigned.ExpiresAt.Format(time.RFC3339),
		FileName:    fileName,
		FileSize:    size,
	}, nil
}

func (uc *implUseCase) loadScan(ctx context.Context, scanID string) (model.ScanResult, error) {
	result, err := uc.scans.GetResult(ctx, scanID)
	if err != nil {
		uc.l.Warnf(ctx, "report.usecase.loadScan: scan %s unavailable: %v", scanID, err)
		return model.ScanResult{}, fmt.Errorf("%w: %s", report.ErrScanNotFound, scanID)
	}
	return result, nil
}

// getReport maps a missing row to ErrReportNotFound. Any other repository error
// is passed through so the caller answers 500 rather than 404.
func (uc *implUseCase) getReport(ctx context.Context, id string) (*model.Report, error) {
	rpt, err := uc.repo.GetReportByID(ctx, id)
	if errors.Is(err, repository.ErrReportNotFound) {
		return nil, report.ErrReportNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.getReport: GetReportByID %s failed: %v", id, err)
		return nil, fmt.Errorf("get report %s: %w", id, err)
	}
	return rpt, nil
}

// isStale reports whether a PROCESSING record has outlived StaleAfter.
func (uc *implUseCase) isStale(rpt *model.Report) bool {
	last := rpt.UpdatedAt
	if last.IsZero() {
		last = rpt.CreatedAt
	}
	return uc.now().Sub(last) > uc.config.StaleAfter
}
