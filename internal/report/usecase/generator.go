package usecase

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"aegis-srv/internal/model"
	"aegis-srv/internal/report"
	"aegis-srv/internal/report/repository"
	"aegis-srv/pkg/minio"
)

// generateInBackground runs the report pipeline for one record.
// This is called in a goroutine and must handle its own errors.
//
// Pipeline: Generate text → Build evidence workbook → Upload both → Mark completed
func (uc *implUseCase) generateInBackground(rpt *model.Report, sc model.ScanContext) {
	ctx := context.Background()
	startTime := uc.now()

	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "report.usecase.generateInBackground: panic recovered: %v", r)
			uc.fail(ctx, rpt, fmt.Sprintf("internal panic: %v", r))
		}
	}()

	uc.l.Infof(ctx, "report.usecase.generateInBackground: Starting %s report %s for scan %s", rpt.Kind, rpt.ID, rpt.ScanID)

	text, err := uc.generator.Generate(ctx, rpt.Kind, sc)
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.generateInBackground: generator %s failed: %v", uc.generator.Name(), err)
		uc.fail(ctx, rpt, fmt.Sprintf("generation failed: %v", err))
		return
	}

	workbook, err := buildWorkbook(rpt.Kind, sc)
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.generateInBackground: buildWorkbook failed: %v", err)
		uc.fail(ctx, rpt, fmt.Sprintf("workbook failed: %v", err))
		return
	}

	textBytes := []byte(text)
	textObject := objectName(rpt, textExt)
	xlsxObject := objectName(rpt, xlsxExt)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return uc.upload(gctx, rpt, textObject, textBytes, minio.ContentTypeMarkdown)
	})
	g.Go(func() error {
		return uc.upload(gctx, rpt, xlsxObject, workbook, minio.ContentTypeXLSX)
	})
	if err := g.Wait(); err != nil {
		uc.l.Errorf(ctx, "report.usecase.generateInBackground: Upload failed: %v", err)
		uc.fail(ctx, rpt, fmt.Sprintf("upload failed: %v", err))
		return
	}

	completedAt := uc.now()
	elapsed := completedAt.Sub(startTime)

	err = uc.repo.UpdateCompleted(ctx, repository.UpdateCompletedOptions{
		ReportID:         rpt.ID,
		TextObject:       textObject,
		TextSizeBytes:    int64(len(textBytes)),
		XLSXObject:       xlsxObject,
		XLSXSizeBytes:    int64(len(workbook)),
		FlaggedCount:     len(sc.FlaggedAccounts),
		PiracyCount:      len(sc.PiracyItems),
		GenerationTimeMs: elapsed.Milliseconds(),
		CompletedAt:      completedAt,
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.generateInBackground: Failed to update completed status: %v", err)
		uc.fail(ctx, rpt, fmt.Sprintf("finalize failed: %v", err))
		return
	}

	uc.metrics.ObserveReport(string(rpt.Kind), report.StatusCompleted, uc.generator.Name(), elapsed)
	uc.l.Infof(ctx, "report.usecase.generateInBackground: Report %s completed in %dms", rpt.ID, elapsed.Milliseconds())
}

func (uc *implUseCase) upload(ctx context.Context, rpt *model.Report, object string, data []byte, contentType string) error {
	_, err := uc.minio.UploadFile(ctx, &minio.UploadRequest{
		BucketName:  uc.config.ReportBucket,
		ObjectName:  object,
		Reader:      bytes.NewReader(data),
		Size:        int64(len(data)),
		ContentType: contentType,
		Metadata: map[string]string{
			"report_id": rpt.ID,
			"scan_id":   rpt.ScanID,
			"kind":      string(rpt.Kind),
		},
	})
	return err
}

func (uc *implUseCase) fail(ctx context.Context, rpt *model.Report, msg string) {
	if err := uc.repo.UpdateFailed(ctx, repository.UpdateFailedOptions{
		ReportID:     rpt.ID,
		ErrorMessage: msg,
	}); err != nil {
		uc.l.Errorf(ctx, "report.usecase.fail: UpdateFailed for %s: %v", rpt.ID, err)
	}
	uc.metrics.ObserveReport(string(rpt.Kind), report.StatusFailed, "", time.Duration(0))
}
