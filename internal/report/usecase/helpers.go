package usecase

import (
	"crypto/sha256"
	"fmt"
	"time"

	"aegis-srv/internal/model"
	"aegis-srv/internal/report"
)

const (
	textExt = ".md"
	xlsxExt = ".xlsx"
)

// generateParamsHash creates a SHA-256 hash for deduplication.
func generateParamsHash(scanID string, kind model.ReportKind, generator string) string {
	hash := sha256.Sum256([]byte(scanID + "\x00" + string(kind) + "\x00" + generator))
	return fmt.Sprintf("%x", hash)
}

// objectName is reports/<id>/<kind>_report_<scanID><ext>.
func objectName(rpt *model.Report, ext string) string {
	return fmt.Sprintf("reports/%s/%s%s", rpt.ID, rpt.Kind.FileName(rpt.ScanID), ext)
}

// buildReportOutput converts a model.Report to report.ReportOutput.
func buildReportOutput(rpt *model.Report) report.ReportOutput {
	output := report.ReportOutput{
		ID:               rpt.ID,
		ScanID:           rpt.ScanID,
		Kind:             rpt.Kind,
		Generator:        rpt.Generator,
		Status:           rpt.Status,
		ErrorMessage:     rpt.ErrorMessage,
		TextSizeBytes:    rpt.TextSizeBytes,
		XLSXSizeBytes:    rpt.XLSXSizeBytes,
		FlaggedCount:     rpt.FlaggedCount,
		PiracyCount:      rpt.PiracyCount,
		GenerationTimeMs: rpt.GenerationTimeMs,
		CreatedAt:        rpt.CreatedAt.Format(time.RFC3339),
	}

	if rpt.CompletedAt != nil {
		t := rpt.CompletedAt.Format(time.RFC3339)
		output.CompletedAt = &t
	}

	return output
}
