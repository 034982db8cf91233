package http

import (
	"errors"

	"aegis-srv/internal/report"
	pkgErrors "aegis-srv/pkg/errors"
)

var (
	errReportNotFound     = pkgErrors.NewHTTPError(404, "Report not found")
	errReportNotCompleted = pkgErrors.NewHTTPError(400, "Report is not completed yet")
	errScanRequired       = pkgErrors.NewHTTPError(400, "Scan ID is required")
	errScanNotFound       = pkgErrors.NewHTTPError(404, "Scan not found or expired")
	errInvalidKind        = pkgErrors.NewHTTPError(400, "Invalid report kind, expected cybercrime or copyright")
	errInvalidFormat      = pkgErrors.NewHTTPError(400, "Invalid format, expected text or xlsx")
	errGenerationFailed   = pkgErrors.NewHTTPError(500, "Report generation failed")
	errDownloadURLFailed  = pkgErrors.NewHTTPError(500, "Failed to generate download URL")
	errInvalidRequest     = pkgErrors.NewHTTPError(400, "Invalid request body")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, report.ErrReportNotFound):
		return errReportNotFound
	case errors.Is(err, report.ErrReportNotCompleted):
		return errReportNotCompleted
	case errors.Is(err, report.ErrScanRequired):
		return errScanRequired
	case errors.Is(err, report.ErrScanNotFound):
		return errScanNotFound
	case errors.Is(err, report.ErrInvalidKind):
		return errInvalidKind
	case errors.Is(err, report.ErrInvalidFormat):
		return errInvalidFormat
	case errors.Is(err, report.ErrGenerationFailed):
		return errGenerationFailed
	case errors.Is(err, report.ErrDownloadURLFailed):
		return errDownloadURLFailed
	default:
		return err
	}
}
