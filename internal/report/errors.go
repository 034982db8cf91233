package report

import "errors"

var (
	ErrReportNotFound     = errors.New("report not found")
	ErrReportNotCompleted = errors.New("report is not completed")
	ErrScanRequired       = errors.New("scan_id is required")
	ErrScanNotFound       = errors.New("scan not found")
	ErrInvalidKind        = errors.New("invalid report kind")
	ErrInvalidFormat      = errors.New("invalid download format")
	ErrGenerationFailed   = errors.New("report generation failed")
	ErrDownloadURLFailed  = errors.New("failed to generate download URL")
	ErrEmptyOutput        = errors.New("generator returned no usable text")
)
