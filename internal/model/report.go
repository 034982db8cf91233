package model

import "time"

// Report represents a generated report record.
type Report struct {
	ID         string
	ScanID     string
	Kind       ReportKind
	Generator  string
	ParamsHash string

	// Status
	Status       string // PROCESSING | COMPLETED | FAILED
	ErrorMessage string

	// Output
	TextObject    string
	XLSXObject    string
	TextSizeBytes int64
	XLSXSizeBytes int64

	// Metrics
	FlaggedCount     int
	PiracyCount      int
	GenerationTimeMs int64

	// Timestamps
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ReportKind selects the report variant.
type ReportKind string

const (
	ReportKindCybercrime ReportKind = "cybercrime"
	ReportKindCopyright  ReportKind = "copyright"
)

func (k ReportKind) IsValid() bool {
	return k == ReportKindCybercrime || k == ReportKindCopyright
}

// FileName is the artifact name of a report for a scan, without extension.
func (k ReportKind) FileName(scanID string) string {
	return string(k) + "_report_" + scanID
}
