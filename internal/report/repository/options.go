package repository

import (
	"time"

	"aegis-srv/internal/model"
)

type CreateReportOptions struct {
	ID         string
	ScanID     string
	Kind       model.ReportKind
	Generator  string
	ParamsHash string
}

type FindByParamsHashOptions struct {
	ParamsHash string
	Status     string
}

type UpdateCompletedOptions struct {
	ReportID         string
	TextObject       string
	TextSizeBytes    int64
	XLSXObject       string
	XLSXSizeBytes    int64
	FlaggedCount     int
	PiracyCount      int
	GenerationTimeMs int64
	CompletedAt      time.Time
}

type UpdateFailedOptions struct {
	ReportID     string
	ErrorMessage string
}

type ListReportsOptions struct {
	ScanID string
	Kind   model.ReportKind
	Status string
	Limit  int64
	Offset int64
}
