package repository

import (
	"context"

	"aegis-srv/internal/model"
	"aegis-srv/internal/scan"
)

//go:generate mockery --name Repository
type Repository interface {
	SaveResult(ctx context.Context, opt SaveResultOptions) error
	// GetResult returns ErrNotFound for unknown or expired scans.
	GetResult(ctx context.Context, scanID string) (model.ScanResult, error)
	AppendHistory(ctx context.Context, opt AppendHistoryOptions) error
	// ListHistory returns entries newest first.
	ListHistory(ctx context.Context, opt ListHistoryOptions) ([]scan.HistoryEntry, error)
}
