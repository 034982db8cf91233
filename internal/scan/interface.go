package scan

import (
	"context"

	"aegis-srv/internal/model"
	"aegis-srv/internal/settings"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Run(ctx context.Context, input RunInput) (model.ScanResult, error)
	Analyze(ctx context.Context, input AnalyzeInput) (model.ScanResult, error)
	GetResult(ctx context.Context, scanID string) (model.ScanResult, error)
	History(ctx context.Context, input HistoryInput) (HistoryOutput, error)
	Takedown(ctx context.Context, input TakedownInput) (TakedownOutput, error)
}

// Producer publishes scan lifecycle events.
type Producer interface {
	PublishScanCompleted(ctx context.Context, event ScanCompletedEvent) error
}

// CorpusProvider supplies the entities a synthetic scan runs over.
type CorpusProvider interface {
	Snapshot(ctx context.Context) ([]model.Entity, error)
}

// SettingsProvider supplies operator preferences.
type SettingsProvider interface {
	Get(ctx context.Context) (settings.Settings, error)
}
