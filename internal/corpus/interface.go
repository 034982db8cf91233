package corpus

import (
	"context"

	"aegis-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Snapshot returns the active corpus. It never fails on a missing or unreadable
	// override; the seed is served instead.
	Snapshot(ctx context.Context) ([]model.Entity, error)
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Stats(ctx context.Context) (Stats, error)
	Replace(ctx context.Context, input ReplaceInput) (Stats, error)
	Import(ctx context.Context, input ImportInput) (Stats, error)
	Export(ctx context.Context, format string) ([]byte, error)
	Reset(ctx context.Context) (Stats, error)
}
