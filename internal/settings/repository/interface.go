package repository

import (
	"context"

	"aegis-srv/internal/settings"
)

//go:generate mockery --name Repository
type Repository interface {
	// Get returns ErrNotFound when nothing has been saved.
	Get(ctx context.Context) (settings.Settings, error)
	Save(ctx context.Context, s settings.Settings) error
	Delete(ctx context.Context) error
}
