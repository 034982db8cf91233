package repository

import (
	"context"

	"aegis-srv/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	// Get returns ErrNotFound when no override is stored.
	Get(ctx context.Context) ([]model.Entity, error)
	Save(ctx context.Context, entities []model.Entity) error
	Delete(ctx context.Context) error
}
