package settings

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Get(ctx context.Context) (Settings, error)
	Update(ctx context.Context, input UpdateInput) (Settings, error)
	Reset(ctx context.Context) (Settings, error)
}
