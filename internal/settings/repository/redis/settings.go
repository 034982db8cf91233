package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"aegis-srv/internal/settings"
	"aegis-srv/internal/settings/repository"
	pkgRedis "aegis-srv/pkg/redis"
)

func (r *implRepository) Get(ctx context.Context) (settings.Settings, error) {
	data, err := r.redis.Get(ctx, Key)
	if errors.Is(err, pkgRedis.ErrNotFound) {
		return settings.Settings{}, repository.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "settings.repository.redis.Get: %v", err)
		return settings.Settings{}, err
	}

	var s settings.Settings
	if err := json.Unmarshal([]byte(data), &s); err != nil {
		r.l.Errorf(ctx, "settings.repository.redis.Get: unmarshal error: %v", err)
		return settings.Settings{}, fmt.Errorf("%w: %v", repository.ErrDecode, err)
	}
	return s, nil
}

func (r *implRepository) Save(ctx context.Context, s settings.Settings) error {
	data, err := json.Marshal(s)
	if err != nil {
		r.l.Errorf(ctx, "settings.repository.redis.Save: %v", err)
		return err
	}
	if err := r.redis.Set(ctx, Key, data, 0); err != nil {
		r.l.Errorf(ctx, "settings.repository.redis.Save: %v", err)
		return err
	}
	return nil
}

func (r *implRepository) Delete(ctx context.Context) error {
	if err := r.redis.Delete(ctx, Key); err != nil {
		r.l.Errorf(ctx, "settings.repository.redis.Delete: %v", err)
		return err
	}
	return nil
}
