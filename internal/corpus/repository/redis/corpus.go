package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"aegis-srv/internal/corpus/repository"
	"aegis-srv/internal/model"
	pkgRedis "aegis-srv/pkg/redis"
)

func (r *implRepository) Get(ctx context.Context) ([]model.Entity, error) {
	data, err := r.redis.Get(ctx, Key)
	if errors.Is(err, pkgRedis.ErrNotFound) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "corpus.repository.redis.Get: %v", err)
		return nil, err
	}

	var entities []model.Entity
	if err := json.Unmarshal([]byte(data), &entities); err != nil {
		r.l.Errorf(ctx, "corpus.repository.redis.Get: unmarshal error: %v", err)
		return nil, fmt.Errorf("%w: %v", repository.ErrDecode, err)
	}
	return entities, nil
}

func (r *implRepository) Save(ctx context.Context, entities []model.Entity) error {
	data, err := json.Marshal(entities)
	if err != nil {
		r.l.Errorf(ctx, "corpus.repository.redis.Save: %v", err)
		return err
	}
	if err := r.redis.Set(ctx, Key, data, 0); err != nil {
		r.l.Errorf(ctx, "corpus.repository.redis.Save: %v", err)
		return err
	}
	return nil
}

func (r *implRepository) Delete(ctx context.Context) error {
	if err := r.redis.Delete(ctx, Key); err != nil {
		r.l.Errorf(ctx, "corpus.repository.redis.Delete: %v", err)
		return err
	}
	return nil
}
