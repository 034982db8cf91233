package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"aegis-srv/internal/model"
	"aegis-srv/internal/scan"
	"aegis-srv/internal/scan/repository"
	pkgRedis "aegis-srv/pkg/redis"
)

func resultKey(scanID string) string {
	return fmt.Sprintf("%s%s", ResultPrefix, scanID)
}

func (r *implRepository) SaveResult(ctx context.Context, opt repository.SaveResultOptions) error {
	data, err := json.Marshal(opt.Result)
	if err != nil {
		r.l.Errorf(ctx, "scan.repository.redis.SaveResult: %v", err)
		return err
	}

	ttl := opt.TTL
	if ttl == 0 {
		ttl = DefaultResultTTL
	}

	if err := r.redis.Set(ctx, resultKey(opt.Result.ScanID), data, ttl); err != nil {
		r.l.Errorf(ctx, "scan.repository.redis.SaveResult: %v", err)
		return err
	}
	return nil
}

func (r *implRepository) GetResult(ctx context.Context, scanID string) (model.ScanResult, error) {
	data, err := r.redis.Get(ctx, resultKey(scanID))
	if errors.Is(err, pkgRedis.ErrNotFound) {
		return model.ScanResult{}, repository.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "scan.repository.redis.GetResult: %v", err)
		return model.ScanResult{}, err
	}

	var result model.ScanResult
	if err := json.Unmarshal([]byte(data), &result); err != nil {
		r.l.Errorf(ctx, "scan.repository.redis.GetResult: unmarshal error: %v", err)
		return model.ScanResult{}, fmt.Errorf("%w: %v", repository.ErrDecode, err)
	}
	return result, nil
}

func (r *implRepository) AppendHistory(ctx context.Context, opt repository.AppendHistoryOptions) error {
	data, err := json.Marshal(opt.Entry)
	if err != nil {
		r.l.Errorf(ctx, "scan.repository.redis.AppendHistory: %v", err)
		return err
	}
	if err := r.redis.PushCapped(ctx, HistoryKey, data, opt.Max); err != nil {
		r.l.Errorf(ctx, "scan.repository.redis.AppendHistory: %v", err)
		return err
	}
	return nil
}

// ListHistory skips entries it cannot decode.
func (r *implRepository) ListHistory(ctx context.Context, opt repository.ListHistoryOptions) ([]scan.HistoryEntry, error) {
	stop := int64(-1)
	if opt.Limit > 0 {
		stop = opt.Limit - 1
	}

	raw, err := r.redis.Range(ctx, HistoryKey, 0, stop)
	if err != nil {
		r.l.Errorf(ctx, "scan.repository.redis.ListHistory: %v", err)
		return nil, err
	}

	entries := make([]scan.HistoryEntry, 0, len(raw))
	for _, item := range raw {
		var e scan.HistoryEntry
		if err := json.Unmarshal([]byte(item), &e); err != nil {
			r.l.Warnf(ctx, "scan.repository.redis.ListHistory: skipping bad entry: %v", err)
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}
