// Package redistest provides an in-memory IRedis for repository tests.
package redistest

import (
	"context"
	"fmt"
	"sync"
	"time"

	pkgRedis "aegis-srv/pkg/redis"

	goredis "github.com/redis/go-redis/v9"
)

// Store is a map-backed IRedis. TTLs are recorded but never expire.
type Store struct {
	mu    sync.Mutex
	kv    map[string]string
	ttl   map[string]time.Duration
	lists map[string][]string

	// Err, when set, is returned by every operation.
	Err error
}

var _ pkgRedis.IRedis = (*Store)(nil)

func New() *Store {
	return &Store{
		kv:    map[string]string{},
		ttl:   map[string]time.Duration{},
		lists: map[string][]string{},
	}
}

func (s *Store) Set(_ context.Context, key string, value interface{}, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.kv[key] = stringify(value)
	s.ttl[key] = ttl
	return nil
}

func (s *Store) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return "", s.Err
	}
	v, ok := s.kv[key]
	if !ok {
		return "", pkgRedis.ErrNotFound
	}
	return v, nil
}

func (s *Store) Delete(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	for _, k := range keys {
		delete(s.kv, k)
		delete(s.ttl, k)
		delete(s.lists, k)
	}
	return nil
}

func (s *Store) Exists(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return false, s.Err
	}
	_, kv := s.kv[key]
	_, list := s.lists[key]
	return kv || list, nil
}

func (s *Store) TTL(_ context.Context, key string) (time.Duration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	return s.ttl[key], nil
}

func (s *Store) PushCapped(_ context.Context, key string, value interface{}, max int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	list := append([]string{stringify(value)}, s.lists[key]...)
	if max > 0 && int64(len(list)) > max {
		list = list[:max]
	}
	s.lists[key] = list
	return nil
}

// Range follows LRANGE semantics, including negative indexes.
func (s *Store) Range(_ context.Context, key string, start, stop int64) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	list := s.lists[key]
	n := int64(len(list))
	if start < 0 {
		start = max(n+start, 0)
	}
	if stop < 0 {
		stop = n + stop
	}
	if stop >= n {
		stop = n - 1
	}
	if n == 0 || start > stop {
		return []string{}, nil
	}
	out := make([]string, stop-start+1)
	copy(out, list[start:stop+1])
	return out, nil
}

func (s *Store) Close() error { return nil }
func (s *Store) Ping(context.Context) error { return s.Err }
func (s *Store) GetClient() *goredis.Client { return nil }

// Keys reports how many plain keys are stored.
func (s *Store) Keys() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.kv)
}

func stringify(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case []byte:
		return string(t)
	default:
		return fmt.Sprint(t)
	}
}
