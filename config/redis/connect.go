package redis

import (
	"context"
	"fmt"

	"aegis-srv/config"
	"aegis-srv/pkg/redis"
)

var client = config.NewSingleton[redis.IRedis]("Redis")

// Connect initializes the shared Redis client and verifies it with PING.
func Connect(ctx context.Context, cfg config.RedisConfig) (redis.IRedis, error) {
	return client.Connect(func() (redis.IRedis, error) {
		c, err := redis.NewRedis(redis.RedisConfig{
			Host:     cfg.Host,
			Port:     cfg.Port,
			Password: cfg.Password,
			DB:       cfg.DB,
			PoolSize: cfg.PoolSize,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Redis client: %w", err)
		}
		if err := c.Ping(ctx); err != nil {
			_ = c.Close()
			return nil, fmt.Errorf("failed to ping Redis: %w", err)
		}
		return c, nil
	})
}

func GetClient() redis.IRedis {
	return client.Get()
}

// HealthCheck checks if Redis connection is healthy
func HealthCheck(ctx context.Context) error {
	return client.Check(func(c redis.IRedis) error { return c.Ping(ctx) })
}

// Disconnect closes the Redis connection
func Disconnect() error {
	return client.Reset(func(c redis.IRedis) error { return c.Close() })
}
