package minio

import (
	"context"
	"fmt"

	"aegis-srv/config"
	"aegis-srv/pkg/minio"
)

var client = config.NewSingleton[minio.MinIO]("MinIO")

// Connect initializes the shared MinIO client and makes sure the report bucket exists.
func Connect(ctx context.Context, cfg config.MinIOConfig) (minio.MinIO, error) {
	return client.Connect(func() (minio.MinIO, error) {
		c, err := minio.NewMinIO(minio.Config{
			Endpoint:  cfg.Endpoint,
			AccessKey: cfg.AccessKey,
			SecretKey: cfg.SecretKey,
			UseSSL:    cfg.UseSSL,
			Region:    cfg.Region,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create MinIO client: %w", err)
		}
		if err := c.Connect(ctx); err != nil {
			return nil, fmt.Errorf("failed to connect to MinIO: %w", err)
		}
		if err := c.EnsureBucket(ctx, cfg.Bucket); err != nil {
			_ = c.Close()
			return nil, fmt.Errorf("failed to ensure bucket %s: %w", cfg.Bucket, err)
		}
		return c, nil
	})
}

func GetClient() minio.MinIO {
	return client.Get()
}

// HealthCheck checks if MinIO connection is healthy
func HealthCheck(ctx context.Context) error {
	return client.Check(func(c minio.MinIO) error { return c.HealthCheck(ctx) })
}

// Disconnect closes the MinIO client.
func Disconnect() error {
	return client.Reset(func(c minio.MinIO) error { return c.Close() })
}
