package minio

import (
	"context"
	"net/http"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIO stores generated report artifacts and hands out time-limited links to them.
type MinIO interface {
	// Connect must succeed before HealthCheck reports healthy.
	Connect(ctx context.Context) error
	HealthCheck(ctx context.Context) error
	Close() error

	EnsureBucket(ctx context.Context, bucketName string) error
	UploadFile(ctx context.Context, req *UploadRequest) (*FileInfo, error)
	GetPresignedDownloadURL(ctx context.Context, req *PresignedURLRequest) (*PresignedURLResponse, error)
}

// NewMinIO builds the client without dialing; call Connect afterwards.
func NewMinIO(cfg Config) (MinIO, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:    cfg.UseSSL,
		Region:    cfg.Region,
		Transport: newTransport(),
	})
	if err != nil {
		return nil, err
	}
	return &implMinIO{minioClient: client, config: cfg}, nil
}

func newTransport() *http.Transport {
	return &http.Transport{
		MaxIdleConns:        maxIdleConns,
		MaxIdleConnsPerHost: maxIdleConns,
		IdleConnTimeout:     idleConnTimeout,
		DisableCompression:  true,
	}
}
