package minio

import (
	"io"
	"sync"
	"time"

	"github.com/minio/minio-go/v7"
)

type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
}

type implMinIO struct {
	minioClient *minio.Client
	config      Config

	mu        sync.RWMutex
	connected bool
}

// UploadRequest streams Size bytes from Reader into BucketName/ObjectName.
type UploadRequest struct {
	BucketName  string
	ObjectName  string
	Reader      io.Reader
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// FileInfo describes a stored object as seen right after the upload.
type FileInfo struct {
	BucketName   string
	ObjectName   string
	Size         int64
	ContentType  string
	ETag         string
	LastModified time.Time
	Metadata     map[string]string
}

// PresignedURLRequest asks for a GET link. Zero Expiry means DefaultPresignedExpiry.
// FileName, when set, becomes the attachment name the browser saves.
type PresignedURLRequest struct {
	BucketName string
	ObjectName string
	Expiry     time.Duration
	FileName   string
}

type PresignedURLResponse struct {
	URL       string
	ExpiresAt time.Time
}
