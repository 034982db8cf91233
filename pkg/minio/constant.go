package minio

import "time"

const (
	maxIdleConns    = 16
	idleConnTimeout = 90 * time.Second
)

const (
	// MaxFileSizeBytes caps a single report artifact (64MB).
	MaxFileSizeBytes = 64 * 1024 * 1024
	// MaxPresignedExpiry is the maximum presigned URL expiry (7 days).
	MaxPresignedExpiry = 7 * 24 * time.Hour
	// DefaultPresignedExpiry is used when the request leaves expiry empty.
	DefaultPresignedExpiry = time.Hour
)

// Content types of stored report artifacts.
const (
	ContentTypeMarkdown = "text/markdown; charset=utf-8"
	ContentTypeXLSX     = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)
