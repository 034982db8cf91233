package minio

import (
	"errors"
	"fmt"

	"github.com/minio/minio-go/v7"
)

var (
	ErrNotConnected   = errors.New("minio: client is not connected")
	ErrObjectNotFound = errors.New("minio: object not found")
	ErrBucketNotFound = errors.New("minio: bucket not found")
	ErrInvalidInput   = errors.New("minio: invalid input")
)

// handleMinIOError translates SDK error codes into package sentinels.
func handleMinIOError(err error, operation string) error {
	if err == nil {
		return nil
	}
	resp := minio.ToErrorResponse(err)
	switch resp.Code {
	case "NoSuchKey":
		return fmt.Errorf("%s: %w", operation, ErrObjectNotFound)
	case "NoSuchBucket":
		return fmt.Errorf("%s: %w", operation, ErrBucketNotFound)
	}
	return fmt.Errorf("minio %s: %w", operation, err)
}
