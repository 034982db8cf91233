package minio

import (
	"fmt"
	"strings"
)

func validateConfig(cfg Config) error {
	if cfg.Endpoint == "" {
		return fmt.Errorf("%w: endpoint is required", ErrInvalidInput)
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return fmt.Errorf("%w: access key and secret key are required", ErrInvalidInput)
	}
	return nil
}

func validateUploadRequest(req *UploadRequest) error {
	if req == nil {
		return fmt.Errorf("%w: upload request is nil", ErrInvalidInput)
	}
	if err := validateBucketName(req.BucketName); err != nil {
		return err
	}
	if err := validateObjectName(req.ObjectName); err != nil {
		return err
	}
	if req.Reader == nil {
		return fmt.Errorf("%w: reader is required", ErrInvalidInput)
	}
	if req.Size < 0 || req.Size > MaxFileSizeBytes {
		return fmt.Errorf("%w: size %d outside [0, %d]", ErrInvalidInput, req.Size, MaxFileSizeBytes)
	}
	return nil
}

// validatePresignedURLRequest also fills in the default expiry.
func validatePresignedURLRequest(req *PresignedURLRequest) error {
	if req == nil {
		return fmt.Errorf("%w: presigned request is nil", ErrInvalidInput)
	}
	if err := validateBucketName(req.BucketName); err != nil {
		return err
	}
	if err := validateObjectName(req.ObjectName); err != nil {
		return err
	}
	if req.Expiry <= 0 {
		req.Expiry = DefaultPresignedExpiry
	}
	if req.Expiry > MaxPresignedExpiry {
		return fmt.Errorf("%w: expiry exceeds %s", ErrInvalidInput, MaxPresignedExpiry)
	}
	return nil
}

// validateBucketName applies the S3 naming rules that matter in practice.
func validateBucketName(bucketName string) error {
	if len(bucketName) < 3 || len(bucketName) > 63 {
		return fmt.Errorf("%w: bucket name must be 3-63 characters", ErrInvalidInput)
	}
	if strings.ToLower(bucketName) != bucketName {
		return fmt.Errorf("%w: bucket name must be lowercase", ErrInvalidInput)
	}
	for _, r := range bucketName {
		if !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '-' || r == '.') {
			return fmt.Errorf("%w: bucket name contains invalid character %q", ErrInvalidInput, r)
		}
	}
	return nil
}

func validateObjectName(objectName string) error {
	if objectName == "" {
		return fmt.Errorf("%w: object name is required", ErrInvalidInput)
	}
	if len(objectName) > 1024 {
		return fmt.Errorf("%w: object name too long", ErrInvalidInput)
	}
	if strings.HasPrefix(objectName, "/") {
		return fmt.Errorf("%w: object name must not start with /", ErrInvalidInput)
	}
	return nil
}
