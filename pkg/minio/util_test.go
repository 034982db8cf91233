package minio

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateBucketName(t *testing.T) {
	tests := []struct {
		name    string
		bucket  string
		wantErr bool
	}{
		{"valid", "aegis-reports", false},
		{"too short", "ab", true},
		{"uppercase", "Aegis", true},
		{"underscore", "aegis_reports", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateBucketName(tt.bucket)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidInput))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateUploadRequest(t *testing.T) {
	t.Run("nil reader", func(t *testing.T) {
		err := validateUploadRequest(&UploadRequest{BucketName: "aegis-reports", ObjectName: "a.md"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("ok", func(t *testing.T) {
		err := validateUploadRequest(&UploadRequest{
			BucketName: "aegis-reports",
			ObjectName: "reports/scan_1/cybercrime_report_scan_1.md",
			Reader:     strings.NewReader("x"),
			Size:       1,
		})
		assert.NoError(t, err)
	})
}

func TestValidatePresignedURLRequest_DefaultsExpiry(t *testing.T) {
	req := &PresignedURLRequest{BucketName: "aegis-reports", ObjectName: "a.md"}
	assert.NoError(t, validatePresignedURLRequest(req))
	assert.Equal(t, DefaultPresignedExpiry, req.Expiry)

	req.Expiry = 8 * 24 * time.Hour
	assert.ErrorIs(t, validatePresignedURLRequest(req), ErrInvalidInput)
}
