package scan

import "errors"

var (
	ErrScanNotFound        = errors.New("scan not found")
	ErrScanIDRequired      = errors.New("scan id is required")
	ErrInvalidMode         = errors.New("mode must be harassment, piracy or both")
	ErrInvalidVideoURL     = errors.New("invalid YouTube URL or video ID")
	ErrInvalidLimit        = errors.New("limit out of range")
	ErrAnalysisUnavailable = errors.New("analysis service unavailable")
	ErrItemNotFound        = errors.New("item not found in scan")
)
