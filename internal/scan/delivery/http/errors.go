package http

import (
	"errors"

	"aegis-srv/internal/scan"
	pkgErrors "aegis-srv/pkg/errors"
)

var (
	errScanNotFound        = pkgErrors.NewHTTPError(404, "Scan not found or expired")
	errScanIDRequired      = pkgErrors.NewHTTPError(400, "Scan ID is required")
	errInvalidMode         = pkgErrors.NewHTTPError(400, "Invalid mode, expected harassment, piracy or both")
	errInvalidVideoURL     = pkgErrors.NewHTTPError(400, "Invalid YouTube URL or video ID")
	errInvalidLimit        = pkgErrors.NewHTTPError(400, "limit must be between 1 and 1000")
	errAnalysisUnavailable = pkgErrors.NewHTTPError(503, "Analysis service unavailable")
	errItemNotFound        = pkgErrors.NewHTTPError(404, "Item not found in scan")
	errInvalidRequest      = pkgErrors.NewHTTPError(400, "Invalid request body")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, scan.ErrScanNotFound):
		return errScanNotFound
	case errors.Is(err, scan.ErrScanIDRequired):
		return errScanIDRequired
	case errors.Is(err, scan.ErrInvalidMode):
		return errInvalidMode
	case errors.Is(err, scan.ErrInvalidVideoURL):
		return errInvalidVideoURL
	case errors.Is(err, scan.ErrInvalidLimit):
		return errInvalidLimit
	case errors.Is(err, scan.ErrAnalysisUnavailable):
		return errAnalysisUnavailable
	case errors.Is(err, scan.ErrItemNotFound):
		return errItemNotFound
	default:
		return err
	}
}
