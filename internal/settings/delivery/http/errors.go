package http

import (
	"errors"

	"aegis-srv/internal/settings"
	pkgErrors "aegis-srv/pkg/errors"
)

var (
	errInvalidMode       = pkgErrors.NewHTTPError(400, "Invalid default mode, expected harassment, piracy or both")
	errInvalidMaxResults = pkgErrors.NewHTTPError(400, "max_results must be between 1 and 500")
	errInvalidRequest    = pkgErrors.NewHTTPError(400, "Invalid request body")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, settings.ErrInvalidMode):
		return errInvalidMode
	case errors.Is(err, settings.ErrInvalidMaxResults):
		return errInvalidMaxResults
	default:
		return err
	}
}
