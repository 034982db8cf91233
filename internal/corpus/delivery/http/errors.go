package http

import (
	"errors"

	"aegis-srv/internal/corpus"
	pkgErrors "aegis-srv/pkg/errors"
)

var (
	errEmptyCorpus       = pkgErrors.NewHTTPError(400, "Corpus must contain at least one entity")
	errDuplicateEntityID = pkgErrors.NewHTTPError(400, "Corpus contains duplicate entity ids")
	errInvalidEntity     = pkgErrors.NewHTTPError(400, "Corpus contains an invalid entity")
	errInvalidDocument   = pkgErrors.NewHTTPError(400, "Corpus document could not be parsed")
	errUnsupportedFormat = pkgErrors.NewHTTPError(400, "Unsupported format, expected json or yaml")
	errInvalidRequest    = pkgErrors.NewHTTPError(400, "Invalid request")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, corpus.ErrEmptyCorpus):
		return errEmptyCorpus
	case errors.Is(err, corpus.ErrDuplicateEntityID):
		return errDuplicateEntityID
	case errors.Is(err, corpus.ErrInvalidEntity):
		return pkgErrors.NewHTTPError(errInvalidEntity.Code, err.Error())
	case errors.Is(err, corpus.ErrInvalidDocument):
		return errInvalidDocument
	case errors.Is(err, corpus.ErrUnsupportedFormat):
		return errUnsupportedFormat
	default:
		return err
	}
}
