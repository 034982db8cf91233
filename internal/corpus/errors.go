package corpus

import "errors"

var (
	ErrEmptyCorpus       = errors.New("corpus must contain at least one entity")
	ErrDuplicateEntityID = errors.New("duplicate entity id")
	ErrInvalidEntity     = errors.New("invalid entity")
	ErrInvalidDocument   = errors.New("invalid corpus document")
	ErrUnsupportedFormat = errors.New("unsupported corpus format")
)
