package settings

import "errors"

var (
	ErrInvalidMode       = errors.New("default mode must be harassment, piracy or both")
	ErrInvalidMaxResults = errors.New("max results out of range")
)
