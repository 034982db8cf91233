package repository

import "errors"

var (
	ErrNotFound = errors.New("repository: scan result not found")
	ErrDecode   = errors.New("repository: scan decode failed")
)
