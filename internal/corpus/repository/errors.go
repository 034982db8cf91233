package repository

import "errors"

var (
	ErrNotFound = errors.New("repository: corpus override not found")
	ErrDecode   = errors.New("repository: corpus override decode failed")
)
