package repository

import "errors"

var (
	ErrNotFound = errors.New("repository: settings not found")
	ErrDecode   = errors.New("repository: settings decode failed")
)
