package repository

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrInvalidOptions = errors.New("invalid options")
)
