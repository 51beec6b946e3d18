package user

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrStorageDisabled    = errors.New("profile picture storage is disabled")
	ErrInvalidPropic      = errors.New("invalid profile picture")
)
