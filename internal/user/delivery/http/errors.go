package http

import (
	"users-srv/internal/user"
	pkgErrors "users-srv/pkg/errors"
	"users-srv/pkg/response"
)

var (
	errUserNotFound       = pkgErrors.NewNotFound(pkgErrors.CodeUserNotFound)
	errInvalidCredentials = pkgErrors.NewUnauthorized(pkgErrors.CodeInvalidCredentials)
	errStorageDisabled    = pkgErrors.NewNotFound(pkgErrors.CodeNotFound)
	errInvalidPropic      = pkgErrors.NewValidationFailed("file")
)

var errorMapping = response.ErrorMapping{
	user.ErrUserNotFound:       errUserNotFound,
	user.ErrInvalidCredentials: errInvalidCredentials,
	user.ErrStorageDisabled:    errStorageDisabled,
	user.ErrInvalidPropic:      errInvalidPropic,
}
