package http

import (
	"users-srv/internal/auth"
	pkgErrors "users-srv/pkg/errors"
	"users-srv/pkg/response"
)

var (
	errInvalidCredentials = pkgErrors.NewUnauthorized(pkgErrors.CodeInvalidCredentials)
	errMissingClaims      = pkgErrors.NewUnauthorized(pkgErrors.CodeInvalidToken)
)

var errorMapping = response.ErrorMapping{
	auth.ErrInvalidCredentials: errInvalidCredentials,
}
