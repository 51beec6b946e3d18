package usecase

import (
	"users-srv/internal/auth"
	"users-srv/internal/user/repository"
	"users-srv/pkg/encrypter"
	pkgLog "users-srv/pkg/log"
	postgres "users-srv/pkg/postgre"
)

type usecase struct {
	l      pkgLog.Logger
	sl     *auth.SecurityLogger
	repo   repository.Repository
	hasher encrypter.Hasher
	issuer auth.TokenIssuer
	newID  func() string
}

func New(l pkgLog.Logger, repo repository.Repository, hasher encrypter.Hasher, issuer auth.TokenIssuer) auth.UseCase {
	return &usecase{
		l:      l,
		sl:     auth.NewSecurityLogger(l),
		repo:   repo,
		hasher: hasher,
		issuer: issuer,
		newID:  postgres.NewID,
	}
}
