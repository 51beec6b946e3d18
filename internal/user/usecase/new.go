package usecase

import (
	"users-srv/internal/user"
	"users-srv/internal/user/repository"
	pkgLog "users-srv/pkg/log"
	"users-srv/pkg/minio"
)

type usecase struct {
	l       pkgLog.Logger
	repo    repository.Repository
	storage minio.Storage
	issuer  user.TokenIssuer
}

// New builds the profile use case. storage may be nil, which disables picture uploads.
func New(l pkgLog.Logger, repo repository.Repository, storage minio.Storage, issuer user.TokenIssuer) user.UseCase {
	return &usecase{
		l:       l,
		repo:    repo,
		storage: storage,
		issuer:  issuer,
	}
}
