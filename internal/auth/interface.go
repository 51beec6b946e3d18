package auth

import (
	"context"

	"users-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Register(ctx context.Context, ip RegisterInput) (TokenOutput, error)
	Login(ctx context.Context, ip LoginInput) (TokenOutput, error)
	RegisterFCMToken(ctx context.Context, sc model.IdentityClaims, ip RegisterFCMTokenInput) error
}

// TokenIssuer wraps claims in an envelope and signs it.
type TokenIssuer interface {
	Issue(ctx context.Context, claims model.IdentityClaims) (string, error)
}
