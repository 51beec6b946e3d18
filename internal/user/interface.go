package user

import (
	"context"

	"users-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	DetailMe(ctx context.Context, sc model.IdentityClaims) (UserOutput, error)
	ListNotifications(ctx context.Context, sc model.IdentityClaims) (NotificationsOutput, error)
	UpdatePropic(ctx context.Context, sc model.IdentityClaims, ip UpdatePropicInput) (UpdatePropicOutput, error)
}

// TokenIssuer signs fresh claims after a profile change.
type TokenIssuer interface {
	Issue(ctx context.Context, claims model.IdentityClaims) (string, error)
}
