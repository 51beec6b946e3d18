package repository

import (
	"context"

	"users-srv/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	Detail(ctx context.Context, id string) (model.User, error)
	GetOne(ctx context.Context, opts GetOneOptions) (model.User, error)
	Create(ctx context.Context, opts CreateOptions) (model.User, error)
	UpdatePropic(ctx context.Context, opts UpdatePropicOptions) (model.User, error)

	AddFCMToken(ctx context.Context, opts AddFCMTokenOptions) error
	ListNotifications(ctx context.Context, opts ListNotificationsOptions) ([]model.Notification, error)

	// InTx runs fn against a repository bound to one transaction.
	// The transaction commits when fn returns nil and rolls back otherwise.
	InTx(ctx context.Context, fn func(repo Repository) error) error
}
