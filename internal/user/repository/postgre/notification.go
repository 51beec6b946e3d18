package postgres

import (
	"context"

	"users-srv/internal/model"
	"users-srv/internal/user/repository"
	postgresPkg "users-srv/pkg/postgre"

	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/friendsofgo/errors"
)

func (r *implRepository) ListNotifications(ctx context.Context, opts repository.ListNotificationsOptions) ([]model.Notification, error) {
	if err := postgresPkg.IsID(opts.UserID); err != nil {
		return nil, repository.ErrInvalidOptions
	}

	var rows []notificationRow
	err := r.withExecutor(ctx, func(exec executor) error {
		return queries.Raw(selectNotificationsQuery, opts.UserID).Bind(ctx, exec, &rows)
	})
	if err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgres.ListNotifications.Bind: %v", err)
		return nil, errors.Wrap(err, "select notifications")
	}

	res := make([]model.Notification, 0, len(rows))
	for _, row := range rows {
		n, err := row.toModel()
		if err != nil {
			r.l.Errorf(ctx, "internal.user.repository.postgres.ListNotifications.toModel: %v", err)
			return nil, errors.Wrapf(err, "decode notification %s", row.ID)
		}
		res = append(res, n)
	}

	return res, nil
}
