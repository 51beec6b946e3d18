package postgres

import (
	"context"

	"users-srv/internal/user/repository"
	postgresPkg "users-srv/pkg/postgre"

	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/friendsofgo/errors"
)

// AddFCMToken inserts the (token, user) pair. A pair that already exists
// surfaces as the driver's unique violation.
func (r *implRepository) AddFCMToken(ctx context.Context, opts repository.AddFCMTokenOptions) error {
	if opts.Token == "" || postgresPkg.IsID(opts.UserID) != nil {
		return repository.ErrInvalidOptions
	}

	return r.withExecutor(ctx, func(exec executor) error {
		_, err := queries.Raw(insertFCMTokenQuery, opts.Token, opts.UserID).ExecContext(ctx, exec)
		if err != nil {
			return errors.Wrap(err, "insert fcm token")
		}
		return nil
	})
}
