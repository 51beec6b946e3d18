package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"

	"users-srv/internal/model"
	"users-srv/internal/user/repository"
	postgresPkg "users-srv/pkg/postgre"

	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/friendsofgo/errors"
)

func (r *implRepository) Detail(ctx context.Context, id string) (model.User, error) {
	return r.GetOne(ctx, repository.GetOneOptions{ID: id})
}

func (r *implRepository) GetOne(ctx context.Context, opts repository.GetOneOptions) (model.User, error) {
	q, arg := selectUserByIDQuery, opts.ID
	if opts.ID == "" {
		if opts.Email == "" {
			return model.User{}, repository.ErrInvalidOptions
		}
		q, arg = selectUserByEmailQuery, opts.Email
	} else if postgresPkg.IsID(opts.ID) != nil {
		// no row can carry a malformed id
		return model.User{}, repository.ErrNotFound
	}

	var row userRow
	err := r.withExecutor(ctx, func(exec executor) error {
		return queries.Raw(q, arg).Bind(ctx, exec, &row)
	})
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return model.User{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.user.repository.postgres.GetOne.Bind: %v", err)
		return model.User{}, errors.Wrap(err, "select user")
	}

	return row.toModel(), nil
}

func (r *implRepository) Create(ctx context.Context, opts repository.CreateOptions) (model.User, error) {
	u := opts.User
	if u.Email == "" || u.PasswordHash == "" || postgresPkg.IsID(u.ID) != nil {
		return model.User{}, repository.ErrInvalidOptions
	}

	var row userRow
	err := r.withExecutor(ctx, func(exec executor) error {
		return queries.Raw(insertUserQuery, u.ID, u.Name, u.Surname, u.Email, u.PasswordHash).Bind(ctx, exec, &row)
	})
	if err != nil {
		// unique violations are expected on duplicate emails and are not logged
		return model.User{}, errors.Wrap(err, "insert user")
	}

	return row.toModel(), nil
}

func (r *implRepository) UpdatePropic(ctx context.Context, opts repository.UpdatePropicOptions) (model.User, error) {
	if opts.UserID == "" {
		return model.User{}, repository.ErrInvalidOptions
	}
	if postgresPkg.IsID(opts.UserID) != nil {
		return model.User{}, repository.ErrNotFound
	}

	var row userRow
	err := r.withExecutor(ctx, func(exec executor) error {
		return queries.Raw(updatePropicQuery, opts.UserID, opts.PropicURL).Bind(ctx, exec, &row)
	})
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return model.User{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.user.repository.postgres.UpdatePropic.Bind: %v", err)
		return model.User{}, errors.Wrap(err, "update propic")
	}

	return row.toModel(), nil
}
