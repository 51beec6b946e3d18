package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"
	"time"

	"users-srv/internal/user/repository"
	pkgLog "users-srv/pkg/log"
	postgresPkg "users-srv/pkg/postgre"

	"github.com/aarondl/sqlboiler/v4/boil"
	"github.com/friendsofgo/errors"
)

type implRepository struct {
	l              pkgLog.Logger
	db             *sql.DB
	tx             *sql.Tx
	acquireTimeout time.Duration
}

var _ repository.Repository = &implRepository{}

func New(l pkgLog.Logger, db *sql.DB, acquireTimeout time.Duration) *implRepository {
	return &implRepository{
		l:              l,
		db:             db,
		acquireTimeout: acquireTimeout,
	}
}

// executor is what queries.Raw needs to bind rows.
type executor interface {
	boil.Executor
	boil.ContextExecutor
}

// withExecutor hands fn the bound transaction, or a pooled connection
// that is released when fn returns.
func (r *implRepository) withExecutor(ctx context.Context, fn func(exec executor) error) error {
	if r.tx != nil {
		return fn(r.tx)
	}

	conn, err := postgresPkg.Acquire(ctx, r.db, r.acquireTimeout)
	if err != nil {
		return errors.Wrap(err, "acquire connection")
	}
	defer conn.Close()

	return fn(conn)
}

func (r *implRepository) InTx(ctx context.Context, fn func(repo repository.Repository) error) error {
	if r.tx != nil {
		return fn(r)
	}

	conn, err := postgresPkg.Acquire(ctx, r.db, r.acquireTimeout)
	if err != nil {
		return errors.Wrap(err, "acquire connection")
	}
	defer conn.Close()

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin transaction")
	}

	txRepo := &implRepository{
		l:              r.l,
		db:             r.db,
		tx:             tx,
		acquireTimeout: r.acquireTimeout,
	}

	if err := fn(txRepo); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !stderrors.Is(rbErr, sql.ErrTxDone) {
			r.l.Errorf(ctx, "internal.user.repository.postgres.InTx.Rollback: %v", rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "commit transaction")
	}
	return nil
}
