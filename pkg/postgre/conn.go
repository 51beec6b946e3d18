package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// DefaultAcquireTimeout bounds how long an operation waits for a pooled connection.
const DefaultAcquireTimeout = 3 * time.Second

// Conn is a single pooled connection usable as a sqlboiler executor.
// Release it with Close.
type Conn struct {
	*sql.Conn
}

// Acquire takes a connection from db, giving up after timeout.
func Acquire(ctx context.Context, db *sql.DB, timeout time.Duration) (*Conn, error) {
	if timeout <= 0 {
		timeout = DefaultAcquireTimeout
	}
	acqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	c, err := db.Conn(acqCtx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			return nil, fmt.Errorf("%w: %v", ErrAcquireTimeout, err)
		}
		return nil, err
	}
	return &Conn{Conn: c}, nil
}

// Exec, Query and QueryRow complete boil.Executor for callers that pass no context.

func (c *Conn) Exec(query string, args ...any) (sql.Result, error) {
	return c.ExecContext(context.Background(), query, args...)
}

func (c *Conn) Query(query string, args ...any) (*sql.Rows, error) {
	return c.QueryContext(context.Background(), query, args...)
}

func (c *Conn) QueryRow(query string, args ...any) *sql.Row {
	return c.QueryRowContext(context.Background(), query, args...)
}
