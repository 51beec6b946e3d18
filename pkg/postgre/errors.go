package postgres

import (
	"errors"

	pkgerrors "github.com/friendsofgo/errors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// CodeUniqueViolation is the SQLSTATE for unique_violation.
const CodeUniqueViolation = "23505"

var (
	ErrInvalidID      = errors.New("invalid id")
	ErrAcquireTimeout = errors.New("postgres: timed out acquiring a connection")
)

// SQLState returns the SQLSTATE carried by err, whichever driver produced it.
func SQLState(err error) (string, bool) {
	if err == nil {
		return "", false
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code), true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, true
	}

	// errors wrapped by older pkg/errors style helpers may not unwrap
	if cause := pkgerrors.Cause(err); cause != err {
		return SQLState(cause)
	}
	return "", false
}

// IsUniqueViolation reports whether err is a unique constraint violation.
func IsUniqueViolation(err error) bool {
	code, ok := SQLState(err)
	return ok && code == CodeUniqueViolation
}
