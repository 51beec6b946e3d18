package errors

import (
	stderrors "errors"

	"users-srv/pkg/offload"
	postgres "users-srv/pkg/postgre"
	"users-srv/pkg/scope"
	"users-srv/pkg/token"

	"github.com/go-playground/validator/v10"
)

// Normalize converts a failure from any layer into an *Error.
// Rules are checked in order and the first match wins.
func Normalize(err error) *Error {
	if err == nil {
		return nil
	}

	var e *Error
	if stderrors.As(err, &e) {
		return e
	}

	var verrs validator.ValidationErrors
	if stderrors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Field())
		}
		return NewValidationFailed(fields...)
	}

	var authErr *scope.AuthError
	if stderrors.As(err, &authErr) {
		return &Error{Kind: KindUnauthorized, Code: authErr.Code(), Cause: err}
	}

	var tokErr *token.Error
	if stderrors.As(err, &tokErr) {
		return &Error{Kind: KindUnauthorized, Code: CodeInvalidToken, Cause: err}
	}

	if postgres.IsUniqueViolation(err) {
		return NewConflict(CodeDuplicateRow, err)
	}

	if offload.IsFault(err) {
		return NewInternal(CodeAsyncError, err)
	}

	return NewInternal(CodeInternalServerError, err)
}
