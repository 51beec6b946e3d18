package errors

import (
	"fmt"
	"net/http"
	"strings"
)

// NewValidationFailed reports request fields that did not pass validation.
func NewValidationFailed(fields ...string) *Error {
	return &Error{Kind: KindValidationFailed, Code: CodeInvalidFields, Fields: fields}
}

// NewBadRequestBody reports a body that could not be decoded at all.
func NewBadRequestBody(cause error) *Error {
	return &Error{Kind: KindBadRequestBody, Code: CodeInvalidBody, Cause: cause}
}

func NewUnauthorized(code string) *Error {
	return &Error{Kind: KindUnauthorized, Code: code}
}

func NewConflict(code string, cause error) *Error {
	return &Error{Kind: KindConflict, Code: code, Cause: cause}
}

func NewNotFound(code string) *Error {
	return &Error{Kind: KindNotFound, Code: code}
}

// NewUnavailable reports a dependency that is down. Used by readiness probes.
func NewUnavailable(cause error) *Error {
	return &Error{Kind: KindUnavailable, Code: CodeServiceUnavailable, Cause: cause}
}

// NewInternal wraps a failure whose detail must never reach the client.
func NewInternal(code string, cause error) *Error {
	return &Error{Kind: KindInternal, Code: code, Cause: cause}
}

func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Code)
	if len(e.Fields) > 0 {
		sb.WriteString(fmt.Sprintf(" [%s]", strings.Join(e.Fields, ", ")))
	}
	if e.Cause != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Cause.Error())
	}
	return sb.String()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches another *Error with the same kind and code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind && t.Code == e.Code
}

// StatusCode maps the kind to its HTTP status.
func (e *Error) StatusCode() int {
	switch e.Kind {
	case KindValidationFailed, KindBadRequestBody:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindConflict:
		return http.StatusConflict
	case KindNotFound:
		return http.StatusNotFound
	case KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// IsInternal reports whether the failure should be logged and reported.
func (e *Error) IsInternal() bool {
	return e.Kind == KindInternal
}
