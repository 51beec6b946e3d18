package token

import (
	"errors"
	"fmt"
)

// ErrEmptySecret is returned by New when no signing secret is configured.
var ErrEmptySecret = errors.New("token: signing secret is empty")

// Kind classifies a verification failure.
type Kind int

const (
	KindMalformed Kind = iota + 1
	KindSignatureInvalid
	KindExpired
)

func (k Kind) String() string {
	switch k {
	case KindMalformed:
		return "malformed"
	case KindSignatureInvalid:
		return "signature invalid"
	case KindExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// Error is the only error Verify produces for a bad token.
type Error struct {
	Kind Kind
	Err  error
}

var (
	ErrMalformed        = &Error{Kind: KindMalformed}
	ErrSignatureInvalid = &Error{Kind: KindSignatureInvalid}
	ErrExpired          = &Error{Kind: KindExpired}
)

func (e *Error) Error() string {
	if e.Err == nil {
		return "token: " + e.Kind.String()
	}
	return fmt.Sprintf("token: %s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same Kind, so errors.Is(err, ErrExpired) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}
