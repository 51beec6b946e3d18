// Package scope turns the Authorization header of a request into typed claims.
package scope

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"users-srv/pkg/token"
)

const (
	HeaderAuthorization = "Authorization"
	BearerPrefix        = "Bearer "
)

// Verifier is satisfied by *token.Codec[P].
type Verifier[P any] interface {
	Verify(ctx context.Context, raw string) (token.Envelope[P], error)
}

// Extractor pulls a bearer token from request headers and verifies it.
// It holds no mutable state and is safe for concurrent use.
type Extractor[P any] struct {
	verifier Verifier[P]
}

func NewExtractor[P any](v Verifier[P]) *Extractor[P] {
	return &Extractor[P]{verifier: v}
}

// Extract returns the claims carried by the bearer token in h.
// Header problems and bad tokens yield *AuthError. Any other error comes from
// the verifier itself and is returned unchanged.
func (x *Extractor[P]) Extract(ctx context.Context, h http.Header) (P, error) {
	var zero P

	values, ok := h[http.CanonicalHeaderKey(HeaderAuthorization)]
	if !ok || len(values) == 0 {
		return zero, ErrNoHeader
	}
	value := values[0]
	if !isVisibleASCII(value) {
		return zero, ErrInvalidHeader
	}
	if !strings.HasPrefix(value, BearerPrefix) {
		return zero, ErrNoBearerToken
	}

	env, err := x.verifier.Verify(ctx, value[len(BearerPrefix):])
	if err != nil {
		var tokErr *token.Error
		if errors.As(err, &tokErr) {
			return zero, &AuthError{Kind: KindTokenInvalid, Err: err}
		}
		return zero, err
	}
	return env.Payload(), nil
}

// isVisibleASCII accepts tab and printable ASCII, the only bytes a header value may carry as text.
func isVisibleASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b != '\t' && (b < 0x20 || b > 0x7e) {
			return false
		}
	}
	return true
}
