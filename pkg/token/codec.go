// Package token issues and verifies HS256 signed, self contained claims tokens.
//
// A token carries {"exp": <seconds>, "data": <payload>} as its JWT claims set.
// Signing and verification run on an offload.Pool so they never execute on the
// goroutine serving the request.
package token

import (
	"context"
	"errors"
	"time"

	"users-srv/pkg/offload"

	"github.com/golang-jwt/jwt/v5"
)

var signingMethod = jwt.SigningMethodHS256

// Config configures a Codec.
type Config struct {
	Secret string
	TTL    time.Duration
	Pool   *offload.Pool
	// Clock defaults to time.Now.
	Clock func() time.Time
}

// Codec signs and verifies envelopes carrying P. P must round trip through encoding/json.
type Codec[P any] struct {
	secret []byte
	ttl    time.Duration
	pool   *offload.Pool
	clock  func() time.Time
	parser *jwt.Parser
}

// New builds a Codec. It fails only when the secret is empty.
func New[P any](cfg Config) (*Codec[P], error) {
	if cfg.Secret == "" {
		return nil, ErrEmptySecret
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.Pool == nil {
		cfg.Pool = offload.New(0)
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}

	c := &Codec[P]{
		secret: []byte(cfg.Secret),
		ttl:    cfg.TTL,
		pool:   cfg.Pool,
		clock:  cfg.Clock,
	}
	c.parser = jwt.NewParser(
		jwt.WithValidMethods([]string{signingMethod.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithStrictDecoding(),
		jwt.WithTimeFunc(c.clock),
	)
	return c, nil
}

// TTL returns the configured token lifetime.
func (c *Codec[P]) TTL() time.Duration {
	return c.ttl
}

// Wrap stamps payload with the codec's clock and TTL.
func (c *Codec[P]) Wrap(payload P) Envelope[P] {
	return Wrap(payload, c.clock(), c.ttl)
}

// Issue wraps and signs payload in one step.
func (c *Codec[P]) Issue(ctx context.Context, payload P) (string, error) {
	return c.Sign(ctx, c.Wrap(payload))
}

// Sign serializes env and signs it with the codec secret.
func (c *Codec[P]) Sign(ctx context.Context, env Envelope[P]) (string, error) {
	return offload.Run(ctx, c.pool, func() (string, error) {
		wc := &wireClaims[P]{Exp: env.expiresAt, Data: env.payload}
		return jwt.NewWithClaims(signingMethod, wc).SignedString(c.secret)
	})
}

// Verify decodes raw, checks its signature and expiry and returns the envelope.
// Bad tokens fail with *Error; pool faults are returned unchanged.
func (c *Codec[P]) Verify(ctx context.Context, raw string) (Envelope[P], error) {
	return offload.Run(ctx, c.pool, func() (Envelope[P], error) {
		return c.verify(raw)
	})
}

func (c *Codec[P]) verify(raw string) (Envelope[P], error) {
	wc := &wireClaims[P]{}
	_, err := c.parser.ParseWithClaims(raw, wc, func(*jwt.Token) (any, error) {
		return c.secret, nil
	})
	if err != nil {
		return Envelope[P]{}, classify(err)
	}
	return Envelope[P]{expiresAt: wc.Exp, payload: wc.Data}, nil
}

func classify(err error) *Error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return &Error{Kind: KindExpired, Err: err}
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return &Error{Kind: KindSignatureInvalid, Err: err}
	default:
		return &Error{Kind: KindMalformed, Err: err}
	}
}

// wireClaims is the JSON claims set. Only exp takes part in registered claim validation.
type wireClaims[P any] struct {
	Exp  uint64 `json:"exp"`
	Data P      `json:"data"`
}

func (w *wireClaims[P]) GetExpirationTime() (*jwt.NumericDate, error) {
	if w.Exp == 0 {
		return nil, nil
	}
	return jwt.NewNumericDate(time.Unix(int64(w.Exp), 0)), nil
}

func (w *wireClaims[P]) GetIssuedAt() (*jwt.NumericDate, error)  { return nil, nil }
func (w *wireClaims[P]) GetNotBefore() (*jwt.NumericDate, error) { return nil, nil }
func (w *wireClaims[P]) GetIssuer() (string, error)              { return "", nil }
func (w *wireClaims[P]) GetSubject() (string, error)             { return "", nil }
func (w *wireClaims[P]) GetAudience() (jwt.ClaimStrings, error)  { return nil, nil }
