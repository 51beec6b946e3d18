// Package encrypter hashes and checks passwords on the offload pool.
package encrypter

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"users-srv/pkg/offload"

	"golang.org/x/crypto/bcrypt"
)

const (
	AlgorithmBcrypt   = "bcrypt"
	AlgorithmArgon2id = "argon2id"
)

var (
	ErrUnknownAlgorithm = errors.New("encrypter: unknown algorithm")
	ErrInvalidHash      = errors.New("encrypter: invalid hash format")
)

// Hasher hashes new passwords with the configured algorithm and verifies
// stored hashes of any supported algorithm.
type Hasher interface {
	Hash(ctx context.Context, plain string) (string, error)
	// Verify returns false with a nil error when plain does not match.
	Verify(ctx context.Context, plain, hashed string) (bool, error)
}

type Config struct {
	Algorithm  string
	BcryptCost int
	Argon2     Argon2Params
}

type algorithm interface {
	hash(plain string) (string, error)
	verify(plain, hashed string) (bool, error)
}

type implHasher struct {
	pool    *offload.Pool
	primary algorithm
	bcrypt  algorithm
	argon2  algorithm
}

func New(cfg Config, pool *offload.Pool) (Hasher, error) {
	if pool == nil {
		pool = offload.New(0)
	}
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		return nil, fmt.Errorf("encrypter: bcrypt cost %d out of range", cfg.BcryptCost)
	}

	h := &implHasher{
		pool:   pool,
		bcrypt: bcryptAlgorithm{cost: cfg.BcryptCost},
		argon2: newArgon2(cfg.Argon2),
	}
	switch strings.ToLower(cfg.Algorithm) {
	case "", AlgorithmBcrypt:
		h.primary = h.bcrypt
	case AlgorithmArgon2id:
		h.primary = h.argon2
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, cfg.Algorithm)
	}
	return h, nil
}

func (h *implHasher) Hash(ctx context.Context, plain string) (string, error) {
	return offload.Run(ctx, h.pool, func() (string, error) {
		return h.primary.hash(plain)
	})
}

func (h *implHasher) Verify(ctx context.Context, plain, hashed string) (bool, error) {
	alg, err := h.detect(hashed)
	if err != nil {
		return false, err
	}
	return offload.Run(ctx, h.pool, func() (bool, error) {
		return alg.verify(plain, hashed)
	})
}

// detect picks the algorithm from the hash prefix.
func (h *implHasher) detect(hashed string) (algorithm, error) {
	switch {
	case strings.HasPrefix(hashed, argon2Prefix):
		return h.argon2, nil
	case strings.HasPrefix(hashed, "$2a$"), strings.HasPrefix(hashed, "$2b$"), strings.HasPrefix(hashed, "$2y$"):
		return h.bcrypt, nil
	default:
		return nil, ErrInvalidHash
	}
}
