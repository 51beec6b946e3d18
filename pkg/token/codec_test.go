package token

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"users-srv/pkg/offload"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testClaims struct {
	UserID string `json:"userId"`
}

type fakeClock struct {
	unix atomic.Int64
}

func (f *fakeClock) Now() time.Time { return time.Unix(f.unix.Load(), 0) }
func (f *fakeClock) Set(sec int64)  { f.unix.Store(sec) }

func newTestCodec(t *testing.T, clock *fakeClock) *Codec[testClaims] {
	t.Helper()
	c, err := New[testClaims](Config{
		Secret: "test-secret",
		TTL:    7200 * time.Second,
		Pool:   offload.New(4),
		Clock:  clock.Now,
	})
	require.NoError(t, err)
	return c
}

func TestNewRequiresSecret(t *testing.T) {
	_, err := New[testClaims](Config{})
	assert.ErrorIs(t, err, ErrEmptySecret)
}

func TestNewDefaults(t *testing.T) {
	c, err := New[testClaims](Config{Secret: "s"})
	require.NoError(t, err)
	assert.Equal(t, DefaultTTL, c.TTL())
}

func TestIssueAndVerifyAcrossExpiry(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{}
	clock.Set(1000)
	c := newTestCodec(t, clock)

	env := c.Wrap(testClaims{UserID: "u1"})
	assert.Equal(t, uint64(8200), env.ExpiresAt())

	s, err := c.Sign(ctx, env)
	require.NoError(t, err)

	tests := []struct {
		name    string
		at      int64
		wantErr error
	}{
		{"at issue time", 1000, nil},
		{"just before expiry", 8199, nil},
		{"at expiry", 8200, ErrExpired},
		{"long after expiry", 100000, ErrExpired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock.Set(tt.at)
			got, err := c.Verify(ctx, s)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testClaims{UserID: "u1"}, got.Payload())
			assert.Equal(t, uint64(8200), got.ExpiresAt())
		})
	}
}

func TestVerifyGarbageIsMalformed(t *testing.T) {
	clock := &fakeClock{}
	clock.Set(1000)
	c := newTestCodec(t, clock)

	for _, raw := range []string{"garbage", "", "a.b.c", "...."} {
		_, err := c.Verify(context.Background(), raw)
		assert.ErrorIs(t, err, ErrMalformed, raw)
	}
}

func TestVerifySingleCharacterFlip(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{}
	clock.Set(1000)
	c := newTestCodec(t, clock)

	s, err := c.Issue(ctx, testClaims{UserID: "u1"})
	require.NoError(t, err)

	for i := range s {
		repl := byte('A')
		if s[i] == 'A' {
			repl = 'B'
		}
		flipped := s[:i] + string(repl) + s[i+1:]

		_, err := c.Verify(ctx, flipped)
		var tokErr *Error
		require.ErrorAs(t, err, &tokErr, "position %d accepted", i)
		assert.NotEqual(t, KindExpired, tokErr.Kind, "position %d", i)
	}
}

func TestVerifyRejectsForeignTokens(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{}
	clock.Set(1000)
	c := newTestCodec(t, clock)

	other, err := New[testClaims](Config{Secret: "another-secret", Clock: clock.Now})
	require.NoError(t, err)
	foreign, err := other.Issue(ctx, testClaims{UserID: "u1"})
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"exp":  9000,
		"data": map[string]string{"userId": "u1"},
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"data": map[string]string{"userId": "u1"},
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	tests := []struct {
		name string
		raw  string
		want error
	}{
		{"different secret", foreign, ErrSignatureInvalid},
		{"different algorithm", hs512, ErrSignatureInvalid},
		{"missing exp", noExp, ErrMalformed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Verify(ctx, tt.raw)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestVerifyConcurrentNoCrossTalk(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{}
	clock.Set(1000)
	c := newTestCodec(t, clock)

	const n = 64
	tokens := make([]string, n)
	for i := 0; i < n; i++ {
		s, err := c.Issue(ctx, testClaims{UserID: fmt.Sprintf("user-%d", i)})
		require.NoError(t, err)
		tokens[i] = s
	}

	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			env, err := c.Verify(ctx, tokens[i])
			if err != nil {
				errs <- err
				return
			}
			if want := fmt.Sprintf("user-%d", i); env.Payload().UserID != want {
				errs <- fmt.Errorf("token %d decoded to %q", i, env.Payload().UserID)
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func TestVerifyCanceledContextIsNotATokenError(t *testing.T) {
	clock := &fakeClock{}
	clock.Set(1000)
	c := newTestCodec(t, clock)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Verify(ctx, "garbage")
	require.Error(t, err)

	var tokErr *Error
	assert.False(t, errors.As(err, &tokErr))
	assert.True(t, offload.IsFault(err))
}
