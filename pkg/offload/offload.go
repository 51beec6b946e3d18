// Package offload runs CPU bound work on a bounded set of goroutines so that
// request handlers only wait on a channel while the work is being done.
package offload

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

var (
	// ErrPanic is returned when the job panicked. The panic value is in the message.
	ErrPanic = errors.New("offload: job panicked")
	// ErrCanceled is returned when the caller stopped waiting before the job finished.
	ErrCanceled = errors.New("offload: caller canceled")
	// ErrClosed is returned for jobs submitted after Close.
	ErrClosed = errors.New("offload: pool closed")
)

// Pool bounds the number of jobs executing at once.
type Pool struct {
	sem    *semaphore.Weighted
	size   int64
	closed atomic.Bool
}

// New builds a Pool running at most workers jobs at a time. workers <= 0 means GOMAXPROCS.
func New(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Pool{
		sem:  semaphore.NewWeighted(int64(workers)),
		size: int64(workers),
	}
}

// Size returns the worker bound.
func (p *Pool) Size() int {
	return int(p.size)
}

// Close rejects further jobs. Jobs already running finish normally.
func (p *Pool) Close() {
	p.closed.Store(true)
}

type result[T any] struct {
	val T
	err error
}

// Run executes fn on p and waits for its result or for ctx to end.
// When ctx ends first, fn keeps running to completion and its result is dropped.
func Run[T any](ctx context.Context, p *Pool, fn func() (T, error)) (T, error) {
	var zero T
	if p.closed.Load() {
		return zero, ErrClosed
	}
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrCanceled, err)
	}
	if p.closed.Load() {
		p.sem.Release(1)
		return zero, ErrClosed
	}

	// buffered so an abandoned job never blocks on send
	done := make(chan result[T], 1)
	go func() {
		defer p.sem.Release(1)
		defer func() {
			if r := recover(); r != nil {
				done <- result[T]{err: fmt.Errorf("%w: %v", ErrPanic, r)}
			}
		}()
		v, err := fn()
		done <- result[T]{val: v, err: err}
	}()

	select {
	case res := <-done:
		return res.val, res.err
	case <-ctx.Done():
		return zero, fmt.Errorf("%w: %v", ErrCanceled, ctx.Err())
	}
}

// IsFault reports whether err came from the pool itself rather than from the job.
func IsFault(err error) bool {
	return errors.Is(err, ErrPanic) || errors.Is(err, ErrCanceled) || errors.Is(err, ErrClosed)
}
