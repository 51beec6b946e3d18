package log

import "context"

// Logger is a ctx-first structured logger. Implementations are safe for concurrent use.
type Logger interface {
	Debug(ctx context.Context, arg ...any)
	Debugf(ctx context.Context, template string, arg ...any)
	Info(ctx context.Context, arg ...any)
	Infof(ctx context.Context, template string, arg ...any)
	Warn(ctx context.Context, arg ...any)
	Warnf(ctx context.Context, template string, arg ...any)
	Error(ctx context.Context, arg ...any)
	Errorf(ctx context.Context, template string, arg ...any)
	Fatal(ctx context.Context, arg ...any)
	Fatalf(ctx context.Context, template string, arg ...any)

	// With returns a copy of ctx whose log lines carry the given key/value pairs.
	With(ctx context.Context, keysAndValues ...any) context.Context
}

// Init builds a zap backed Logger from cfg.
func Init(cfg ZapConfig) Logger {
	l := &zapLogger{cfg: cfg}
	l.init()
	return l
}

// NewNop returns a Logger that discards everything. Used by tests.
func NewNop() Logger {
	return newNop()
}
