package log

import (
	"context"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const timeFormat = "2006-01-02 15:04:05.000"

var levels = map[string]zapcore.Level{
	LevelDebug: zapcore.DebugLevel,
	LevelInfo:  zapcore.InfoLevel,
	LevelWarn:  zapcore.WarnLevel,
	LevelError: zapcore.ErrorLevel,
	LevelFatal: zapcore.FatalLevel,
}

func (l *zapLogger) level() zapcore.Level {
	if lvl, ok := levels[l.cfg.Level]; ok {
		return lvl
	}
	return zapcore.InfoLevel
}

func (l *zapLogger) init() {
	encCfg := zap.NewDevelopmentEncoderConfig()
	if l.cfg.Mode == ModeProduction {
		encCfg = zap.NewProductionEncoderConfig()
	}
	encCfg.LevelKey = "LEVEL"
	encCfg.CallerKey = "CALLER"
	encCfg.TimeKey = "TIME"
	encCfg.NameKey = "NAME"
	encCfg.MessageKey = "MESSAGE"
	encCfg.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.Format(timeFormat))
	}

	var enc zapcore.Encoder
	if l.cfg.Encoding == EncodingConsole {
		if l.cfg.ColorEnabled {
			encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(os.Stderr), zap.NewAtomicLevelAt(l.level()))
	l.sugar = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)).Sugar()
}

func newNop() *zapLogger {
	return &zapLogger{sugar: zap.NewNop().Sugar()}
}

// from prefers the child logger stored in ctx by With.
func (l *zapLogger) from(ctx context.Context) *zap.SugaredLogger {
	if ctx == nil {
		return l.sugar
	}
	if s, ok := ctx.Value(loggerKey{}).(*zap.SugaredLogger); ok && s != nil {
		return s
	}
	return l.sugar
}

func (l *zapLogger) With(ctx context.Context, keysAndValues ...any) context.Context {
	return context.WithValue(ctx, loggerKey{}, l.from(ctx).With(keysAndValues...))
}

func (l *zapLogger) Debug(ctx context.Context, args ...any) { l.from(ctx).Debug(args...) }
func (l *zapLogger) Debugf(ctx context.Context, template string, args ...any) {
	l.from(ctx).Debugf(template, args...)
}
func (l *zapLogger) Info(ctx context.Context, args ...any) { l.from(ctx).Info(args...) }
func (l *zapLogger) Infof(ctx context.Context, template string, args ...any) {
	l.from(ctx).Infof(template, args...)
}
func (l *zapLogger) Warn(ctx context.Context, args ...any) { l.from(ctx).Warn(args...) }
func (l *zapLogger) Warnf(ctx context.Context, template string, args ...any) {
	l.from(ctx).Warnf(template, args...)
}
func (l *zapLogger) Error(ctx context.Context, args ...any) { l.from(ctx).Error(args...) }
func (l *zapLogger) Errorf(ctx context.Context, template string, args ...any) {
	l.from(ctx).Errorf(template, args...)
}
func (l *zapLogger) Fatal(ctx context.Context, args ...any) { l.from(ctx).Fatal(args...) }
func (l *zapLogger) Fatalf(ctx context.Context, template string, args ...any) {
	l.from(ctx).Fatalf(template, args...)
}
