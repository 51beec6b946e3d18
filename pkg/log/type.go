package log

import "go.uber.org/zap"

const (
	ModeProduction  = "production"
	ModeDevelopment = "development"

	EncodingConsole = "console"
	EncodingJSON    = "json"
)

const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
	LevelFatal = "fatal"
)

// ZapConfig mirrors the LOGGER_* environment block.
type ZapConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type zapLogger struct {
	sugar *zap.SugaredLogger
	cfg   ZapConfig
}

type loggerKey struct{}
