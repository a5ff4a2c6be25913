package observability

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func NewLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

// NewConsoleLogger is the human-readable variant used by the CLI; it writes
// to stderr so command output on stdout stays machine-readable.
func NewConsoleLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.WarnLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

// CallLogger returns a child logger with remote-call fields.
func CallLogger(base *zap.Logger, api, version, method string) *zap.Logger {
	return base.With(
		zap.String("api", api),
		zap.String("api_version", version),
		zap.String("method", method),
	)
}
