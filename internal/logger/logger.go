package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a structured logger. Production gets JSON on stdout,
// everything else gets colored console output.
func New(env string) (*zap.Logger, error) {
	var config zap.Config

	if env == "production" {
		config = zap.NewProductionConfig()
		config.Encoding = "json"
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	// Containers collect logs from stdout
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	if level, ok := levelFromEnv(); ok {
		config.Level = zap.NewAtomicLevelAt(level)
	}

	return config.Build(
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	)
}

// NewWithDefaults creates a logger from SERVER_ENV, falling back to a
// plain production logger if construction fails.
func NewWithDefaults() *zap.Logger {
	env := os.Getenv("SERVER_ENV")
	if env == "" {
		env = "development"
	}

	logger, err := New(env)
	if err != nil {
		logger, _ = zap.NewProduction()
	}

	return logger
}

// levelFromEnv reads LOG_LEVEL. Unknown values are ignored so a typo
// does not silence the logger.
func levelFromEnv() (zapcore.Level, bool) {
	raw := os.Getenv("LOG_LEVEL")
	if raw == "" {
		return 0, false
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return 0, false
	}

	return level, true
}
