// Package logging builds the zap logger shared by the CLI and the simulation engine.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rpgo/career-simulator/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ParseLevel maps a settings level name to a zap level.
func ParseLevel(level string) (zapcore.Level, error) {
	switch level {
	case "debug":
		return zapcore.DebugLevel, nil
	case "", "info":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("invalid log level: %s", level)
	}
}

// New creates a zap logger from the logging settings. An empty format means json.
func New(settings config.LoggingSettings) (*zap.Logger, error) {
	zapLevel, err := ParseLevel(settings.Level)
	if err != nil {
		return nil, err
	}

	var cfg zap.Config
	switch settings.Format {
	case "console":
		cfg = zap.NewDevelopmentConfig()
	case "", "json":
		cfg = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("invalid log format: %s", settings.Format)
	}
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)

	if settings.OutputFile != "" {
		if dir := filepath.Dir(settings.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
			}
		}
		file, err := os.OpenFile(settings.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %w", settings.OutputFile, err)
		}
		_ = file.Close()

		cfg.OutputPaths = []string{settings.OutputFile}
		cfg.ErrorOutputPaths = []string{settings.OutputFile}
	} else {
		// stdout carries reports
		cfg.OutputPaths = []string{"stderr"}
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}

// Sugar returns the printf-style view of l, which satisfies calculation.Logger.
// A nil logger yields a no-op.
func Sugar(l *zap.Logger) *zap.SugaredLogger {
	if l == nil {
		return zap.NewNop().Sugar()
	}
	return l.Sugar()
}
