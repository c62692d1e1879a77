// Package logger builds the zap loggers used across go-flycam.
package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config defines logging configuration
type Config struct {
	Level       string `yaml:"level"`
	Format      string `yaml:"format"` // json or console
	Development bool   `yaml:"development"`
}

// DefaultConfig returns the interactive default: console output at info level
func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: "console",
	}
}

// New creates a zap logger from cfg. An unparsable level falls back to info.
func New(cfg Config) (*zap.Logger, error) {
	var zapConfig zap.Config
	if cfg.Development {
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zapConfig = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zapConfig.Level = zap.NewAtomicLevelAt(level)

	switch cfg.Format {
	case "json":
		zapConfig.Encoding = "json"
	case "console", "":
		zapConfig.Encoding = "console"
	default:
		return nil, fmt.Errorf("unsupported log format %q", cfg.Format)
	}

	// per-frame debug logs would otherwise be sampled away
	zapConfig.Sampling = nil

	logger, err := zapConfig.Build(zap.AddCaller())
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}

// Nop returns a logger that discards everything
func Nop() *zap.Logger {
	return zap.NewNop()
}
