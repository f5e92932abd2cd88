// Package logging builds the zap loggers handed to every solver component.
// Nothing in this module installs a global logger; callers construct one with
// New and pass it (or a category child from For) down explicitly.
package logging

import (
	"fmt"
	"os"
	"strings"

	"aoc2023/internal/config"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot        Category = "boot"        // Startup and configuration
	CategoryInput       Category = "input"       // Reading puzzle inputs
	CategoryCalibration Category = "calibration" // Day 1 normalizer
	CategoryCubes       Category = "cubes"       // Day 2 game parser
	CategoryGrid        Category = "grid"        // Day 3 schematic scanner
	CategoryKernel      Category = "kernel"      // Mangle evaluation
	CategoryCLI         Category = "cli"         // Command dispatch
)

// ParseLevel maps a level string onto a zap level. "warning" is accepted as
// an alias of "warn".
func ParseLevel(s string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "", "info":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", s)
	}
}

// New builds a logger writing to stderr, keeping stdout free for answers.
func New(cfg config.LoggingConfig) (*zap.Logger, error) {
	return Build(cfg, zapcore.Lock(os.Stderr))
}

// Build builds a logger writing to out.
func Build(cfg config.LoggingConfig, out zapcore.WriteSyncer) (*zap.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	var enc zapcore.Encoder
	switch cfg.Format {
	case "json":
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	case "", "console":
		enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}

	core := zapcore.NewCore(enc, out, zap.NewAtomicLevelAt(level))
	return zap.New(core, zap.AddCaller()), nil
}

// For returns the child logger for a category. A nil base yields a no-op
// logger so components can be handed an optional sink.
func For(base *zap.Logger, cat Category) *zap.Logger {
	if base == nil {
		return zap.NewNop()
	}
	return base.Named(string(cat))
}

// OrNop returns l, or a no-op logger when l is nil.
func OrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}

// WithRun tags every entry of l with a fresh run id and returns the id.
func WithRun(l *zap.Logger) (*zap.Logger, string) {
	id := uuid.NewString()
	return OrNop(l).With(zap.String("run_id", id)), id
}
