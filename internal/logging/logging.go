// Package logging provides the debug logger for the TUI. The terminal
// is owned by the renderer, so log output goes to a file, and only when
// ALVA_DEBUG names one.
package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns the process logger. Without ALVA_DEBUG it is a no-op
// logger; with ALVA_DEBUG set to a path it logs debug-level JSON there.
func New() (*zap.Logger, error) {
	path := os.Getenv("ALVA_DEBUG")
	if path == "" {
		return zap.NewNop(), nil
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	config.OutputPaths = []string{path}
	config.ErrorOutputPaths = []string{path}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
