// Package logging builds the structured logger the CLI and application
// services share, following the same zap.Config pattern
// cmd/nerd/main.go uses: a production config by default, switched to
// debug level under a verbose flag.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a *zap.Logger. verbose lowers the level to Debug; otherwise
// the logger runs at zap's production default (Info).
func New(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return nil, err
	}
	return logger, nil
}

// Nop returns a logger that discards everything, for tests that need to
// satisfy a *zap.Logger parameter without asserting on log output.
func Nop() *zap.Logger {
	return zap.NewNop()
}
