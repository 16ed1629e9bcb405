// Package logging builds the console logger shared by all commands.
package logging

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

const appName = "resprune"

// DefaultLevel keeps runs quiet unless something goes wrong.
const DefaultLevel = "warn"

// New returns a logger writing to w that drops entries below level
// (debug, info, warn, error).
func New(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	return log.NewWithOptions(w, log.Options{
		Prefix: appName,
		Level:  lvl,
	}), nil
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	return log.WithContext(ctx, logger)
}

// FromContext returns the logger carried by ctx, or the default logger.
func FromContext(ctx context.Context) *log.Logger {
	return log.FromContext(ctx)
}
