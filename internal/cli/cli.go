// Package cli implements the nematode command-line interface.
//
// Commands load an element tree from a YAML, TOML or HTML document (or
// build one with a script), run layout, and report the resulting geometry
// as text, JSON or a PNG of the box areas.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// traces every placement made by the flow pass. The logger and the loaded
// configuration travel on the command context.
package cli

import (
	"context"

	"go.uber.org/zap"

	"nematode/internal/config"
)

// ctxKey is the type for context keys used in this package.
type ctxKey int

const (
	loggerKey ctxKey = iota
	configKey
)

func withLogger(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or a no-op logger.
func loggerFromContext(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(loggerKey).(*zap.Logger); ok {
		return l
	}
	return zap.NewNop()
}

func withConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// configFromContext retrieves the configuration from ctx, or the defaults.
func configFromContext(ctx context.Context) *config.Config {
	if c, ok := ctx.Value(configKey).(*config.Config); ok {
		return c
	}
	return config.NewDefaultConfig()
}
