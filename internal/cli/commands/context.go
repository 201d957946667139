// Package commands implements the tablereg subcommands.
package commands

import (
	"context"
	"log/slog"

	"github.com/leapstack-labs/tablereg/internal/config"
	"github.com/leapstack-labs/tablereg/pkg/registry"
)

// ctxKey is used to store the command context on the cobra context.
type ctxKey struct{}

// CommandContext carries the loaded configuration and the effective
// registry for subcommands.
type CommandContext struct {
	Config   *config.Config
	Registry *registry.Registry
	Logger   *slog.Logger
}

// WithContext stores the command context on ctx.
func WithContext(ctx context.Context, c *CommandContext) context.Context {
	return context.WithValue(ctx, ctxKey{}, c)
}

// FromContext retrieves the command context. When none was stored (unit
// tests invoking a command directly) it falls back to defaults over the
// built-in registry.
func FromContext(ctx context.Context) *CommandContext {
	if c, ok := ctx.Value(ctxKey{}).(*CommandContext); ok {
		return c
	}
	return &CommandContext{
		Config: &config.Config{
			Driver: config.DefaultDriver,
			Output: config.DefaultOutput,
		},
		Registry: registry.Builtin(),
		Logger:   slog.New(slog.DiscardHandler),
	}
}
