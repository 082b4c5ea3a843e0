package f2

import (
	"go.uber.org/zap"
)

// Option is a functional option for configuring the Engine.
type Option func(*engineConfig)

// engineConfig holds the internal configuration for an Engine.
type engineConfig struct {
	cacheSize int
	builtins  bool
	inspector func(any) string
	types     []typeOption
	logger    *zap.Logger
}

type typeOption struct {
	code      string
	formatter Formatter
}

// defaultEngineConfig returns the default engine configuration.
func defaultEngineConfig() *engineConfig {
	return &engineConfig{
		cacheSize: DefaultCacheSize,
		builtins:  true,
		inspector: nil,
		logger:    nil,
	}
}

// WithCacheSize sets how many compiled patterns are kept.
// Values below one select the default.
// Default: 255
func WithCacheSize(size int) Option {
	return func(c *engineConfig) {
		c.cacheSize = size
	}
}

// WithoutBuiltins creates an engine without the s, d and j formatters.
func WithoutBuiltins() Option {
	return func(c *engineConfig) {
		c.builtins = false
	}
}

// WithInspector replaces the stringifier used for unconsumed arguments.
// The function must not panic.
// Default: Inspect
func WithInspector(inspect func(any) string) Option {
	return func(c *engineConfig) {
		c.inspector = inspect
	}
}

// WithType registers a formatter at construction time. Invalid codes or
// formatters make New fail.
func WithType(code string, f Formatter) Option {
	return func(c *engineConfig) {
		c.types = append(c.types, typeOption{code: code, formatter: f})
	}
}

// WithLogger sets the logger for the engine.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(c *engineConfig) {
		c.logger = logger
	}
}
