package manglebars

import (
	"go.uber.org/zap"
)

// Option is a functional option for configuring the Engine.
type Option func(*engineConfig)

// engineConfig holds the internal configuration for an Engine.
type engineConfig struct {
	maxDepth      int
	nestingAware  bool
	bodyCacheSize int
	registry      *Registry
	logger        *zap.Logger
}

// defaultEngineConfig returns the default engine configuration.
func defaultEngineConfig() *engineConfig {
	return &engineConfig{
		maxDepth:      DefaultMaxDepth,
		nestingAware:  DefaultNestingAware,
		bodyCacheSize: DefaultBodyCacheSize,
		registry:      nil,
		logger:        nil,
	}
}

// WithMaxDepth sets the maximum operator nesting depth at render time.
// Use 0 for unlimited depth.
// Default: 100
func WithMaxDepth(depth int) Option {
	return func(c *engineConfig) {
		c.maxDepth = depth
	}
}

// WithNestingAware switches the block scanner from first-match to depth-counted
// closing tags, so {{#if a}}{{#if b}}x{{/if}}{{/if}} nests as written.
// Default: false (the first {{/name}} closes the block)
func WithNestingAware(enabled bool) Option {
	return func(c *engineConfig) {
		c.nestingAware = enabled
	}
}

// WithBodyCache caches up to size compiled operator bodies, keyed by body text.
// Default: 0 (bodies are recompiled every time an operator renders them)
func WithBodyCache(size int) Option {
	return func(c *engineConfig) {
		c.bodyCacheSize = size
	}
}

// WithRegistry makes the engine resolve operators from a registry owned by the caller.
// The same registry may back several engines.
// Default: a fresh registry holding the built-in operators
func WithRegistry(registry *Registry) Option {
	return func(c *engineConfig) {
		c.registry = registry
	}
}

// WithLogger sets the logger for the engine.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(c *engineConfig) {
		c.logger = logger
	}
}
