package manglebars

import (
	"context"
	"strconv"

	"github.com/itsatony/go-manglebars/internal"
	"go.uber.org/zap"
)

// Engine is the main entry point for the manglebars templating system.
// It compiles templates and owns the operator registry they render with.
type Engine struct {
	registry *Registry
	config   *engineConfig
	executor *internal.Executor
	logger   *zap.Logger
}

// New creates a new manglebars Engine with the given options.
func New(opts ...Option) (*Engine, error) {
	config := defaultEngineConfig()
	for _, opt := range opts {
		opt(config)
	}

	if config.maxDepth < 0 {
		return nil, NewConfigError(ErrMsgNegativeMaxDepth, ConfigKeyMaxDepth, strconv.Itoa(config.maxDepth))
	}
	if config.bodyCacheSize < 0 {
		return nil, NewConfigError(ErrMsgNegativeCache, ConfigKeyBodyCacheSize, strconv.Itoa(config.bodyCacheSize))
	}

	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	registry := config.registry
	if registry == nil {
		registry = NewRegistry(logger)
	}

	executorConfig := internal.ExecutorConfig{
		MaxDepth:     config.maxDepth,
		NestingAware: config.nestingAware,
	}
	cache := internal.NewBodyCache(config.bodyCacheSize, logger)
	executor := internal.NewExecutor(registry.inner, executorConfig, cache, logger)

	return &Engine{
		registry: registry,
		config:   config,
		executor: executor,
		logger:   logger,
	}, nil
}

// MustNew creates a new Engine and panics if there's an error.
func MustNew(opts ...Option) *Engine {
	engine, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return engine
}

// Compile tokenizes and classifies source once and returns a reusable Template.
// Operator bodies are not compiled here; a syntax error inside a body surfaces
// the first time that body renders. Use Validate to check bodies up front.
func (e *Engine) Compile(source string) (*Template, error) {
	nodes, err := e.executor.Compile(source, internal.StartPosition())
	if err != nil {
		return nil, wrapError(err)
	}
	return newTemplate(source, nodes, e.executor), nil
}

// MustCompile compiles source and panics on error.
func (e *Engine) MustCompile(source string) *Template {
	tmpl, err := e.Compile(source)
	if err != nil {
		panic(err)
	}
	return tmpl
}

// Render is a convenience method that compiles and renders in one step.
// For templates rendered more than once, use Compile instead.
func (e *Engine) Render(ctx context.Context, source string, data map[string]any) (string, error) {
	tmpl, err := e.Compile(source)
	if err != nil {
		return "", err
	}
	return tmpl.Render(ctx, data)
}

// RegisterHelper binds a block operator on the engine's registry.
// Registering an existing name replaces the previous helper.
func (e *Engine) RegisterHelper(name string, fn HelperFunc) error {
	return e.registry.Register(name, fn)
}

// MustRegisterHelper binds a block operator and panics if registration fails.
func (e *Engine) MustRegisterHelper(name string, fn HelperFunc) {
	e.registry.MustRegister(name, fn)
}

// Registry returns the registry the engine resolves operators from.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// MaxDepth returns the configured maximum operator nesting depth.
func (e *Engine) MaxDepth() int {
	return e.config.maxDepth
}

// NestingAware reports whether closing tags are matched by nesting depth.
func (e *Engine) NestingAware() bool {
	return e.config.nestingAware
}

// Sync flushes any buffered log entries held by the engine's logger.
func (e *Engine) Sync() error {
	return e.logger.Sync()
}

// BodyCacheStats reports body cache usage. All counters are zero when caching is disabled.
func (e *Engine) BodyCacheStats() BodyCacheStats {
	return BodyCacheStats(e.executor.Cache().Stats())
}

// BodyCacheStats tracks compiled-body cache performance.
type BodyCacheStats internal.BodyCacheStats
