package manglebars

import (
	"context"

	"github.com/itsatony/go-manglebars/internal"
	"go.uber.org/zap"
)

// HelperFunc implements a block operator. It receives the resolved arguments,
// the raw body and the enclosing data context through call, and returns the
// text that replaces the whole block.
type HelperFunc func(ctx context.Context, call *Call) (string, error)

// Call describes one operator invocation.
type Call struct {
	// Name is the operator name from the block header.
	Name string
	// Args holds the values of the header arguments looked up in Data.
	// Absent keys resolve to nil.
	Args []any
	// ArgKeys holds the argument names exactly as written.
	ArgKeys []string
	// Body is the raw nested template between the header and the footer.
	Body string
	// Data is the context the block itself was evaluated in.
	Data map[string]any

	inner *internal.Call
}

func newCall(ic *internal.Call) *Call {
	return &Call{
		Name:    ic.Name,
		Args:    ic.Args,
		ArgKeys: ic.ArgKeys,
		Body:    ic.Body,
		Data:    ic.Data,
		inner:   ic,
	}
}

// Arg returns the i-th resolved argument and whether the header supplied it.
func (c *Call) Arg(i int) (any, bool) {
	return c.inner.Arg(i)
}

// RenderBody compiles Body and renders it against data.
// Pass c.Data to render in the enclosing context.
func (c *Call) RenderBody(ctx context.Context, data map[string]any) (string, error) {
	return c.inner.RenderBody(ctx, data)
}

// Depth returns the nesting depth of this operator, 0 at the top level.
func (c *Call) Depth() int {
	return c.inner.Depth()
}

// Registry maps operator names to helpers. Registering a name that already
// exists replaces the previous helper. It is safe for concurrent use.
type Registry struct {
	inner *internal.Registry
}

// NewRegistry creates a registry pre-populated with the each and if operators.
func NewRegistry(logger *zap.Logger) *Registry {
	inner := internal.NewRegistry(logger)
	internal.RegisterBuiltins(inner)
	return &Registry{inner: inner}
}

// Register binds name to fn, replacing any existing helper with that name.
func (r *Registry) Register(name string, fn HelperFunc) error {
	var handler internal.Handler
	if fn != nil {
		handler = adaptHelper(fn)
	}
	if err := r.inner.Register(name, handler); err != nil {
		return NewRegistryError(name, err)
	}
	return nil
}

// MustRegister binds a helper and panics if registration fails.
func (r *Registry) MustRegister(name string, fn HelperFunc) {
	if err := r.Register(name, fn); err != nil {
		panic(err)
	}
}

// Unregister removes the helper bound to name, built-ins included.
// Returns true if a helper was removed.
func (r *Registry) Unregister(name string) bool {
	return r.inner.Unregister(name)
}

// Has checks if a helper is registered for name.
func (r *Registry) Has(name string) bool {
	return r.inner.Has(name)
}

// List returns all registered operator names in sorted order.
func (r *Registry) List() []string {
	return r.inner.List()
}

// Count returns the number of registered helpers.
func (r *Registry) Count() int {
	return r.inner.Count()
}

// adaptHelper adapts the public HelperFunc to internal.Handler
func adaptHelper(fn HelperFunc) internal.Handler {
	return func(ctx context.Context, ic *internal.Call) (string, error) {
		return fn(ctx, newCall(ic))
	}
}
