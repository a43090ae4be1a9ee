package internal

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"
)

// Handler implements one operator's render-time behavior.
type Handler func(ctx context.Context, call *Call) (string, error)

// Registry maps operator names to handlers with last-write-wins semantics.
// It is thread-safe for concurrent read/write access.
type Registry struct {
	handlers map[string]Handler
	mu       sync.RWMutex
	logger   *zap.Logger
}

// NewRegistry creates an empty operator registry.
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgRegistryCreated)
	return &Registry{
		handlers: make(map[string]Handler),
		logger:   logger,
	}
}

// Register binds name to handler, replacing any existing binding.
func (r *Registry) Register(name string, handler Handler) error {
	if name == StringValueEmpty {
		return NewRegistryError(ErrMsgEmptyHelperName, StringValueEmpty)
	}
	if handler == nil {
		return NewRegistryError(ErrMsgNilHelper, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.handlers[name]; exists {
		r.logger.Debug(LogMsgHelperOverwritten, zap.String(LogFieldHelper, name))
	} else {
		r.logger.Debug(LogMsgHelperRegistered, zap.String(LogFieldHelper, name))
	}
	r.handlers[name] = handler
	return nil
}

// MustRegister binds a handler and panics if registration fails.
// Use this for built-in operators that must always be available.
func (r *Registry) MustRegister(name string, handler Handler) {
	if err := r.Register(name, handler); err != nil {
		panic(err)
	}
}

// Unregister removes the binding for name.
// Returns true if a handler was removed.
func (r *Registry) Unregister(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.handlers[name]; !exists {
		return false
	}
	delete(r.handlers, name)
	r.logger.Debug(LogMsgHelperUnregistered, zap.String(LogFieldHelper, name))
	return true
}

// Get retrieves the handler bound to name.
func (r *Registry) Get(name string) (Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	handler, exists := r.handlers[name]
	return handler, exists
}

// Has checks if a handler is registered for name.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.handlers[name]
	return exists
}

// List returns all registered operator names in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered handlers.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.handlers)
}

// RegistryError represents a registry operation error
type RegistryError struct {
	Message string
	Name    string
}

// NewRegistryError creates a new registry error
func NewRegistryError(message, name string) *RegistryError {
	return &RegistryError{
		Message: message,
		Name:    name,
	}
}

// Error implements the error interface
func (e *RegistryError) Error() string {
	if e.Name != StringValueEmpty {
		return fmt.Sprintf(ErrFmtWithCause, e.Message, e.Name)
	}
	return e.Message
}
