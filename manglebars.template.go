package manglebars

import (
	"context"

	"github.com/itsatony/go-manglebars/internal"
)

// RenderFunc renders a compiled template against a data context.
type RenderFunc func(ctx context.Context, data map[string]any) (string, error)

// Template is a compiled template. Its node list never changes after Compile,
// so a Template may be rendered any number of times, concurrently.
type Template struct {
	source   string
	nodes    []internal.Node
	executor *internal.Executor
}

func newTemplate(source string, nodes []internal.Node, executor *internal.Executor) *Template {
	return &Template{
		source:   source,
		nodes:    nodes,
		executor: executor,
	}
}

// Render walks the node list and returns the output.
// Missing bindings render as the empty string; a nil data map is an empty context.
// On error no partial output is returned.
func (t *Template) Render(ctx context.Context, data map[string]any) (string, error) {
	result, err := t.executor.Execute(ctx, t.nodes, data)
	if err != nil {
		return "", wrapError(err)
	}
	return result, nil
}

// Func returns Render as a function value.
func (t *Template) Func() RenderFunc {
	return t.Render
}

// Source returns the template text the Template was compiled from.
func (t *Template) Source() string {
	return t.source
}

// Nodes returns a human-readable description of each top-level node.
func (t *Template) Nodes() []string {
	out := make([]string, len(t.nodes))
	for i, n := range t.nodes {
		out[i] = n.String()
	}
	return out
}
