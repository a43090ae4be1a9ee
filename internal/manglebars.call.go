package internal

import "context"

// Call describes a single operator invocation handed to a Handler.
type Call struct {
	Name    string         // Operator name
	Args    []any          // Resolved argument values, aligned with ArgKeys
	ArgKeys []string       // Argument names as written in the header
	Body    string         // Raw nested template text
	Data    map[string]any // Context the operator node was evaluated in

	pos      Position
	bodyPos  Position
	depth    int
	executor *Executor
}

// Arg returns the i-th resolved argument and whether it was supplied in the header.
func (c *Call) Arg(i int) (any, bool) {
	if i < 0 || i >= len(c.Args) {
		return nil, false
	}
	return c.Args[i], true
}

// Position returns the source position of the operator's opening tag.
func (c *Call) Position() Position {
	return c.pos
}

// Depth returns the operator nesting depth, 0 for top-level operators.
func (c *Call) Depth() int {
	return c.depth
}

// RenderBody compiles the body and renders it against data.
// Syntax errors in the body surface here, the first time the body is rendered.
func (c *Call) RenderBody(ctx context.Context, data map[string]any) (string, error) {
	return c.executor.renderBody(ctx, c.Body, c.bodyPos, data, c.depth)
}
