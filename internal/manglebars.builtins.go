package internal

import (
	"context"
	"strings"
)

// RegisterBuiltins binds the built-in each and if operators.
func RegisterBuiltins(registry *Registry) {
	registry.MustRegister(OperatorEach, EachHandler)
	registry.MustRegister(OperatorIf, IfHandler)
}

// EachHandler renders the body once per element of args[0], using each element
// as the whole context for that iteration.
func EachHandler(ctx context.Context, call *Call) (string, error) {
	seq, ok := call.Arg(0)
	if !ok {
		return "", NewTypeError(ErrMsgMissingArgument, call.Name, nil)
	}

	items, err := ToMappings(call.Name, seq)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, item := range items {
		out, err := call.RenderBody(ctx, item)
		if err != nil {
			return "", err
		}
		sb.WriteString(out)
	}
	return sb.String(), nil
}

// IfHandler renders the body against the enclosing context when args[0] is truthy.
func IfHandler(ctx context.Context, call *Call) (string, error) {
	cond, ok := call.Arg(0)
	if !ok {
		return "", NewTypeError(ErrMsgMissingArgument, call.Name, nil)
	}
	if !IsTruthy(cond) {
		return "", nil
	}
	return call.RenderBody(ctx, call.Data)
}
