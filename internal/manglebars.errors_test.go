package internal

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Error(t *testing.T) {
	pos := Position{Offset: 4, Line: 2, Column: 3}

	syntax := NewSyntaxError(ErrMsgUnterminatedBinding, pos)
	assert.Contains(t, syntax.Error(), ErrMsgUnterminatedBinding)
	assert.Contains(t, syntax.Error(), "line 2, column 3")

	lookup := NewLookupError("loop", pos, []string{"each"})
	assert.Contains(t, lookup.Error(), "loop")

	typed := NewTypeError(ErrMsgNotSequence, OperatorEach, 5)
	assert.Contains(t, typed.Error(), "got int")

	cause := errors.New("disk on fire")
	render := NewRenderError(ErrMsgOperatorFailed, "x", pos, cause)
	assert.Contains(t, render.Error(), "disk on fire")
	assert.ErrorIs(t, render, cause)
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected ErrorKind
	}{
		{name: "nil", err: nil, expected: ErrorKindUnknown},
		{name: "foreign", err: errors.New("x"), expected: ErrorKindUnknown},
		{name: "syntax", err: NewSyntaxError("x", StartPosition()), expected: ErrorKindSyntax},
		{name: "wrapped lookup", err: fmt.Errorf("outer: %w", NewLookupError("x", StartPosition(), nil)), expected: ErrorKindLookup},
		{name: "type", err: NewTypeError("x", "y", nil), expected: ErrorKindType},
		{name: "render", err: NewRenderError("x", "", StartPosition(), nil), expected: ErrorKindRender},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, KindOf(tt.err))
		})
	}
}

func TestErrorKind_String(t *testing.T) {
	assert.Equal(t, ErrorKindNameSyntax, ErrorKindSyntax.String())
	assert.Equal(t, ErrorKindNameLookup, ErrorKindLookup.String())
	assert.Equal(t, ErrorKindNameType, ErrorKindType.String())
	assert.Equal(t, ErrorKindNameRender, ErrorKindRender.String())
	assert.Equal(t, ErrorKindNameUnknown, ErrorKind(42).String())
}
