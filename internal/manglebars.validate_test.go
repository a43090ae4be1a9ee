package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecutor_Validate(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		kind     ErrorKind
		operator string
		position Position
	}{
		{name: "valid flat template", source: "Hi {{name}}!"},
		{name: "valid nested blocks", source: "{{#each xs}}{{#if y}}{{z}}{{/if}}{{/each}}"},
		{
			name:     "unknown top-level operator",
			source:   "{{#loop xs}}{{/loop}}",
			kind:     ErrorKindLookup,
			operator: "loop",
			position: Position{Offset: 0, Line: 1, Column: 1},
		},
		{
			name:     "unknown nested operator",
			source:   "{{#if a}}\n  {{#unless b}}x{{/unless}}{{/if}}",
			kind:     ErrorKindLookup,
			operator: "unless",
			position: Position{Offset: 12, Line: 2, Column: 3},
		},
		{
			name:     "syntax error in body",
			source:   "{{#if a}}ok {{broken{{/if}}",
			kind:     ErrorKindSyntax,
			position: Position{Offset: 12, Line: 1, Column: 13},
		},
		{
			name:     "top-level syntax error",
			source:   "{{x",
			kind:     ErrorKindSyntax,
			position: Position{Offset: 0, Line: 1, Column: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestExecutor(t, DefaultExecutorConfig(), 0)
			err := e.Validate(tt.source, StartPosition())
			if tt.kind == ErrorKindUnknown {
				require.NoError(t, err)
				return
			}

			var execErr *Error
			require.ErrorAs(t, err, &execErr)
			assert.Equal(t, tt.kind, execErr.Kind)
			assert.Equal(t, tt.operator, execErr.Operator)
			assert.Equal(t, tt.position, execErr.Position)
		})
	}
}

func TestExecutor_ValidateSuggestions(t *testing.T) {
	e := newTestExecutor(t, DefaultExecutorConfig(), 0)
	err := e.Validate("{{#iff a}}x{{/iff}}", StartPosition())

	var execErr *Error
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, []string{OperatorIf}, execErr.Suggestions)
}
