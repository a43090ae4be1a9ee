package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type labeled struct{ Label string }

func TestEachHandler(t *testing.T) {
	source := "{{#each items}}[{{x}}]{{/each}}"

	tests := []struct {
		name     string
		items    any
		expected string
	}{
		{name: "slice of maps", items: []map[string]any{{"x": "a"}, {"x": "b"}}, expected: "[a][b]"},
		{name: "slice of any", items: []any{map[string]any{"x": 1}, map[string]string{"x": "2"}}, expected: "[1][2]"},
		{name: "slice of string maps", items: []map[string]string{{"x": "s"}}, expected: "[s]"},
		{name: "array", items: [2]map[string]any{{"x": "p"}, {"x": "q"}}, expected: "[p][q]"},
		{name: "typed map values", items: []map[string]int{{"x": 7}}, expected: "[7]"},
		{name: "empty slice", items: []any{}, expected: ""},
		{name: "nil slice", items: []map[string]any(nil), expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestExecutor(t, DefaultExecutorConfig(), 0)
			result, err := renderSource(t, e, source, map[string]any{"items": tt.items})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestEachHandler_TypeErrors(t *testing.T) {
	tests := []struct {
		name       string
		source     string
		data       map[string]any
		message    string
		detailPart string
	}{
		{
			name:       "missing argument",
			source:     "{{#each}}x{{/each}}",
			data:       map[string]any{},
			message:    ErrMsgMissingArgument,
			detailPart: StringValueNil,
		},
		{
			name:       "absent key",
			source:     "{{#each items}}x{{/each}}",
			data:       map[string]any{},
			message:    ErrMsgNotSequence,
			detailPart: StringValueNil,
		},
		{
			name:       "string is not a sequence",
			source:     "{{#each items}}x{{/each}}",
			data:       map[string]any{"items": "abc"},
			message:    ErrMsgNotSequence,
			detailPart: "string",
		},
		{
			name:       "map is not a sequence",
			source:     "{{#each items}}x{{/each}}",
			data:       map[string]any{"items": map[string]any{"x": 1}},
			message:    ErrMsgNotSequence,
			detailPart: "map[string]interface {}",
		},
		{
			name:       "element is not a map",
			source:     "{{#each items}}x{{/each}}",
			data:       map[string]any{"items": []any{map[string]any{}, 5}},
			message:    ErrMsgElementNotMapping,
			detailPart: "int at index 1",
		},
		{
			name:       "struct element",
			source:     "{{#each items}}x{{/each}}",
			data:       map[string]any{"items": []labeled{{Label: "a"}}},
			message:    ErrMsgElementNotMapping,
			detailPart: "internal.labeled at index 0",
		},
		{
			name:       "int-keyed map element",
			source:     "{{#each items}}x{{/each}}",
			data:       map[string]any{"items": []map[int]string{{1: "a"}}},
			message:    ErrMsgElementNotMapping,
			detailPart: "map[int]string",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestExecutor(t, DefaultExecutorConfig(), 0)
			result, err := renderSource(t, e, tt.source, tt.data)
			require.Error(t, err)
			assert.Empty(t, result)

			var execErr *Error
			require.ErrorAs(t, err, &execErr)
			assert.Equal(t, ErrorKindType, execErr.Kind)
			assert.Equal(t, tt.message, execErr.Message)
			assert.Equal(t, OperatorEach, execErr.Operator)
			assert.Contains(t, execErr.Detail, tt.detailPart)
		})
	}
}

func TestIfHandler(t *testing.T) {
	source := "{{#if v}}Y{{/if}}"
	var nilPtr *labeled

	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{name: "true", value: true, expected: "Y"},
		{name: "false", value: false, expected: ""},
		{name: "nil", value: nil, expected: ""},
		{name: "non-empty string", value: "x", expected: "Y"},
		{name: "empty string", value: "", expected: ""},
		{name: "zero int", value: 0, expected: ""},
		{name: "non-zero int", value: -1, expected: "Y"},
		{name: "zero float", value: 0.0, expected: ""},
		{name: "zero uint", value: uint8(0), expected: ""},
		{name: "empty slice", value: []any{}, expected: ""},
		{name: "non-empty slice", value: []string{"a"}, expected: "Y"},
		{name: "empty map", value: map[string]any{}, expected: ""},
		{name: "non-empty map", value: map[string]int{"a": 1}, expected: "Y"},
		{name: "nil pointer", value: nilPtr, expected: ""},
		{name: "pointer", value: &labeled{}, expected: "Y"},
		{name: "struct", value: labeled{}, expected: "Y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestExecutor(t, DefaultExecutorConfig(), 0)
			result, err := renderSource(t, e, source, map[string]any{"v": tt.value})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestIfHandler_MissingArgument(t *testing.T) {
	e := newTestExecutor(t, DefaultExecutorConfig(), 0)
	_, err := renderSource(t, e, "{{#if}}Y{{/if}}", nil)
	require.Error(t, err)

	var execErr *Error
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, ErrorKindType, execErr.Kind)
	assert.Equal(t, ErrMsgMissingArgument, execErr.Message)
	assert.Equal(t, OperatorIf, execErr.Operator)
}

func TestIfHandler_ExtraArgumentsIgnored(t *testing.T) {
	e := newTestExecutor(t, DefaultExecutorConfig(), 0)
	result, err := renderSource(t, e, "{{#if a b c}}{{b}}{{/if}}", map[string]any{"a": 1, "b": "B"})
	require.NoError(t, err)
	assert.Equal(t, "B", result)
}
