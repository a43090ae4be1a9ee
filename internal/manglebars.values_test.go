package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueToString(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{name: "nil", value: nil, expected: ""},
		{name: "string", value: "text", expected: "text"},
		{name: "int", value: -12, expected: "-12"},
		{name: "int64", value: int64(1) << 40, expected: "1099511627776"},
		{name: "float shortest form", value: 0.1, expected: "0.1"},
		{name: "float integral", value: 3.0, expected: "3"},
		{name: "true", value: true, expected: StringValueTrue},
		{name: "false", value: false, expected: StringValueFalse},
		{name: "stringer", value: stringerValue{}, expected: "stringer"},
		{name: "slice", value: []int{1, 2}, expected: "[1 2]"},
		{name: "uint", value: uint(9), expected: "9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValueToString(tt.value))
		})
	}
}

func TestToMappings(t *testing.T) {
	t.Run("passes through map slices", func(t *testing.T) {
		in := []map[string]any{{"a": 1}}
		out, err := ToMappings(OperatorEach, in)
		require.NoError(t, err)
		assert.Equal(t, in, out)
	})

	t.Run("converts string maps", func(t *testing.T) {
		out, err := ToMappings(OperatorEach, []map[string]string{{"a": "b"}})
		require.NoError(t, err)
		assert.Equal(t, []map[string]any{{"a": "b"}}, out)
	})

	t.Run("rejects nil", func(t *testing.T) {
		_, err := ToMappings("loop", nil)
		require.Error(t, err)
		assert.Equal(t, ErrorKindType, KindOf(err))
		assert.Contains(t, err.Error(), "loop")
	})
}
