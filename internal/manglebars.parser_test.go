package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func parseSource(t *testing.T, source string) []Node {
	t.Helper()
	tokens, err := NewLexer(source, nil).Tokenize()
	require.NoError(t, err)
	nodes, err := NewParser(tokens, zap.NewNop()).Parse()
	require.NoError(t, err)
	return nodes
}

func TestClassify_Markup(t *testing.T) {
	node, err := Classify(NewMarkupToken("hello", StartPosition()))
	require.NoError(t, err)

	text, ok := node.(*TextNode)
	require.True(t, ok)
	assert.Equal(t, "hello", text.Content)
	assert.Equal(t, NodeTypeText, text.Type())
	assert.Equal(t, StartPosition(), text.Pos())
}

func TestClassify_Binding(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		key  string
	}{
		{name: "simple", raw: "{{name}}", key: "name"},
		{name: "padded", raw: "{{ name }}", key: "name"},
		{name: "empty", raw: "{{}}", key: ""},
		{name: "footer-shaped", raw: "{{/if}}", key: "/if"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := Classify(NewBindingToken(tt.raw, StartPosition()))
			require.NoError(t, err)

			binding, ok := node.(*BindingNode)
			require.True(t, ok)
			assert.Equal(t, tt.key, binding.Key)
			assert.Equal(t, NodeTypeBinding, binding.Type())
		})
	}
}

func TestClassify_Operator(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		opName  string
		args    []string
		body    string
		bodyPos Position
	}{
		{
			name:    "each with one arg",
			raw:     "{{#each items}}[{{x}}]{{/each}}",
			opName:  "each",
			args:    []string{"items"},
			body:    "[{{x}}]",
			bodyPos: Position{Offset: 15, Line: 1, Column: 16},
		},
		{
			name:    "no args",
			raw:     "{{#block}}inner{{/block}}",
			opName:  "block",
			args:    []string{},
			body:    "inner",
			bodyPos: Position{Offset: 10, Line: 1, Column: 11},
		},
		{
			name:    "several args with extra spaces",
			raw:     "{{#pick  a b   c }}x{{/pick}}",
			opName:  "pick",
			args:    []string{"a", "b", "c"},
			body:    "x",
			bodyPos: Position{Offset: 19, Line: 1, Column: 20},
		},
		{
			name:    "empty body",
			raw:     "{{#if flag}}{{/if}}",
			opName:  "if",
			args:    []string{"flag"},
			body:    "",
			bodyPos: Position{Offset: 12, Line: 1, Column: 13},
		},
		{
			name:    "multiline body",
			raw:     "{{#each xs}}\n- {{n}}\n{{/each}}",
			opName:  "each",
			args:    []string{"xs"},
			body:    "\n- {{n}}\n",
			bodyPos: Position{Offset: 12, Line: 1, Column: 13},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := Classify(NewOperatorBlockToken(tt.raw, StartPosition()))
			require.NoError(t, err)

			op, ok := node.(*OperatorNode)
			require.True(t, ok)
			assert.Equal(t, NodeTypeOperator, op.Type())
			assert.Equal(t, tt.opName, op.Name)
			assert.Equal(t, tt.args, op.ArgKeys)
			assert.Equal(t, tt.body, op.Body)
			assert.Equal(t, tt.bodyPos, op.BodyPos)
		})
	}
}

func TestClassify_OperatorErrors(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		message string
	}{
		{
			name:    "header runs into footer",
			raw:     "{{#if {{/if}}",
			message: ErrMsgUnterminatedHeader,
		},
		{
			name:    "missing name",
			raw:     "{{#}}x{{/}}",
			message: ErrMsgMissingOperatorName,
		},
		{
			name:    "footer does not match",
			raw:     "{{#if a}}x{{/each}}",
			message: ErrMsgMissingClosingTag,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := Classify(NewOperatorBlockToken(tt.raw, StartPosition()))
			require.Error(t, err)
			assert.Nil(t, node)
			assert.Equal(t, ErrorKindSyntax, KindOf(err))
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestClassify_UnknownTokenType(t *testing.T) {
	_, err := Classify(Token{Type: TokenType("BOGUS"), Value: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgUnknownTokenType)
}

func TestParser_Parse(t *testing.T) {
	nodes := parseSource(t, "Hi {{name}}! {{#each items}}[{{x}}]{{/each}}")
	require.Len(t, nodes, 4)

	assert.Equal(t, NodeTypeText, nodes[0].Type())
	assert.Equal(t, NodeTypeBinding, nodes[1].Type())
	assert.Equal(t, NodeTypeText, nodes[2].Type())
	assert.Equal(t, NodeTypeOperator, nodes[3].Type())

	op := nodes[3].(*OperatorNode)
	assert.Equal(t, Position{Offset: 13, Line: 1, Column: 14}, op.Pos())
	assert.Equal(t, Position{Offset: 28, Line: 1, Column: 29}, op.BodyPos)
}

func TestNode_String(t *testing.T) {
	long := "abcdefghijklmnopqrstuvwxyzabcdefghijklmnopqrstuvwxyz"
	text := NewTextNode(long, StartPosition())
	assert.Contains(t, text.String(), TruncationSuffix)

	op := NewOperatorNode("each", []string{"a", "b"}, "body", StartPosition(), StartPosition())
	assert.Contains(t, op.String(), "each")
	assert.Contains(t, op.String(), "args=[a b]")

	assert.Equal(t, NodeTypeNameOperator, NodeTypeOperator.String())
	assert.Equal(t, NodeTypeNameUnknown, NodeType(99).String())
}
