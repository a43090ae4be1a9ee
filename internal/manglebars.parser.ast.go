package internal

import (
	"fmt"
	"strings"
)

// Node is the interface all classified nodes implement
type Node interface {
	// Type returns the node type identifier
	Type() NodeType
	// Pos returns the source position of this node
	Pos() Position
	// String returns a human-readable representation
	String() string
}

// TextNode represents literal markup copied to the output unchanged
type TextNode struct {
	pos     Position
	Content string
}

// Type returns NodeTypeText
func (n *TextNode) Type() NodeType {
	return NodeTypeText
}

// Pos returns the source position
func (n *TextNode) Pos() Position {
	return n.pos
}

// String returns a string representation
func (n *TextNode) String() string {
	return fmt.Sprintf("TextNode{%q @ %s}", truncate(n.Content), n.pos)
}

// NewTextNode creates a new text node
func NewTextNode(content string, pos Position) *TextNode {
	return &TextNode{
		pos:     pos,
		Content: content,
	}
}

// BindingNode represents a {{key}} placeholder
type BindingNode struct {
	pos Position
	Key string
}

// Type returns NodeTypeBinding
func (n *BindingNode) Type() NodeType {
	return NodeTypeBinding
}

// Pos returns the source position
func (n *BindingNode) Pos() Position {
	return n.pos
}

// String returns a string representation
func (n *BindingNode) String() string {
	return fmt.Sprintf("BindingNode{%s @ %s}", n.Key, n.pos)
}

// NewBindingNode creates a new binding node
func NewBindingNode(key string, pos Position) *BindingNode {
	return &BindingNode{
		pos: pos,
		Key: key,
	}
}

// OperatorNode represents a {{#name args...}}body{{/name}} block.
// Body is the raw nested template; it is compiled only when a handler renders it.
type OperatorNode struct {
	pos     Position
	Name    string
	ArgKeys []string
	Body    string
	BodyPos Position // Position of the first body byte
}

// Type returns NodeTypeOperator
func (n *OperatorNode) Type() NodeType {
	return NodeTypeOperator
}

// Pos returns the source position
func (n *OperatorNode) Pos() Position {
	return n.pos
}

// String returns a string representation
func (n *OperatorNode) String() string {
	return fmt.Sprintf("OperatorNode{%s, args=[%s], body=%q @ %s}",
		n.Name, strings.Join(n.ArgKeys, FmtArgSep), truncate(n.Body), n.pos)
}

// NewOperatorNode creates a new operator node
func NewOperatorNode(name string, argKeys []string, body string, pos, bodyPos Position) *OperatorNode {
	return &OperatorNode{
		pos:     pos,
		Name:    name,
		ArgKeys: argKeys,
		Body:    body,
		BodyPos: bodyPos,
	}
}

// FmtArgSep separates argument keys in OperatorNode.String
const FmtArgSep = " "

func truncate(s string) string {
	if len(s) > MaxStringDisplayLength {
		return s[:TruncatedStringLength] + TruncationSuffix
	}
	return s
}
