package internal

import "fmt"

// Position represents a location in the source template.
// Column counts bytes, so it runs ahead of the visible column after multi-byte UTF-8.
type Position struct {
	Offset int // Byte offset from start
	Line   int // 1-indexed line number
	Column int // 1-indexed byte column
}

// String returns a human-readable position string
func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

// StartPosition is the position of the first byte of a template
func StartPosition() Position {
	return Position{Offset: 0, Line: 1, Column: 1}
}

// Token is a contiguous run of template source classified by surface syntax.
// Value always holds the raw source text, delimiters included.
type Token struct {
	Type     TokenType
	Value    string
	Position Position
}

// String returns a human-readable representation of the token
func (t Token) String() string {
	return fmt.Sprintf("Token{%s: %q @ %s}", t.Type, t.Value, t.Position)
}

// IsMarkup returns true if this is a literal markup token
func (t Token) IsMarkup() bool {
	return t.Type == TokenTypeMarkup
}

// IsBinding returns true if this is a binding token
func (t Token) IsBinding() bool {
	return t.Type == TokenTypeBinding
}

// IsOperatorBlock returns true if this is an operator-block token
func (t Token) IsOperatorBlock() bool {
	return t.Type == TokenTypeOperatorBlock
}

// NewMarkupToken creates a markup token
func NewMarkupToken(raw string, pos Position) Token {
	return Token{
		Type:     TokenTypeMarkup,
		Value:    raw,
		Position: pos,
	}
}

// NewBindingToken creates a binding token
func NewBindingToken(raw string, pos Position) Token {
	return Token{
		Type:     TokenTypeBinding,
		Value:    raw,
		Position: pos,
	}
}

// NewOperatorBlockToken creates an operator-block token
func NewOperatorBlockToken(raw string, pos Position) Token {
	return Token{
		Type:     TokenTypeOperatorBlock,
		Value:    raw,
		Position: pos,
	}
}

// advancePosition returns the position reached after consuming text starting at pos.
func advancePosition(pos Position, text string) Position {
	for i := 0; i < len(text); i++ {
		pos.Offset++
		if text[i] == CharNewline {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
	}
	return pos
}
