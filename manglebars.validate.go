package manglebars

import (
	"github.com/itsatony/go-manglebars/internal"
)

// Validate checks source without rendering it. Unlike Compile it descends into
// every operator body and verifies that each operator is registered, so it
// reports errors that would otherwise surface only when a branch renders.
func (e *Engine) Validate(source string) error {
	return wrapError(e.executor.Validate(source, internal.StartPosition()))
}

// Token is one raw token of a template, as produced by the tokenizer.
type Token struct {
	Kind   string `json:"kind"` // TokenKindMarkup, TokenKindBinding or TokenKindOperatorBlock
	Raw    string `json:"raw"`  // Source text, delimiters included
	Offset int    `json:"offset"`
	Line   int    `json:"line"`
	Column int    `json:"column"` // Byte column
}

// Tokenize splits source into raw tokens without classifying them.
// Concatenating every Raw field reproduces source exactly.
func (e *Engine) Tokenize(source string) ([]Token, error) {
	tokens, err := e.executor.Tokenize(source, internal.StartPosition())
	if err != nil {
		return nil, wrapError(err)
	}

	out := make([]Token, len(tokens))
	for i, tok := range tokens {
		out[i] = Token{
			Kind:   string(tok.Type),
			Raw:    tok.Value,
			Offset: tok.Position.Offset,
			Line:   tok.Position.Line,
			Column: tok.Position.Column,
		}
	}
	return out, nil
}
