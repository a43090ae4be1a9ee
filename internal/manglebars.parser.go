package internal

import (
	"strings"

	"go.uber.org/zap"
)

// Parser classifies raw tokens into typed nodes
type Parser struct {
	tokens []Token
	logger *zap.Logger
}

// NewParser creates a new parser for the token sequence
func NewParser(tokens []Token, logger *zap.Logger) *Parser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Parser{
		tokens: tokens,
		logger: logger,
	}
}

// Parse classifies every token in order and returns the node list
func (p *Parser) Parse() ([]Node, error) {
	p.logger.Debug(LogMsgClassifyStart, zap.Int(LogFieldTokens, len(p.tokens)))

	nodes := make([]Node, 0, len(p.tokens))
	for _, tok := range p.tokens {
		node, err := Classify(tok)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}

	p.logger.Debug(LogMsgClassifyEnd, zap.Int(LogFieldNodes, len(nodes)))
	return nodes, nil
}

// Classify converts a single raw token into its node form
func Classify(tok Token) (Node, error) {
	switch tok.Type {
	case TokenTypeMarkup:
		return NewTextNode(tok.Value, tok.Position), nil
	case TokenTypeBinding:
		return classifyBinding(tok), nil
	case TokenTypeOperatorBlock:
		return classifyOperator(tok)
	default:
		return nil, NewSyntaxError(ErrMsgUnknownTokenType, tok.Position)
	}
}

func classifyBinding(tok Token) *BindingNode {
	key := strings.TrimPrefix(tok.Value, StrOpenDelim)
	key = strings.TrimSuffix(key, StrCloseDelim)
	return NewBindingNode(strings.TrimSpace(key), tok.Position)
}

// classifyOperator splits an operator-block token into header, body and footer.
// The footer is always the token's trailing {{/name}}, whichever scanning mode produced it.
func classifyOperator(tok Token) (*OperatorNode, error) {
	raw := tok.Value

	nameEnd := scanOperatorName(raw, len(StrOperatorOpen))
	name := raw[len(StrOperatorOpen):nameEnd]
	if name == StringValueEmpty {
		return nil, NewSyntaxError(ErrMsgMissingOperatorName, tok.Position)
	}

	footer := closingTag(name)
	bodyEnd := len(raw) - len(footer)
	if bodyEnd < nameEnd || !strings.HasSuffix(raw, footer) {
		err := NewSyntaxError(ErrMsgMissingClosingTag, tok.Position)
		err.Operator = name
		err.Detail = expectedCloseDetail(name)
		return nil, err
	}

	headerEnd := strings.Index(raw[nameEnd:], StrCloseDelim)
	if headerEnd < 0 || nameEnd+headerEnd+len(StrCloseDelim) > bodyEnd {
		err := NewSyntaxError(ErrMsgUnterminatedHeader, tok.Position)
		err.Operator = name
		return nil, err
	}
	headerEnd += nameEnd
	bodyStart := headerEnd + len(StrCloseDelim)

	argKeys := strings.Fields(raw[nameEnd:headerEnd])
	bodyPos := advancePosition(tok.Position, raw[:bodyStart])

	return NewOperatorNode(name, argKeys, raw[bodyStart:bodyEnd], tok.Position, bodyPos), nil
}
