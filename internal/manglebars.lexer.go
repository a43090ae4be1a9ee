package internal

import (
	"strings"

	"go.uber.org/zap"
)

// LexerConfig holds lexer configuration
type LexerConfig struct {
	NestingAware bool     // Match closing tags by depth instead of first occurrence
	Start        Position // Position of the first source byte (non-zero for nested bodies)
}

// DefaultLexerConfig returns the default lexer configuration
func DefaultLexerConfig() LexerConfig {
	return LexerConfig{
		NestingAware: false,
		Start:        StartPosition(),
	}
}

// Lexer splits template source into markup, binding and operator-block tokens
type Lexer struct {
	source string
	config LexerConfig
	pos    int // Current byte position
	line   int // Current line (1-indexed)
	column int // Current column (1-indexed)
	base   int // Offset of source within the enclosing template
	logger *zap.Logger
}

// NewLexer creates a new lexer with default configuration
func NewLexer(source string, logger *zap.Logger) *Lexer {
	return NewLexerWithConfig(source, DefaultLexerConfig(), logger)
}

// NewLexerWithConfig creates a lexer with custom configuration
func NewLexerWithConfig(source string, config LexerConfig, logger *zap.Logger) *Lexer {
	if logger == nil {
		logger = zap.NewNop()
	}
	if config.Start.Line == 0 {
		config.Start = StartPosition()
	}
	logger.Debug(LogMsgLexerCreated,
		zap.Int(LogFieldSource, len(source)),
		zap.Bool(LogFieldNested, config.NestingAware))
	return &Lexer{
		source: source,
		config: config,
		pos:    0,
		line:   config.Start.Line,
		column: config.Start.Column,
		base:   config.Start.Offset,
		logger: logger,
	}
}

// Tokenize processes the source and returns the token sequence.
// Concatenating the Value of every returned token reproduces the source.
func (l *Lexer) Tokenize() ([]Token, error) {
	l.logger.Debug(LogMsgTokenizerStart)
	var tokens []Token

	for !l.isAtEnd() {
		var (
			tok Token
			err error
		)
		switch {
		case l.matchStr(StrOperatorOpen):
			tok, err = l.scanOperatorBlock()
		case l.matchStr(StrOpenDelim):
			tok, err = l.scanBinding()
		default:
			tok = l.scanMarkup()
		}
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}

	l.logger.Debug(LogMsgTokenizerEnd, zap.Int(LogFieldTokens, len(tokens)))
	return tokens, nil
}

// scanMarkup consumes literal text up to the next open delimiter or end of input.
// The caller guarantees the cursor is not on an open delimiter, so at least one byte is consumed.
func (l *Lexer) scanMarkup() Token {
	startPos := l.currentPosition()
	start := l.pos

	l.advance()
	for !l.isAtEnd() && !l.matchStr(StrOpenDelim) {
		l.advance()
	}

	return NewMarkupToken(l.source[start:l.pos], startPos)
}

// scanBinding consumes {{ ... }} up to the first close delimiter.
func (l *Lexer) scanBinding() (Token, error) {
	startPos := l.currentPosition()
	start := l.pos

	idx := strings.Index(l.source[start+len(StrOpenDelim):], StrCloseDelim)
	if idx < 0 {
		return Token{}, NewSyntaxError(ErrMsgUnterminatedBinding, startPos)
	}

	l.advanceN(len(StrOpenDelim) + idx + len(StrCloseDelim))
	return NewBindingToken(l.source[start:l.pos], startPos), nil
}

// Helper methods

// currentPosition returns the current position
func (l *Lexer) currentPosition() Position {
	return Position{
		Offset: l.base + l.pos,
		Line:   l.line,
		Column: l.column,
	}
}

// isAtEnd returns true if we've reached the end of source
func (l *Lexer) isAtEnd() bool {
	return l.pos >= len(l.source)
}

// advance consumes and returns the current character
func (l *Lexer) advance() byte {
	if l.isAtEnd() {
		return 0
	}
	ch := l.source[l.pos]
	l.pos++
	if ch == CharNewline {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch
}

// advanceN advances by n characters
func (l *Lexer) advanceN(n int) {
	for i := 0; i < n && !l.isAtEnd(); i++ {
		l.advance()
	}
}

// matchStr returns true if the remaining source starts with s
func (l *Lexer) matchStr(s string) bool {
	return strings.HasPrefix(l.source[l.pos:], s)
}
