package internal

import (
	"fmt"
	"strings"
)

// scanOperatorBlock consumes a whole {{#name ...}} ... {{/name}} span as one token.
// The body is kept verbatim; it is tokenized again only when the operator renders it.
func (l *Lexer) scanOperatorBlock() (Token, error) {
	startPos := l.currentPosition()
	rest := l.source[l.pos:]

	nameEnd := scanOperatorName(rest, len(StrOperatorOpen))
	name := rest[len(StrOperatorOpen):nameEnd]
	if name == StringValueEmpty {
		return Token{}, NewSyntaxError(ErrMsgMissingOperatorName, startPos)
	}

	var end int
	if l.config.NestingAware {
		end = findNestedClose(rest, name, nameEnd)
	} else {
		end = findLiteralClose(rest, name, nameEnd)
	}
	if end < 0 {
		err := NewSyntaxError(ErrMsgMissingClosingTag, startPos)
		err.Operator = name
		err.Detail = expectedCloseDetail(name)
		return Token{}, err
	}

	l.advanceN(end)
	return NewOperatorBlockToken(rest[:end], startPos), nil
}

// scanOperatorName returns the index just past the operator name starting at from.
// A name is the run of bytes that are neither a space nor a closing brace.
func scanOperatorName(s string, from int) int {
	i := from
	for i < len(s) && s[i] != CharSpace && s[i] != CharCloseBrace {
		i++
	}
	return i
}

// closingTag returns the footer for the named operator, e.g. {{/each}}
func closingTag(name string) string {
	return StrOperatorClose + name + StrCloseDelim
}

// findLiteralClose returns the end index of the first {{/name}} at or after from, or -1.
// Same-name blocks nested in the body are not counted: the first footer wins.
func findLiteralClose(s, name string, from int) int {
	tag := closingTag(name)
	idx := strings.Index(s[from:], tag)
	if idx < 0 {
		return -1
	}
	return from + idx + len(tag)
}

// findNestedClose returns the end index of the {{/name}} that balances the opening tag, or -1.
func findNestedClose(s, name string, from int) int {
	openTag := StrOperatorOpen + name
	closeTag := closingTag(name)
	depth := 1

	i := from
	for i < len(s) {
		rest := s[i:]
		switch {
		case strings.HasPrefix(rest, closeTag):
			depth--
			i += len(closeTag)
			if depth == 0 {
				return i
			}
		case strings.HasPrefix(rest, openTag) && scanOperatorName(s, i+len(openTag)) == i+len(openTag):
			depth++
			i += len(openTag)
		default:
			i++
		}
	}
	return -1
}

func expectedCloseDetail(name string) string {
	return fmt.Sprintf(ErrFmtExpectedTag, closingTag(name))
}
