package internal

import (
	"errors"
	"fmt"
)

// ErrorKind is the closed set of failure classes the engine reports
type ErrorKind int

// Error kind constants
const (
	ErrorKindUnknown ErrorKind = iota
	ErrorKindSyntax
	ErrorKindLookup
	ErrorKindType
	ErrorKindRender
)

// Error kind names
const (
	ErrorKindNameUnknown = "unknown"
	ErrorKindNameSyntax  = "syntax"
	ErrorKindNameLookup  = "lookup"
	ErrorKindNameType    = "type"
	ErrorKindNameRender  = "render"
)

// String returns the string representation of the error kind
func (k ErrorKind) String() string {
	switch k {
	case ErrorKindSyntax:
		return ErrorKindNameSyntax
	case ErrorKindLookup:
		return ErrorKindNameLookup
	case ErrorKindType:
		return ErrorKindNameType
	case ErrorKindRender:
		return ErrorKindNameRender
	default:
		return ErrorKindNameUnknown
	}
}

// Error is the structured error produced by the lexer, classifier and executor.
type Error struct {
	Kind        ErrorKind
	Message     string
	Operator    string   // Operator name, when the failure concerns a block
	Detail      string   // Extra context such as the expected closing tag
	Position    Position // Source position of the offending construct
	Suggestions []string // Similar operator names for lookup failures
	Cause       error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var result string
	if e.Operator != StringValueEmpty {
		result = fmt.Sprintf(ErrFmtWithOperatorPosition, e.Message, e.Operator, e.Position.String())
	} else {
		result = fmt.Sprintf(ErrFmtWithPosition, e.Message, e.Position.String())
	}
	if e.Detail != StringValueEmpty {
		result = fmt.Sprintf(ErrFmtWithDetail, result, e.Detail)
	}
	if e.Cause != nil {
		result = fmt.Sprintf(ErrFmtWithCause, result, e.Cause)
	}
	return result
}

// Unwrap returns the underlying cause error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewSyntaxError creates a syntax error at the given position
func NewSyntaxError(message string, pos Position) *Error {
	return &Error{Kind: ErrorKindSyntax, Message: message, Position: pos}
}

// NewLookupError creates a lookup error for an unregistered operator
func NewLookupError(operator string, pos Position, suggestions []string) *Error {
	return &Error{
		Kind:        ErrorKindLookup,
		Message:     ErrMsgUnknownOperator,
		Operator:    operator,
		Position:    pos,
		Suggestions: suggestions,
	}
}

// NewTypeError creates a type error raised by an operator handler
func NewTypeError(message, operator string, value any) *Error {
	return &Error{
		Kind:     ErrorKindType,
		Message:  message,
		Operator: operator,
		Detail:   fmt.Sprintf(ErrFmtTypeDetail, typeName(value)),
	}
}

// NewRenderError creates a render error, optionally wrapping a cause
func NewRenderError(message, operator string, pos Position, cause error) *Error {
	return &Error{
		Kind:     ErrorKindRender,
		Message:  message,
		Operator: operator,
		Position: pos,
		Cause:    cause,
	}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ErrorKindUnknown
}

func typeName(v any) string {
	if v == nil {
		return StringValueNil
	}
	return fmt.Sprintf("%T", v)
}
