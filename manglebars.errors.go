package manglebars

import (
	"errors"
	"strconv"
	"strings"

	"github.com/itsatony/go-cuserr"
	"github.com/itsatony/go-manglebars/internal"
)

// Error message constants - every message the public API returns is a constant
const (
	ErrMsgSyntax           = "template syntax error"
	ErrMsgUnknownOperator  = "unknown operator"
	ErrMsgOperatorType     = "operator argument has the wrong type"
	ErrMsgRenderFailed     = "template render failed"
	ErrMsgRegistryFailed   = "helper registration failed"
	ErrMsgInvalidConfig    = "invalid engine configuration"
	ErrMsgNegativeMaxDepth = "max depth cannot be negative"
	ErrMsgNegativeCache    = "body cache size cannot be negative"
	ErrMsgInvalidLogLevel  = "invalid log level"
)

// Error code constants for categorization
const (
	ErrCodeSyntax   = "MANGLEBARS_SYNTAX"
	ErrCodeLookup   = "MANGLEBARS_LOOKUP"
	ErrCodeType     = "MANGLEBARS_TYPE"
	ErrCodeRender   = "MANGLEBARS_RENDER"
	ErrCodeRegistry = "MANGLEBARS_REGISTRY"
	ErrCodeConfig   = "MANGLEBARS_CONFIG"
)

// ErrorKind is the closed set of template failure classes.
// Values mirror internal.ErrorKind.
type ErrorKind int

// Error kinds
const (
	KindUnknown ErrorKind = ErrorKind(internal.ErrorKindUnknown)
	KindSyntax  ErrorKind = ErrorKind(internal.ErrorKindSyntax)
	KindLookup  ErrorKind = ErrorKind(internal.ErrorKindLookup)
	KindType    ErrorKind = ErrorKind(internal.ErrorKindType)
	KindRender  ErrorKind = ErrorKind(internal.ErrorKindRender)
)

// String returns the string representation of the error kind.
func (k ErrorKind) String() string {
	return internal.ErrorKind(k).String()
}

// KindOf reports the kind of a template error returned by Compile, Render or Validate.
// Errors that did not originate in the engine report KindUnknown.
func KindOf(err error) ErrorKind {
	return ErrorKind(internal.KindOf(err))
}

// IsSyntaxError reports whether err is a malformed-template error.
func IsSyntaxError(err error) bool { return KindOf(err) == KindSyntax }

// IsLookupError reports whether err is an unknown-operator error.
func IsLookupError(err error) bool { return KindOf(err) == KindLookup }

// IsTypeError reports whether err is an operator argument type error.
func IsTypeError(err error) bool { return KindOf(err) == KindType }

// NewHelperTypeError lets custom helpers report an argument of the wrong shape.
// The engine fills in the operator name and position.
func NewHelperTypeError(message string, value any) error {
	return internal.NewTypeError(message, "", value)
}

// wrapError converts an engine error into a *cuserr.CustomError carrying the
// kind, position and operator as metadata. The original error stays reachable
// through errors.Is/errors.As.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	kind := internal.KindOf(err)
	code, msg := errorCodeFor(kind)
	wrapped := cuserr.WrapStdError(err, code, msg).
		WithMetadata(MetaKeyKind, kind.String())

	ierr := asInternalError(err)
	if ierr == nil {
		return wrapped
	}

	wrapped = wrapped.
		WithMetadata(MetaKeyLine, strconv.Itoa(ierr.Position.Line)).
		WithMetadata(MetaKeyColumn, strconv.Itoa(ierr.Position.Column)).
		WithMetadata(MetaKeyOffset, strconv.Itoa(ierr.Position.Offset))
	if ierr.Operator != "" {
		wrapped = wrapped.WithMetadata(MetaKeyOperator, ierr.Operator)
	}
	if ierr.Detail != "" {
		wrapped = wrapped.WithMetadata(MetaKeyDetail, ierr.Detail)
	}
	if len(ierr.Suggestions) > 0 {
		wrapped = wrapped.WithMetadata(MetaKeySuggestions, strings.Join(ierr.Suggestions, SuggestionSeparator))
	}
	return wrapped
}

func asInternalError(err error) *internal.Error {
	var ierr *internal.Error
	if errors.As(err, &ierr) {
		return ierr
	}
	return nil
}

func errorCodeFor(kind internal.ErrorKind) (string, string) {
	switch kind {
	case internal.ErrorKindSyntax:
		return ErrCodeSyntax, ErrMsgSyntax
	case internal.ErrorKindLookup:
		return ErrCodeLookup, ErrMsgUnknownOperator
	case internal.ErrorKindType:
		return ErrCodeType, ErrMsgOperatorType
	default:
		return ErrCodeRender, ErrMsgRenderFailed
	}
}

// NewRegistryError creates an error for a rejected helper registration
func NewRegistryError(name string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeRegistry, ErrMsgRegistryFailed).
		WithMetadata(MetaKeyHelper, name)
}

// NewConfigError creates an error for an invalid option or configuration value
func NewConfigError(msg, option, value string) error {
	return cuserr.NewValidationError(ErrCodeConfig, msg).
		WithMetadata(MetaKeyOption, option).
		WithMetadata(MetaKeyValue, value)
}

// NewConfigDecodeError creates an error for configuration that could not be decoded
func NewConfigDecodeError(cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeConfig, ErrMsgInvalidConfig)
}
