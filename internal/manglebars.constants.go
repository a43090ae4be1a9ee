package internal

// TokenType represents the surface-syntax class of a raw token
type TokenType string

// Token type constants
const (
	TokenTypeMarkup        TokenType = "MARKUP"
	TokenTypeBinding       TokenType = "BINDING"
	TokenTypeOperatorBlock TokenType = "OPERATOR_BLOCK"
)

// NodeType identifies classified node types
type NodeType int

// Node type constants
const (
	NodeTypeText NodeType = iota
	NodeTypeBinding
	NodeTypeOperator
)

// Node type string names for debugging
const (
	NodeTypeNameText     = "TEXT"
	NodeTypeNameBinding  = "BINDING"
	NodeTypeNameOperator = "OPERATOR"
	NodeTypeNameUnknown  = "UNKNOWN"
)

// String returns the string representation of the node type
func (n NodeType) String() string {
	switch n {
	case NodeTypeText:
		return NodeTypeNameText
	case NodeTypeBinding:
		return NodeTypeNameBinding
	case NodeTypeOperator:
		return NodeTypeNameOperator
	default:
		return NodeTypeNameUnknown
	}
}

// Character constants
const (
	CharCloseBrace = '}'
	CharSpace      = ' '
	CharNewline    = '\n'
)

// Delimiter constants
const (
	StrOpenDelim     = "{{"
	StrCloseDelim    = "}}"
	StrOperatorOpen  = "{{#"
	StrOperatorClose = "{{/"
)

// Built-in operator names
const (
	OperatorEach = "each"
	OperatorIf   = "if"
)

// Log message constants
const (
	LogMsgLexerCreated       = "lexer created"
	LogMsgTokenizerStart     = "starting tokenization"
	LogMsgTokenizerEnd       = "tokenization complete"
	LogMsgClassifyStart      = "starting classification"
	LogMsgClassifyEnd        = "classification complete"
	LogMsgExecutorCreated    = "executor created"
	LogMsgExecutorStart      = "starting render"
	LogMsgExecutorEnd        = "render complete"
	LogMsgOperatorInvoked    = "operator invoked"
	LogMsgOperatorComplete   = "operator complete"
	LogMsgRegistryCreated    = "registry created"
	LogMsgHelperRegistered   = "helper registered"
	LogMsgHelperOverwritten  = "helper overwritten - last-write-wins"
	LogMsgHelperUnregistered = "helper unregistered"
	LogMsgBodyCacheHit       = "body cache hit"
	LogMsgBodyCacheMiss      = "body cache miss"
	LogMsgBodyCacheEvicted   = "body cache entry evicted"
)

// Log field names
const (
	LogFieldSource   = "source_length"
	LogFieldTokens   = "token_count"
	LogFieldNodes    = "node_count"
	LogFieldOperator = "operator"
	LogFieldArgs     = "arg_count"
	LogFieldDepth    = "depth"
	LogFieldNested   = "nesting_aware"
	LogFieldHelper   = "helper"
	LogFieldBody     = "body_length"
)

// Error message constants
const (
	ErrMsgUnterminatedBinding = "unterminated binding"
	ErrMsgMissingOperatorName = "missing operator name"
	ErrMsgMissingClosingTag   = "missing closing tag"
	ErrMsgUnterminatedHeader  = "unterminated operator header"
	ErrMsgUnknownTokenType    = "unknown token type"
	ErrMsgUnknownOperator     = "unknown operator"
	ErrMsgUnknownNodeType     = "unknown node type"
	ErrMsgOperatorFailed      = "operator failed"
	ErrMsgMaxDepthExceeded    = "maximum nesting depth exceeded"
	ErrMsgMissingArgument     = "missing required argument"
	ErrMsgNotSequence         = "argument is not a sequence"
	ErrMsgElementNotMapping   = "sequence element is not a mapping"
	ErrMsgNilHelper           = "helper cannot be nil"
	ErrMsgEmptyHelperName     = "helper name cannot be empty"
)

// Error format string constants (for Error() methods)
const (
	ErrFmtWithPosition         = "%s at %s"
	ErrFmtWithOperatorPosition = "%s [%s] at %s"
	ErrFmtWithCause            = "%s: %v"
	ErrFmtWithDetail           = "%s (%s)"
	ErrFmtTypeDetail           = "got %s"
	ErrFmtExpectedTag          = "expected %s"
	ErrFmtIndexDetail          = "%s at index %d"
)

// String format constants for node String() methods
const (
	MaxStringDisplayLength = 40
	TruncatedStringLength  = 37
	TruncationSuffix       = "..."
)

// String value constants
const (
	StringValueEmpty = ""
	StringValueTrue  = "true"
	StringValueFalse = "false"
	StringValueNil   = "nil"
)

// Numeric formatting constants
const (
	IntBase10         = 10
	FloatFormatFlag   = 'f'
	FloatPrecisionAll = -1
	FloatBitSize64    = 64
)

// Default configuration values
const (
	DefaultMaxDepth       = 100
	DefaultMaxSuggestions = 3
)
