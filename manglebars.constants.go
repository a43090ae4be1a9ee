package manglebars

import "github.com/itsatony/go-manglebars/internal"

// Built-in operator names
const (
	OperatorEach = internal.OperatorEach
	OperatorIf   = internal.OperatorIf
)

// Default configuration values
const (
	DefaultMaxDepth      = internal.DefaultMaxDepth
	DefaultBodyCacheSize = 0 // Bodies are recompiled on every render unless caching is enabled
	DefaultNestingAware  = false
)

// Metadata keys for cuserr.WithMetadata
const (
	MetaKeyKind        = "kind"
	MetaKeyLine        = "line"
	MetaKeyColumn      = "column"
	MetaKeyOffset      = "offset"
	MetaKeyOperator    = "operator"
	MetaKeyDetail      = "detail"
	MetaKeySuggestions = "suggestions"
	MetaKeyHelper      = "helper"
	MetaKeyOption      = "option"
	MetaKeyValue       = "value"
)

// SuggestionSeparator joins operator suggestions in error metadata
const SuggestionSeparator = ","

// Token kind names reported by Tokenize
const (
	TokenKindMarkup        = string(internal.TokenTypeMarkup)
	TokenKindBinding       = string(internal.TokenTypeBinding)
	TokenKindOperatorBlock = string(internal.TokenTypeOperatorBlock)
)

// Config file keys and log levels
const (
	ConfigKeyMaxDepth      = "max_depth"
	ConfigKeyNestingAware  = "nesting_aware"
	ConfigKeyBodyCacheSize = "body_cache_size"
	ConfigKeyLogLevel      = "log_level"
	LogLevelOff            = ""
)
