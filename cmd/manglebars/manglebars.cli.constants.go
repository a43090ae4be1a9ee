package main

// Command names
const (
	CmdNameRender   = "render"
	CmdNameValidate = "validate"
	CmdNameTokens   = "tokens"
	CmdNameVersion  = "version"
	CmdNameHelp     = "help"
)

// Flag names - long form
const (
	FlagTemplate    = "template"
	FlagData        = "data"
	FlagDataFile    = "data-file"
	FlagOutput      = "output"
	FlagConfig      = "config"
	FlagQuiet       = "quiet"
	FlagFormat      = "format"
	FlagProfile     = "profile"
	FlagProfilePath = "profile-path"
)

// Flag names - short form
const (
	FlagTemplateShort = "t"
	FlagDataShort     = "d"
	FlagDataFileShort = "f"
	FlagOutputShort   = "o"
	FlagConfigShort   = "c"
	FlagQuietShort    = "q"
	FlagFormatShort   = "F"
)

// Flag default values
const (
	FlagDefaultOutput      = "-" // stdout
	FlagDefaultFormat      = "text"
	FlagDefaultProfilePath = "."
)

// Output formats
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
)

// Profiling modes
const (
	ProfileModeNone = ""
	ProfileModeCPU  = "cpu"
	ProfileModeMem  = "mem"
)

// Exit codes
const (
	ExitCodeSuccess         = 0
	ExitCodeError           = 1
	ExitCodeUsageError      = 2
	ExitCodeValidationError = 3
	ExitCodeInputError      = 4
)

// Input source indicators
const (
	InputSourceStdin = "-"
)

// Data file extensions decoded as YAML; everything else is JSON
const (
	DataExtYAML = ".yaml"
	DataExtYML  = ".yml"
)

// Error messages - ALL must be constants
const (
	ErrMsgUnknownCommand      = "unknown command"
	ErrMsgMissingTemplate     = "template source required"
	ErrMsgInvalidFlags        = "invalid flags"
	ErrMsgInvalidData         = "invalid data"
	ErrMsgDataNotObject       = "data must be an object"
	ErrMsgReadFileFailed      = "failed to read file"
	ErrMsgWriteOutputFailed   = "failed to write output"
	ErrMsgCompileFailed       = "template compilation failed"
	ErrMsgRenderFailed        = "template render failed"
	ErrMsgInvalidFormat       = "invalid output format"
	ErrMsgInvalidProfileMode  = "invalid profile mode"
	ErrMsgConfigFailed        = "failed to load configuration"
	ErrMsgEngineFailed        = "failed to create engine"
	ErrMsgTokenizeFailed      = "tokenization failed"
	ErrMsgDataAndDataFileBoth = "use either --data or --data-file, not both"
)

// Help text templates
const (
	HelpMainUsage = `manglebars - minimal logic-less template CLI

Usage:
    manglebars <command> [options]

Commands:
    render      Render a template with data
    validate    Validate a template and every block body
    tokens      Show the tokens and nodes of a template
    version     Show version information
    help        Show help for a command

Use "manglebars help <command>" for more information about a command.`

	HelpRenderUsage = `Render a template with data

Usage:
    manglebars render [options]

Options:
    -t, --template <file>     Template file (use "-" for stdin)
    -d, --data <json>         JSON data string
    -f, --data-file <file>    JSON or YAML (.yaml, .yml) data file
    -o, --output <file>       Output file, written atomically (default: stdout)
    -c, --config <file>       YAML engine configuration
    --profile <mode>          Profile the render: cpu, mem
    --profile-path <dir>      Directory for profile output (default: .)
    -q, --quiet               Suppress non-error output

Examples:
    manglebars render -t page.txt -d '{"name": "Ada"}'
    manglebars render -t page.txt -f data.yaml -o page.out
    cat page.txt | manglebars render -t - -f data.json
    manglebars render -t page.txt -f data.json -c engine.yaml --profile cpu`

	HelpValidateUsage = `Validate a template and every block body

Usage:
    manglebars validate [options]

Options:
    -t, --template <file>   Template file (use "-" for stdin)
    -c, --config <file>     YAML engine configuration
    -F, --format <format>   Output format: text, json (default: text)

Examples:
    manglebars validate -t page.txt
    manglebars validate -t page.txt -F json
    cat page.txt | manglebars validate -t -`

	HelpTokensUsage = `Show the tokens and nodes of a template

Usage:
    manglebars tokens [options]

Options:
    -t, --template <file>   Template file (use "-" for stdin)
    -c, --config <file>     YAML engine configuration
    -F, --format <format>   Output format: text, json (default: text)`

	HelpVersionUsage = `Show version information

Usage:
    manglebars version [options]

Options:
    -F, --format <format>   Output format: text, json (default: text)`

	HelpHelpUsage = `Show help for a command

Usage:
    manglebars help [command]

Commands:
    render      Show help for render command
    validate    Show help for validate command
    tokens      Show help for tokens command
    version     Show help for version command`
)

// Version output format templates
const (
	VersionTextTemplate = "manglebars version %s\nCommit: %s\nBranch: %s\nBuilt: %s\nGo: %s"
	VersionUnknown      = "unknown"
	VersionsFileName    = "versions.yaml"
)

// Validation output format templates
const (
	ValidationTextSuccess  = "Template is valid"
	ValidationTextFailure  = "Template is invalid"
	ValidationTextIssue    = "  [%s] %s at line %s, column %s"
	ValidationTextOperator = "  operator: %s"
	ValidationTextSuggest  = "  did you mean: %s"
)

// Tokens output format templates
const (
	TokensTextHeader = "Tokens:"
	TokensTextLine   = "  %-14s %d:%d %q"
	NodesTextHeader  = "Nodes:"
	NodesTextLine    = "  %s"
)

// Render output
const (
	RenderTextWritten = "wrote %d bytes to %s"
)

// CLI metadata
const (
	CLIName        = "manglebars"
	CLIDescription = "minimal logic-less template CLI"
)

// File permission constant
const (
	FilePermissions = 0644
)

// Format string constants
const (
	FmtErrorWithDetail = "%s: %s\n"
	FmtErrorWithCause  = "%s: %v\n"
	FmtNewline         = "\n"
	JSONIndent         = "  "
)
