package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/itsatony/go-cuserr"
	"github.com/itsatony/go-manglebars"
)

// validateConfig holds parsed validate command configuration
type validateConfig struct {
	templatePath string
	configPath   string
	format       string
}

// validationOutput represents JSON output for validation
type validationOutput struct {
	Valid bool                   `json:"valid"`
	Issue *validationIssueOutput `json:"issue,omitempty"`
}

type validationIssueOutput struct {
	Kind        string   `json:"kind"`
	Message     string   `json:"message"`
	Line        string   `json:"line,omitempty"`
	Column      string   `json:"column,omitempty"`
	Operator    string   `json:"operator,omitempty"`
	Detail      string   `json:"detail,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

func runValidate(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseValidateFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidFlags, err)
		return ExitCodeUsageError
	}

	templateSource, err := readInput(cfg.templatePath, stdin)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
		return ExitCodeInputError
	}

	engine, err := loadEngine(cfg.configPath)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgConfigFailed, err)
		return ExitCodeInputError
	}
	defer engine.Sync()

	var issue *validationIssueOutput
	if verr := engine.Validate(string(templateSource)); verr != nil {
		issue = issueFromError(verr)
	}

	if cfg.format == OutputFormatJSON {
		return outputValidationJSON(issue, stdout)
	}
	return outputValidationText(issue, stdout)
}

func parseValidateFlags(args []string) (*validateConfig, error) {
	fs := flag.NewFlagSet(CmdNameValidate, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // Suppress default error messages

	cfg := &validateConfig{}

	fs.StringVar(&cfg.templatePath, FlagTemplate, "", "")
	fs.StringVar(&cfg.templatePath, FlagTemplateShort, "", "")
	fs.StringVar(&cfg.configPath, FlagConfig, "", "")
	fs.StringVar(&cfg.configPath, FlagConfigShort, "", "")
	fs.StringVar(&cfg.format, FlagFormat, FlagDefaultFormat, "")
	fs.StringVar(&cfg.format, FlagFormatShort, FlagDefaultFormat, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.templatePath == "" {
		return nil, errors.New(ErrMsgMissingTemplate)
	}

	if cfg.format != OutputFormatText && cfg.format != OutputFormatJSON {
		return nil, errors.New(ErrMsgInvalidFormat)
	}

	return cfg, nil
}

// issueFromError flattens a template error and its metadata for output
func issueFromError(err error) *validationIssueOutput {
	issue := &validationIssueOutput{
		Kind:    manglebars.KindOf(err).String(),
		Message: err.Error(),
	}

	var customErr *cuserr.CustomError
	if !errors.As(err, &customErr) {
		return issue
	}

	issue.Line, _ = customErr.GetMetadata(manglebars.MetaKeyLine)
	issue.Column, _ = customErr.GetMetadata(manglebars.MetaKeyColumn)
	issue.Operator, _ = customErr.GetMetadata(manglebars.MetaKeyOperator)
	issue.Detail, _ = customErr.GetMetadata(manglebars.MetaKeyDetail)
	if s, ok := customErr.GetMetadata(manglebars.MetaKeySuggestions); ok && s != "" {
		issue.Suggestions = strings.Split(s, manglebars.SuggestionSeparator)
	}
	return issue
}

func outputValidationText(issue *validationIssueOutput, stdout io.Writer) int {
	if issue == nil {
		fmt.Fprintln(stdout, ValidationTextSuccess)
		return ExitCodeSuccess
	}

	fmt.Fprintln(stdout, ValidationTextFailure)
	fmt.Fprintf(stdout, ValidationTextIssue+FmtNewline, issue.Kind, issue.Message, issue.Line, issue.Column)
	if issue.Operator != "" {
		fmt.Fprintf(stdout, ValidationTextOperator+FmtNewline, issue.Operator)
	}
	if len(issue.Suggestions) > 0 {
		fmt.Fprintf(stdout, ValidationTextSuggest+FmtNewline, strings.Join(issue.Suggestions, ", "))
	}
	return ExitCodeValidationError
}

func outputValidationJSON(issue *validationIssueOutput, stdout io.Writer) int {
	output := validationOutput{
		Valid: issue == nil,
		Issue: issue,
	}

	jsonBytes, _ := json.MarshalIndent(output, "", JSONIndent)
	fmt.Fprintln(stdout, string(jsonBytes))

	if issue != nil {
		return ExitCodeValidationError
	}
	return ExitCodeSuccess
}
