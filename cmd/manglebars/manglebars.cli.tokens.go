package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/itsatony/go-manglebars"
)

// tokensConfig holds parsed tokens command configuration
type tokensConfig struct {
	templatePath string
	configPath   string
	format       string
}

// tokensOutput represents JSON output for the tokens command
type tokensOutput struct {
	Tokens []manglebars.Token `json:"tokens"`
	Nodes  []string           `json:"nodes"`
}

func runTokens(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseTokensFlags(args)
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

	source := string(templateSource)
	tokens, err := engine.Tokenize(source)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgTokenizeFailed, err)
		return ExitCodeValidationError
	}
	tmpl, err := engine.Compile(source)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgCompileFailed, err)
		return ExitCodeValidationError
	}

	if cfg.format == OutputFormatJSON {
		jsonBytes, _ := json.MarshalIndent(tokensOutput{Tokens: tokens, Nodes: tmpl.Nodes()}, "", JSONIndent)
		fmt.Fprintln(stdout, string(jsonBytes))
		return ExitCodeSuccess
	}

	fmt.Fprintln(stdout, TokensTextHeader)
	for _, tok := range tokens {
		fmt.Fprintf(stdout, TokensTextLine+FmtNewline, tok.Kind, tok.Line, tok.Column, tok.Raw)
	}
	fmt.Fprintln(stdout, NodesTextHeader)
	for _, node := range tmpl.Nodes() {
		fmt.Fprintf(stdout, NodesTextLine+FmtNewline, node)
	}
	return ExitCodeSuccess
}

func parseTokensFlags(args []string) (*tokensConfig, error) {
	fs := flag.NewFlagSet(CmdNameTokens, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // Suppress default error messages

	cfg := &tokensConfig{}

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
