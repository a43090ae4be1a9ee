package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/itsatony/go-manglebars"
	"github.com/natefinch/atomic"
	"gopkg.in/yaml.v3"
)

// readInput reads content from a file or stdin
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == InputSourceStdin {
		return io.ReadAll(stdin)
	}

	return os.ReadFile(path)
}

// writeOutput writes content to stdout, or atomically replaces the file at path
func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path == FlagDefaultOutput {
		_, err := stdout.Write(data)
		return err
	}

	return atomic.WriteFile(path, bytes.NewReader(data))
}

// loadData decodes the render context from an inline JSON string or a data file.
// Files ending in .yaml or .yml are decoded as YAML, all others as JSON.
func loadData(jsonStr, filePath string) (map[string]any, error) {
	if jsonStr != "" && filePath != "" {
		return nil, errors.New(ErrMsgDataAndDataFileBoth)
	}

	var result map[string]any
	switch {
	case filePath != "":
		raw, err := os.ReadFile(filePath)
		if err != nil {
			return nil, err
		}
		if isYAMLFile(filePath) {
			err = yaml.Unmarshal(raw, &result)
		} else {
			err = json.Unmarshal(raw, &result)
		}
		if err != nil {
			return nil, err
		}
	case jsonStr != "":
		if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
			return nil, err
		}
	}

	if result == nil {
		result = make(map[string]any)
	}
	return result, nil
}

func isYAMLFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == DataExtYAML || ext == DataExtYML
}

// loadEngine builds an engine from an optional YAML configuration file
func loadEngine(configPath string) (*manglebars.Engine, error) {
	if configPath == "" {
		return manglebars.New()
	}

	raw, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}
	cfg, err := manglebars.ParseConfig(raw)
	if err != nil {
		return nil, err
	}
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	return manglebars.New(opts...)
}
