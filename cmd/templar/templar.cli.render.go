package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	templar "github.com/itsatony/go-templar"
	"gopkg.in/yaml.v3"
)

// renderConfig holds parsed render command configuration
type renderConfig struct {
	templatePath string
	dataJSON     string
	dataFilePath string
	outputPath   string
	openDelim    string
	closeDelim   string
	htmlEscape   bool
}

func runRender(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseRenderFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidUsage, err)
		return ExitCodeUsageError
	}

	// Read template
	templateSource, err := readInput(cfg.templatePath, stdin)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
		return ExitCodeInputError
	}

	// Parse data
	data, err := loadData(cfg.dataJSON, cfg.dataFilePath)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidData, err)
		return ExitCodeInputError
	}

	// Create engine and render
	engine, err := templar.New(cfg.engineOptions()...)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidOptions, err)
		return ExitCodeUsageError
	}

	result, err := engine.Render(context.Background(), string(templateSource), data)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgRenderFailed, err)
		return ExitCodeError
	}

	// Write output
	if err := writeOutput(cfg.outputPath, []byte(result), stdout); err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgWriteOutputFailed, err)
		return ExitCodeError
	}

	return ExitCodeSuccess
}

// engineOptions maps CLI flags to engine options.
func (cfg *renderConfig) engineOptions() []templar.Option {
	var opts []templar.Option
	if cfg.openDelim != templar.DefaultOpenDelim || cfg.closeDelim != templar.DefaultCloseDelim {
		opts = append(opts, templar.WithDelimiters(cfg.openDelim, cfg.closeDelim))
	}
	if cfg.htmlEscape {
		opts = append(opts, templar.WithHTMLEscaping())
	}
	return opts
}

func parseRenderFlags(args []string) (*renderConfig, error) {
	fs := flag.NewFlagSet(CmdNameRender, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // Suppress default error messages

	cfg := &renderConfig{}

	fs.StringVar(&cfg.templatePath, FlagTemplate, "", "")
	fs.StringVar(&cfg.templatePath, FlagTemplateShort, "", "")
	fs.StringVar(&cfg.dataJSON, FlagData, "", "")
	fs.StringVar(&cfg.dataJSON, FlagDataShort, "", "")
	fs.StringVar(&cfg.dataFilePath, FlagDataFile, "", "")
	fs.StringVar(&cfg.dataFilePath, FlagDataFileShort, "", "")
	fs.StringVar(&cfg.outputPath, FlagOutput, FlagDefaultOutput, "")
	fs.StringVar(&cfg.outputPath, FlagOutputShort, FlagDefaultOutput, "")
	fs.StringVar(&cfg.openDelim, FlagOpenDelim, templar.DefaultOpenDelim, "")
	fs.StringVar(&cfg.closeDelim, FlagCloseDelim, templar.DefaultCloseDelim, "")
	fs.BoolVar(&cfg.htmlEscape, FlagHTMLEscape, false, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// Validation
	if cfg.templatePath == "" {
		return nil, errors.New(ErrMsgMissingTemplate)
	}

	return cfg, nil
}

// loadData builds the render context from an inline JSON string or a data
// file. File format is chosen by extension: .json, .yaml or .yml.
func loadData(jsonStr, filePath string) (map[string]any, error) {
	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return nil, err
		}

		switch strings.ToLower(filepath.Ext(filePath)) {
		case ExtJSON:
			return unmarshalJSONData(data)
		case ExtYAML, ExtYML:
			return unmarshalYAMLData(data)
		default:
			return nil, errors.New(ErrMsgUnknownDataFormat)
		}
	}

	if jsonStr != "" {
		return unmarshalJSONData([]byte(jsonStr))
	}

	// No data provided, return empty map
	return make(map[string]any), nil
}

func unmarshalJSONData(data []byte) (map[string]any, error) {
	var result map[string]any
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func unmarshalYAMLData(data []byte) (map[string]any, error) {
	var result map[string]any
	if err := yaml.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return result, nil
}
