package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	templar "github.com/itsatony/go-templar"
)

// validateConfig holds parsed validate command configuration
type validateConfig struct {
	templatePath string
	openDelim    string
	closeDelim   string
}

func runValidate(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseValidateFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidUsage, err)
		return ExitCodeUsageError
	}

	templateSource, err := readInput(cfg.templatePath, stdin)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
		return ExitCodeInputError
	}

	engine, err := templar.New(templar.WithDelimiters(cfg.openDelim, cfg.closeDelim))
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidOptions, err)
		return ExitCodeUsageError
	}

	if _, err := engine.Parse(string(templateSource)); err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgParseFailed, err)
		return ExitCodeValidationError
	}

	fmt.Fprintln(stdout, ValidationTextSuccess)
	return ExitCodeSuccess
}

func parseValidateFlags(args []string) (*validateConfig, error) {
	fs := flag.NewFlagSet(CmdNameValidate, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	cfg := &validateConfig{}

	fs.StringVar(&cfg.templatePath, FlagTemplate, "", "")
	fs.StringVar(&cfg.templatePath, FlagTemplateShort, "", "")
	fs.StringVar(&cfg.openDelim, FlagOpenDelim, templar.DefaultOpenDelim, "")
	fs.StringVar(&cfg.closeDelim, FlagCloseDelim, templar.DefaultCloseDelim, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.templatePath == "" {
		return nil, errors.New(ErrMsgMissingTemplate)
	}

	return cfg, nil
}
