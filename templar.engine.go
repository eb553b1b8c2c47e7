package templar

import (
	"context"
	"errors"

	"github.com/itsatony/go-templar/internal"
	"go.uber.org/zap"
)

// Engine is the main entry point for the templar rendering system.
// It holds delimiter and depth configuration and turns template sources into
// reusable parsed Templates.
type Engine struct {
	config   *engineConfig
	executor *internal.Executor
	logger   *zap.Logger
}

// New creates a new templar Engine with the given options.
func New(opts ...Option) (*Engine, error) {
	config := defaultEngineConfig()
	for _, opt := range opts {
		opt(config)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	executorConfig := internal.ExecutorConfig{
		MaxDepth: config.maxDepth,
		Escape:   config.escape,
	}
	executor := internal.NewExecutor(executorConfig, logger)

	return &Engine{
		config:   config,
		executor: executor,
		logger:   logger,
	}, nil
}

// MustNew creates a new Engine and panics if there's an error.
func MustNew(opts ...Option) *Engine {
	engine, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return engine
}

// Parse parses a template source string and returns a Template.
// The returned Template can be rendered multiple times with different data.
func (e *Engine) Parse(source string) (*Template, error) {
	lexerConfig := internal.LexerConfig{
		OpenDelim:  e.config.openDelim,
		CloseDelim: e.config.closeDelim,
	}
	lexer := internal.NewLexerWithConfig(source, lexerConfig, e.logger)

	tokens, err := lexer.Tokenize()
	if err != nil {
		return nil, wrapParseError(err)
	}

	parser := internal.NewParserWithLimit(tokens, e.config.maxDepth, e.logger)
	ast, err := parser.Parse()
	if err != nil {
		return nil, wrapParseError(err)
	}

	return newTemplate(source, ast, e.executor), nil
}

// Render is a convenience method that parses and renders in one step.
// For templates that will be rendered multiple times, use Parse() instead.
func (e *Engine) Render(ctx context.Context, source string, data map[string]any) (string, error) {
	tmpl, err := e.Parse(source)
	if err != nil {
		return "", err
	}
	return tmpl.Render(ctx, data)
}

// Render parses and renders a template in a single call with a throwaway
// engine. It is the package-level entry point for one-off rendering:
//
//	result, err := templar.Render("Hello, {{name}}!", data)
//
// Options configure delimiters, depth, and escaping exactly as with New.
func Render(source string, data map[string]any, opts ...Option) (string, error) {
	engine, err := New(opts...)
	if err != nil {
		return "", err
	}
	return engine.Render(context.Background(), source, data)
}

// wrapParseError converts an internal syntax error into the public
// structured form, preserving position and mismatch metadata.
func wrapParseError(err error) error {
	var synErr *internal.SyntaxError
	if errors.As(err, &synErr) {
		pos := Position{
			Offset: synErr.Position.Offset,
			Line:   synErr.Position.Line,
			Column: synErr.Position.Column,
		}
		wrapped := newSyntaxError(synErr.Message, pos, nil)
		if synErr.Expected != "" {
			wrapped = wrapped.
				WithMetadata(MetaKeyExpected, synErr.Expected).
				WithMetadata(MetaKeyActual, synErr.Actual)
		}
		return wrapped
	}
	return NewSyntaxError(ErrMsgSyntax, Position{}, err)
}
