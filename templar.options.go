package templar

import (
	"html"

	"go.uber.org/zap"
)

// Option is a functional option for configuring the Engine.
type Option func(*engineConfig)

// engineConfig holds the internal configuration for an Engine.
type engineConfig struct {
	openDelim  string
	closeDelim string
	maxDepth   int
	escape     func(string) string
	logger     *zap.Logger
}

// defaultEngineConfig returns the default engine configuration.
func defaultEngineConfig() *engineConfig {
	return &engineConfig{
		openDelim:  DefaultOpenDelim,
		closeDelim: DefaultCloseDelim,
		maxDepth:   DefaultMaxDepth,
		escape:     nil,
		logger:     nil,
	}
}

// validate checks the configuration for inconsistencies.
func (c *engineConfig) validate() error {
	if c.openDelim == "" || c.closeDelim == "" || c.openDelim == c.closeDelim {
		return NewInvalidDelimitersError(c.openDelim, c.closeDelim)
	}
	if c.maxDepth < 0 {
		return NewInvalidMaxDepthError(c.maxDepth)
	}
	return nil
}

// WithDelimiters sets custom delimiters for template markers.
// Default: "{{" and "}}"
func WithDelimiters(open, close string) Option {
	return func(c *engineConfig) {
		c.openDelim = open
		c.closeDelim = close
	}
}

// WithMaxDepth sets the maximum block nesting depth.
// Use 0 for unlimited depth.
// Default: 100
func WithMaxDepth(depth int) Option {
	return func(c *engineConfig) {
		c.maxDepth = depth
	}
}

// WithHTMLEscaping enables HTML escaping of interpolated values.
// Literal template text and verbatim-echoed markers are never escaped.
func WithHTMLEscaping() Option {
	return func(c *engineConfig) {
		c.escape = html.EscapeString
	}
}

// WithEscapeFunc sets a custom escape function for interpolated values.
func WithEscapeFunc(escape func(string) string) Option {
	return func(c *engineConfig) {
		c.escape = escape
	}
}

// WithLogger sets the logger for the engine.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(c *engineConfig) {
		c.logger = logger
	}
}
