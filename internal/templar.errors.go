package internal

import "fmt"

// SyntaxError represents a template syntax error with position context.
// The public package wraps it into a structured error at the API boundary.
type SyntaxError struct {
	Message  string
	Position Position
	Expected string // Expected tag for mismatched-close errors
	Actual   string // Actual tag for mismatched-close errors
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	if e.Expected != StringValueEmpty {
		return fmt.Sprintf(ErrFmtMismatch, e.Message, e.Expected, e.Actual, e.Position)
	}
	return fmt.Sprintf(ErrFmtWithPosition, e.Message, e.Position)
}

// NewSyntaxError creates a syntax error at the given position.
func NewSyntaxError(message string, pos Position) *SyntaxError {
	return &SyntaxError{Message: message, Position: pos}
}

// NewMismatchError creates a syntax error for a mismatched closing tag.
func NewMismatchError(message, expected, actual string, pos Position) *SyntaxError {
	return &SyntaxError{Message: message, Position: pos, Expected: expected, Actual: actual}
}

// Syntax error message constants
const (
	ErrMsgUnterminatedMarker = "unterminated marker"
	ErrMsgEmptyMarker        = "empty marker"
	ErrMsgUnknownBlockTag    = "unknown block tag"
	ErrMsgMissingBlockArg    = "block tag requires a path argument"
	ErrMsgInvalidPath        = "invalid path expression"
	ErrMsgUnexpectedElse     = "else outside of if block"
	ErrMsgDuplicateElse      = "duplicate else in if block"
	ErrMsgUnexpectedClose    = "closing tag without matching open tag"
	ErrMsgUnclosedBlock      = "unclosed block"
	ErrMsgMismatchedClose    = "mismatched closing tag"
	ErrMsgMaxDepthExceeded   = "maximum nesting depth exceeded"
	ErrMsgUnexpectedToken    = "unexpected token"
)

// Error format constants
const (
	ErrFmtWithPosition = "%s at %s"
	ErrFmtMismatch     = "%s: expected %s, found %s at %s"
)
