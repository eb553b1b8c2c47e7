package templar

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/itsatony/go-cuserr"
)

// Error message constants - ALL error messages must be constants (NO MAGIC STRINGS)
const (
	// Syntax errors
	ErrMsgSyntax             = "template syntax error"
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

	// Render errors
	ErrMsgRenderFailed = "template rendering failed"

	// Configuration errors
	ErrMsgInvalidDelimiters = "invalid delimiter configuration"
	ErrMsgInvalidMaxDepth   = "max depth cannot be negative"
)

// Error code constants for categorization
const (
	ErrCodeSyntax = "TEMPLAR_SYNTAX"
	ErrCodeRender = "TEMPLAR_RENDER"
	ErrCodeConfig = "TEMPLAR_CONFIG"
)

// Error kind constants, attached as metadata for programmatic checks
const (
	ErrKindSyntax = "syntax"
	ErrKindRender = "render"
	ErrKindConfig = "config"
)

// Metadata key constants
const (
	MetaKeyKind     = "kind"
	MetaKeyLine     = "line"
	MetaKeyColumn   = "column"
	MetaKeyOffset   = "offset"
	MetaKeyExpected = "expected"
	MetaKeyActual   = "actual"
	MetaKeyOpen     = "open_delim"
	MetaKeyClose    = "close_delim"
	MetaKeyDepth    = "max_depth"
)

// Position represents a location in the source template.
type Position struct {
	Offset int // Byte offset from start
	Line   int // 1-indexed line number
	Column int // 1-indexed column number
}

// String returns a human-readable position string.
func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

// NewSyntaxError creates a syntax error with position context.
func NewSyntaxError(msg string, pos Position, cause error) error {
	return newSyntaxError(msg, pos, cause)
}

// newSyntaxError builds the underlying custom error so callers inside the
// package can attach additional metadata before returning it.
func newSyntaxError(msg string, pos Position, cause error) *cuserr.CustomError {
	var err *cuserr.CustomError
	if cause != nil {
		err = cuserr.WrapStdError(cause, ErrCodeSyntax, msg)
	} else {
		err = cuserr.NewValidationError(ErrCodeSyntax, msg)
	}
	return err.
		WithMetadata(MetaKeyKind, ErrKindSyntax).
		WithMetadata(MetaKeyLine, strconv.Itoa(pos.Line)).
		WithMetadata(MetaKeyColumn, strconv.Itoa(pos.Column)).
		WithMetadata(MetaKeyOffset, strconv.Itoa(pos.Offset))
}

// NewRenderError creates a render error with position context.
func NewRenderError(msg string, pos Position, cause error) error {
	var err *cuserr.CustomError
	if cause != nil {
		err = cuserr.WrapStdError(cause, ErrCodeRender, msg)
	} else {
		err = cuserr.NewValidationError(ErrCodeRender, msg)
	}
	return err.
		WithMetadata(MetaKeyKind, ErrKindRender).
		WithMetadata(MetaKeyLine, strconv.Itoa(pos.Line)).
		WithMetadata(MetaKeyColumn, strconv.Itoa(pos.Column))
}

// NewInvalidDelimitersError creates a configuration error for bad delimiters.
func NewInvalidDelimitersError(open, close string) error {
	return cuserr.NewValidationError(ErrCodeConfig, ErrMsgInvalidDelimiters).
		WithMetadata(MetaKeyKind, ErrKindConfig).
		WithMetadata(MetaKeyOpen, open).
		WithMetadata(MetaKeyClose, close)
}

// NewInvalidMaxDepthError creates a configuration error for a bad depth limit.
func NewInvalidMaxDepthError(depth int) error {
	return cuserr.NewValidationError(ErrCodeConfig, ErrMsgInvalidMaxDepth).
		WithMetadata(MetaKeyKind, ErrKindConfig).
		WithMetadata(MetaKeyDepth, strconv.Itoa(depth))
}

// IsSyntaxError reports whether err is a template syntax error.
// Missing data never produces one; only malformed templates do.
func IsSyntaxError(err error) bool {
	return errKind(err) == ErrKindSyntax
}

// IsRenderError reports whether err is a render-time error.
func IsRenderError(err error) bool {
	return errKind(err) == ErrKindRender
}

// IsConfigError reports whether err is an engine configuration error.
func IsConfigError(err error) bool {
	return errKind(err) == ErrKindConfig
}

// errKind extracts the error kind metadata, or empty string.
func errKind(err error) string {
	var customErr *cuserr.CustomError
	if !errors.As(err, &customErr) {
		return ""
	}
	kind, ok := customErr.GetMetadata(MetaKeyKind)
	if !ok {
		return ""
	}
	return kind
}
