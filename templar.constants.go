package templar

// Default delimiters
const (
	DefaultOpenDelim  = "{{"
	DefaultCloseDelim = "}}"
)

// DefaultMaxDepth is the default bound on block nesting depth.
const DefaultMaxDepth = 100
