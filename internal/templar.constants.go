package internal

// TokenKind identifies the kind of a lexical token.
type TokenKind string

// Token kind constants
const (
	TokenKindText      TokenKind = "TEXT"
	TokenKindInterp    TokenKind = "INTERP"
	TokenKindIfOpen    TokenKind = "IF_OPEN"
	TokenKindElse      TokenKind = "ELSE"
	TokenKindIfClose   TokenKind = "IF_CLOSE"
	TokenKindEachOpen  TokenKind = "EACH_OPEN"
	TokenKindEachClose TokenKind = "EACH_CLOSE"
	TokenKindEOF       TokenKind = "EOF"
)

// NodeKind identifies AST node kinds.
type NodeKind int

// Node kind constants
const (
	NodeKindRoot NodeKind = iota
	NodeKindText
	NodeKindInterp
	NodeKindIf
	NodeKindEach
)

// Node kind string names for debugging
const (
	NodeKindNameRoot   = "ROOT"
	NodeKindNameText   = "TEXT"
	NodeKindNameInterp = "INTERP"
	NodeKindNameIf     = "IF"
	NodeKindNameEach   = "EACH"
)

// String returns the string representation of the node kind.
func (n NodeKind) String() string {
	switch n {
	case NodeKindRoot:
		return NodeKindNameRoot
	case NodeKindText:
		return NodeKindNameText
	case NodeKindInterp:
		return NodeKindNameInterp
	case NodeKindIf:
		return NodeKindNameIf
	case NodeKindEach:
		return NodeKindNameEach
	default:
		return NodeKindNameUnknown
	}
}

// Default delimiters
const (
	StrOpenDelim  = "{{"
	StrCloseDelim = "}}"
)

// Marker keywords
const (
	KeywordIf        = "#if"
	KeywordEach      = "#each"
	KeywordElse      = "else"
	KeywordCloseIf   = "/if"
	KeywordCloseEach = "/each"
)

// Marker prefixes
const (
	BlockOpenPrefix  = "#"
	BlockClosePrefix = "/"
)

// Loop metadata keys, bound in the iteration scope of an each block.
const (
	MetaKeyIndex = "@index"
	MetaKeyFirst = "@first"
	MetaKeyLast  = "@last"
	MetaKeyValue = "@value"
)

// Path separator for dot-notation lookup
const PathSeparator = "."

// Character constants
const (
	CharNewline     = '\n'
	CharSpace       = ' '
	CharTab         = '\t'
	CharCarriageRet = '\r'
	CharBackslash   = '\\'
)

// String display limits for debugging output
const (
	MaxStringDisplayLength = 40
	TruncatedStringLength  = 37
	TruncationSuffix       = "..."
)

// Default configuration values
const (
	DefaultMaxDepth = 100
)

// Misc string constants
const (
	StringValueEmpty    = ""
	StringValueTrue     = "true"
	StringValueFalse    = "false"
	NodeKindNameUnknown = "UNKNOWN"
)

// Numeric formatting constants
const (
	IntBase10         = 10
	FloatFormatFlag   = byte('g')
	FloatPrecisionAll = -1
	FloatBitSize64    = 64
)

// Log message constants
const (
	LogMsgLexerCreated    = "lexer created"
	LogMsgTokenizerStart  = "tokenizer started"
	LogMsgTokenizerEnd    = "tokenizer finished"
	LogMsgParserCreated   = "parser created"
	LogMsgParserStart     = "parser started"
	LogMsgParserEnd       = "parser finished"
	LogMsgExecutorCreated = "executor created"
	LogMsgExecutorStart   = "executor started"
	LogMsgExecutorEnd     = "executor finished"
	LogMsgConditionEval   = "evaluating conditional"
	LogMsgBranchSelected  = "conditional branch selected"
	LogMsgLoopStart       = "loop started"
	LogMsgLoopEnd         = "loop finished"
	LogMsgInterpMissing   = "interpolation path unresolved, leaving marker verbatim"
)

// Log field name constants
const (
	LogFieldSource   = "source_len"
	LogFieldTokens   = "tokens"
	LogFieldNodes    = "nodes"
	LogFieldPath     = "path"
	LogFieldBranch   = "branch"
	LogFieldElements = "elements"
)
