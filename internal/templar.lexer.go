package internal

import (
	"strings"

	"go.uber.org/zap"
)

// LexerConfig holds lexer configuration.
type LexerConfig struct {
	OpenDelim  string // Opening delimiter (default: "{{")
	CloseDelim string // Closing delimiter (default: "}}")
}

// DefaultLexerConfig returns the default lexer configuration.
func DefaultLexerConfig() LexerConfig {
	return LexerConfig{
		OpenDelim:  StrOpenDelim,
		CloseDelim: StrCloseDelim,
	}
}

// escapeOpen returns the escape pattern for this config (e.g., `\{{` for "{{").
func (c LexerConfig) escapeOpen() string {
	return string(CharBackslash) + c.OpenDelim
}

// Lexer tokenizes template source into a token stream.
//
// The scan is a single linear pass: text runs are collected until the next
// delimiter, marker contents are classified by their leading keyword. No
// backtracking, so adversarial templates stay linear-time.
type Lexer struct {
	source string
	config LexerConfig
	pos    int // Current byte position
	line   int // Current line (1-indexed)
	column int // Current column (1-indexed)
	logger *zap.Logger
}

// NewLexer creates a new lexer with default configuration.
func NewLexer(source string, logger *zap.Logger) *Lexer {
	return NewLexerWithConfig(source, DefaultLexerConfig(), logger)
}

// NewLexerWithConfig creates a lexer with custom configuration.
func NewLexerWithConfig(source string, config LexerConfig, logger *zap.Logger) *Lexer {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgLexerCreated, zap.Int(LogFieldSource, len(source)))
	return &Lexer{
		source: source,
		config: config,
		pos:    0,
		line:   1,
		column: 1,
		logger: logger,
	}
}

// Tokenize processes the source and returns a token stream.
func (l *Lexer) Tokenize() ([]Token, error) {
	l.logger.Debug(LogMsgTokenizerStart)
	var tokens []Token

	for !l.isAtEnd() {
		// Escaped open delimiter: consume \{{ and emit {{ as text
		if l.matchStr(l.config.escapeOpen()) {
			pos := l.currentPosition()
			l.advanceN(len(l.config.escapeOpen()))
			tokens = append(tokens, NewTextToken(l.config.OpenDelim, pos))
			continue
		}

		if l.matchStr(l.config.OpenDelim) {
			token, err := l.scanMarker()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, token)
			continue
		}

		textToken := l.scanText()
		if textToken.Text != StringValueEmpty {
			tokens = append(tokens, textToken)
		}
	}

	tokens = append(tokens, NewEOFToken(l.currentPosition()))
	l.logger.Debug(LogMsgTokenizerEnd, zap.Int(LogFieldTokens, len(tokens)))
	return tokens, nil
}

// scanText scans text content until the next delimiter or escape sequence.
func (l *Lexer) scanText() Token {
	startPos := l.currentPosition()
	var sb strings.Builder

	for !l.isAtEnd() {
		if l.matchStr(l.config.escapeOpen()) {
			break
		}
		if l.matchStr(l.config.OpenDelim) {
			break
		}
		sb.WriteByte(l.advance())
	}

	return NewTextToken(sb.String(), startPos)
}

// scanMarker scans a complete marker from the open delimiter through the
// close delimiter and classifies its content.
func (l *Lexer) scanMarker() (Token, error) {
	startPos := l.currentPosition()
	startOffset := l.pos
	l.advanceN(len(l.config.OpenDelim))

	for !l.isAtEnd() {
		if l.matchStr(l.config.CloseDelim) {
			contentEnd := l.pos
			l.advanceN(len(l.config.CloseDelim))
			raw := l.source[startOffset:l.pos]
			content := l.source[startOffset+len(l.config.OpenDelim) : contentEnd]
			return l.classifyMarker(content, raw, startPos)
		}
		l.advance()
	}

	return Token{}, NewSyntaxError(ErrMsgUnterminatedMarker, startPos)
}

// classifyMarker turns marker content into the corresponding token.
func (l *Lexer) classifyMarker(content, raw string, pos Position) (Token, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == StringValueEmpty {
		return Token{}, NewSyntaxError(ErrMsgEmptyMarker, pos)
	}

	if strings.HasPrefix(trimmed, BlockOpenPrefix) {
		return l.classifyBlockOpen(trimmed, raw, pos)
	}

	if strings.HasPrefix(trimmed, BlockClosePrefix) {
		switch trimmed {
		case KeywordCloseIf:
			return NewIfCloseToken(raw, pos), nil
		case KeywordCloseEach:
			return NewEachCloseToken(raw, pos), nil
		default:
			return Token{}, NewSyntaxError(ErrMsgUnknownBlockTag, pos)
		}
	}

	if trimmed == KeywordElse {
		return NewElseToken(raw, pos), nil
	}

	if !isValidPath(trimmed) {
		return Token{}, NewSyntaxError(ErrMsgInvalidPath, pos)
	}
	return NewInterpToken(trimmed, raw, pos), nil
}

// classifyBlockOpen handles #if and #each open markers.
func (l *Lexer) classifyBlockOpen(trimmed, raw string, pos Position) (Token, error) {
	fields := strings.Fields(trimmed)
	keyword := fields[0]

	if keyword != KeywordIf && keyword != KeywordEach {
		return Token{}, NewSyntaxError(ErrMsgUnknownBlockTag, pos)
	}
	if len(fields) < 2 {
		return Token{}, NewSyntaxError(ErrMsgMissingBlockArg, pos)
	}
	if len(fields) > 2 || !isValidPath(fields[1]) {
		return Token{}, NewSyntaxError(ErrMsgInvalidPath, pos)
	}

	if keyword == KeywordIf {
		return NewIfOpenToken(fields[1], raw, pos), nil
	}
	return NewEachOpenToken(fields[1], raw, pos), nil
}

// Helper methods

// currentPosition returns the current position.
func (l *Lexer) currentPosition() Position {
	return Position{
		Offset: l.pos,
		Line:   l.line,
		Column: l.column,
	}
}

// isAtEnd returns true if we've reached the end of source.
func (l *Lexer) isAtEnd() bool {
	return l.pos >= len(l.source)
}

// advance consumes and returns the current character.
func (l *Lexer) advance() byte {
	if l.isAtEnd() {
		return 0
	}
	ch := l.source[l.pos]
	l.pos++
	if ch == CharNewline {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch
}

// advanceN advances by n characters.
func (l *Lexer) advanceN(n int) {
	for i := 0; i < n && !l.isAtEnd(); i++ {
		l.advance()
	}
}

// matchStr returns true if the remaining source starts with s.
func (l *Lexer) matchStr(s string) bool {
	return strings.HasPrefix(l.source[l.pos:], s)
}

// isValidPath reports whether s is a well-formed dotted path. Loop metadata
// names (@index, @first, @last, @value) pass through the same check.
func isValidPath(s string) bool {
	if s == StringValueEmpty {
		return false
	}
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if isLetter(ch) || isDigit(ch) || ch == '_' || ch == '-' || ch == '.' || ch == '@' {
			continue
		}
		return false
	}
	return true
}

// Character classification helpers

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
