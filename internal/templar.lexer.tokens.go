package internal

import "fmt"

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

// Token is a single lexical unit of a template.
//
// Marker tokens (everything except TEXT and EOF) carry both the parsed
// path/argument and the raw marker source including delimiters. The raw
// source is what the executor emits when an interpolation path cannot be
// resolved.
type Token struct {
	Kind     TokenKind
	Text     string // Literal content for TEXT tokens
	Path     string // Dotted path argument for INTERP, IF_OPEN and EACH_OPEN
	Raw      string // Original marker source including delimiters
	Position Position
}

// String returns a human-readable representation of the token.
func (t Token) String() string {
	switch t.Kind {
	case TokenKindText:
		text := t.Text
		if len(text) > MaxStringDisplayLength {
			text = text[:TruncatedStringLength] + TruncationSuffix
		}
		return fmt.Sprintf("%s(%q) @ %s", t.Kind, text, t.Position)
	case TokenKindInterp, TokenKindIfOpen, TokenKindEachOpen:
		return fmt.Sprintf("%s(%s) @ %s", t.Kind, t.Path, t.Position)
	default:
		return fmt.Sprintf("%s @ %s", t.Kind, t.Position)
	}
}

// NewTextToken creates a TEXT token.
func NewTextToken(text string, pos Position) Token {
	return Token{Kind: TokenKindText, Text: text, Position: pos}
}

// NewInterpToken creates an INTERP token.
func NewInterpToken(path, raw string, pos Position) Token {
	return Token{Kind: TokenKindInterp, Path: path, Raw: raw, Position: pos}
}

// NewIfOpenToken creates an IF_OPEN token.
func NewIfOpenToken(path, raw string, pos Position) Token {
	return Token{Kind: TokenKindIfOpen, Path: path, Raw: raw, Position: pos}
}

// NewEachOpenToken creates an EACH_OPEN token.
func NewEachOpenToken(path, raw string, pos Position) Token {
	return Token{Kind: TokenKindEachOpen, Path: path, Raw: raw, Position: pos}
}

// NewElseToken creates an ELSE token.
func NewElseToken(raw string, pos Position) Token {
	return Token{Kind: TokenKindElse, Raw: raw, Position: pos}
}

// NewIfCloseToken creates an IF_CLOSE token.
func NewIfCloseToken(raw string, pos Position) Token {
	return Token{Kind: TokenKindIfClose, Raw: raw, Position: pos}
}

// NewEachCloseToken creates an EACH_CLOSE token.
func NewEachCloseToken(raw string, pos Position) Token {
	return Token{Kind: TokenKindEachClose, Raw: raw, Position: pos}
}

// NewEOFToken creates an EOF token.
func NewEOFToken(pos Position) Token {
	return Token{Kind: TokenKindEOF, Position: pos}
}
