package internal

import (
	"go.uber.org/zap"
)

// Parser produces an AST from a token stream.
//
// Blocks are parsed by recursive descent, so nested blocks of the same kind
// close against their own open tag rather than the first close tag in the
// stream. Nesting depth is a static property of the template and is bounded
// here rather than at render time.
type Parser struct {
	tokens   []Token
	pos      int
	maxDepth int // Maximum block nesting depth (0 = unlimited)
	logger   *zap.Logger
}

// NewParser creates a new parser for the given token stream.
func NewParser(tokens []Token, logger *zap.Logger) *Parser {
	return NewParserWithLimit(tokens, DefaultMaxDepth, logger)
}

// NewParserWithLimit creates a parser with a custom nesting depth limit.
func NewParserWithLimit(tokens []Token, maxDepth int, logger *zap.Logger) *Parser {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgParserCreated, zap.Int(LogFieldTokens, len(tokens)))
	return &Parser{
		tokens:   tokens,
		pos:      0,
		maxDepth: maxDepth,
		logger:   logger,
	}
}

// Parse produces the AST root node from the token stream.
func (p *Parser) Parse() (*RootNode, error) {
	p.logger.Debug(LogMsgParserStart)

	nodes, err := p.parseNodes(0)
	if err != nil {
		return nil, err
	}

	// parseNodes stops at any branch or close token; at the top level none
	// of them has an enclosing block.
	tok := p.current()
	switch tok.Kind {
	case TokenKindEOF:
	case TokenKindElse:
		return nil, NewSyntaxError(ErrMsgUnexpectedElse, tok.Position)
	default:
		return nil, NewSyntaxError(ErrMsgUnexpectedClose, tok.Position)
	}

	root := &RootNode{Children: nodes}
	p.logger.Debug(LogMsgParserEnd, zap.Int(LogFieldNodes, len(nodes)))
	return root, nil
}

// parseNodes parses a sequence of nodes until EOF, an else token, or a
// closing tag. The stopping token is left for the caller to consume.
func (p *Parser) parseNodes(depth int) ([]Node, error) {
	var nodes []Node

	for {
		tok := p.current()
		switch tok.Kind {
		case TokenKindEOF, TokenKindElse, TokenKindIfClose, TokenKindEachClose:
			return nodes, nil

		case TokenKindText:
			p.advance()
			nodes = append(nodes, NewTextNode(tok.Text, tok.Position))

		case TokenKindInterp:
			p.advance()
			nodes = append(nodes, NewInterpNode(tok.Path, tok.Raw, tok.Position))

		case TokenKindIfOpen:
			node, err := p.parseIf(depth + 1)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, node)

		case TokenKindEachOpen:
			node, err := p.parseEach(depth + 1)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, node)

		default:
			return nil, NewSyntaxError(ErrMsgUnexpectedToken, tok.Position)
		}
	}
}

// parseIf parses an if block: {{#if path}} … [{{else}} …] {{/if}}
func (p *Parser) parseIf(depth int) (Node, error) {
	openTok := p.advance()

	if err := p.checkDepth(depth, openTok.Position); err != nil {
		return nil, err
	}

	thenNodes, err := p.parseNodes(depth)
	if err != nil {
		return nil, err
	}

	var elseNodes []Node
	if p.current().Kind == TokenKindElse {
		p.advance()
		elseNodes, err = p.parseNodes(depth)
		if err != nil {
			return nil, err
		}
		// else branch must be terminated by /if, not another else
		if p.current().Kind == TokenKindElse {
			return nil, NewSyntaxError(ErrMsgDuplicateElse, p.current().Position)
		}
		if elseNodes == nil {
			elseNodes = []Node{}
		}
	}

	if err := p.expectClose(TokenKindIfClose, KeywordCloseIf, openTok.Position); err != nil {
		return nil, err
	}

	return NewIfNode(openTok.Path, thenNodes, elseNodes, openTok.Position), nil
}

// parseEach parses an each block: {{#each path}} … {{/each}}
func (p *Parser) parseEach(depth int) (Node, error) {
	openTok := p.advance()

	if err := p.checkDepth(depth, openTok.Position); err != nil {
		return nil, err
	}

	body, err := p.parseNodes(depth)
	if err != nil {
		return nil, err
	}

	// else binds to if blocks only
	if p.current().Kind == TokenKindElse {
		return nil, NewSyntaxError(ErrMsgUnexpectedElse, p.current().Position)
	}

	if err := p.expectClose(TokenKindEachClose, KeywordCloseEach, openTok.Position); err != nil {
		return nil, err
	}

	return NewEachNode(openTok.Path, body, openTok.Position), nil
}

// expectClose consumes the expected closing token or reports the mismatch.
// openPos is the position of the block's open tag, used for unclosed-block
// errors so the message points at the tag that was never closed.
func (p *Parser) expectClose(kind TokenKind, keyword string, openPos Position) error {
	tok := p.current()

	if tok.Kind == kind {
		p.advance()
		return nil
	}

	if tok.Kind == TokenKindEOF {
		return NewMismatchError(ErrMsgUnclosedBlock, keyword, tokenKindTagName(tok.Kind), openPos)
	}
	return NewMismatchError(ErrMsgMismatchedClose, keyword, tokenKindTagName(tok.Kind), tok.Position)
}

// checkDepth enforces the nesting depth bound.
func (p *Parser) checkDepth(depth int, pos Position) error {
	if p.maxDepth > 0 && depth > p.maxDepth {
		return NewSyntaxError(ErrMsgMaxDepthExceeded, pos)
	}
	return nil
}

// current returns the token at the current position.
func (p *Parser) current() Token {
	if p.pos >= len(p.tokens) {
		return NewEOFToken(Position{})
	}
	return p.tokens[p.pos]
}

// advance consumes and returns the current token.
func (p *Parser) advance() Token {
	tok := p.current()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

// tokenKindTagName maps a token kind to the tag keyword shown in errors.
func tokenKindTagName(kind TokenKind) string {
	switch kind {
	case TokenKindIfClose:
		return KeywordCloseIf
	case TokenKindEachClose:
		return KeywordCloseEach
	case TokenKindIfOpen:
		return KeywordIf
	case TokenKindEachOpen:
		return KeywordEach
	case TokenKindElse:
		return KeywordElse
	case TokenKindEOF:
		return TagNameEOF
	default:
		return string(kind)
	}
}

// TagNameEOF names the end of input in mismatch errors.
const TagNameEOF = "end of template"
