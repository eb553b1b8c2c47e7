package internal

import (
	"fmt"
	"strings"
)

// Node is the interface all AST nodes implement.
type Node interface {
	// Kind returns the node kind identifier
	Kind() NodeKind
	// Pos returns the source position of this node
	Pos() Position
	// String returns a human-readable representation
	String() string
}

// RootNode is the top-level container for an AST.
type RootNode struct {
	Children []Node
}

// Kind returns NodeKindRoot.
func (n *RootNode) Kind() NodeKind {
	return NodeKindRoot
}

// Pos returns a zero position (root has no specific position).
func (n *RootNode) Pos() Position {
	return Position{Offset: 0, Line: 1, Column: 1}
}

// String returns a string representation of the root node.
func (n *RootNode) String() string {
	var sb strings.Builder
	sb.WriteString("RootNode{\n")
	for i, child := range n.Children {
		sb.WriteString(fmt.Sprintf("  [%d] %s\n", i, child.String()))
	}
	sb.WriteString("}")
	return sb.String()
}

// TextNode represents literal text content.
type TextNode struct {
	pos     Position
	Content string
}

// Kind returns NodeKindText.
func (n *TextNode) Kind() NodeKind {
	return NodeKindText
}

// Pos returns the source position.
func (n *TextNode) Pos() Position {
	return n.pos
}

// String returns a string representation.
func (n *TextNode) String() string {
	content := n.Content
	if len(content) > MaxStringDisplayLength {
		content = content[:TruncatedStringLength] + TruncationSuffix
	}
	return fmt.Sprintf("TextNode{%q @ %s}", content, n.pos)
}

// NewTextNode creates a new text node.
func NewTextNode(content string, pos Position) *TextNode {
	return &TextNode{
		pos:     pos,
		Content: content,
	}
}

// InterpNode represents a variable interpolation marker.
//
// Raw holds the original marker source including delimiters; it is emitted
// verbatim when Path cannot be resolved at render time.
type InterpNode struct {
	pos  Position
	Path string
	Raw  string
}

// Kind returns NodeKindInterp.
func (n *InterpNode) Kind() NodeKind {
	return NodeKindInterp
}

// Pos returns the source position.
func (n *InterpNode) Pos() Position {
	return n.pos
}

// String returns a string representation.
func (n *InterpNode) String() string {
	return fmt.Sprintf("InterpNode{%s @ %s}", n.Path, n.pos)
}

// NewInterpNode creates a new interpolation node.
func NewInterpNode(path, raw string, pos Position) *InterpNode {
	return &InterpNode{
		pos:  pos,
		Path: path,
		Raw:  raw,
	}
}

// IfNode represents a conditional block with an optional else branch.
type IfNode struct {
	pos  Position
	Path string // Condition path, evaluated for truthiness
	Then []Node // Rendered when the condition is truthy
	Else []Node // Rendered otherwise (nil when no else branch)
}

// Kind returns NodeKindIf.
func (n *IfNode) Kind() NodeKind {
	return NodeKindIf
}

// Pos returns the source position.
func (n *IfNode) Pos() Position {
	return n.pos
}

// String returns a string representation.
func (n *IfNode) String() string {
	return fmt.Sprintf("IfNode{%s, then=%d, else=%d @ %s}", n.Path, len(n.Then), len(n.Else), n.pos)
}

// HasElse returns true if the conditional carries an else branch.
func (n *IfNode) HasElse() bool {
	return n.Else != nil
}

// NewIfNode creates a new conditional node.
func NewIfNode(path string, then, els []Node, pos Position) *IfNode {
	return &IfNode{
		pos:  pos,
		Path: path,
		Then: then,
		Else: els,
	}
}

// EachNode represents an iteration block.
type EachNode struct {
	pos  Position
	Path string // Path to the sequence to iterate
	Body []Node // Rendered once per element in a child scope
}

// Kind returns NodeKindEach.
func (n *EachNode) Kind() NodeKind {
	return NodeKindEach
}

// Pos returns the source position.
func (n *EachNode) Pos() Position {
	return n.pos
}

// String returns a string representation.
func (n *EachNode) String() string {
	return fmt.Sprintf("EachNode{%s, body=%d @ %s}", n.Path, len(n.Body), n.pos)
}

// NewEachNode creates a new iteration node.
func NewEachNode(path string, body []Node, pos Position) *EachNode {
	return &EachNode{
		pos:  pos,
		Path: path,
		Body: body,
	}
}
