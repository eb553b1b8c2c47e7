package internal

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// ExecutorConfig holds executor configuration options.
type ExecutorConfig struct {
	MaxDepth int                 // Maximum nesting depth (0 = unlimited)
	Escape   func(string) string // Applied to resolved interpolation output (nil = none)
}

// DefaultExecutorConfig returns the default executor configuration.
func DefaultExecutorConfig() ExecutorConfig {
	return ExecutorConfig{
		MaxDepth: DefaultMaxDepth,
	}
}

// Executor traverses an AST and produces the rendered output.
//
// Execution is pure: the same AST and scope always produce the same output,
// and the scope's underlying data is never mutated. The escape hook, when
// set, applies only to resolved interpolation values; literal text and
// verbatim-echoed markers pass through untouched so that re-rendering echoed
// output stays a no-op.
type Executor struct {
	config ExecutorConfig
	logger *zap.Logger
}

// NewExecutor creates a new executor with the given configuration.
func NewExecutor(config ExecutorConfig, logger *zap.Logger) *Executor {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgExecutorCreated)
	return &Executor{
		config: config,
		logger: logger,
	}
}

// Execute processes the AST and returns the rendered output.
func (e *Executor) Execute(ctx context.Context, root *RootNode, scope *Scope) (string, error) {
	e.logger.Debug(LogMsgExecutorStart)

	result, err := e.executeNodes(ctx, root.Children, scope, 0)
	if err != nil {
		return StringValueEmpty, err
	}

	e.logger.Debug(LogMsgExecutorEnd)
	return result, nil
}

// executeNodes processes a slice of nodes and concatenates their output.
func (e *Executor) executeNodes(ctx context.Context, nodes []Node, scope *Scope, depth int) (string, error) {
	// The parser already bounds nesting; this guard keeps render-time
	// recursion bounded even for programmatically built ASTs.
	if e.config.MaxDepth > 0 && depth > e.config.MaxDepth {
		return StringValueEmpty, NewRenderError(ErrMsgMaxDepthExceeded, Position{})
	}

	var sb strings.Builder

	for _, node := range nodes {
		output, err := e.executeNode(ctx, node, scope, depth)
		if err != nil {
			return StringValueEmpty, err
		}
		sb.WriteString(output)
	}

	return sb.String(), nil
}

// executeNode processes a single node and returns its output.
func (e *Executor) executeNode(ctx context.Context, node Node, scope *Scope, depth int) (string, error) {
	switch n := node.(type) {
	case *TextNode:
		return n.Content, nil

	case *InterpNode:
		return e.executeInterp(n, scope), nil

	case *IfNode:
		return e.executeIf(ctx, n, scope, depth)

	case *EachNode:
		return e.executeEach(ctx, n, scope, depth)

	default:
		return StringValueEmpty, NewRenderError(ErrMsgUnknownNodeKind, node.Pos())
	}
}

// executeInterp resolves an interpolation marker. An unresolved path leaves
// the original marker verbatim in the output.
func (e *Executor) executeInterp(n *InterpNode, scope *Scope) string {
	val, ok := scope.Lookup(n.Path)
	if !ok {
		e.logger.Debug(LogMsgInterpMissing, zap.String(LogFieldPath, n.Path))
		return n.Raw
	}

	result := Stringify(val)
	if e.config.Escape != nil {
		result = e.config.Escape(result)
	}
	return result
}

// executeIf evaluates a conditional block.
func (e *Executor) executeIf(ctx context.Context, n *IfNode, scope *Scope, depth int) (string, error) {
	val, ok := scope.Lookup(n.Path)
	truthy := ok && IsTruthy(val)

	e.logger.Debug(LogMsgConditionEval,
		zap.String(LogFieldPath, n.Path),
		zap.Bool(LogFieldBranch, truthy))

	if truthy {
		return e.executeNodes(ctx, n.Then, scope, depth+1)
	}
	if n.HasElse() {
		return e.executeNodes(ctx, n.Else, scope, depth+1)
	}
	return StringValueEmpty, nil
}

// executeEach evaluates an iteration block. A missing path or a value that
// is not a sequence renders the whole region as empty string.
func (e *Executor) executeEach(ctx context.Context, n *EachNode, scope *Scope, depth int) (string, error) {
	val, ok := scope.Lookup(n.Path)
	if !ok {
		return StringValueEmpty, nil
	}

	seq, ok := ToSequence(val)
	if !ok {
		return StringValueEmpty, nil
	}

	e.logger.Debug(LogMsgLoopStart,
		zap.String(LogFieldPath, n.Path),
		zap.Int(LogFieldElements, len(seq)))

	var sb strings.Builder
	for i, elem := range seq {
		iterScope := forkIterationScope(scope, elem, i, len(seq))
		output, err := e.executeNodes(ctx, n.Body, iterScope, depth+1)
		if err != nil {
			return StringValueEmpty, err
		}
		sb.WriteString(output)
	}

	e.logger.Debug(LogMsgLoopEnd, zap.String(LogFieldPath, n.Path))
	return sb.String(), nil
}

// forkIterationScope builds the scope for one loop iteration: the element's
// fields shadow the enclosing scope, and the loop metadata (@index, @first,
// @last, @value) shadows both.
func forkIterationScope(scope *Scope, elem any, index, length int) *Scope {
	iterScope := scope

	if mapping, ok := ToMapping(elem); ok {
		iterScope = iterScope.Fork(mapping)
	}

	meta := map[string]any{
		MetaKeyIndex: index,
		MetaKeyFirst: index == 0,
		MetaKeyLast:  index == length-1,
		MetaKeyValue: elem,
	}
	return iterScope.Fork(meta)
}

// RenderError represents a render-time error with position context.
type RenderError struct {
	Message  string
	Position Position
}

// NewRenderError creates a new render error.
func NewRenderError(message string, pos Position) *RenderError {
	return &RenderError{
		Message:  message,
		Position: pos,
	}
}

// Error implements the error interface.
func (e *RenderError) Error() string {
	return fmt.Sprintf(ErrFmtWithPosition, e.Message, e.Position)
}

// Render error message constants
const (
	ErrMsgUnknownNodeKind = "unknown node kind"
)
