package templar

import (
	"context"
	"errors"

	"github.com/itsatony/go-templar/internal"
)

// Template represents a parsed template that can be rendered multiple times.
// A Template is immutable and safe for concurrent use.
type Template struct {
	source   string
	ast      *internal.RootNode
	executor *internal.Executor
}

// newTemplate creates a new template (internal use).
func newTemplate(source string, ast *internal.RootNode, executor *internal.Executor) *Template {
	return &Template{
		source:   source,
		ast:      ast,
		executor: executor,
	}
}

// Render renders the template with the given data.
// This is a convenience method that creates a Context from the data map.
func (t *Template) Render(ctx context.Context, data map[string]any) (string, error) {
	return t.RenderWithContext(ctx, NewContext(data))
}

// RenderWithContext renders the template with the given context.
// Use this when you need parent-child scoping across renders.
func (t *Template) RenderWithContext(ctx context.Context, execCtx *Context) (string, error) {
	result, err := t.executor.Execute(ctx, t.ast, execCtx.scope)
	if err != nil {
		return "", wrapRenderError(err)
	}
	return result, nil
}

// Source returns the original template source string.
func (t *Template) Source() string {
	return t.source
}

// wrapRenderError converts an internal render error into the public
// structured form, carrying position metadata when available.
func wrapRenderError(err error) error {
	var renderErr *internal.RenderError
	if errors.As(err, &renderErr) {
		pos := Position{
			Offset: renderErr.Position.Offset,
			Line:   renderErr.Position.Line,
			Column: renderErr.Position.Column,
		}
		return NewRenderError(renderErr.Message, pos, nil)
	}
	return NewRenderError(ErrMsgRenderFailed, Position{}, err)
}
