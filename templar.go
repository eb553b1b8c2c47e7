// Package templar provides a small template-rendering library with
// variable interpolation, conditional blocks, and iteration blocks.
//
// Templar uses a marker syntax with {{ and }} delimiters:
//
//	Hello, {{user.name}}!
//
// # Basic Usage
//
// Render a template in one call:
//
//	result, err := templar.Render("Hello, {{name}}!", map[string]any{
//	    "name": "Alice",
//	})
//	// result: "Hello, Alice!"
//
// For repeated rendering, create an engine and parse once:
//
//	engine := templar.MustNew()
//	tmpl, err := engine.Parse("Hello, {{name}}!")
//	result, err := tmpl.Render(ctx, map[string]any{"name": "Alice"})
//
// # Template Syntax
//
// Variable interpolation resolves dotted paths through nested maps:
//
//	{{user.profile.name}}
//
// A path that resolves to nothing leaves the marker verbatim in the output.
// Missing data is never an error.
//
// Conditional blocks render one of two branches:
//
//	{{#if premium}}Welcome back!{{else}}Upgrade today.{{/if}}
//
// Missing values, false, zero, empty strings, and empty sequences are falsy;
// everything else is truthy.
//
// Iteration blocks render their body once per element:
//
//	{{#each items}}{{name}} ({{price}}){{#if @last}}{{else}}, {{/if}}{{/each}}
//
// Inside the body, unqualified names resolve against the current element
// first and fall back to the enclosing context. The loop binds @index,
// @first, @last, and @value (the element itself, for scalar sequences).
// Iterating a missing or non-sequence value renders the region as empty.
//
// Blocks nest arbitrarily. Every open tag needs a matching close tag of the
// same kind; violations surface as syntax errors with line/column metadata.
//
// A literal open delimiter is written with a backslash escape:
//
//	\{{not a marker}}
//
// # Configuration
//
// Customize the engine with functional options:
//
//	engine, err := templar.New(
//	    templar.WithDelimiters("<%", "%>"),
//	    templar.WithMaxDepth(32),
//	    templar.WithHTMLEscaping(),
//	    templar.WithLogger(logger),
//	)
//
// # Concurrency
//
// Rendering is pure. Engines and parsed templates are safe for concurrent
// use provided callers do not mutate the data maps during a render.
package templar
