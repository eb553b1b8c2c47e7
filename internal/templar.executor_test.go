package internal

import (
	"context"
	"html"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// renderSource is a test helper that runs the full internal pipeline.
func renderSource(t *testing.T, source string, data map[string]any) string {
	t.Helper()
	executor := NewExecutor(DefaultExecutorConfig(), zap.NewNop())
	result, err := executor.Execute(context.Background(), mustParse(t, source), NewScope(data))
	require.NoError(t, err)
	return result
}

func TestExecutor_Execute_PlainText(t *testing.T) {
	assert.Equal(t, "just text", renderSource(t, "just text", nil))
}

func TestExecutor_Execute_Interpolation(t *testing.T) {
	result := renderSource(t, "Hello {{name}}!", map[string]any{"name": "Alice"})
	assert.Equal(t, "Hello Alice!", result)
}

func TestExecutor_Execute_InterpolationTypes(t *testing.T) {
	result := renderSource(t, "{{n}}|{{f}}|{{b}}", map[string]any{
		"n": 42,
		"f": 2.5,
		"b": true,
	})
	assert.Equal(t, "42|2.5|true", result)
}

func TestExecutor_Execute_MissingPathLeavesMarkerVerbatim(t *testing.T) {
	result := renderSource(t, "Hello {{name}}, your {{item}} is ready.", map[string]any{"name": "Bob"})
	assert.Equal(t, "Hello Bob, your {{item}} is ready.", result)
}

func TestExecutor_Execute_VerbatimMarkerKeepsOriginalSpacing(t *testing.T) {
	// The echoed marker is the raw source, spacing included.
	result := renderSource(t, "{{ missing.path }}", nil)
	assert.Equal(t, "{{ missing.path }}", result)
}

func TestExecutor_Execute_IfTruthyBranches(t *testing.T) {
	tests := []struct {
		name     string
		data     map[string]any
		expected string
	}{
		{"true", map[string]any{"a": true}, "Y"},
		{"false", map[string]any{"a": false}, "N"},
		{"missing", map[string]any{}, "N"},
		{"nil value", map[string]any{"a": nil}, "N"},
		{"zero", map[string]any{"a": 0}, "N"},
		{"empty string", map[string]any{"a": ""}, "N"},
		{"empty sequence", map[string]any{"a": []any{}}, "N"},
		{"non-empty string", map[string]any{"a": "x"}, "Y"},
		{"non-empty sequence", map[string]any{"a": []any{1}}, "Y"},
		{"zero uint", map[string]any{"a": uint(0)}, "N"},
		{"zero int32", map[string]any{"a": int32(0)}, "N"},
		{"zero float32", map[string]any{"a": float32(0)}, "N"},
		{"zero uint8", map[string]any{"a": uint8(0)}, "N"},
		{"nonzero uint", map[string]any{"a": uint(1)}, "Y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := renderSource(t, "{{#if a}}Y{{else}}N{{/if}}", tt.data)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestExecutor_Execute_IfWithoutElse(t *testing.T) {
	result := renderSource(t, "a{{#if missing}}X{{/if}}b", nil)
	assert.Equal(t, "ab", result)
}

func TestExecutor_Execute_EachOverMaps(t *testing.T) {
	result := renderSource(t, "{{#each items}}{{name}},{{/each}}", map[string]any{
		"items": []any{
			map[string]any{"name": "x"},
			map[string]any{"name": "y"},
		},
	})
	assert.Equal(t, "x,y,", result)
}

func TestExecutor_Execute_EachOverMapSlice(t *testing.T) {
	result := renderSource(t, "{{#each items}}{{name}},{{/each}}", map[string]any{
		"items": []map[string]any{{"name": "x"}, {"name": "y"}},
	})
	assert.Equal(t, "x,y,", result)
}

func TestExecutor_Execute_EachOverTypedMapSlice(t *testing.T) {
	// Any sequence of string-keyed maps resolves element fields unqualified,
	// not just []map[string]any.
	result := renderSource(t, "{{#each items}}{{n}},{{/each}}", map[string]any{
		"items": []map[string]int{{"n": 1}, {"n": 2}},
	})
	assert.Equal(t, "1,2,", result)
}

func TestExecutor_Execute_EachScalarElements(t *testing.T) {
	result := renderSource(t, "{{#each tags}}[{{@value}}]{{/each}}", map[string]any{
		"tags": []string{"go", "tmpl"},
	})
	assert.Equal(t, "[go][tmpl]", result)
}

func TestExecutor_Execute_EachMissingOrNonSequence(t *testing.T) {
	tests := []struct {
		name string
		data map[string]any
	}{
		{"missing key", map[string]any{}},
		{"scalar value", map[string]any{"items": 42}},
		{"string value", map[string]any{"items": "abc"}},
		{"map value", map[string]any{"items": map[string]any{"k": 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := renderSource(t, "a{{#each items}}X{{/each}}b", tt.data)
			assert.Equal(t, "ab", result)
		})
	}
}

func TestExecutor_Execute_LoopMetadata(t *testing.T) {
	result := renderSource(t, "{{#each items}}{{@index}}:{{@value}}{{#if @last}}{{else}}, {{/if}}{{/each}}", map[string]any{
		"items": []string{"a", "b", "c"},
	})
	assert.Equal(t, "0:a, 1:b, 2:c", result)
}

func TestExecutor_Execute_LoopFirstMarker(t *testing.T) {
	result := renderSource(t, "{{#each items}}{{#if @first}}>{{/if}}{{@value}}{{/each}}", map[string]any{
		"items": []string{"a", "b"},
	})
	assert.Equal(t, ">ab", result)
}

func TestExecutor_Execute_LoopScopeShadowsOuter(t *testing.T) {
	result := renderSource(t, "{{name}}:{{#each users}}{{name}},{{/each}}", map[string]any{
		"name": "outer",
		"users": []any{
			map[string]any{"name": "inner"},
		},
	})
	assert.Equal(t, "outer:inner,", result)
}

func TestExecutor_Execute_LoopFallsBackToOuterScope(t *testing.T) {
	result := renderSource(t, "{{#each users}}{{name}}@{{domain}} {{/each}}", map[string]any{
		"domain": "example.com",
		"users": []any{
			map[string]any{"name": "alice"},
			map[string]any{"name": "bob"},
		},
	})
	assert.Equal(t, "alice@example.com bob@example.com ", result)
}

func TestExecutor_Execute_NestedEachInsideIf(t *testing.T) {
	source := "{{#if show}}{{#each items}}{{name}};{{/each}}{{else}}nothing{{/if}}"
	data := map[string]any{
		"items": []any{
			map[string]any{"name": "a"},
			map[string]any{"name": "b"},
		},
	}

	data["show"] = true
	assert.Equal(t, "a;b;", renderSource(t, source, data))

	// A falsy condition suppresses the nested loop entirely.
	data["show"] = false
	assert.Equal(t, "nothing", renderSource(t, source, data))
}

func TestExecutor_Execute_NestedEachLastShadowing(t *testing.T) {
	// Each loop level binds its own @last; the inner loop shadows the outer.
	source := "{{#each rows}}{{#each cols}}{{@value}}{{#if @last}}|{{/if}}{{/each}}{{#if @last}}.{{/if}}{{/each}}"
	result := renderSource(t, source, map[string]any{
		"rows": []any{
			map[string]any{"cols": []string{"a", "b"}},
			map[string]any{"cols": []string{"c", "d"}},
		},
	})
	assert.Equal(t, "ab|cd|.", result)
}

func TestExecutor_Execute_MapStringStringElements(t *testing.T) {
	result := renderSource(t, "{{#each envs}}{{name}}={{tier}} {{/each}}", map[string]any{
		"envs": []any{
			map[string]string{"name": "dev", "tier": "free"},
			map[string]string{"name": "prod", "tier": "paid"},
		},
	})
	assert.Equal(t, "dev=free prod=paid ", result)
}

func TestExecutor_Execute_EscapeAppliesOnlyToResolvedValues(t *testing.T) {
	executor := NewExecutor(ExecutorConfig{MaxDepth: DefaultMaxDepth, Escape: html.EscapeString}, zap.NewNop())

	root := mustParse(t, "<b>{{payload}}</b> {{missing}}")
	result, err := executor.Execute(context.Background(), root, NewScope(map[string]any{
		"payload": "<script>alert(1)</script>",
	}))
	require.NoError(t, err)

	// Literal text and the verbatim-echoed marker stay unescaped.
	assert.Equal(t, "<b>&lt;script&gt;alert(1)&lt;/script&gt;</b> {{missing}}", result)
}

func TestExecutor_Execute_DeterministicOutput(t *testing.T) {
	source := "{{#each items}}{{name}}{{/each}}{{#if on}}!{{/if}}"
	data := map[string]any{
		"on":    true,
		"items": []any{map[string]any{"name": "a"}},
	}

	first := renderSource(t, source, data)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, renderSource(t, source, data))
	}
}

func TestExecutor_Execute_DoesNotMutateData(t *testing.T) {
	data := map[string]any{
		"name":  "Alice",
		"items": []any{map[string]any{"name": "x"}},
	}

	_ = renderSource(t, "{{#each items}}{{name}}{{@index}}{{/each}}{{name}}", data)

	assert.Len(t, data, 2)
	elem := data["items"].([]any)[0].(map[string]any)
	assert.Len(t, elem, 1)
	assert.NotContains(t, elem, MetaKeyIndex)
}
