package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScope_Lookup_SimpleKey(t *testing.T) {
	scope := NewScope(map[string]any{"name": "Alice"})

	val, ok := scope.Lookup("name")
	require.True(t, ok)
	assert.Equal(t, "Alice", val)
}

func TestScope_Lookup_NestedPath(t *testing.T) {
	scope := NewScope(map[string]any{
		"user": map[string]any{
			"profile": map[string]any{
				"name": "Bob",
			},
		},
	})

	val, ok := scope.Lookup("user.profile.name")
	require.True(t, ok)
	assert.Equal(t, "Bob", val)
}

func TestScope_Lookup_StringMap(t *testing.T) {
	scope := NewScope(map[string]any{
		"labels": map[string]string{"env": "prod"},
	})

	val, ok := scope.Lookup("labels.env")
	require.True(t, ok)
	assert.Equal(t, "prod", val)
}

func TestScope_Lookup_TypedMap(t *testing.T) {
	scope := NewScope(map[string]any{
		"counts": map[string]int{"errors": 3},
		"limits": map[string]float64{"rate": 0.5},
	})

	val, ok := scope.Lookup("counts.errors")
	require.True(t, ok)
	assert.Equal(t, 3, val)

	val, ok = scope.Lookup("limits.rate")
	require.True(t, ok)
	assert.Equal(t, 0.5, val)

	_, ok = scope.Lookup("counts.missing")
	assert.False(t, ok)
}

func TestScope_Lookup_Missing(t *testing.T) {
	scope := NewScope(map[string]any{
		"user": map[string]any{"name": "Alice"},
	})

	tests := []struct {
		name string
		path string
	}{
		{"missing top-level key", "missing"},
		{"missing nested key", "user.email"},
		{"missing intermediate segment", "account.user.name"},
		{"traversal through scalar", "user.name.first"},
		{"empty path", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			val, ok := scope.Lookup(tt.path)
			assert.False(t, ok)
			assert.Nil(t, val)
		})
	}
}

func TestScope_Lookup_ExplicitNilIsAbsent(t *testing.T) {
	scope := NewScope(map[string]any{"ghost": nil})

	_, ok := scope.Lookup("ghost")
	assert.False(t, ok)
}

func TestScope_Lookup_NilData(t *testing.T) {
	scope := NewScope(nil)

	_, ok := scope.Lookup("anything")
	assert.False(t, ok)
}

func TestScope_Fork_ChildShadowsParent(t *testing.T) {
	parent := NewScope(map[string]any{"name": "outer", "city": "Berlin"})
	child := parent.Fork(map[string]any{"name": "inner"})

	val, ok := child.Lookup("name")
	require.True(t, ok)
	assert.Equal(t, "inner", val)

	// Misses in the child fall back to the parent
	val, ok = child.Lookup("city")
	require.True(t, ok)
	assert.Equal(t, "Berlin", val)

	// The parent is unaffected by the fork
	val, ok = parent.Lookup("name")
	require.True(t, ok)
	assert.Equal(t, "outer", val)
}

func TestScope_Fork_FullPathFallback(t *testing.T) {
	// A path whose first segment exists in the child but dead-ends there
	// retries the full path on the parent.
	parent := NewScope(map[string]any{
		"user": map[string]any{"email": "alice@example.com"},
	})
	child := parent.Fork(map[string]any{
		"user": map[string]any{"name": "Alice"},
	})

	val, ok := child.Lookup("user.email")
	require.True(t, ok)
	assert.Equal(t, "alice@example.com", val)
}

func TestScope_Fork_GrandparentFallback(t *testing.T) {
	root := NewScope(map[string]any{"company": "vAudience"})
	mid := root.Fork(map[string]any{"team": "core"})
	leaf := mid.Fork(map[string]any{"name": "Alice"})

	val, ok := leaf.Lookup("company")
	require.True(t, ok)
	assert.Equal(t, "vAudience", val)
}

func TestScope_Has(t *testing.T) {
	scope := NewScope(map[string]any{"present": 1})

	assert.True(t, scope.Has("present"))
	assert.False(t, scope.Has("absent"))
}
