package internal

import (
	"reflect"
	"strings"
)

// Scope resolves dotted paths against a data map with optional fallback to
// an enclosing scope. Loop iteration forks a child scope whose element data
// shadows the parent; lookups that miss the child retry the full path on the
// parent, which gives unqualified names the element-first resolution the
// each block needs.
//
// A Scope never mutates the maps it was built from.
type Scope struct {
	data   map[string]any
	parent *Scope
}

// NewScope creates a root scope over the given data map.
// A nil map behaves as an empty scope.
func NewScope(data map[string]any) *Scope {
	return &Scope{data: data}
}

// Fork creates a child scope whose data shadows this scope.
func (s *Scope) Fork(data map[string]any) *Scope {
	return &Scope{data: data, parent: s}
}

// Lookup resolves a dotted path (e.g., "user.profile.name").
// Returns the value and true if found, or nil and false otherwise.
// A value that is explicitly nil counts as absent: absence is the sentinel
// the renderer tests for, and nil carries no renderable content.
func (s *Scope) Lookup(path string) (any, bool) {
	if path == StringValueEmpty {
		return nil, false
	}

	parts := strings.Split(path, PathSeparator)
	var current any = s.data

	for _, part := range parts {
		if part == StringValueEmpty {
			continue
		}

		val, ok := lookupSegment(current, part)
		if !ok {
			// Retry the full path on the enclosing scope
			if s.parent != nil {
				return s.parent.Lookup(path)
			}
			return nil, false
		}
		current = val
	}

	if current == nil {
		if s.parent != nil {
			return s.parent.Lookup(path)
		}
		return nil, false
	}
	return current, true
}

// Has reports whether the path resolves to a value in this scope chain.
func (s *Scope) Has(path string) bool {
	_, ok := s.Lookup(path)
	return ok
}

// lookupSegment resolves a single path segment against a mapping value.
// Any string-keyed map type qualifies, matching the sequence types the
// iteration block accepts.
func lookupSegment(current any, part string) (any, bool) {
	switch v := current.(type) {
	case map[string]any:
		val, ok := v[part]
		return val, ok
	case map[string]string:
		val, ok := v[part]
		return val, ok
	default:
		rv := reflect.ValueOf(current)
		if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		key := reflect.ValueOf(part).Convert(rv.Type().Key())
		val := rv.MapIndex(key)
		if !val.IsValid() {
			return nil, false
		}
		return val.Interface(), true
	}
}
