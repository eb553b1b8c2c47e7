package templar

import (
	"github.com/itsatony/go-templar/internal"
)

// Context provides read access to the data supplied to a render call.
// It supports dot-notation path resolution (e.g., "user.profile.name") and
// hierarchical scoping: a child context shadows its parent, and lookups that
// miss the child fall back to the parent. The renderer never mutates the
// underlying maps.
type Context struct {
	data  map[string]any
	scope *internal.Scope
}

// NewContext creates a new context over the given data map.
// If data is nil, an empty map is used.
func NewContext(data map[string]any) *Context {
	if data == nil {
		data = make(map[string]any)
	}
	return &Context{
		data:  data,
		scope: internal.NewScope(data),
	}
}

// Get retrieves a value by dot-notation path (e.g., "user.profile.name").
// Returns the value and true if found, or nil and false if not found.
func (c *Context) Get(path string) (any, bool) {
	return c.scope.Lookup(path)
}

// GetString retrieves a string value by path.
// Returns empty string if not found or not a string.
func (c *Context) GetString(path string) string {
	val, ok := c.Get(path)
	if !ok {
		return ""
	}
	if s, ok := val.(string); ok {
		return s
	}
	return ""
}

// GetDefault retrieves a value by path with a fallback default.
func (c *Context) GetDefault(path string, defaultVal any) any {
	val, ok := c.Get(path)
	if !ok {
		return defaultVal
	}
	return val
}

// GetStringDefault retrieves a string value with a fallback default.
func (c *Context) GetStringDefault(path, defaultVal string) string {
	val, ok := c.Get(path)
	if !ok {
		return defaultVal
	}
	if s, ok := val.(string); ok {
		return s
	}
	return defaultVal
}

// Has checks if a value exists at the given path.
func (c *Context) Has(path string) bool {
	_, ok := c.Get(path)
	return ok
}

// Child creates a child context whose data shadows this context.
func (c *Context) Child(data map[string]any) *Context {
	if data == nil {
		data = make(map[string]any)
	}
	return &Context{
		data:  data,
		scope: c.scope.Fork(data),
	}
}

// Data returns a copy of the context's direct data (not including parents).
func (c *Context) Data() map[string]any {
	result := make(map[string]any, len(c.data))
	for k, v := range c.data {
		result[k] = v
	}
	return result
}
