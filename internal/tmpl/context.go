package tmpl

import "maps"

// Fielder is implemented by values that expose named attributes to dotted
// paths.
type Fielder interface {
	Field(name string) (any, bool)
}

// Context is a scope of variable bindings. Lookups fall through to the
// parent scope; bindings made on a child are never visible to the parent.
type Context struct {
	parent *Context
	vars   map[string]any
}

// NewContext returns a root scope holding a copy of vars.
func NewContext(vars map[string]any) *Context {
	c := &Context{vars: maps.Clone(vars)}
	if c.vars == nil {
		c.vars = make(map[string]any)
	}

	return c
}

// Child returns a new scope nested in c.
func (c *Context) Child() *Context {
	return &Context{parent: c, vars: make(map[string]any)}
}

// Set binds name in this scope.
func (c *Context) Set(name string, v any) {
	c.vars[name] = v
}

// Lookup resolves name in this scope or the nearest enclosing one.
func (c *Context) Lookup(name string) (any, bool) {
	for s := c; s != nil; s = s.parent {
		if v, ok := s.vars[name]; ok {
			return v, true
		}
	}

	return nil, false
}

// resolve walks a dotted path starting in c.
func (c *Context) resolve(path []string) (any, bool) {
	v, ok := c.Lookup(path[0])
	if !ok {
		return nil, false
	}

	for _, seg := range path[1:] {
		v, ok = attr(v, seg)
		if !ok {
			return nil, false
		}
	}

	return v, true
}

func attr(v any, name string) (any, bool) {
	switch t := v.(type) {
	case map[string]any:
		res, ok := t[name]
		return res, ok
	case map[string]string:
		res, ok := t[name]
		return res, ok
	case Fielder:
		return t.Field(name)
	default:
		return nil, false
	}
}
