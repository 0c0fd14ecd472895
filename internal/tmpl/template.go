package tmpl

import (
	"fmt"
	"reflect"
	"strings"
)

type options struct {
	trimBlocks   bool
	lstripBlocks bool
	hasDefault   bool
	def          string
}

// Option configures parsing and rendering.
type Option func(*options)

// WithTrimBlocks removes the first newline after a block tag.
func WithTrimBlocks() Option {
	return func(o *options) { o.trimBlocks = true }
}

// WithLstripBlocks strips spaces and tabs from the start of a line up to a
// block tag.
func WithLstripBlocks() Option {
	return func(o *options) { o.lstripBlocks = true }
}

// WithDefault renders s in place of unbound variables instead of failing.
func WithDefault(s string) Option {
	return func(o *options) {
		o.hasDefault = true
		o.def = s
	}
}

// Template is a parsed template. It is immutable and safe for concurrent use.
type Template struct {
	name  string
	nodes []node
	opts  options
}

// Parse parses src. name is used in error messages only.
func Parse(name, src string, opts ...Option) (*Template, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	tokens, err := lex(name, src, o)
	if err != nil {
		return nil, err
	}

	p := &parser{name: name, tokens: tokens}

	nodes, err := p.parse(nil)
	if err != nil {
		return nil, err
	}

	return &Template{name: name, nodes: nodes, opts: o}, nil
}

// Name returns the template name.
func (t *Template) Name() string {
	return t.name
}

// Render renders t against ctx. On failure no text is returned.
func (t *Template) Render(ctx *Context) (string, error) {
	if ctx == nil {
		ctx = NewContext(nil)
	}

	var b strings.Builder
	if err := t.exec(&b, t.nodes, ctx); err != nil {
		return "", err
	}

	return b.String(), nil
}

// Render parses src and renders it against vars.
func Render(name, src string, vars map[string]any, opts ...Option) (string, error) {
	t, err := Parse(name, src, opts...)
	if err != nil {
		return "", err
	}

	return t.Render(NewContext(vars))
}

func (t *Template) exec(b *strings.Builder, nodes []node, ctx *Context) error {
	for _, n := range nodes {
		switch n := n.(type) {
		case textNode:
			b.WriteString(n.text)
		case varNode:
			v, ok := ctx.resolve(n.path)
			if !ok {
				if !t.opts.hasDefault {
					return &UnboundVariableError{Template: t.name, Name: n.expr, Line: n.line}
				}

				b.WriteString(t.opts.def)

				continue
			}

			b.WriteString(stringify(v))
		case forNode:
			if err := t.execFor(b, n, ctx); err != nil {
				return err
			}
		}
	}

	return nil
}

func (t *Template) execFor(b *strings.Builder, n forNode, ctx *Context) error {
	v, ok := ctx.resolve(n.coll)
	if !ok {
		return &UnboundVariableError{Template: t.name, Name: n.collExpr, Line: n.line}
	}

	items, ok := iterate(v)
	if !ok {
		return &NotIterableError{Template: t.name, Name: n.collExpr, Line: n.line, Type: fmt.Sprintf("%T", v)}
	}

	for i, item := range items {
		scope := ctx.Child()
		scope.Set(n.varName, item)
		scope.Set("loop", map[string]any{
			"index":  i + 1,
			"index0": i,
			"first":  i == 0,
			"last":   i == len(items)-1,
			"length": len(items),
		})

		if err := t.exec(b, n.body, scope); err != nil {
			return err
		}
	}

	return nil
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(v)
	}
}

// iterate returns the elements of a slice or array. Maps are rejected since
// their order is not stable.
func iterate(v any) ([]any, bool) {
	switch t := v.(type) {
	case nil:
		return nil, true
	case []any:
		return t, true
	case []map[string]any:
		res := make([]any, len(t))
		for i := range t {
			res[i] = t[i]
		}

		return res, true
	case []string:
		res := make([]any, len(t))
		for i := range t {
			res[i] = t[i]
		}

		return res, true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}

	res := make([]any, rv.Len())
	for i := range res {
		res[i] = rv.Index(i).Interface()
	}

	return res, true
}
