// Package tmpl renders class templates.
//
// The strict engine understands two constructs:
//
//	{{ name }}                       variable substitution, dotted paths allowed
//	{% for x in items %}...{% endfor %}  iteration over a sequence
//
// Each iteration binds x (and loop) in a child context; bindings never leak
// back to the enclosing scope. Unbound variables fail with
// *UnboundVariableError unless a default is configured, and malformed
// templates fail with *TemplateSyntaxError before anything is rendered.
//
// A lenient, Jinja-compatible backend built on pongo2 is also available
// through the Engine interface.
package tmpl
