package tmpl

import "fmt"

// UnboundVariableError reports a variable that is not bound in the context.
type UnboundVariableError struct {
	Template string
	Name     string
	Line     int
}

func (e *UnboundVariableError) Error() string {
	return fmt.Sprintf("template %s:%d: unbound variable %q", e.Template, e.Line, e.Name)
}

// TemplateSyntaxError reports a malformed template. Directive holds the
// offending tag contents.
type TemplateSyntaxError struct {
	Template  string
	Directive string
	Line      int
	Reason    string
}

func (e *TemplateSyntaxError) Error() string {
	if e.Directive == "" {
		return fmt.Sprintf("template %s:%d: %s", e.Template, e.Line, e.Reason)
	}

	return fmt.Sprintf("template %s:%d: %s: %q", e.Template, e.Line, e.Reason, e.Directive)
}

// NotIterableError reports a for loop over a value that is not a sequence.
type NotIterableError struct {
	Template string
	Name     string
	Line     int
	Type     string
}

func (e *NotIterableError) Error() string {
	return fmt.Sprintf("template %s:%d: %q is not iterable (%s)", e.Template, e.Line, e.Name, e.Type)
}
