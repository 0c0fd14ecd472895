package tmpl

import (
	"errors"
	"fmt"
	"sync"

	"github.com/flosch/pongo2/v6"
)

// Engine renders template source against a set of bindings.
type Engine interface {
	Render(name, src string, vars map[string]any) (string, error)
}

// Strict is the native engine: unbound variables and unknown directives are
// errors.
type Strict struct {
	opts []Option
}

// NewStrict returns a Strict engine that parses with opts.
func NewStrict(opts ...Option) *Strict {
	return &Strict{opts: opts}
}

// Render implements Engine.
func (s *Strict) Render(name, src string, vars map[string]any) (string, error) {
	return Render(name, src, vars, s.opts...)
}

// Pongo renders Jinja/Django-style templates with pongo2. It accepts the full
// pongo2 language and renders unbound variables as empty text.
type Pongo struct {
	set *pongo2.TemplateSet
}

// NewPongo returns a Pongo engine with the given whitespace handling.
// Generated source must not be HTML-escaped. pongo2 only exposes
// autoescaping as a package-level default, so it is turned off here.
func NewPongo(trimBlocks, lstripBlocks bool) *Pongo {
	disableAutoescape.Do(func() { pongo2.SetAutoescape(false) })

	set := pongo2.NewSet("model-generator", pongo2.DefaultLoader)
	set.Options.TrimBlocks = trimBlocks
	set.Options.LStripBlocks = lstripBlocks

	return &Pongo{set: set}
}

var disableAutoescape sync.Once

// Render implements Engine.
func (p *Pongo) Render(name, src string, vars map[string]any) (string, error) {
	t, err := p.set.FromString(src)
	if err != nil {
		serr := &TemplateSyntaxError{Template: name, Reason: err.Error()}

		var perr *pongo2.Error
		if errors.As(err, &perr) {
			serr.Line = perr.Line
		}

		return "", serr
	}

	out, err := t.Execute(pongo2.Context(vars))
	if err != nil {
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}

	return out, nil
}
