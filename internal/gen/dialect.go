package gen

import (
	"fmt"
	"sort"

	"model-generator/internal/schema"
)

// Statements are the snippet lines emitted for one field. Lines use the tmpl
// syntax and are rendered against the field bindings.
type Statements struct {
	Encode []string
	Decode []string
}

// Methods holds the method wrappers a dialect renders around field
// statements. Wrappers are rendered against classname and statements.
type Methods struct {
	Encode string
	Init   string
	// Indent is prefixed to every statement line.
	Indent string
}

// Dialect describes one target language.
type Dialect interface {
	// Name returns the dialect identifier (e.g. "go", "swift").
	Name() string
	// FileName returns the output file name for a class.
	FileName(className string) string
	// Primitives returns the scalar type names the dialect holds directly.
	Primitives() schema.PrimitiveSet
	// FieldVars returns the per-field bindings. It must include
	// property_name and property_type.
	FieldVars(f schema.FieldSpec) map[string]any
	// Statements returns the snippets for a field kind.
	Statements(kind schema.Kind) Statements
	// Methods returns the method wrappers.
	Methods() Methods
	// Template returns the default class template.
	Template() string
	// Header and Imports return the default opaque header and import text.
	Header(config Config) string
	Imports(config Config) string
	// Format post-processes rendered source.
	Format(src []byte) ([]byte, error)
}

var dialects = make(map[string]Dialect)

// RegisterDialect adds a dialect to the registry.
func RegisterDialect(d Dialect) {
	dialects[d.Name()] = d
}

// LookupDialect retrieves a dialect by name.
func LookupDialect(name string) (Dialect, error) {
	d, ok := dialects[name]
	if !ok {
		return nil, fmt.Errorf("unknown dialect: %s", name)
	}

	return d, nil
}

// Dialects returns all registered dialect names, sorted.
func Dialects() []string {
	names := make([]string, 0, len(dialects))
	for name := range dialects {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
