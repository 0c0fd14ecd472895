package gen

import (
	"errors"
	"fmt"
	"maps"
	"strconv"
	"strings"

	"model-generator/internal/schema"
	"model-generator/internal/tmpl"
)

// Config holds configuration for code generation.
type Config struct {
	// Dialect is the target language name.
	Dialect string
	// PackageName is the Go package of generated files.
	PackageName string
	// RuntimeImport is the import path of the encodable package.
	RuntimeImport string
	// Header overrides the dialect's default header text.
	Header string
	// Imports overrides the dialect's default import text.
	Imports string
	// Template overrides the dialect's default class template.
	Template string
	// OutputDir is where generated files go. Used for debug sidecars only.
	OutputDir string
	// Format runs the dialect formatter over rendered source.
	Format bool
}

// DefaultConfig returns the default generator configuration.
func DefaultConfig() Config {
	return Config{
		Dialect:       "go",
		PackageName:   "models",
		RuntimeImport: DefaultRuntimeImport,
		Format:        true,
	}
}

// Generator renders classes for one dialect.
// A Generator holds no mutable state and may be shared between goroutines.
type Generator struct {
	config  Config
	dialect Dialect
	engine  tmpl.Engine
}

// DefaultEngine returns the strict engine configured the way the built-in
// templates expect.
func DefaultEngine() tmpl.Engine {
	return tmpl.NewStrict(tmpl.WithTrimBlocks(), tmpl.WithLstripBlocks())
}

// NewGenerator creates a Generator. A nil engine selects DefaultEngine.
func NewGenerator(config Config, engine tmpl.Engine) (*Generator, error) {
	d, err := LookupDialect(config.Dialect)
	if err != nil {
		return nil, err
	}

	if engine == nil {
		engine = DefaultEngine()
	}

	return &Generator{config: config, dialect: d, engine: engine}, nil
}

// Dialect returns the generator's dialect.
func (g *Generator) Dialect() Dialect {
	return g.dialect
}

// GeneratedFile represents a generated source file.
type GeneratedFile struct {
	// ClassName is the class rendered into the file.
	ClassName string
	// Filename is the name of the file (e.g., "example_class.go").
	Filename string
	// Content is the generated source.
	Content []byte
}

// Render renders class with the given class template. Errors from the
// template engine are returned unchanged.
func (g *Generator) Render(class *schema.ClassSpec, template string) (string, error) {
	vars, err := g.Bindings(class)
	if err != nil {
		return "", err
	}

	return g.engine.Render(class.ClassName(), template, vars)
}

// Bindings returns the template context for class.
func (g *Generator) Bindings(class *schema.ClassSpec) (map[string]any, error) {
	fields := class.Fields()
	varList := make([]any, 0, len(fields))

	var encode, decode []string

	properties := make(map[string]string, len(fields))

	for _, f := range fields {
		vars := g.fieldVars(f)
		varList = append(varList, vars)

		property, _ := vars["property_name"].(string)
		if other, ok := properties[property]; ok {
			return nil, &PropertyConflictError{
				ClassName: class.ClassName(),
				Property:  property,
				Fields:    [2]string{other, f.Name},
			}
		}

		properties[property] = f.Name

		st := g.dialect.Statements(f.Kind)

		lines, err := renderLines(class.ClassName(), st.Encode, vars)
		if err != nil {
			return nil, fmt.Errorf("encoding statements for %s.%s: %w", class.ClassName(), f.Name, err)
		}

		encode = append(encode, lines...)

		lines, err = renderLines(class.ClassName(), st.Decode, vars)
		if err != nil {
			return nil, fmt.Errorf("init statements for %s.%s: %w", class.ClassName(), f.Name, err)
		}

		decode = append(decode, lines...)
	}

	methods := g.dialect.Methods()

	encodeMethod, err := renderMethod(class.ClassName(), methods.Encode, methods.Indent, encode)
	if err != nil {
		return nil, fmt.Errorf("encode method for %s: %w", class.ClassName(), err)
	}

	initMethod, err := renderMethod(class.ClassName(), methods.Init, methods.Indent, decode)
	if err != nil {
		return nil, fmt.Errorf("init method for %s: %w", class.ClassName(), err)
	}

	header := g.config.Header
	if header == "" {
		header = g.dialect.Header(g.config)
	}

	imports := g.config.Imports
	if imports == "" {
		imports = g.dialect.Imports(g.config)
	}

	return map[string]any{
		"classname":             class.ClassName(),
		"header":                header,
		"imports":               imports,
		"var_list":              varList,
		"required_init_method":  initMethod,
		"encode_to_json_method": encodeMethod,
	}, nil
}

func (g *Generator) fieldVars(f schema.FieldSpec) map[string]any {
	vars := map[string]any{
		"name":          f.Name,
		"quoted_name":   strconv.Quote(f.Name),
		"property_name": f.PropertyName,
		"type_name":     f.TypeName,
		"kind":          f.Kind.String(),
	}

	maps.Copy(vars, g.dialect.FieldVars(f))

	return vars
}

// renderLines renders each snippet line against vars.
func renderLines(name string, lines []string, vars map[string]any) ([]string, error) {
	res := make([]string, 0, len(lines))

	for _, line := range lines {
		out, err := tmpl.Render(name, line, vars)
		if err != nil {
			return nil, err
		}

		res = append(res, out)
	}

	return res, nil
}

func renderMethod(className, wrapper, indent string, lines []string) (string, error) {
	indented := make([]string, len(lines))
	for i, line := range lines {
		indented[i] = indent + line
	}

	return tmpl.Render(className, wrapper, map[string]any{
		"classname":  className,
		"statements": strings.Join(indented, "\n"),
	})
}

// Generate renders every class with the configured or default template.
// Files are returned in dependency order: referenced models come first.
func (g *Generator) Generate(classes []*schema.ClassSpec) ([]GeneratedFile, error) {
	template := g.config.Template
	if template == "" {
		template = g.dialect.Template()
	}

	if err := g.checkClasses(classes); err != nil {
		return nil, err
	}

	files := make([]GeneratedFile, 0, len(classes))

	for _, i := range orderClasses(classes) {
		file, err := g.generateClass(classes[i], template)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", classes[i].ClassName(), err)
		}

		files = append(files, *file)
	}

	return files, nil
}

// ErrDuplicateClass is returned by Generate when two classes share a name or
// would be written to the same file.
var ErrDuplicateClass = errors.New("duplicate class")

// PropertyConflictError reports two fields of a class that the dialect maps
// to the same property name.
type PropertyConflictError struct {
	ClassName string
	Property  string
	Fields    [2]string
}

func (e *PropertyConflictError) Error() string {
	return fmt.Sprintf("class %s: fields %q and %q both map to property %s",
		e.ClassName, e.Fields[0], e.Fields[1], e.Property)
}

func (g *Generator) checkClasses(classes []*schema.ClassSpec) error {
	names := make(map[string]struct{}, len(classes))
	files := make(map[string]string, len(classes))

	for _, c := range classes {
		name := c.ClassName()
		if _, ok := names[name]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateClass, name)
		}

		names[name] = struct{}{}

		file := g.dialect.FileName(name)
		if other, ok := files[file]; ok {
			return fmt.Errorf("%w: %s and %s both generate %s", ErrDuplicateClass, other, name, file)
		}

		files[file] = name
	}

	return nil
}

// ErrFormat is wrapped by errors from the dialect formatter.
var ErrFormat = errors.New("formatting code")

func (g *Generator) generateClass(class *schema.ClassSpec, template string) (*GeneratedFile, error) {
	out, err := g.Render(class, template)
	if err != nil {
		return nil, err
	}

	file := &GeneratedFile{
		ClassName: class.ClassName(),
		Filename:  g.dialect.FileName(class.ClassName()),
		Content:   []byte(out),
	}

	if !g.config.Format {
		return file, nil
	}

	formatted, err := g.dialect.Format(file.Content)
	if err != nil {
		// Best-effort sidecar to aid debugging; the unformatted code is also
		// returned with the error.
		if g.config.OutputDir != "" {
			_ = writeDebugUnformatted(g.config.OutputDir, file.Filename, file.Content)
		}

		return file, fmt.Errorf("%w: %w (unformatted code returned)", ErrFormat, err)
	}

	file.Content = formatted

	return file, nil
}
