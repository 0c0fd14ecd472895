package analyze

import (
	"fmt"
	"go/types"
	"reflect"
	"strings"

	"golang.org/x/tools/go/packages"

	"model-generator/internal/diagnostic"
	"model-generator/internal/naming"
	"model-generator/internal/schema"
	"model-generator/internal/schemafile"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analyzer loads Go packages and converts their structs to class specs.
type Analyzer struct {
	// Dir is the directory patterns are resolved in. Empty means the
	// current directory.
	Dir string
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(dir string) *Analyzer {
	return &Analyzer{Dir: dir}
}

// LoadPackages loads the packages matching patterns and returns one class
// per exported struct type, in package then name order. Patterns are
// standard Go package patterns (e.g., "./models", "example.com/api/...").
func (a *Analyzer) LoadPackages(patterns ...string) ([]*schema.ClassSpec, *diagnostic.Diagnostics, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  a.Dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, nil, fmt.Errorf("package errors: %v", errs)
	}

	diags := &diagnostic.Diagnostics{}
	seen := make(map[string]string)

	local := make(map[*types.Package]bool, len(pkgs))
	for _, pkg := range pkgs {
		local[pkg.Types] = true
	}

	var classes []*schema.ClassSpec

	for _, pkg := range pkgs {
		scope := pkg.Types.Scope()

		for _, name := range scope.Names() {
			typeName, ok := scope.Lookup(name).(*types.TypeName)
			if !ok || !typeName.Exported() || typeName.IsAlias() {
				continue
			}

			st, ok := typeName.Type().Underlying().(*types.Struct)
			if !ok {
				continue
			}

			if prev, dup := seen[name]; dup {
				diags.AddError(schemafile.CodeDuplicateClass,
					fmt.Sprintf("also defined in %s", prev), name, "")

				continue
			}

			seen[name] = pkg.PkgPath

			class, err := buildClass(name, st, local, diags)
			if err != nil {
				return nil, nil, err
			}

			classes = append(classes, class)
		}
	}

	return classes, diags, nil
}

// buildClass converts struct fields. Unexported fields and fields tagged
// json:"-" are dropped silently; unsupported fields with a warning.
func buildClass(
	name string,
	st *types.Struct,
	local map[*types.Package]bool,
	diags *diagnostic.Diagnostics,
) (*schema.ClassSpec, error) {
	class, err := schema.NewClassSpec(name)
	if err != nil {
		return nil, err
	}

	for i := 0; i < st.NumFields(); i++ {
		field := st.Field(i)

		if !field.Exported() {
			continue
		}

		if field.Embedded() {
			diags.AddWarning(schemafile.CodeUnsupported, "embedded fields are not supported", name, field.Name())
			continue
		}

		wireName, ok := jsonName(field.Name(), reflect.StructTag(st.Tag(i)))
		if !ok {
			continue
		}

		kind, typeName, ok := classify(field.Type(), local)
		if !ok {
			diags.AddWarning(schemafile.CodeUnsupported,
				fmt.Sprintf("unsupported field type %s", types.TypeString(field.Type(), types.RelativeTo(field.Pkg()))),
				name, field.Name())

			continue
		}

		err := class.AddField(schema.FieldSpec{
			Name:         wireName,
			PropertyName: naming.Camel(field.Name()),
			Kind:         kind,
			TypeName:     typeName,
		})
		if err != nil {
			diags.AddError(schemafile.CodeDuplicateField, err.Error(), name, field.Name())
		}
	}

	return class, nil
}

// jsonName returns the wire name from the json tag, or the field name when
// the tag has none. ok is false for fields tagged json:"-".
func jsonName(fieldName string, tag reflect.StructTag) (string, bool) {
	value, has := tag.Lookup("json")
	if !has {
		return fieldName, true
	}

	if value == "-" {
		return "", false
	}

	if n, _, _ := strings.Cut(value, ","); n != "" {
		return n, true
	}

	return fieldName, true
}

// classify maps a Go field type to a Kind and type name. Pointers are
// optional markers and are looked through. Model references must point at
// structs of the loaded packages.
func classify(t types.Type, local map[*types.Package]bool) (schema.Kind, string, bool) {
	t = deref(t)

	if s, ok := t.Underlying().(*types.Slice); ok {
		if name, ok := structName(deref(s.Elem()), local); ok {
			return schema.KindModelRefList, name, true
		}

		return 0, "", false
	}

	if name, ok := structName(t, local); ok {
		return schema.KindModelRef, name, true
	}

	if b, ok := t.Underlying().(*types.Basic); ok && isScalar(b) {
		return schema.KindPrimitive, b.Name(), true
	}

	return 0, "", false
}

func deref(t types.Type) types.Type {
	if p, ok := t.(*types.Pointer); ok {
		return p.Elem()
	}

	return t
}

// structName returns the name of a named struct type declared in one of
// the local packages.
func structName(t types.Type, local map[*types.Package]bool) (string, bool) {
	named, ok := t.(*types.Named)
	if !ok || !local[named.Obj().Pkg()] {
		return "", false
	}

	if _, ok := named.Underlying().(*types.Struct); !ok {
		return "", false
	}

	return named.Obj().Name(), true
}

func isScalar(b *types.Basic) bool {
	info := b.Info()

	return info&types.IsUntyped == 0 &&
		info&(types.IsString|types.IsBoolean|types.IsInteger|types.IsFloat) != 0 &&
		b.Kind() != types.Uintptr
}
