package schemafile

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"model-generator/internal/diagnostic"
	"model-generator/internal/schema"
)

var (
	// ErrNoClass is returned when a Swift source declares no class.
	ErrNoClass = errors.New("no class declaration found")
	// ErrNoProperties is returned when a Swift class has no mapped properties.
	ErrNoProperties = errors.New("no mapped public properties found")
)

var (
	swiftClassRe   = regexp.MustCompile(`(?m)^\s*(?:(?:public|open|final)\s+)*class\s+(\w+)`)
	swiftVarRe     = regexp.MustCompile(`(?m)^\s*public\s+var\s+(\w+)\s*:\s*([^=\n{]+?)\s*$`)
	swiftImportRe  = regexp.MustCompile(`(?m)^import\s+.+$`)
	swiftMappingRe = regexp.MustCompile(`(?m)nillableDictionary\["([^"]+)"\]\s*=\s*self\.(\w+)`)
)

// SwiftModel is a class recovered from a swagger-codegen Swift model file.
type SwiftModel struct {
	Class *schema.ClassSpec
	// Imports are the file's import lines in source order.
	Imports []string
}

// LoadSwiftFile reads and parses a Swift model file.
func LoadSwiftFile(path string) (*SwiftModel, *diagnostic.Diagnostics, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read swift file %s: %w", path, err)
	}

	return ParseSwift(data)
}

// ParseSwift extracts a class spec from Swift model source.
//
// Properties come from "public var name: Type?" declarations and wire names
// from the nillableDictionary assignments of encodeToJSON. Fields keep the
// order of those assignments. A property without an assignment, or an
// assignment without a property, is skipped with a warning.
func ParseSwift(src []byte) (*SwiftModel, *diagnostic.Diagnostics, error) {
	m := swiftClassRe.FindSubmatch(src)
	if m == nil {
		return nil, nil, ErrNoClass
	}

	className := string(m[1])

	class, err := schema.NewClassSpec(className)
	if err != nil {
		return nil, nil, err
	}

	diags := &diagnostic.Diagnostics{}

	types := make(map[string]string)

	var order []string

	for _, v := range swiftVarRe.FindAllSubmatch(src, -1) {
		name := string(v[1])
		if _, dup := types[name]; !dup {
			order = append(order, name)
		}

		types[name] = string(v[2])
	}

	mapped := make(map[string]struct{})

	for _, a := range swiftMappingRe.FindAllSubmatch(src, -1) {
		key, property := string(a[1]), string(a[2])

		typeName, ok := types[property]
		if !ok {
			diags.AddWarning(CodeUnmapped,
				fmt.Sprintf("key %q is assigned from undeclared property", key), className, property)

			continue
		}

		mapped[property] = struct{}{}

		kind, elem, err := schema.Classify(typeName, schema.SwiftPrimitives)
		if err != nil {
			diags.AddError(CodeUnsupported, err.Error(), className, property)
			continue
		}

		err = class.AddField(schema.FieldSpec{
			Name:         key,
			PropertyName: property,
			Kind:         kind,
			TypeName:     elem,
		})
		if err != nil {
			diags.AddError(CodeDuplicateField, err.Error(), className, property)
		}
	}

	for _, name := range order {
		if _, ok := mapped[name]; !ok {
			diags.AddWarning(CodeUnmapped, "property has no JSON key", className, name)
		}
	}

	if len(class.Fields()) == 0 {
		return nil, diags, fmt.Errorf("%s: %w", className, ErrNoProperties)
	}

	var imports []string
	for _, line := range swiftImportRe.FindAll(src, -1) {
		imports = append(imports, strings.TrimSpace(string(line)))
	}

	return &SwiftModel{Class: class, Imports: imports}, diags, nil
}
