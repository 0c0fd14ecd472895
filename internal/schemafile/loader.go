package schemafile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"model-generator/internal/diagnostic"
	"model-generator/internal/naming"
	"model-generator/internal/schema"
)

// Diagnostic codes reported by the loaders.
const (
	CodeInvalidClass   = "invalid_class"
	CodeDuplicateClass = "duplicate_class"
	CodeInvalidField   = "invalid_field"
	CodeDuplicateField = "duplicate_field"
	CodeUnsupported    = "unsupported_type"
	CodeKindMismatch   = "kind_mismatch"
	CodeUnknownModel   = "unknown_model"
	CodeUnmapped       = "unmapped_property"
)

// LoadFile loads and parses a YAML schema document from the given path.
func LoadFile(path string, primitives schema.PrimitiveSet) ([]*schema.ClassSpec, *diagnostic.Diagnostics, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	return Parse(data, primitives)
}

// Parse parses a YAML schema document into class specs.
//
// The returned error is set only when the document is not valid YAML.
// Invalid classes and fields are skipped and reported as diagnostics.
func Parse(data []byte, primitives schema.PrimitiveSet) ([]*schema.ClassSpec, *diagnostic.Diagnostics, error) {
	var doc Document

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("failed to parse schema YAML: %w", err)
	}

	classes, diags := Build(&doc, primitives)

	return classes, diags, nil
}

// Build converts a decoded document into class specs.
func Build(doc *Document, primitives schema.PrimitiveSet) ([]*schema.ClassSpec, *diagnostic.Diagnostics) {
	diags := &diagnostic.Diagnostics{}
	classes := make([]*schema.ClassSpec, 0, len(doc.Classes))
	seen := make(map[string]struct{}, len(doc.Classes))

	for _, cd := range doc.Classes {
		class, err := schema.NewClassSpec(cd.Name)
		if err != nil {
			diags.AddError(CodeInvalidClass, err.Error(), cd.Name, "")
			continue
		}

		if _, dup := seen[cd.Name]; dup {
			diags.AddError(CodeDuplicateClass, "class is defined more than once", cd.Name, "")
			continue
		}

		seen[cd.Name] = struct{}{}

		for _, fd := range cd.Fields {
			f, ok := buildField(cd.Name, fd, primitives, diags)
			if !ok {
				continue
			}

			if err := class.AddField(f); err != nil {
				diags.AddError(CodeDuplicateField, err.Error(), cd.Name, fd.Name)
			}
		}

		classes = append(classes, class)
	}

	for _, c := range classes {
		for _, ref := range c.References() {
			if _, ok := seen[ref]; !ok {
				diags.AddWarning(CodeUnknownModel,
					fmt.Sprintf("model %s is referenced but not defined in this document", ref), c.ClassName(), "")
			}
		}
	}

	return classes, diags
}

func buildField(
	className string,
	fd FieldDoc,
	primitives schema.PrimitiveSet,
	diags *diagnostic.Diagnostics,
) (schema.FieldSpec, bool) {
	if fd.Name == "" {
		diags.AddError(CodeInvalidField, "field has no name", className, fd.Property)
		return schema.FieldSpec{}, false
	}

	kind, typeName, err := schema.Classify(fd.Type, primitives)
	if err != nil {
		diags.AddError(CodeUnsupported, err.Error(), className, fd.Name)
		return schema.FieldSpec{}, false
	}

	if fd.Kind != "" {
		explicit, err := schema.ParseKind(fd.Kind)
		if err != nil {
			diags.AddError(CodeInvalidField, err.Error(), className, fd.Name)
			return schema.FieldSpec{}, false
		}

		if explicit != kind {
			// Primitive/model membership is dialect dependent, so an explicit
			// kind wins unless it changes list-ness.
			if (explicit == schema.KindModelRefList) != (kind == schema.KindModelRefList) {
				diags.AddError(CodeKindMismatch,
					fmt.Sprintf("kind %s does not match type %q", explicit, fd.Type), className, fd.Name)

				return schema.FieldSpec{}, false
			}

			diags.AddWarning(CodeKindMismatch,
				fmt.Sprintf("type %q classified as %s, using %s", fd.Type, kind, explicit), className, fd.Name)

			kind = explicit
		}
	}

	property := fd.Property
	if property == "" {
		property = naming.Camel(fd.Name)
	}

	return schema.FieldSpec{
		Name:         fd.Name,
		PropertyName: property,
		Kind:         kind,
		TypeName:     typeName,
	}, true
}

// FromClasses builds a schema document describing classes.
func FromClasses(classes []*schema.ClassSpec) *Document {
	doc := &Document{Version: "1", Classes: make([]ClassDoc, 0, len(classes))}

	for _, c := range classes {
		cd := ClassDoc{Name: c.ClassName()}

		for _, f := range c.Fields() {
			typeName := f.TypeName
			if f.Kind == schema.KindModelRefList {
				typeName = "[" + typeName + "]"
			}

			cd.Fields = append(cd.Fields, FieldDoc{
				Name:     f.Name,
				Property: f.PropertyName,
				Type:     typeName,
				Kind:     naming.Snake(f.Kind.String()),
			})
		}

		doc.Classes = append(doc.Classes, cd)
	}

	return doc
}

// Marshal serializes classes to a YAML schema document.
func Marshal(classes []*schema.ClassSpec) ([]byte, error) {
	return yaml.Marshal(FromClasses(classes))
}

// WriteFile writes classes as a YAML schema document to the given path.
func WriteFile(classes []*schema.ClassSpec, path string) error {
	data, err := Marshal(classes)
	if err != nil {
		return fmt.Errorf("failed to marshal schema: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write schema file %s: %w", path, err)
	}

	return nil
}
