package schema

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyClassName is returned when a class is declared without a name.
	ErrEmptyClassName = errors.New("class name is empty")
	// ErrEmptyFieldName is returned when a field lacks a wire or property name.
	ErrEmptyFieldName = errors.New("field name is empty")
	// ErrInvalidKind is returned when a field has no valid Kind.
	ErrInvalidKind = errors.New("field kind is invalid")
)

// DuplicateFieldError reports a wire-format name declared twice in one class.
type DuplicateFieldError struct {
	ClassName string
	Name      string
}

func (e *DuplicateFieldError) Error() string {
	return fmt.Sprintf("class %s: duplicate field %q", e.ClassName, e.Name)
}

// FieldSpec describes one property of a generated class.
type FieldSpec struct {
	// Name is the wire-format identifier, e.g. "custom_type_list".
	Name string
	// PropertyName is the in-source identifier, e.g. "customTypeList".
	PropertyName string
	// Kind selects declaration and encoding behavior.
	Kind Kind
	// TypeName is the scalar type for primitives and the model type for
	// references. For lists it is the element type.
	TypeName string
}

// ClassSpec describes one class to generate.
type ClassSpec struct {
	name   string
	fields []FieldSpec
	index  map[string]int
}

// NewClassSpec returns an empty class description.
func NewClassSpec(name string) (*ClassSpec, error) {
	if name == "" {
		return nil, ErrEmptyClassName
	}

	return &ClassSpec{name: name, index: make(map[string]int)}, nil
}

// ClassName returns the name of the class.
func (c *ClassSpec) ClassName() string {
	return c.name
}

// AddField appends f to the field sequence.
// A wire-name collision fails with *DuplicateFieldError and leaves c unchanged.
func (c *ClassSpec) AddField(f FieldSpec) error {
	if f.Name == "" || f.PropertyName == "" {
		return fmt.Errorf("class %s: %w", c.name, ErrEmptyFieldName)
	}

	if !f.Kind.IsValid() {
		return fmt.Errorf("class %s field %q: %w", c.name, f.Name, ErrInvalidKind)
	}

	if _, ok := c.index[f.Name]; ok {
		return &DuplicateFieldError{ClassName: c.name, Name: f.Name}
	}

	c.index[f.Name] = len(c.fields)
	c.fields = append(c.fields, f)

	return nil
}

// Fields returns the fields in declaration order. The slice must not be
// modified.
func (c *ClassSpec) Fields() []FieldSpec {
	return c.fields
}

// Field returns the field with the given wire name.
func (c *ClassSpec) Field(name string) (FieldSpec, bool) {
	i, ok := c.index[name]
	if !ok {
		return FieldSpec{}, false
	}

	return c.fields[i], true
}

// References returns the distinct model type names referenced by c, in field
// order.
func (c *ClassSpec) References() []string {
	var refs []string

	seen := make(map[string]struct{})

	for _, f := range c.fields {
		if !f.Kind.IsModel() {
			continue
		}

		if _, ok := seen[f.TypeName]; ok {
			continue
		}

		seen[f.TypeName] = struct{}{}
		refs = append(refs, f.TypeName)
	}

	return refs
}
