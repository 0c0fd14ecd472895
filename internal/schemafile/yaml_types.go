package schemafile

// Document is the root of a YAML schema document.
type Document struct {
	Version string     `yaml:"version,omitempty"`
	Classes []ClassDoc `yaml:"classes"`
}

// ClassDoc describes one class in a schema document.
type ClassDoc struct {
	Name   string     `yaml:"name"`
	Fields []FieldDoc `yaml:"fields,omitempty"`
}

// FieldDoc describes one field in a schema document.
type FieldDoc struct {
	// Name is the wire name.
	Name string `yaml:"name"`
	// Property is the property name. Derived from Name when empty.
	Property string `yaml:"property,omitempty"`
	// Type is the type spelling, e.g. "String", "CustomType" or "[CustomType]".
	Type string `yaml:"type"`
	// Kind overrides the kind classified from Type.
	Kind string `yaml:"kind,omitempty"`
}
