package gen

import (
	"model-generator/internal/schema"
)

func init() {
	RegisterDialect(&swiftDialect{template: mustTemplate("swift.tmpl")})
}

// swiftTypes maps portable scalar names to Swift types.
var swiftTypes = map[string]string{
	"string":  "String",
	"boolean": "Bool",
	"integer": "Int",
	"number":  "Double",
}

var swiftStatements = map[schema.Kind]Statements{
	schema.KindPrimitive: {
		Encode: []string{
			"if let {{ property_name }} = self.{{ property_name }} {",
			"    dictionary[{{ quoted_name }}] = {{ property_name }} as AnyObject",
			"}",
		},
		Decode: []string{
			"if let {{ property_name }}Val = representation.valueForKeyPath({{ quoted_name }}) as? {{ type_name }} {",
			"    self.{{ property_name }} = {{ property_name }}Val",
			"}",
		},
	},
	schema.KindModelRef: {
		Encode: []string{
			"if let {{ property_name }} = self.{{ property_name }} {",
			"    dictionary[{{ quoted_name }}] = {{ property_name }}.encodeToJSON()",
			"}",
		},
		Decode: []string{
			"if let {{ property_name }}Val = representation.valueForKeyPath({{ quoted_name }}) as? AnyObject {",
			"    self.{{ property_name }} = {{ type_name }}(response: response, representation: {{ property_name }}Val)",
			"}",
		},
	},
	schema.KindModelRefList: {
		Encode: []string{
			"if let {{ property_name }} = self.{{ property_name }} {",
			"    dictionary[{{ quoted_name }}] = {{ property_name }}.map { $0.encodeToJSON() } as AnyObject",
			"}",
		},
		Decode: []string{
			"if let {{ property_name }}Val = representation.valueForKeyPath({{ quoted_name }}) as? [AnyObject] {",
			"    self.{{ property_name }} = {{ property_name }}Val.flatMap { {{ type_name }}(response: response, representation: $0) }",
			"}",
		},
	},
}

const (
	swiftEncodeMethod = `// MARK: JSONEncodable
    func encodeToJSON() -> AnyObject {
        var dictionary = [String: AnyObject]()
{{ statements }}
        return dictionary as AnyObject
    }`

	swiftInitMethod = `// MARK: ResponseObjectSerializable
    required public init?(response: NSHTTPURLResponse, representation: AnyObject) {
{{ statements }}
    }`
)

type swiftDialect struct {
	template string
}

func (d *swiftDialect) Name() string {
	return "swift"
}

func (d *swiftDialect) FileName(className string) string {
	return className + ".swift"
}

func (d *swiftDialect) Primitives() schema.PrimitiveSet {
	return schema.SwiftPrimitives.Union(schema.PortablePrimitives)
}

func (d *swiftDialect) FieldVars(f schema.FieldSpec) map[string]any {
	t := f.TypeName
	if s, ok := swiftTypes[t]; ok {
		t = s
	}

	propertyType := t
	if f.Kind == schema.KindModelRefList {
		propertyType = "[" + t + "]"
	}

	return map[string]any{
		"property_name": f.PropertyName,
		"property_type": propertyType,
		"type_name":     t,
	}
}

func (d *swiftDialect) Statements(kind schema.Kind) Statements {
	return swiftStatements[kind]
}

func (d *swiftDialect) Methods() Methods {
	return Methods{Encode: swiftEncodeMethod, Init: swiftInitMethod, Indent: "        "}
}

func (d *swiftDialect) Template() string {
	return d.template
}

func (d *swiftDialect) Header(Config) string {
	return "// Generated by model-generator. DO NOT EDIT."
}

func (d *swiftDialect) Imports(Config) string {
	return "import Foundation"
}

func (d *swiftDialect) Format(src []byte) ([]byte, error) {
	return src, nil
}
