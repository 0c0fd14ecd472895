package gen

import (
	"go/format"

	"model-generator/internal/naming"
	"model-generator/internal/schema"
)

// DefaultRuntimeImport is the import path of the encodable runtime package.
const DefaultRuntimeImport = "model-generator/encodable"

func init() {
	RegisterDialect(&goDialect{template: mustTemplate("go.tmpl")})
}

// goTypes maps Swift and portable scalar names to Go types.
var goTypes = map[string]string{
	"String":    "string",
	"Character": "string",
	"Bool":      "bool",
	"Int":       "int",
	"UInt":      "uint",
	"Float":     "float32",
	"Double":    "float64",
	"string":    "string",
	"boolean":   "bool",
	"integer":   "int64",
	"number":    "float64",
}

var goStatements = map[schema.Kind]Statements{
	schema.KindPrimitive: {
		Encode: []string{
			"if m.{{ property_name }} != nil {",
			"	dictionary.Set({{ quoted_name }}, *m.{{ property_name }})",
			"}",
		},
		Decode: []string{
			"m.{{ property_name }} = {{ decoder }}(representation, {{ quoted_name }})",
		},
	},
	schema.KindModelRef: {
		Encode: []string{
			"if m.{{ property_name }} != nil {",
			"	dictionary.Set({{ quoted_name }}, m.{{ property_name }}.EncodeToJSON())",
			"}",
		},
		Decode: []string{
			"m.{{ property_name }} = encodable.DecodeModel[{{ type_name }}](representation, {{ quoted_name }})",
		},
	},
	schema.KindModelRefList: {
		Encode: []string{
			"if m.{{ property_name }} != nil {",
			"	dictionary.Set({{ quoted_name }}, encodable.EncodeList(m.{{ property_name }}))",
			"}",
		},
		Decode: []string{
			"m.{{ property_name }} = encodable.DecodeModelList[{{ type_name }}](representation, {{ quoted_name }})",
		},
	},
}

const (
	goEncodeMethod = `// EncodeToJSON implements encodable.Encodable.
func (m *{{ classname }}) EncodeToJSON() encodable.Value {
	dictionary := encodable.NewObject()
{{ statements }}
	return dictionary
}`

	goInitMethod = `// DecodeFromJSON implements encodable.Decodable.
func (m *{{ classname }}) DecodeFromJSON(representation map[string]any) {
{{ statements }}
}`
)

type goDialect struct {
	template string
}

func (d *goDialect) Name() string {
	return "go"
}

func (d *goDialect) FileName(className string) string {
	return naming.Snake(className) + ".go"
}

func (d *goDialect) Primitives() schema.PrimitiveSet {
	return schema.GoPrimitives.Union(schema.SwiftPrimitives, schema.PortablePrimitives)
}

func (d *goDialect) FieldVars(f schema.FieldSpec) map[string]any {
	vars := map[string]any{
		"property_name": naming.Exported(f.PropertyName),
	}

	switch f.Kind {
	case schema.KindPrimitive:
		t := goType(f.TypeName)
		vars["property_type"] = "*" + t
		vars["decoder"] = goDecoder(t)
	case schema.KindModelRef:
		vars["property_type"] = "*" + f.TypeName
	case schema.KindModelRefList:
		vars["property_type"] = "[]*" + f.TypeName
	}

	return vars
}

func (d *goDialect) Statements(kind schema.Kind) Statements {
	return goStatements[kind]
}

func (d *goDialect) Methods() Methods {
	return Methods{Encode: goEncodeMethod, Init: goInitMethod, Indent: "\t"}
}

func (d *goDialect) Template() string {
	return d.template
}

func (d *goDialect) Header(config Config) string {
	return "// Code generated by model-generator. DO NOT EDIT.\n\npackage " + config.PackageName
}

func (d *goDialect) Imports(config Config) string {
	runtime := config.RuntimeImport
	if runtime == "" {
		runtime = DefaultRuntimeImport
	}

	return `import "` + runtime + `"`
}

func (d *goDialect) Format(src []byte) ([]byte, error) {
	return format.Source(src)
}

func goType(name string) string {
	if t, ok := goTypes[name]; ok {
		return t
	}

	return name
}

func goDecoder(t string) string {
	switch t {
	case "string":
		return "encodable.DecodeString"
	case "bool":
		return "encodable.DecodeBool"
	default:
		return "encodable.DecodeNumber[" + t + "]"
	}
}
