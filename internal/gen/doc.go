// Package gen renders API model classes from schema.ClassSpec values.
//
// Generation approach: each class is bound into a template context
// (classname, header, imports, var_list, required_init_method,
// encode_to_json_method) and rendered through a tmpl.Engine. The two method
// bodies are assembled from per-field statement snippets chosen by field kind:
//   - Primitive: direct assignment of the unwrapped optional
//   - ModelRef: nested EncodeToJSON call when present
//   - ModelRefList: element-wise EncodeToJSON when the list is present
//
// Target languages are Dialects. The go dialect produces code against the
// encodable runtime package; the swift dialect produces classes for
// Alamofire-style API clients.
package gen
