// Package schemafile loads class definitions from external sources.
//
// Two sources are supported: YAML schema documents and the model files
// emitted by swagger-codegen's Swift generator. Both produce
// schema.ClassSpec values plus diagnostics for entries that were skipped.
package schemafile
