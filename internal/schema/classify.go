package schema

import (
	"fmt"
	"strings"
)

// PrimitiveSet is the set of scalar type names a dialect holds directly.
type PrimitiveSet map[string]struct{}

// NewPrimitiveSet builds a PrimitiveSet from names.
func NewPrimitiveSet(names ...string) PrimitiveSet {
	s := make(PrimitiveSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}

	return s
}

// Contains reports whether name is a primitive type.
func (s PrimitiveSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Union returns a set holding every name of s and others.
func (s PrimitiveSet) Union(others ...PrimitiveSet) PrimitiveSet {
	res := make(PrimitiveSet, len(s))
	for n := range s {
		res[n] = struct{}{}
	}

	for _, o := range others {
		for n := range o {
			res[n] = struct{}{}
		}
	}

	return res
}

// PortablePrimitives are the language-neutral scalar names used by OpenAPI
// and JSON Schema documents.
var PortablePrimitives = NewPrimitiveSet("string", "integer", "number", "boolean")

// SwiftPrimitives are the Swift scalar types emitted by swagger-codegen.
var SwiftPrimitives = NewPrimitiveSet("String", "Int", "Double", "Bool", "UInt", "Float", "Character")

// GoPrimitives are the Go scalar types a generated model holds directly.
var GoPrimitives = NewPrimitiveSet(
	"string", "bool",
	"int", "int8", "int16", "int32", "int64",
	"uint", "uint8", "uint16", "uint32", "uint64",
	"float32", "float64",
)

// UnsupportedTypeError reports a type spelling that maps to no Kind.
type UnsupportedTypeError struct {
	TypeName string
	Reason   string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported type %q: %s", e.TypeName, e.Reason)
}

// Classify derives a Kind and the bare type name from a type spelling.
//
// Optional markers ("T?", "*T") are ignored. "[T]" and "[]T" are lists;
// a list must hold model types. Dictionaries ("[K: V]", "map[K]V") are not
// supported. Anything not in primitives is a model.
func Classify(typeName string, primitives PrimitiveSet) (Kind, string, error) {
	t := bareType(typeName)
	if t == "" {
		return 0, "", &UnsupportedTypeError{TypeName: typeName, Reason: "empty type"}
	}

	if isDictionary(t) {
		return 0, "", &UnsupportedTypeError{TypeName: typeName, Reason: "dictionaries"}
	}

	elem, isList := listElem(t)
	if !isList {
		if primitives.Contains(t) {
			return KindPrimitive, t, nil
		}

		return KindModelRef, t, nil
	}

	elem = bareType(elem)
	if elem == "" {
		return 0, "", &UnsupportedTypeError{TypeName: typeName, Reason: "empty element type"}
	}

	if _, nested := listElem(elem); nested {
		return 0, "", &UnsupportedTypeError{TypeName: typeName, Reason: "nested lists"}
	}

	if primitives.Contains(elem) {
		return 0, "", &UnsupportedTypeError{TypeName: typeName, Reason: "lists of primitives"}
	}

	return KindModelRefList, elem, nil
}

func bareType(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "?")
	s = strings.TrimSuffix(s, "!")
	s = strings.TrimPrefix(s, "*")

	return strings.TrimSpace(s)
}

// isDictionary reports Swift "[K: V]" and Go "map[K]V" spellings.
func isDictionary(s string) bool {
	if strings.HasPrefix(s, "map[") {
		return true
	}

	return strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") && strings.Contains(s, ":")
}

func listElem(s string) (string, bool) {
	if rest, ok := strings.CutPrefix(s, "[]"); ok {
		return rest, true
	}

	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		return s[1 : len(s)-1], true
	}

	return "", false
}
