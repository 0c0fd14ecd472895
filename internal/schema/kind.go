package schema

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind selects how a field is declared and encoded.
type Kind int

const (
	_ Kind = iota // zero value is an invalid Kind

	// KindPrimitive is a string, bool or number held directly.
	KindPrimitive
	// KindModelRef is a nested generated model.
	KindModelRef
	// KindModelRefList is an ordered sequence of nested generated models.
	KindModelRefList
)

// IsValid reports whether k is one of the declared kinds.
func (k Kind) IsValid() bool {
	return k >= KindPrimitive && k <= KindModelRefList
}

// IsModel reports whether fields of this kind reference another model.
func (k Kind) IsModel() bool {
	return k == KindModelRef || k == KindModelRefList
}

// ParseKind accepts the String form of a Kind as well as the snake_case
// spelling used in schema documents (primitive, model_ref, model_ref_list).
func ParseKind(s string) (Kind, error) {
	norm := strings.ToLower(strings.ReplaceAll(s, "_", ""))

	switch norm {
	case "primitive":
		return KindPrimitive, nil
	case "modelref", "ref":
		return KindModelRef, nil
	case "modelreflist", "reflist", "list":
		return KindModelRefList, nil
	}

	return 0, fmt.Errorf("unknown field kind %q", s)
}
