package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		typeName   string
		primitives PrimitiveSet
		wantKind   Kind
		wantType   string
	}{
		{"swift primitive", "String?", SwiftPrimitives, KindPrimitive, "String"},
		{"swift model", "CustomType?", SwiftPrimitives, KindModelRef, "CustomType"},
		{"swift list", "[CustomType]?", SwiftPrimitives, KindModelRefList, "CustomType"},
		{"go primitive", "*int64", GoPrimitives, KindPrimitive, "int64"},
		{"go model", "*CustomType", GoPrimitives, KindModelRef, "CustomType"},
		{"go list", "[]*CustomType", GoPrimitives, KindModelRefList, "CustomType"},
		{"case matters", "string", SwiftPrimitives, KindModelRef, "string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, typ, err := Classify(tt.typeName, tt.primitives)
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, kind)
			assert.Equal(t, tt.wantType, typ)
		})
	}
}

func TestClassify_Unsupported(t *testing.T) {
	for _, typeName := range []string{"", "[]", "[String]", "[[CustomType]]", "[][]*CustomType"} {
		t.Run(typeName, func(t *testing.T) {
			prims := SwiftPrimitives
			if len(typeName) > 1 && typeName[1] == ']' {
				prims = GoPrimitives
			}

			_, _, err := Classify(typeName, prims)

			var unsupported *UnsupportedTypeError
			assert.True(t, errors.As(err, &unsupported), "got %v", err)
		})
	}
}

func TestClassify_Dictionaries(t *testing.T) {
	tests := []struct {
		typeName string
		prims    PrimitiveSet
	}{
		{"[String:AnyObject]?", SwiftPrimitives},
		{"[String: CustomType]", SwiftPrimitives},
		{"map[string]CustomType", GoPrimitives},
		{"*map[string]string", GoPrimitives},
	}

	for _, tt := range tests {
		t.Run(tt.typeName, func(t *testing.T) {
			kind, elem, err := Classify(tt.typeName, tt.prims)

			var unsupported *UnsupportedTypeError
			require.True(t, errors.As(err, &unsupported), "got kind=%s elem=%q err=%v", kind, elem, err)
			assert.Equal(t, "dictionaries", unsupported.Reason)
			assert.Equal(t, tt.typeName, unsupported.TypeName)
		})
	}
}

func TestPrimitiveSet_Union(t *testing.T) {
	u := SwiftPrimitives.Union(PortablePrimitives)

	assert.True(t, u.Contains("String"))
	assert.True(t, u.Contains("integer"))
	assert.False(t, u.Contains("int64"))
	assert.False(t, SwiftPrimitives.Contains("integer"))
}
