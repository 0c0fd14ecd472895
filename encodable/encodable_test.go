package encodable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObject_SetKeepsInsertionOrder(t *testing.T) {
	o := NewObject()
	o.Set("b", 1)
	o.Set("a", 2)
	o.Set("c", 3)
	o.Set("b", 4)

	assert.Equal(t, []string{"b", "a", "c"}, o.Keys())
	assert.Equal(t, 3, o.Len())

	v, ok := o.Get("b")
	require.True(t, ok)
	assert.Equal(t, 4, v)
	assert.False(t, o.Has("missing"))
}

func TestObject_MarshalJSON(t *testing.T) {
	inner := NewObject()
	inner.Set("z", true)
	inner.Set("y", "s")

	o := NewObject()
	o.Set("second", 2)
	o.Set("first", inner)
	o.Set("list", []Value{inner, 1.5})

	data, err := o.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"second":2,"first":{"z":true,"y":"s"},"list":[{"z":true,"y":"s"},1.5]}`, string(data))

	var nilObj *Object
	data, err = nilObj.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}

func TestEncodeToJSON_ExampleClass(t *testing.T) {
	m := &exampleClass{
		AString:        ptr("x"),
		CustomTypeList: []*customType{{V: ptr(1)}, {V: ptr(2)}},
	}

	got := m.EncodeToJSON().(*Object)

	assert.Equal(t, []string{"a_string", "custom_type_list"}, got.Keys())
	assert.Equal(t, map[string]any{
		"a_string": "x",
		"custom_type_list": []any{
			map[string]any{"v": 1},
			map[string]any{"v": 2},
		},
	}, got.Map())
	assert.False(t, got.Has("custom_type"))
}

func TestEncodeToJSON_AbsentFieldsOmitted(t *testing.T) {
	got := (&exampleClass{}).EncodeToJSON().(*Object)

	assert.Equal(t, 0, got.Len())

	data, err := Marshal(&exampleClass{})
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}

func TestEncodeToJSON_EmptyListPresent(t *testing.T) {
	m := &exampleClass{CustomTypeList: []*customType{}}

	got := m.EncodeToJSON().(*Object)

	v, ok := got.Get("custom_type_list")
	require.True(t, ok)
	assert.NotNil(t, v)
	assert.Empty(t, v)

	data, err := Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"custom_type_list":[]}`, string(data))
}

func TestEncodeToJSON_Nested(t *testing.T) {
	m := &exampleClass{
		ABool:      ptr(false),
		AnInt:      ptr(int64(0)),
		CustomType: &customType{},
	}

	data, err := Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `{"a_bool":false,"an_int":0,"custom_type":{}}`, string(data))
}

func TestEncodeToJSON_Idempotent(t *testing.T) {
	m := &exampleClass{
		AString:        ptr("x"),
		ABool:          ptr(true),
		CustomType:     &customType{V: ptr(7)},
		CustomTypeList: []*customType{{V: ptr(1)}},
	}

	first := m.EncodeToJSON().(*Object)
	second := m.EncodeToJSON().(*Object)

	assert.Equal(t, first.Map(), second.Map())
	assert.Equal(t, first.Keys(), second.Keys())
}

func TestEncodeList(t *testing.T) {
	tests := []struct {
		name  string
		items []*customType
		want  []any
	}{
		{"nil input", nil, []any{}},
		{"empty input", []*customType{}, []any{}},
		{"order preserved", []*customType{{V: ptr(2)}, {V: ptr(1)}}, []any{
			map[string]any{"v": 2},
			map[string]any{"v": 1},
		}},
		{"nil elements skipped", []*customType{nil, {V: ptr(3)}, nil}, []any{
			map[string]any{"v": 3},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EncodeList(tt.items)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, project(got))
		})
	}
}
