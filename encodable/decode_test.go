package encodable

import (
	"math"
	"testing"

	"github.com/goccy/go-json"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeNumber(t *testing.T) {
	rep := map[string]any{
		"float":  float64(3),
		"int":    7,
		"string": "3",
		"null":   nil,
	}

	require.NotNil(t, DecodeNumber[int](rep, "float"))
	assert.Equal(t, 3, *DecodeNumber[int](rep, "float"))
	assert.InDelta(t, 7.0, *DecodeNumber[float64](rep, "int"), 0)
	assert.Nil(t, DecodeNumber[int](rep, "string"))
	assert.Nil(t, DecodeNumber[int](rep, "null"))
	assert.Nil(t, DecodeNumber[int](rep, "missing"))
}

func TestDecodeNumber_Exact(t *testing.T) {
	rep := map[string]any{
		"fraction":      3.7,
		"negative":      float64(-1),
		"big":           float64(300),
		"huge":          1e300,
		"lit_fraction":  json.Number("3.7"),
		"lit_negative":  json.Number("-1"),
		"lit_int":       json.Number("9007199254740993"),
		"lit_max_uint":  json.Number("18446744073709551615"),
		"lit_exponent":  json.Number("1e3"),
		"lit_not_a_num": json.Number("abc"),
	}

	assert.Nil(t, DecodeNumber[int](rep, "fraction"))
	assert.Nil(t, DecodeNumber[uint](rep, "negative"))
	assert.Nil(t, DecodeNumber[int8](rep, "big"))
	assert.Nil(t, DecodeNumber[float32](rep, "huge"))
	assert.Nil(t, DecodeNumber[int64](rep, "lit_fraction"))
	assert.Nil(t, DecodeNumber[uint32](rep, "lit_negative"))
	assert.Nil(t, DecodeNumber[int64](rep, "lit_max_uint"))
	assert.Nil(t, DecodeNumber[int](rep, "lit_not_a_num"))

	assert.Equal(t, int16(300), *DecodeNumber[int16](rep, "big"))
	assert.Equal(t, -1, *DecodeNumber[int](rep, "negative"))
	assert.InDelta(t, 3.7, *DecodeNumber[float64](rep, "lit_fraction"), 1e-12)
	assert.Equal(t, int64(9007199254740993), *DecodeNumber[int64](rep, "lit_int"))
	assert.Equal(t, uint64(math.MaxUint64), *DecodeNumber[uint64](rep, "lit_max_uint"))
	assert.Equal(t, 1000, *DecodeNumber[int](rep, "lit_exponent"))
}

func TestDecodeScalars(t *testing.T) {
	rep := map[string]any{"s": "x", "b": true, "n": 1.0}

	assert.Equal(t, "x", *DecodeString(rep, "s"))
	assert.True(t, *DecodeBool(rep, "b"))
	assert.Nil(t, DecodeString(rep, "n"))
	assert.Nil(t, DecodeBool(rep, "s"))
}

func TestDecodeModelList_SkipsNonObjects(t *testing.T) {
	rep := map[string]any{
		"list": []any{map[string]any{"v": 1.0}, "junk", map[string]any{}},
	}

	got := DecodeModelList[customType](rep, "list")
	require.Len(t, got, 2)
	assert.Equal(t, 1, *got[0].V)
	assert.Nil(t, got[1].V)

	assert.Nil(t, DecodeModelList[customType](rep, "missing"))
}

func TestUnmarshal_RoundTrip(t *testing.T) {
	in := `{"a_string":"x","a_bool":true,"an_int":42,"custom_type":{"v":9},"custom_type_list":[{"v":1},{"v":2}]}`

	var m exampleClass
	require.NoError(t, Unmarshal([]byte(in), &m))

	assert.Equal(t, "x", *m.AString)
	assert.True(t, *m.ABool)
	assert.Equal(t, int64(42), *m.AnInt)
	assert.Equal(t, 9, *m.CustomType.V)
	require.Len(t, m.CustomTypeList, 2)

	out, err := Marshal(&m)
	require.NoError(t, err)
	assert.JSONEq(t, in, string(out))
}

func TestUnmarshal_LargeIntegerPrecision(t *testing.T) {
	in := `{"an_int":9007199254740993}`

	var m exampleClass
	require.NoError(t, Unmarshal([]byte(in), &m))

	require.NotNil(t, m.AnInt)
	assert.Equal(t, int64(9007199254740993), *m.AnInt)

	out, err := Marshal(&m)
	require.NoError(t, err)
	assert.Equal(t, in, string(out))
}

func TestUnmarshal_NullTreatedAsAbsent(t *testing.T) {
	var m exampleClass
	require.NoError(t, Unmarshal([]byte(`{"a_string":null,"custom_type_list":null}`), &m))

	assert.Nil(t, m.AString)
	assert.Nil(t, m.CustomTypeList)

	out, err := Marshal(&m)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(out))
}

func TestUnmarshal_InvalidJSON(t *testing.T) {
	var m exampleClass
	assert.Error(t, Unmarshal([]byte(`{`), &m))
}
