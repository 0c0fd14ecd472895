package encodable

// The types below have the shape the go dialect generates.

type customType struct {
	V *int
}

func (m *customType) DecodeFromJSON(representation map[string]any) {
	m.V = DecodeNumber[int](representation, "v")
}

func (m *customType) EncodeToJSON() Value {
	dictionary := NewObject()
	if m.V != nil {
		dictionary.Set("v", *m.V)
	}

	return dictionary
}

type exampleClass struct {
	AString        *string
	ABool          *bool
	AnInt          *int64
	CustomType     *customType
	CustomTypeList []*customType
}

func (m *exampleClass) DecodeFromJSON(representation map[string]any) {
	m.AString = DecodeString(representation, "a_string")
	m.ABool = DecodeBool(representation, "a_bool")
	m.AnInt = DecodeNumber[int64](representation, "an_int")
	m.CustomType = DecodeModel[customType](representation, "custom_type")
	m.CustomTypeList = DecodeModelList[customType](representation, "custom_type_list")
}

func (m *exampleClass) EncodeToJSON() Value {
	dictionary := NewObject()
	if m.AString != nil {
		dictionary.Set("a_string", *m.AString)
	}

	if m.ABool != nil {
		dictionary.Set("a_bool", *m.ABool)
	}

	if m.AnInt != nil {
		dictionary.Set("an_int", *m.AnInt)
	}

	if m.CustomType != nil {
		dictionary.Set("custom_type", m.CustomType.EncodeToJSON())
	}

	if m.CustomTypeList != nil {
		dictionary.Set("custom_type_list", EncodeList(m.CustomTypeList))
	}

	return dictionary
}

func ptr[T any](v T) *T {
	return &v
}
