package encodable

// Decodable is implemented by generated models that can populate themselves
// from a decoded JSON object.
type Decodable interface {
	DecodeFromJSON(representation map[string]any)
}

// DecodeString returns the string bound to key, or nil when the key is
// missing, null or not a string.
func DecodeString(representation map[string]any, key string) *string {
	return decodeScalar[string](representation, key)
}

// DecodeBool returns the bool bound to key, or nil when the key is missing,
// null or not a bool.
func DecodeBool(representation map[string]any, key string) *bool {
	return decodeScalar[bool](representation, key)
}

func decodeScalar[T ~string | ~bool](representation map[string]any, key string) *T {
	v, ok := representation[key].(T)
	if !ok {
		return nil
	}

	return &v
}

// DecodeNumber returns the number bound to key converted to T, or nil when the
// key is missing, null or not numeric, or when the value does not fit T
// exactly (a fraction for an integer type, a value out of range).
func DecodeNumber[T Number](representation map[string]any, key string) *T {
	v, ok := toNumber[T](representation[key])
	if !ok {
		return nil
	}

	return &v
}

// DecodeModel decodes the object bound to key into a new T, or returns nil
// when the key is missing, null or not an object.
func DecodeModel[T any, PT interface {
	*T
	Decodable
}](representation map[string]any, key string) *T {
	obj, ok := representation[key].(map[string]any)
	if !ok {
		return nil
	}

	v := new(T)
	PT(v).DecodeFromJSON(obj)

	return v
}

// DecodeModelList decodes the list bound to key element by element, or
// returns nil when the key is missing, null or not a list. Elements that are
// not objects are skipped.
func DecodeModelList[T any, PT interface {
	*T
	Decodable
}](representation map[string]any, key string) []*T {
	raw, ok := representation[key].([]any)
	if !ok {
		return nil
	}

	res := make([]*T, 0, len(raw))
	for _, item := range raw {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}

		v := new(T)
		PT(v).DecodeFromJSON(obj)
		res = append(res, v)
	}

	return res
}
