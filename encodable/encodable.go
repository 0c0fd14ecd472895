package encodable

import (
	"bytes"

	"github.com/goccy/go-json"
)

// Value is a JSON-compatible value: string, bool, a Go number, *Object or
// []Value.
type Value = any

// Encodable is implemented by every generated model.
type Encodable interface {
	EncodeToJSON() Value
}

// Number lists the numeric scalar types a generated model may hold.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Object is a string-keyed mapping that remembers insertion order.
// The zero value is not usable, create one with NewObject.
type Object struct {
	keys   []string
	values map[string]Value
}

// NewObject returns an empty Object.
func NewObject() *Object {
	return &Object{values: make(map[string]Value)}
}

// Set binds key to v. Rebinding an existing key keeps its original position.
func (o *Object) Set(key string, v Value) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}

	o.values[key] = v
}

// Get returns the value bound to key.
func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Has reports whether key is bound.
func (o *Object) Has(key string) bool {
	_, ok := o.values[key]
	return ok
}

// Keys returns the bound keys in insertion order.
func (o *Object) Keys() []string {
	keys := make([]string, len(o.keys))
	copy(keys, o.keys)

	return keys
}

// Len returns the number of bound keys.
func (o *Object) Len() int {
	return len(o.keys)
}

// Map projects the Object into plain maps and slices, recursively. The result
// is convenient for equality checks where key order does not matter.
func (o *Object) Map() map[string]any {
	res := make(map[string]any, len(o.keys))
	for _, k := range o.keys {
		res[k] = project(o.values[k])
	}

	return res
}

func project(v Value) any {
	switch t := v.(type) {
	case *Object:
		if t == nil {
			return nil
		}

		return t.Map()
	case []Value:
		res := make([]any, len(t))
		for i := range t {
			res[i] = project(t[i])
		}

		return res
	default:
		return v
	}
}

// MarshalJSON writes the Object with keys in insertion order.
func (o *Object) MarshalJSON() ([]byte, error) {
	if o == nil {
		return []byte("null"), nil
	}

	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}

		val, err := json.Marshal(o.values[k])
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// EncodeList encodes each element of items in order. Nil elements are skipped.
// The result is never nil, so an empty input encodes as an empty list.
func EncodeList[T any, PT interface {
	*T
	Encodable
}](items []PT) []Value {
	res := make([]Value, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}

		res = append(res, item.EncodeToJSON())
	}

	return res
}
