// Package encodable is the runtime contract shared by every generated model.
//
// A generated model implements Encodable: EncodeToJSON returns an ordered
// Object keyed by wire-format field names. Absent optionals (nil pointers, nil
// slices) are omitted from the Object entirely, never written as null. Nested
// models are encoded through their own EncodeToJSON and lists of models are
// encoded element by element, preserving order.
//
// Generated models usually also implement Decodable, the inverse used by API
// clients to populate a model from a decoded JSON object.
package encodable
