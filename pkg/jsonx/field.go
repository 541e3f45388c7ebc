package jsonx

import (
	"bytes"
	"encoding/json"
)

// Field[T] tracks whether a key appeared in the document:
//   - IsSet() == true  => key existed (possibly as null)
//   - Value() == nil   => key missing, or explicitly null
type Field[T any] struct {
	set bool
	val *T
}

// Set returns a present, non-null field.
func Set[T any](v T) Field[T] { return Field[T]{set: true, val: &v} }

func (o Field[T]) IsSet() bool  { return o.set }
func (o Field[T]) IsNull() bool { return o.set && o.val == nil }
func (o Field[T]) Value() *T    { return o.val }

// Get returns the value, or the zero T when missing or null.
func (o Field[T]) Get() T {
	if o.val == nil {
		var zero T
		return zero
	}
	return *o.val
}

func (o *Field[T]) UnmarshalJSON(b []byte) error {
	if string(bytes.TrimSpace(b)) == "null" {
		o.set, o.val = true, nil
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	o.set, o.val = true, &v
	return nil
}

// MarshalJSON writes the value, or null when missing.
func (o Field[T]) MarshalJSON() ([]byte, error) {
	if o.val == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.val)
}
