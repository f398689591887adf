package types

import (
	"bytes"
	"encoding/json"
)

var jsonNull = []byte("null")

// Optional distinguishes an absent JSON field from an explicit null so that
// partial updates can tell "leave untouched" apart from "clear the value".
type Optional[T any] struct {
	Set   bool
	Valid bool
	Value T
}

// NewOptional returns a present, non-null Optional holding value.
func NewOptional[T any](value T) Optional[T] {
	return Optional[T]{Set: true, Valid: true, Value: value}
}

// NullOptional returns a present Optional carrying an explicit null.
func NullOptional[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, jsonNull) {
		o.Valid = false
		var zero T
		o.Value = zero
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || !o.Valid {
		return jsonNull, nil
	}
	return json.Marshal(o.Value)
}

// Ptr returns the held value as a pointer, nil when null.
func (o Optional[T]) Ptr() *T {
	if !o.Set || !o.Valid {
		return nil
	}
	value := o.Value
	return &value
}
