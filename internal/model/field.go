package model

import (
	"bytes"
	"encoding/json"
)

// Field is one attribute of a partial update.
//
// THREE STATES:
// A JSON body can say three different things about a key:
//
//	{}                 → key absent   → Set=false          → column untouched
//	{"variety": null}  → explicit null → Set=true, Null=true → column set to NULL
//	{"variety": "x"}   → a value       → Set=true, Value="x" → column set to "x"
//
// A plain pointer can only tell two of these apart, so the patch types use
// Field instead. encoding/json only calls UnmarshalJSON for keys that are
// present, which is what makes Set reliable.
type Field[T any] struct {
	Value T
	Set   bool
	Null  bool
}

// UnmarshalJSON records that the key was present and decodes its value.
func (f *Field[T]) UnmarshalJSON(b []byte) error {
	f.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		f.Null = true
		var zero T
		f.Value = zero
		return nil
	}
	f.Null = false
	return json.Unmarshal(b, &f.Value)
}

// Ptr returns nil for an explicit null and a pointer to the value otherwise.
// It is what gets bound to nullable columns.
func (f Field[T]) Ptr() *T {
	if f.Null {
		return nil
	}
	v := f.Value
	return &v
}

// Of returns a Field holding v. Used by callers that build patches in code.
func Of[T any](v T) Field[T] {
	return Field[T]{Value: v, Set: true}
}

// NullField returns a Field that clears the column.
func NullField[T any]() Field[T] {
	return Field[T]{Set: true, Null: true}
}
