// Package patch models partial-update payloads with explicit field presence.
package patch

import (
	"bytes"
	"encoding/json"
)

// Field 記錄一個欄位在 JSON 中是否出現、是否為 null 以及其值
//
// 欄位未出現時 Set 為 false；出現 null 時 Set 與 Null 皆為 true。
type Field[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// Of returns a present, non-null field.
func Of[T any](v T) Field[T] {
	return Field[T]{Set: true, Value: v}
}

// Null returns a field explicitly set to null.
func Null[T any]() Field[T] {
	return Field[T]{Set: true, Null: true}
}

// UnmarshalJSON is only invoked when the key is present.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		f.Null = true
		var zero T
		f.Value = zero
		return nil
	}
	f.Null = false
	return json.Unmarshal(data, &f.Value)
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.Set || f.Null {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// Ptr 未設定或 null 時回傳 nil
func (f Field[T]) Ptr() *T {
	if !f.Set || f.Null {
		return nil
	}
	v := f.Value
	return &v
}

// HasValue reports a present, non-null value.
func (f Field[T]) HasValue() bool {
	return f.Set && !f.Null
}
