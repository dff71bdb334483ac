// Package optional provides a tri-state JSON field for partial updates:
// a field is either absent, an explicit null, or set to a value.
package optional

import "encoding/json"

// Field records whether a JSON key was present at all and whether it was
// an explicit null. Absent means "leave unchanged"; null is surfaced to
// the caller so it can be rejected rather than treated ambiguously.
type Field[T any] struct {
	Present bool
	Null    bool
	Value   T
}

// Set builds a present, non-null field. Mostly useful in tests.
func Set[T any](v T) Field[T] {
	return Field[T]{Present: true, Value: v}
}

func (f *Field[T]) UnmarshalJSON(b []byte) error {
	f.Present = true
	if string(b) == "null" {
		f.Null = true
		return nil
	}
	return json.Unmarshal(b, &f.Value)
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.Present || f.Null {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}
