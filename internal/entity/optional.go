package entity

import jsoniter "github.com/json-iterator/go"

// Optional is a patch field that tells an absent JSON key apart from an
// explicit null. Set is false when the key was absent. A Set field with a nil
// Value clears the column.
type Optional[T any] struct {
	Set   bool
	Value *T
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}

	var v T
	if err := jsoniter.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}
