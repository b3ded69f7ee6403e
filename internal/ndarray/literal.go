package ndarray

import (
	"reflect"
)

// FromNested creates a root array from a nested literal.
//
// The literal may be a single number (yielding a root scalar), or nested Go
// slices or arrays of numbers ([]T, [][]T, []any, ...). Nested *Array[T]
// values are spliced in as sub-arrays. The shape is taken from the nesting
// depth and per-level lengths; every entry at a given depth must have the
// same sub-shape.
//
// Example:
//
//	a, _ := ndarray.FromNested[float64]([]any{
//	    []any{1, 2, 3},
//	    []any{4, 5, 6.5},
//	}) // shape [2 3]
func FromNested[T Element](literal any) (*Array[T], error) {
	if literal == nil {
		return nil, invalidArgument("from nested", nil, "literal is nil")
	}
	v := reflect.ValueOf(literal)

	shape := nestedShape[T](v)
	data := make([]T, 0, shape.NumElements())
	data, err := flatten(v, shape, 0, data)
	if err != nil {
		return nil, err
	}
	return newRoot(data, shape), nil
}

// nestedShape derives the shape by following the first entry at every depth.
func nestedShape[T Element](v reflect.Value) Shape {
	shape := Shape{}
	for {
		v = indirect(v)
		if sub, ok := asArray[T](v); ok {
			return append(shape, sub.shape...)
		}
		if !isList(v) {
			return shape
		}
		shape = append(shape, v.Len())
		if v.Len() == 0 {
			return shape
		}
		v = v.Index(0)
	}
}

// flatten appends the elements of v to data, checking that v has the
// sub-shape shape[depth:].
func flatten[T Element](v reflect.Value, shape Shape, depth int, data []T) ([]T, error) {
	v = indirect(v)

	if sub, ok := asArray[T](v); ok {
		if !sub.shape.Equal(shape[depth:]) || sub.kind == Null {
			return nil, invalidArgument("from nested", shape, "sub-array of shape %v at depth %d, want %v",
				sub.shape, depth, shape[depth:])
		}
		return append(data, sub.gather()...), nil
	}

	if depth == len(shape) {
		elem, ok := leaf[T](v)
		if !ok {
			return nil, invalidArgument("from nested", shape, "unsupported element %v at depth %d", v, depth)
		}
		return append(data, elem), nil
	}

	if !isList(v) || v.Len() != shape[depth] {
		return nil, invalidArgument("from nested", shape, "ragged literal at depth %d: want %d entries",
			depth, shape[depth])
	}

	var err error
	for i := 0; i < v.Len(); i++ {
		if data, err = flatten(v.Index(i), shape, depth+1, data); err != nil {
			return nil, err
		}
	}
	return data, nil
}

func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer) {
		if _, ok := v.Interface().(interface{ isArray() }); ok {
			return v
		}
		v = v.Elem()
	}
	return v
}

func isList(v reflect.Value) bool {
	return v.IsValid() && (v.Kind() == reflect.Slice || v.Kind() == reflect.Array)
}

func asArray[T Element](v reflect.Value) (*Array[T], bool) {
	if !v.IsValid() || !v.CanInterface() {
		return nil, false
	}
	a, ok := v.Interface().(*Array[T])
	return a, ok && a != nil
}

// leaf converts a numeric reflect value to T.
func leaf[T Element](v reflect.Value) (T, bool) {
	if !v.IsValid() {
		return 0, false
	}
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return T(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return T(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return T(v.Float()), true
	default:
		return 0, false
	}
}

// isArray marks *Array so indirect stops at it instead of dereferencing.
func (a *Array[T]) isArray() {}
