// Package ndarray provides the core N-dimensional array type: a flat buffer
// interpreted through shape, strides and offset metadata.
package ndarray

import "golang.org/x/exp/constraints"

// Element is a constraint for supported array element types.
// Any integer or floating-point type is accepted.
type Element interface {
	constraints.Integer | constraints.Float
}

// Kind discriminates the representation of an array value.
type Kind uint8

// Supported kinds. The zero value of Array has kind Null.
const (
	Null Kind = iota
	Scalar
	Dense
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Scalar:
		return "scalar"
	case Dense:
		return "array"
	default:
		return "unknown"
	}
}

// isIntegral reports whether T is an integer type.
// Integer division truncates 1/2 to zero, float division does not.
func isIntegral[T Element]() bool {
	one, two := T(1), T(2)
	return one/two == 0
}
