// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nd

import (
	"bytes"
	"math/rand/v2"

	"github.com/born-ml/ndarray/internal/literal"
	"github.com/born-ml/ndarray/internal/ndarray"
)

// Type aliases for public API

// Element is a constraint for array element types.
// Any integer or floating-point type is accepted.
type Element = ndarray.Element

// Array is a generic N-dimensional array. See ndarray.Array for details.
type Array[T Element] = ndarray.Array[T]

// Shape represents the dimensions of an array.
// Example: Shape{2, 3, 4} represents a 3D array with dimensions 2×3×4.
type Shape = ndarray.Shape

// Kind discriminates null, scalar and array values.
type Kind = ndarray.Kind

// Kind constants.
const (
	Null   Kind = ndarray.Null
	Scalar Kind = ndarray.Scalar
	Dense  Kind = ndarray.Dense
)

// PrintOptions controls the textual dump of arrays.
type PrintOptions = ndarray.PrintOptions

// ShapeError provides detailed information about a rejected shape or index.
type ShapeError = ndarray.ShapeError

// Error classes.
var (
	ErrOutOfRange      = ndarray.ErrOutOfRange
	ErrInvalidArgument = ndarray.ErrInvalidArgument
	ErrInvalidState    = ndarray.ErrInvalidState
)

// DefaultPrintOptions returns the options used by Dump and String.
func DefaultPrintOptions() PrintOptions {
	return ndarray.DefaultPrintOptions()
}

// Constructors

// FromNested creates an array from a nested literal such as [][]float64 or []any.
func FromNested[T Element](lit any) (*Array[T], error) {
	return ndarray.FromNested[T](lit)
}

// FromSlice creates an array of the given shape, copying data.
func FromSlice[T Element](data []T, shape ...int) (*Array[T], error) {
	return ndarray.FromSlice(data, shape...)
}

// FromYAML creates an array from a YAML (or JSON) literal document.
func FromYAML[T Element](data []byte) (*Array[T], error) {
	doc, err := literal.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return literal.Build[T](doc)
}

// NewScalar creates a root scalar.
func NewScalar[T Element](v T) *Array[T] {
	return ndarray.NewScalar(v)
}

// Full creates an array filled with value.
func Full[T Element](shape Shape, value T) *Array[T] {
	return ndarray.Full(shape, value)
}

// Zeros creates an array filled with zeros.
func Zeros[T Element](shape Shape) *Array[T] {
	return ndarray.Zeros[T](shape)
}

// Ones creates an array filled with ones.
func Ones[T Element](shape Shape) *Array[T] {
	return ndarray.Ones[T](shape)
}

// Eye creates an n×n identity matrix.
func Eye[T Element](n int) *Array[T] {
	return ndarray.Eye[T](n)
}

// Arange creates a 1-D array from start towards stop (exclusive) by step.
func Arange[T Element](start, stop, step T) (*Array[T], error) {
	return ndarray.Arange(start, stop, step)
}

// Random creates an array of uniform values in [lo, hi) drawn from rng.
func Random[T Element](rng *rand.Rand, shape Shape, lo, hi T) (*Array[T], error) {
	return ndarray.Random(rng, shape, lo, hi)
}

// Operations

// Dot computes the inner product of two 1-D arrays or the matrix product of
// two 2-D arrays.
func Dot[T Element](a, b *Array[T]) (*Array[T], error) {
	return ndarray.Dot(a, b)
}
