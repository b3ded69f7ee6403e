package ndarray

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Full creates an array of the given shape with every element set to value.
// An empty shape yields a root scalar.
// Panics if the shape has a negative dimension.
//
// Example:
//
//	a := ndarray.Full[float32](ndarray.Shape{3, 3}, 3.5)
func Full[T Element](shape Shape, value T) *Array[T] {
	if err := shape.Validate(); err != nil {
		panic(err)
	}

	data := make([]T, shape.NumElements())
	for i := range data {
		data[i] = value
	}
	return newRoot(data, shape)
}

// Zeros creates an array filled with zeros.
func Zeros[T Element](shape Shape) *Array[T] {
	return Full[T](shape, 0)
}

// Ones creates an array filled with ones.
func Ones[T Element](shape Shape) *Array[T] {
	return Full[T](shape, 1)
}

// Eye creates a 2-D identity matrix.
func Eye[T Element](n int) *Array[T] {
	a := Zeros[T](Shape{n, n})
	for i := 0; i < n; i++ {
		a.buf.data[i*n+i] = 1
	}
	return a
}

// Arange creates a 1-D array with values from start towards stop (exclusive)
// spaced by step. A range that yields no values produces an empty array.
//
// Example:
//
//	a, _ := ndarray.Arange[int](0, 10, 2) // [0 2 4 6 8]
func Arange[T Element](start, stop, step T) (*Array[T], error) {
	if step == 0 {
		return nil, invalidArgument("arange", nil, "step must be non-zero")
	}

	var n int
	switch {
	case step > 0 && stop > start:
		n = int(math.Ceil(float64(stop-start) / float64(step)))
	case step < 0 && stop < start:
		n = int(math.Ceil(float64(start-stop) / -float64(step)))
	}

	data := make([]T, n)
	for i := range data {
		data[i] = start + T(i)*step
	}
	return newRoot(data, Shape{n}), nil
}

// Random creates an array with values drawn uniformly from [min, max) using
// the caller's generator. Integer arrays draw from [min, max] inclusive.
//
// Example:
//
//	rng := rand.New(rand.NewPCG(42, 42))
//	a, _ := ndarray.Random[float64](rng, ndarray.Shape{3, 3}, -1, 1)
func Random[T Element](rng *rand.Rand, shape Shape, lo, hi T) (*Array[T], error) {
	if rng == nil {
		return nil, invalidArgument("random", shape, "generator is required")
	}
	if hi < lo {
		return nil, invalidArgument("random", shape, "empty range [%v, %v]", lo, hi)
	}
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("random: %w", err)
	}

	data := make([]T, shape.NumElements())
	if isIntegral[T]() {
		// Work modulo 2^64 so spans of signed types cannot overflow.
		span := uint64(hi) - uint64(lo)
		for i := range data {
			var r uint64
			if span == math.MaxUint64 {
				r = rng.Uint64()
			} else {
				r = rng.Uint64N(span + 1)
			}
			data[i] = lo + T(r)
		}
	} else {
		width := float64(hi) - float64(lo)
		for i := range data {
			data[i] = lo + T(rng.Float64()*width)
		}
	}
	return newRoot(data, shape), nil
}
