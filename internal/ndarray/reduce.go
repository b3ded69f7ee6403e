package ndarray

// Sum returns the sum of all visible elements.
func (a *Array[T]) Sum() (T, error) {
	var sum T
	if a.kind == Null {
		return sum, invalidState("sum", a.shape, "receiver is null")
	}
	a.each(func(pos int) {
		sum += a.buf.data[pos]
	})
	return sum, nil
}

// Mean returns the arithmetic mean of all visible elements as float64,
// whatever the element type.
//
// Example:
//
//	a, _ := ndarray.FromSlice([]int{10, 20, 30, 40}, 4)
//	m, _ := a.Mean() // 25.0
func (a *Array[T]) Mean() (float64, error) {
	if a.kind == Null || a.Size() == 0 {
		return 0, invalidState("mean", a.shape, "mean of empty value")
	}
	var sum float64
	a.each(func(pos int) {
		sum += float64(a.buf.data[pos])
	})
	return sum / float64(a.Size()), nil
}

// Max returns the largest visible element.
func (a *Array[T]) Max() (T, error) {
	return a.extreme("max", func(x, best T) bool { return x > best })
}

// Min returns the smallest visible element.
func (a *Array[T]) Min() (T, error) {
	return a.extreme("min", func(x, best T) bool { return x < best })
}

func (a *Array[T]) extreme(op string, better func(x, best T) bool) (T, error) {
	var best T
	if a.kind == Null || a.Size() == 0 {
		return best, invalidState(op, a.shape, "%s of empty value", op)
	}
	first := true
	a.each(func(pos int) {
		if v := a.buf.data[pos]; first || better(v, best) {
			best, first = v, false
		}
	})
	return best, nil
}

// Dot computes the dot product of a and b.
//
// Requirements:
//   - 1-D · 1-D of equal length: inner product, returned as a root scalar
//   - 2-D · 2-D: (M, K) · (K, N) → (M, N) matrix product
//
// Example:
//
//	a, _ := ndarray.FromNested[int]([][]int{{1, 2, 3}, {4, 5, 6}})
//	b, _ := ndarray.FromNested[int]([][]int{{7, 8}, {9, 10}, {11, 12}})
//	c, _ := ndarray.Dot(a, b) // [[58 64] [139 154]]
func Dot[T Element](a, b *Array[T]) (*Array[T], error) {
	if a == nil || b == nil || a.kind != Dense || b.kind != Dense {
		return nil, invalidArgument("dot", nil, "operands must be arrays")
	}
	aShape, bShape := a.shape, b.shape

	switch {
	case len(aShape) == 1 && len(bShape) == 1:
		if aShape[0] != bShape[0] {
			return nil, invalidArgument("dot", aShape, "length mismatch %d vs %d", aShape[0], bShape[0])
		}
		lhs, rhs := a.gather(), b.gather()
		var sum T
		for i := range lhs {
			sum += lhs[i] * rhs[i]
		}
		return NewScalar(sum), nil

	case len(aShape) == 2 && len(bShape) == 2:
		m, k := aShape[0], aShape[1]
		kAlt, n := bShape[0], bShape[1]
		if k != kAlt {
			return nil, invalidArgument("dot", aShape, "shape mismatch [%d,%d] · [%d,%d]", m, k, kAlt, n)
		}
		c := make([]T, m*n)
		matmul(c, a.gather(), b.gather(), m, k, n)
		return newRoot(c, Shape{m, n}), nil

	default:
		return nil, invalidArgument("dot", aShape, "unsupported operand dimensions %dD · %dD",
			len(aShape), len(bShape))
	}
}

// matmul performs naive matrix multiplication on row-major inputs.
// C[i,j] = sum_k A[i,k] * B[k,j]
func matmul[T Element](c, a, b []T, m, k, n int) {
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			var sum T
			for kIdx := 0; kIdx < k; kIdx++ {
				sum += a[i*k+kIdx] * b[kIdx*n+j]
			}
			c[i*n+j] = sum
		}
	}
}
