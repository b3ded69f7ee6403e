package ndarray

// At returns a view of the sub-array at index i of the leading dimension.
//
// On a 1-D array the result is a scalar view of the element; otherwise it is
// a view with the leading dimension dropped. Both share the receiver's buffer.
//
// Example:
//
//	a, _ := ndarray.FromNested[int]([][]int{{1, 2, 3}, {4, 5, 6}})
//	row, _ := a.At(1) // [4 5 6], row.Offset() == 3
func (a *Array[T]) At(i int) (*Array[T], error) {
	if a.kind != Dense {
		return nil, outOfRange("at", a.shape, "cannot index into %s value", a.kind)
	}
	if i < 0 || i >= a.shape[0] {
		return nil, outOfRange("at", a.shape, "index %d out of range for dimension of size %d", i, a.shape[0])
	}

	offset := a.offset + i*a.strides[0]
	if len(a.shape) == 1 {
		return &Array[T]{
			kind:    Scalar,
			buf:     a.buf,
			shape:   Shape{},
			strides: []int{},
			offset:  offset,
			view:    true,
		}, nil
	}

	return &Array[T]{
		kind:    Dense,
		buf:     a.buf,
		shape:   a.shape[1:].Clone(),
		strides: append([]int(nil), a.strides[1:]...),
		offset:  offset,
		view:    true,
	}, nil
}

// View follows a partial index path, applying At once per index.
// View() with no indices returns a view of the whole array.
func (a *Array[T]) View(indices ...int) (*Array[T], error) {
	if len(indices) == 0 {
		v := *a
		v.shape = a.shape.Clone()
		v.strides = append([]int(nil), a.strides...)
		v.view = a.kind != Null
		return &v, nil
	}

	cur := a
	for _, idx := range indices {
		next, err := cur.At(idx)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// flatOffset maps a full index tuple to a position in the buffer.
func (a *Array[T]) flatOffset(op string, indices []int) (int, error) {
	if a.kind != Dense {
		return 0, invalidArgument(op, a.shape, "value is already a %s", a.kind)
	}
	if len(indices) != len(a.shape) {
		return 0, invalidArgument(op, a.shape, "expected %d indices, got %d", len(a.shape), len(indices))
	}

	offset := a.offset
	for i, idx := range indices {
		if idx < 0 || idx >= a.shape[i] {
			return 0, outOfRange(op, a.shape, "index %d out of bounds for dimension %d (size %d)",
				idx, i, a.shape[i])
		}
		offset += idx * a.strides[i]
	}
	return offset, nil
}

// Item returns the element at the given full index tuple.
func (a *Array[T]) Item(indices ...int) (T, error) {
	offset, err := a.flatOffset("item", indices)
	if err != nil {
		var zero T
		return zero, err
	}
	return a.buf.data[offset], nil
}

// ItemRef returns a pointer to the element at the given full index tuple.
// The pointer addresses the shared buffer, so writes through it are visible
// through every view of the array.
func (a *Array[T]) ItemRef(indices ...int) (*T, error) {
	offset, err := a.flatOffset("item", indices)
	if err != nil {
		return nil, err
	}
	return &a.buf.data[offset], nil
}

// SetItem sets the element at the given full index tuple.
func (a *Array[T]) SetItem(v T, indices ...int) error {
	offset, err := a.flatOffset("set item", indices)
	if err != nil {
		return err
	}
	a.buf.data[offset] = v
	return nil
}

// Reshape changes the shape of a root array in place.
//
// The new shape must have the same number of elements. Views cannot be
// reshaped: reshape the root or reshape a Copy. Nothing is modified on error.
func (a *Array[T]) Reshape(shape ...int) error {
	s := Shape(shape)
	switch {
	case a.kind != Dense:
		return invalidState("reshape", a.shape, "cannot reshape %s value", a.kind)
	case a.view:
		return invalidState("reshape", a.shape, "cannot reshape a view")
	case len(s) == 0:
		return invalidArgument("reshape", a.shape, "new shape must have at least one dimension")
	}
	if err := s.Validate(); err != nil {
		return err
	}
	if s.NumElements() != a.Size() {
		return invalidArgument("reshape", a.shape,
			"total size of new array must be unchanged: %v has %d elements, want %d",
			s, s.NumElements(), a.Size())
	}
	if !a.IsContiguous() {
		return invalidState("reshape", a.shape, "array is not contiguous")
	}

	a.shape = s.Clone()
	a.strides = s.ComputeStrides()
	return nil
}

// Transpose returns a view with permuted dimensions.
//
// If axes is empty, all dimensions are reversed (for 2-D, the standard
// transpose). No data is moved: only shape and strides are permuted.
//
// Example:
//
//	a := ndarray.Zeros[float32](ndarray.Shape{2, 3, 4})
//	t, _ := a.Transpose(2, 0, 1) // Shape: [4, 2, 3]
func (a *Array[T]) Transpose(axes ...int) (*Array[T], error) {
	if a.kind == Null {
		return nil, invalidState("transpose", a.shape, "cannot transpose null value")
	}
	ndim := len(a.shape)

	// Default: reverse all dimensions
	if len(axes) == 0 {
		axes = make([]int, ndim)
		for i := range axes {
			axes[i] = ndim - 1 - i
		}
	}

	if len(axes) != ndim {
		return nil, invalidArgument("transpose", a.shape, "axes don't match array: got %d, want %d",
			len(axes), ndim)
	}

	seen := make([]bool, ndim)
	for _, ax := range axes {
		if ax < 0 || ax >= ndim {
			return nil, invalidArgument("transpose", a.shape, "invalid axis %d for %dD array", ax, ndim)
		}
		if seen[ax] {
			return nil, invalidArgument("transpose", a.shape, "repeated axis %d", ax)
		}
		seen[ax] = true
	}

	shape := make(Shape, ndim)
	strides := make([]int, ndim)
	for i, ax := range axes {
		shape[i] = a.shape[ax]
		strides[i] = a.strides[ax]
	}

	return &Array[T]{
		kind:    a.kind,
		buf:     a.buf,
		shape:   shape,
		strides: strides,
		offset:  a.offset,
		view:    true,
	}, nil
}

// T is a shortcut for 2-D transpose (swaps rows and columns).
func (a *Array[T]) T() (*Array[T], error) {
	if a.kind != Dense || len(a.shape) != 2 {
		return nil, invalidArgument("transpose", a.shape, "T() only works for 2D arrays")
	}
	return a.Transpose(1, 0)
}

// each calls fn with the buffer position of every visible element, in
// row-major logical order.
func (a *Array[T]) each(fn func(pos int)) {
	switch a.kind {
	case Null:
		return
	case Scalar:
		fn(a.offset)
		return
	}

	n := a.Size()
	if n == 0 {
		return
	}

	idx := make([]int, len(a.shape))
	pos := a.offset
	for k := 0; k < n; k++ {
		fn(pos)

		// Advance the index odometer, last dimension fastest.
		for d := len(idx) - 1; d >= 0; d-- {
			idx[d]++
			pos += a.strides[d]
			if idx[d] < a.shape[d] {
				break
			}
			pos -= idx[d] * a.strides[d]
			idx[d] = 0
		}
	}
}

// gather copies the visible elements into a new slice in row-major order.
func (a *Array[T]) gather() []T {
	out := make([]T, 0, a.Size())
	a.each(func(pos int) {
		out = append(out, a.buf.data[pos])
	})
	return out
}
