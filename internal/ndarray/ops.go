package ndarray

// Apply replaces every visible element x with fn(x), in place.
// On a view the shared buffer is modified.
//
// Example:
//
//	a.Apply(func(v float64) float64 { return v / 2 })
func (a *Array[T]) Apply(fn func(T) T) {
	a.each(func(pos int) {
		a.buf.data[pos] = fn(a.buf.data[pos])
	})
}

// ApplyWith replaces every visible element x with fn(x, y), where y is the
// element of other at the same logical position. Both values must have the
// same kind and size.
func (a *Array[T]) ApplyWith(other *Array[T], fn func(T, T) T) error {
	rhs, err := a.operand("apply", other)
	if err != nil {
		return err
	}
	a.applyValues(rhs, fn)
	return nil
}

// operand validates other against a and snapshots its elements, so that
// aliased operands (a.ApplyWith(a.T(), ...)) read values before any write.
func (a *Array[T]) operand(op string, other *Array[T]) ([]T, error) {
	if a.kind == Null {
		return nil, invalidState(op, a.shape, "receiver is null")
	}
	if other == nil || a.kind != other.kind || a.Size() != other.Size() {
		var kind Kind
		var size int
		var shape Shape
		if other != nil {
			kind, size, shape = other.kind, other.Size(), other.shape
		}
		return nil, invalidArgument(op, a.shape, "operands are not equal: %s of size %d vs %s%v of size %d",
			a.kind, a.Size(), kind, shape, size)
	}
	return other.gather(), nil
}

func (a *Array[T]) applyValues(rhs []T, fn func(T, T) T) {
	i := 0
	a.each(func(pos int) {
		a.buf.data[pos] = fn(a.buf.data[pos], rhs[i])
		i++
	})
}

// In-place elementwise operations

// AddInplace adds other to a elementwise.
func (a *Array[T]) AddInplace(other *Array[T]) error {
	return a.ApplyWith(other, func(x, y T) T { return x + y })
}

// SubInplace subtracts other from a elementwise.
func (a *Array[T]) SubInplace(other *Array[T]) error {
	return a.ApplyWith(other, func(x, y T) T { return x - y })
}

// MulInplace multiplies a by other elementwise.
func (a *Array[T]) MulInplace(other *Array[T]) error {
	return a.ApplyWith(other, func(x, y T) T { return x * y })
}

// DivInplace divides a by other elementwise.
// For integer types a zero divisor is rejected before anything is written.
func (a *Array[T]) DivInplace(other *Array[T]) error {
	rhs, err := a.operand("div", other)
	if err != nil {
		return err
	}
	if isIntegral[T]() {
		for _, v := range rhs {
			if v == 0 {
				return invalidArgument("div", a.shape, "integer division by zero")
			}
		}
	}
	a.applyValues(rhs, func(x, y T) T { return x / y })
	return nil
}

// AddScalarInplace adds v to every element.
func (a *Array[T]) AddScalarInplace(v T) error {
	return a.scalarInplace("add scalar", func(x T) T { return x + v })
}

// SubScalarInplace subtracts v from every element.
func (a *Array[T]) SubScalarInplace(v T) error {
	return a.scalarInplace("sub scalar", func(x T) T { return x - v })
}

// MulScalarInplace multiplies every element by v.
func (a *Array[T]) MulScalarInplace(v T) error {
	return a.scalarInplace("mul scalar", func(x T) T { return x * v })
}

// DivScalarInplace divides every element by v.
func (a *Array[T]) DivScalarInplace(v T) error {
	if v == 0 && isIntegral[T]() {
		return invalidArgument("div scalar", a.shape, "integer division by zero")
	}
	return a.scalarInplace("div scalar", func(x T) T { return x / v })
}

func (a *Array[T]) scalarInplace(op string, fn func(T) T) error {
	if a.kind == Null {
		return invalidState(op, a.shape, "receiver is null")
	}
	a.Apply(fn)
	return nil
}

// Out-of-place elementwise operations. Each returns a new compact root and
// leaves the operands untouched.

// Add returns a + other.
func (a *Array[T]) Add(other *Array[T]) (*Array[T], error) {
	return a.outOfPlace(func(r *Array[T]) error { return r.AddInplace(other) })
}

// Sub returns a - other.
func (a *Array[T]) Sub(other *Array[T]) (*Array[T], error) {
	return a.outOfPlace(func(r *Array[T]) error { return r.SubInplace(other) })
}

// Mul returns a * other, elementwise.
func (a *Array[T]) Mul(other *Array[T]) (*Array[T], error) {
	return a.outOfPlace(func(r *Array[T]) error { return r.MulInplace(other) })
}

// Div returns a / other, elementwise.
func (a *Array[T]) Div(other *Array[T]) (*Array[T], error) {
	return a.outOfPlace(func(r *Array[T]) error { return r.DivInplace(other) })
}

// AddScalar returns a + v.
//
// Example:
//
//	a, _ := ndarray.FromSlice([]int{1, 2, 3}, 3)
//	b, _ := a.AddScalar(1) // [2 3 4]
func (a *Array[T]) AddScalar(v T) (*Array[T], error) {
	return a.outOfPlace(func(r *Array[T]) error { return r.AddScalarInplace(v) })
}

// SubScalar returns a - v.
func (a *Array[T]) SubScalar(v T) (*Array[T], error) {
	return a.outOfPlace(func(r *Array[T]) error { return r.SubScalarInplace(v) })
}

// MulScalar returns a * v.
func (a *Array[T]) MulScalar(v T) (*Array[T], error) {
	return a.outOfPlace(func(r *Array[T]) error { return r.MulScalarInplace(v) })
}

// DivScalar returns a / v.
func (a *Array[T]) DivScalar(v T) (*Array[T], error) {
	return a.outOfPlace(func(r *Array[T]) error { return r.DivScalarInplace(v) })
}

// RSubScalar returns v - a (the scalar on the left).
func (a *Array[T]) RSubScalar(v T) (*Array[T], error) {
	return a.outOfPlace(func(r *Array[T]) error {
		return r.scalarInplace("rsub scalar", func(x T) T { return v - x })
	})
}

// RDivScalar returns v / a (the scalar on the left).
func (a *Array[T]) RDivScalar(v T) (*Array[T], error) {
	if a.kind != Null && isIntegral[T]() {
		zero := false
		a.each(func(pos int) { zero = zero || a.buf.data[pos] == 0 })
		if zero {
			return nil, invalidArgument("rdiv scalar", a.shape, "integer division by zero")
		}
	}
	return a.outOfPlace(func(r *Array[T]) error {
		return r.scalarInplace("rdiv scalar", func(x T) T { return v / x })
	})
}

func (a *Array[T]) outOfPlace(op func(r *Array[T]) error) (*Array[T], error) {
	r := a.Copy()
	if err := op(r); err != nil {
		return nil, err
	}
	return r, nil
}
