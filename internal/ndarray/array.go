package ndarray

// Array is an N-dimensional array of T.
//
// An Array is either a root, which owns its buffer, or a view produced by At,
// View or Transpose, which shares the buffer of the array it came from. Views
// never copy: a write through any of them is immediately visible through the
// root and every sibling view. Use Copy or Clone to take a snapshot.
//
// The zero value is a Null array. Arrays are not safe for concurrent use; an
// array and all views sharing its buffer must be guarded together.
//
// Example:
//
//	a, _ := ndarray.FromNested[float64]([][]float64{{1, 2, 3}, {4, 5, 6}})
//	row, _ := a.At(1)        // view of [4 5 6], offset 3
//	cell, _ := row.At(1)     // scalar view of 5
//	_ = cell.Set(99)         // a.Item(1, 1) == 99
type Array[T Element] struct {
	kind    Kind
	buf     *buffer[T] // Shared storage (nil for Null)
	shape   Shape      // Empty for scalars
	strides []int      // Element steps per dimension
	offset  int        // First element of this value within buf
	view    bool       // True if buf is borrowed from another array
}

// newRoot creates a root array that takes ownership of data.
// len(data) must equal shape.NumElements().
func newRoot[T Element](data []T, shape Shape) *Array[T] {
	if len(shape) == 0 {
		return &Array[T]{kind: Scalar, buf: wrapBuffer(data), shape: Shape{}, strides: []int{}}
	}
	return &Array[T]{
		kind:    Dense,
		buf:     wrapBuffer(data),
		shape:   shape.Clone(),
		strides: shape.ComputeStrides(),
	}
}

// NewScalar creates a root scalar holding v.
func NewScalar[T Element](v T) *Array[T] {
	return newRoot([]T{v}, Shape{})
}

// FromSlice creates an array of the given shape from a Go slice.
// The slice is copied into the array's memory.
func FromSlice[T Element](data []T, shape ...int) (*Array[T], error) {
	s := Shape(shape)
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if s.NumElements() != len(data) {
		return nil, invalidArgument("from slice", s, "shape requires %d elements, but got %d",
			s.NumElements(), len(data))
	}

	owned := make([]T, len(data))
	copy(owned, data)
	return newRoot(owned, s), nil
}

// Kind returns the representation tag of the value.
func (a *Array[T]) Kind() Kind {
	return a.kind
}

// Shape returns a copy of the array's shape. Scalars have an empty shape.
func (a *Array[T]) Shape() Shape {
	return a.shape.Clone()
}

// Strides returns a copy of the array's strides.
func (a *Array[T]) Strides() []int {
	return append([]int(nil), a.strides...)
}

// Offset returns the index of the first element of this value within the
// shared buffer.
func (a *Array[T]) Offset() int {
	return a.offset
}

// NDim returns the number of dimensions.
func (a *Array[T]) NDim() int {
	return len(a.shape)
}

// Size returns the number of elements visible through this value.
func (a *Array[T]) Size() int {
	switch a.kind {
	case Null:
		return 0
	case Scalar:
		return 1
	default:
		return a.shape.NumElements()
	}
}

// Rows returns the size of the leading dimension, or 0 for scalars.
func (a *Array[T]) Rows() int {
	if len(a.shape) == 0 {
		return 0
	}
	return a.shape[0]
}

// Columns returns the size of the second dimension of a 2-D array, or 0.
func (a *Array[T]) Columns() int {
	if len(a.shape) != 2 {
		return 0
	}
	return a.shape[1]
}

// IsNull reports whether the value holds nothing.
func (a *Array[T]) IsNull() bool { return a.kind == Null }

// IsScalar reports whether the value is a single element.
func (a *Array[T]) IsScalar() bool { return a.kind == Scalar }

// IsArray reports whether the value has one or more dimensions.
func (a *Array[T]) IsArray() bool { return a.kind == Dense }

// IsView reports whether the value borrows another array's buffer.
func (a *Array[T]) IsView() bool { return a.view }

// IsContiguous reports whether the visible elements are laid out in
// row-major order without gaps.
func (a *Array[T]) IsContiguous() bool {
	switch a.kind {
	case Null:
		return false
	case Scalar:
		return true
	default:
		return a.shape.contiguous(a.strides)
	}
}

// SharesMemory reports whether a and other read and write the same buffer.
func (a *Array[T]) SharesMemory(other *Array[T]) bool {
	return a.buf != nil && other != nil && a.buf == other.buf
}

// Data returns the visible elements in row-major order.
//
// For contiguous arrays the returned slice aliases the buffer (zero-copy), so
// writes to it modify the array. Non-contiguous views return a fresh copy.
func (a *Array[T]) Data() ([]T, error) {
	if a.kind != Dense {
		return nil, invalidState("data", a.shape, "value is %s, use Scalar()", a.kind)
	}
	if a.IsContiguous() {
		end := a.offset + a.Size()
		return a.buf.data[a.offset:end:end], nil
	}
	return a.gather(), nil
}

// Scalar returns the value of a scalar.
func (a *Array[T]) Scalar() (T, error) {
	if a.kind != Scalar {
		var zero T
		return zero, invalidState("scalar", a.shape, "value is %s, use Data()", a.kind)
	}
	return a.buf.data[a.offset], nil
}

// Set assigns v to a scalar. If the scalar is a view, the write lands in the
// shared buffer, so a.At(i).At(j).Set(v) modifies a.
func (a *Array[T]) Set(v T) error {
	if a.kind != Scalar {
		return invalidArgument("set", a.shape, "can't assign number, current value is %s", a.kind)
	}
	a.buf.data[a.offset] = v
	return nil
}

// Clone creates a deep copy that duplicates the whole underlying buffer.
//
// Shape, strides and offset are preserved, so cloning a view copies all of
// the root's storage and keeps the view's window into it. The clone is an
// independent root. Use Copy to copy only the visible elements.
func (a *Array[T]) Clone() *Array[T] {
	if a.kind == Null {
		return &Array[T]{}
	}
	return &Array[T]{
		kind:    a.kind,
		buf:     a.buf.clone(),
		shape:   a.shape.Clone(),
		strides: append([]int(nil), a.strides...),
		offset:  a.offset,
	}
}

// Copy creates a compact row-major root holding the visible elements only.
func (a *Array[T]) Copy() *Array[T] {
	if a.kind == Null {
		return &Array[T]{}
	}
	return newRoot(a.gather(), a.shape)
}

// Swap exchanges the entire state of a and other.
func (a *Array[T]) Swap(other *Array[T]) {
	*a, *other = *other, *a
}

// Equal reports whether a and other have the same kind, shape and elements.
func (a *Array[T]) Equal(other *Array[T]) bool {
	if a == nil || other == nil {
		return a == other
	}
	if a.kind != other.kind || !a.shape.Equal(other.shape) {
		return false
	}
	if a.kind == Null {
		return true
	}

	lhs, rhs := a.gather(), other.gather()
	for i := range lhs {
		if lhs[i] != rhs[i] {
			return false
		}
	}
	return true
}

// String returns the textual dump of the array.
func (a *Array[T]) String() string {
	return a.Dump()
}
