package ndarray

// buffer is the element storage shared by a root array and all of its views.
// Views hold the same *buffer, so storage stays reachable for as long as any
// view does and a write through one handle is visible through every other.
type buffer[T Element] struct {
	data []T
}

// wrapBuffer takes ownership of data without copying.
func wrapBuffer[T Element](data []T) *buffer[T] {
	return &buffer[T]{data: data}
}

// clone returns an independent copy of the whole buffer.
func (b *buffer[T]) clone() *buffer[T] {
	data := make([]T, len(b.data))
	copy(data, b.data)
	return &buffer[T]{data: data}
}

// len returns the number of stored elements.
func (b *buffer[T]) len() int {
	return len(b.data)
}
