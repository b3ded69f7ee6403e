package ndarray

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Hash returns a 64-bit content hash of the array's kind, shape and visible
// elements. Arrays that are Equal hash to the same value regardless of
// their strides, offset or whether they are views.
func (a *Array[T]) Hash() uint64 {
	d := xxhash.New()
	scratch := make([]byte, 0, 8)

	write := func(v uint64) {
		scratch = binary.LittleEndian.AppendUint64(scratch[:0], v)
		_, _ = d.Write(scratch)
	}

	write(uint64(a.kind))
	write(uint64(len(a.shape)))
	for _, dim := range a.shape {
		write(uint64(dim))
	}

	integral := isIntegral[T]()
	a.each(func(pos int) {
		v := a.buf.data[pos]
		switch {
		case integral:
			write(uint64(v))
		case v == 0:
			write(0) // +0 and -0 compare equal
		default:
			write(math.Float64bits(float64(v)))
		}
	})
	return d.Sum64()
}
