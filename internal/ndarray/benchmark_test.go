package ndarray

import (
	"math/rand/v2"
	"testing"
)

func benchMatrix(b *testing.B, n int) *Array[float64] {
	b.Helper()
	a, err := Random[float64](rand.New(rand.NewPCG(1, 1)), Shape{n, n}, -1, 1)
	if err != nil {
		b.Fatal(err)
	}
	return a
}

// BenchmarkAt measures row view creation.
func BenchmarkAt(b *testing.B) {
	a := benchMatrix(b, 256)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = a.At(i % 256)
	}
}

// BenchmarkItem measures bounds-checked element reads.
func BenchmarkItem(b *testing.B) {
	a := benchMatrix(b, 256)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = a.Item(i%256, (i/256)%256)
	}
}

// BenchmarkSum_Contiguous and BenchmarkSum_Transposed compare iteration over
// row-major and strided layouts.
func BenchmarkSum_Contiguous(b *testing.B) {
	a := benchMatrix(b, 512)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = a.Sum()
	}
}

func BenchmarkSum_Transposed(b *testing.B) {
	a := benchMatrix(b, 512)
	tr, err := a.T()
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tr.Sum()
	}
}

func BenchmarkDot_128(b *testing.B) {
	x := benchMatrix(b, 128)
	y := benchMatrix(b, 128)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Dot(x, y)
	}
}

func BenchmarkHash(b *testing.B) {
	a := benchMatrix(b, 512)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = a.Hash()
	}
}
