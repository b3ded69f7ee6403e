package ndarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDump(t *testing.T) {
	tests := []struct {
		name     string
		dump     func(t *testing.T) string
		expected string
	}{
		{
			name: "1D float",
			dump: func(t *testing.T) string {
				return mustNested[float64](t, []float64{1, 2, 3}).Dump()
			},
			expected: "[ 1.000 2.000 3.000 ]",
		},
		{
			name: "2D int",
			dump: func(t *testing.T) string {
				return mustNested[int](t, [][]int{{1, 2}, {3, 4}}).Dump()
			},
			expected: "[\n  [ 1 2 ]\n  [ 3 4 ]\n]",
		},
		{
			name: "3D int",
			dump: func(t *testing.T) string {
				return mustNested[int](t, [][][]int{{{1, 2}}, {{3, 4}}}).Dump()
			},
			expected: "[\n[\n  [ 1 2 ]\n]\n[\n  [ 3 4 ]\n]\n]",
		},
		{
			name: "scalar",
			dump: func(t *testing.T) string {
				return NewScalar(5.0).Dump()
			},
			expected: "5.000",
		},
		{
			name: "null",
			dump: func(t *testing.T) string {
				return (&Array[int]{}).Dump()
			},
			expected: "null",
		},
		{
			name: "empty",
			dump: func(t *testing.T) string {
				return Zeros[int](Shape{0}).Dump()
			},
			expected: "[ ]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.dump(t))
		})
	}
}

func TestDump_Views(t *testing.T) {
	a := mustNested[int](t, [][]int{{1, 2}, {3, 4}})

	row, err := a.At(0)
	require.NoError(t, err)
	assert.Equal(t, "  [ 1 2 ]", row.Dump())

	cell, err := a.View(1, 0)
	require.NoError(t, err)
	assert.Equal(t, "3", cell.Dump())

	tr, err := a.T()
	require.NoError(t, err)
	assert.Equal(t, "[\n  [ 1 3 ]\n  [ 2 4 ]\n]", tr.Dump())

	assert.Equal(t, "[ 1 2 ]", row.Copy().Dump(), "copies are roots")
}

func TestDumpWith_Precision(t *testing.T) {
	a := mustNested[float64](t, []float64{1.25, -0.5})

	assert.Equal(t, "[ 1.2 -0.5 ]", a.DumpWith(PrintOptions{Precision: 1}))
	assert.Equal(t, "[ 1 -0 ]", a.DumpWith(PrintOptions{Precision: 0}))
	assert.Equal(t, "[ 1 -0 ]", a.DumpWith(PrintOptions{Precision: -4}), "negative precision clamps to zero")

	ints := mustNested[int32](t, []int32{7})
	assert.Equal(t, "[ 7 ]", ints.DumpWith(PrintOptions{Precision: 5}), "precision ignored for integers")
}

func TestString(t *testing.T) {
	a := mustNested[float32](t, []float32{0.5})
	assert.Equal(t, a.Dump(), a.String())
	assert.Equal(t, 3, DefaultPrintOptions().Precision)
}
