package ndarray

import (
	"fmt"
	"strings"
)

// PrintOptions controls the textual dump of arrays.
type PrintOptions struct {
	Precision int // Digits after the decimal point for floating-point elements.
}

// DefaultPrintOptions returns the options used by Dump and String.
func DefaultPrintOptions() PrintOptions {
	return PrintOptions{
		Precision: 3,
	}
}

// Dump renders the array with DefaultPrintOptions.
//
// A scalar renders as its value, a 1-D array as "[ v0 v1 ... ]" (indented by
// two spaces when it is a view), and an N-D array as "[", one dump per row
// on its own line, then "]".
func (a *Array[T]) Dump() string {
	return a.DumpWith(DefaultPrintOptions())
}

// DumpWith renders the array with the given options.
func (a *Array[T]) DumpWith(opts PrintOptions) string {
	var sb strings.Builder
	a.dump(&sb, opts)
	return sb.String()
}

func (a *Array[T]) dump(sb *strings.Builder, opts PrintOptions) {
	switch {
	case a.kind == Null:
		sb.WriteString("null")
	case a.kind == Scalar:
		sb.WriteString(formatElement(a.buf.data[a.offset], opts))
	case len(a.shape) == 1:
		if a.view {
			sb.WriteString("  ")
		}
		sb.WriteString("[ ")
		for i := 0; i < a.shape[0]; i++ {
			sb.WriteString(formatElement(a.buf.data[a.offset+i*a.strides[0]], opts))
			sb.WriteByte(' ')
		}
		sb.WriteByte(']')
	default:
		sb.WriteString("[\n")
		for i := 0; i < a.shape[0]; i++ {
			row, _ := a.At(i) // i is in range
			row.dump(sb, opts)
			sb.WriteByte('\n')
		}
		sb.WriteByte(']')
	}
}

// formatElement stringifies one element: fixed-point for floats, plain for
// integers.
func formatElement[T Element](v T, opts PrintOptions) string {
	if isIntegral[T]() {
		return fmt.Sprint(v)
	}
	return fmt.Sprintf("%.*f", max(opts.Precision, 0), v)
}
