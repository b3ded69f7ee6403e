// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nd provides generic N-dimensional arrays for the Born ML framework.
//
// # Overview
//
// An Array[T] is a flat buffer of T interpreted through shape, strides and an
// offset. This package provides:
//   - Generic arrays over any integer or floating-point element type
//   - Zero-copy views via At, View and Transpose
//   - Write-through element access via Set, SetItem and ItemRef
//   - Elementwise arithmetic and reductions (Sum, Mean, Dot)
//
// # Basic Usage
//
//	import "github.com/born-ml/ndarray/nd"
//
//	func main() {
//	    a, _ := nd.FromNested[float64]([][]float64{{1, 2, 3}, {4, 5, 6}})
//
//	    row, _ := a.At(1)        // view of [4 5 6]
//	    cell, _ := row.At(1)     // scalar view of 5
//	    _ = cell.Set(99)         // a is now [[1 2 3] [4 99 6]]
//
//	    t, _ := a.T()            // [[1 4] [2 99] [3 6]], no data copied
//	    fmt.Println(t)
//	}
//
// # Views and Copies
//
// Every view shares its root's buffer. Writes through a view are visible
// through the root and through every sibling view. Take a snapshot with Copy
// (visible elements only, compact) or Clone (whole buffer, window preserved).
//
// Only roots can be reshaped; Reshape on a view fails with ErrInvalidState.
//
// # Errors
//
// Every failure wraps one of ErrOutOfRange, ErrInvalidArgument or
// ErrInvalidState. Nothing is modified when an operation fails.
//
//	if _, err := a.At(5); errors.Is(err, nd.ErrOutOfRange) {
//	    // handle
//	}
//
// # Concurrency
//
// Arrays are not safe for concurrent use. A root and all of its views must be
// guarded by the same lock if shared between goroutines.
package nd
