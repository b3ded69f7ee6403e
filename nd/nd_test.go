// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nd_test

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/born-ml/ndarray/nd"
)

// TestPublicAPI verifies the aliases expose the array API end to end.
func TestPublicAPI(t *testing.T) {
	a, err := nd.FromNested[float64]([][]float64{{1, 2, 3}, {4, 5, 6}})
	if err != nil {
		t.Fatalf("FromNested failed: %v", err)
	}

	if !a.Shape().Equal(nd.Shape{2, 3}) {
		t.Errorf("Shape() = %v, want [2 3]", a.Shape())
	}
	if a.Kind() != nd.Dense {
		t.Errorf("Kind() = %v, want %v", a.Kind(), nd.Dense)
	}

	row, err := a.At(1)
	if err != nil {
		t.Fatalf("At failed: %v", err)
	}
	cell, err := row.At(1)
	if err != nil {
		t.Fatalf("At failed: %v", err)
	}
	if err := cell.Set(99); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	v, err := a.Item(1, 1)
	if err != nil {
		t.Fatalf("Item failed: %v", err)
	}
	if v != 99 {
		t.Errorf("Item(1, 1) = %v, want 99", v)
	}

	tr, err := a.T()
	if err != nil {
		t.Fatalf("T failed: %v", err)
	}
	if !tr.SharesMemory(a) {
		t.Error("transpose should share memory with its root")
	}
}

// TestErrorClasses verifies the exported sentinels match the errors returned.
func TestErrorClasses(t *testing.T) {
	a := nd.Zeros[int](nd.Shape{2, 2})

	if _, err := a.At(2); !errors.Is(err, nd.ErrOutOfRange) {
		t.Errorf("At(2) error = %v, want ErrOutOfRange", err)
	}
	if err := a.Reshape(3); !errors.Is(err, nd.ErrInvalidArgument) {
		t.Errorf("Reshape(3) error = %v, want ErrInvalidArgument", err)
	}

	row, _ := a.At(0)
	if err := row.Reshape(2); !errors.Is(err, nd.ErrInvalidState) {
		t.Errorf("Reshape on view error = %v, want ErrInvalidState", err)
	}

	_, err := nd.FromSlice([]int{1, 2, 3}, 2, 2)
	var shapeErr *nd.ShapeError
	if !errors.As(err, &shapeErr) {
		t.Fatalf("FromSlice error = %v, want *ShapeError", err)
	}
}

// TestFromYAML verifies literal documents decode through the public API.
func TestFromYAML(t *testing.T) {
	a, err := nd.FromYAML[int32]([]byte("shape: [2, 2]\ndata: [1, 2, 3, 4]\n"))
	if err != nil {
		t.Fatalf("FromYAML failed: %v", err)
	}

	want, _ := nd.FromSlice([]int32{1, 2, 3, 4}, 2, 2)
	if !a.Equal(want) {
		t.Errorf("FromYAML = %v, want %v", a, want)
	}

	if _, err := nd.FromYAML[int32](nil); err == nil {
		t.Error("FromYAML(nil) should fail")
	}
}

// TestConstructors verifies the wrapper constructors.
func TestConstructors(t *testing.T) {
	if s := nd.NewScalar(3); !s.IsScalar() {
		t.Error("NewScalar should build a scalar")
	}
	if got := nd.Full(nd.Shape{2}, 1.5).Dump(); got != "[ 1.500 1.500 ]" {
		t.Errorf("Full dump = %q", got)
	}
	if !nd.Ones[int](nd.Shape{3}).Equal(nd.Full(nd.Shape{3}, 1)) {
		t.Error("Ones should equal Full(1)")
	}

	r, err := nd.Arange(0, 4, 1)
	if err != nil {
		t.Fatalf("Arange failed: %v", err)
	}
	if r.Size() != 4 {
		t.Errorf("Arange size = %d, want 4", r.Size())
	}

	rnd, err := nd.Random[float64](rand.New(rand.NewPCG(1, 2)), nd.Shape{2, 2}, 0, 1)
	if err != nil {
		t.Fatalf("Random failed: %v", err)
	}
	if rnd.Size() != 4 {
		t.Errorf("Random size = %d, want 4", rnd.Size())
	}

	if nd.DefaultPrintOptions().Precision != 3 {
		t.Error("default precision should be 3")
	}
}

func ExampleDot() {
	a, _ := nd.FromNested[int]([]int{1, 2, 3, 4, 5})
	r, _ := nd.Dot(a, a)
	fmt.Println(r)
	// Output: 55
}

func ExampleArray_Transpose() {
	a, _ := nd.Arange(0, 6, 1)
	_ = a.Reshape(2, 3)
	t, _ := a.Transpose()
	fmt.Println(t.Shape(), t.Strides())
	// Output: [3 2] [1 3]
}
