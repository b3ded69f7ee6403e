package main

import (
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/born-ml/ndarray/nd"
)

// demoSeed keeps the random section of the demo reproducible.
const demoSeed = 2017

// runDemo prints a tour of construction, views, write-through, elementwise
// transforms, reshaping and seeded random initialization.
func runDemo(w io.Writer, p nd.PrintOptions) error {
	fmt.Fprintln(w, "----------------------- 3D -----------------------")
	array3d, err := nd.FromNested[float64]([][][]float64{
		{{1, 2, 3}, {1, 2, 3}, {1, 2, 3}},
		{{4, 5, 6}, {4, 5, 6}, {4, 5, 6}},
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "n dimensions: %d\n", array3d.NDim())
	fmt.Fprintf(w, "n elements: %d\n", array3d.Size())
	fmt.Fprintln(w, array3d.DumpWith(p))

	sub, err := array3d.At(0)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "sub array is:\n%s\n", sub.DumpWith(p))

	cell, err := array3d.View(0, 1, 2)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "scalar value: %s\n", cell.DumpWith(p))

	// Write through a mutable reference into the shared buffer.
	ref, err := array3d.ItemRef(1, 1, 1)
	if err != nil {
		return err
	}
	*ref = 999

	array3d.Apply(func(v float64) float64 { return v / 2 })
	fmt.Fprintf(w, "array is now:\n%s\n\n", array3d.DumpWith(p))

	fmt.Fprintln(w, "----------------------- 1D -----------------------")
	array1d, err := nd.FromSlice([]float64{1, 2, 3, 4, 5, 6.5}, 6)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, array1d.DumpWith(p))

	if err := array1d.Reshape(2, 3); err != nil {
		return err
	}
	fmt.Fprintf(w, "reshape array:\n%s\n", array1d.DumpWith(p))

	fmt.Fprintln(w, "--------------- random initialise ----------------")
	rng := rand.New(rand.NewPCG(demoSeed, demoSeed))
	random, err := nd.Random[float64](rng, nd.Shape{3, 3}, -1, 1)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, random.DumpWith(p))

	return nil
}
