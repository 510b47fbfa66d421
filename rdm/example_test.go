package rdm_test

import (
	"fmt"

	"github.com/repsimlab/repsim/rdm"
)

// ExampleCompute demonstrates a Euclidean RDM over three tiny patterns.
//
// Scenario:
//
//	Three conditions with two-voxel response patterns form a 3-4-5 style
//	geometry; the condensed triangle lists pairs (0,1), (0,2), (1,2).
//
// Complexity: O(N²·V) time, O(N²) memory.
func ExampleCompute() {
	patterns := [][]float64{
		{0, 0},
		{3, 4},
		{0, 8},
	}
	opts := rdm.Options{Metric: rdm.Euclidean}

	r, err := rdm.Compute(patterns, []string{"face", "house", "chair"}, &opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("pairs:", r.Len())
	fmt.Println("condensed:", r.Condensed())
	// Output:
	// pairs: 3
	// condensed: [5 8 5]
}

// ExampleFromAttribute demonstrates a hand-built size model RDM.
//
// Scenario:
//
//	Eight stimulus categories with known physical sizes; dissimilarity of
//	a pair is the absolute size difference.
func ExampleFromAttribute() {
	sizes := []float64{.3, .35, .2, .2, .1, .5, 1, 0}

	model, err := rdm.FromAttribute(sizes, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	first, _ := model.At(0, 1)
	fmt.Printf("conditions: %d, pairs: %d, first: %.2f\n",
		model.NumConditions(), model.Len(), first)
	// Output:
	// conditions: 8, pairs: 28, first: 0.05
}
