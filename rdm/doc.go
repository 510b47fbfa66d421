// Package rdm computes representational dissimilarity matrices (RDMs)
// over condition response patterns, with canonical condensed storage and
// hand-built model RDM constructors.
//
// 🚀 What is an RDM?
//
//	An RDM is a symmetric N×N matrix with a zero diagonal whose (i,j) cell
//	holds the dissimilarity between the response patterns of conditions i
//	and j.  Comparing RDMs — rather than raw patterns — lets very different
//	measurement spaces (voxels, units, behavior, models) meet on common
//	ground.  RDMs are the workhorse of:
//	  • Representational similarity analysis of fMRI / ephys data
//	  • Model-to-brain comparison (semantic, perceptual, layer activations)
//	  • Condition-structure discovery via clustering and embedding
//
// ✨ Key features:
//   - correlation (1 − Pearson r), Euclidean and cosine metrics
//   - canonical condensed layout: pair (i,j), i<j, ordered by i then j,
//     exactly N·(N−1)/2 entries — no redundant symmetric storage
//   - strict zero-variance detection under the correlation metric
//   - square ↔ condensed conversion with symmetry validation (round-trip safe)
//   - model RDMs from numeric attributes (|aᵢ−aⱼ|) or category membership (0/1)
//
// ⚙️ Usage:
//
//	import "github.com/repsimlab/repsim/rdm"
//
//	opts := rdm.DefaultOptions()       // Metric: rdm.Correlation
//	neural, err := rdm.Compute(patterns, labels, &opts)
//	if err != nil { ... }
//
//	model, err := rdm.FromAttribute([]float64{.3, .35, .2}, labels)
//	...
//	d, _ := neural.At(0, 1)            // pairwise dissimilarity
//	sq := neural.Square()              // *mat.Dense view for plotting
//
// Performance:
//
//   - Time:   O(N²·V) for N conditions with V-voxel patterns
//   - Memory: O(N²) for the condensed triangle
//
// All functions return sentinel errors from errors.go; nothing in this
// package panics on user input.
package rdm
