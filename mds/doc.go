// Package mds embeds conditions into a low-dimensional space that
// preserves their pairwise dissimilarities (multidimensional scaling).
//
// Two complementary solvers:
//
//   - Classical (Torgerson) scaling — algebraic, deterministic, one shot:
//     double-center the squared distances, eigendecompose, and read k-D
//     coordinates off the top positive eigenpairs. Exact when the input
//     distances are Euclidean; a well-behaved start otherwise.
//
//   - SMACOF — iterative stress majorization via the Guttman transform.
//     Raw stress Σ(δᵢⱼ − dᵢⱼ)² is non-increasing across iterations (a
//     property the tests pin), converging on relative stress change or
//     an iteration cap. Initialization is classical by default, or
//     seeded random for multi-start experiments.
//
// ⚠️ Axis ambiguity: an MDS solution is unique only up to rotation,
// reflection and translation. Callers must not assume a consistent
// orientation across runs or solvers; only the inter-point distances are
// meaningful.
//
// Determinism: random initialization takes an explicit int64 seed
// (seed==0 selects a fixed default), so configured runs reproduce
// bit-for-bit.
package mds
