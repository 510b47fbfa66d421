// Package compare correlates representational dissimilarity structures.
//
// The central question of RSA is not "which voxels respond" but "does the
// geometry of the neural responses match the geometry a hypothesis
// predicts". This package answers it with rank statistics:
//
//   - Spearman — rank correlation between two equal-length condensed RDM
//     vectors, with average ranks for ties (the standard convention) and a
//     Student-t significance approximation.
//   - PermutationTest — condition-label permutation under a fixed seed:
//     the conditions of one RDM are shuffled (pairs move together, so the
//     RDM's internal dependence structure is preserved) and the observed
//     rank correlation is compared against the permutation distribution.
//
// Rank correlation is preferred over Pearson here because only the ordinal
// structure of dissimilarities is assumed comparable across measurement
// spaces.
//
// Determinism: the permutation test takes an explicit int64 seed; seed==0
// maps onto a fixed default, so repeated runs reproduce bit-for-bit.
//
// All functions return sentinel errors; nothing panics on user input.
package compare
