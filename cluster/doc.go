// Package cluster builds dendrograms from condensed dissimilarity
// matrices by agglomerative (bottom-up) hierarchical clustering.
//
// Starting from one singleton cluster per condition, the closest pair of
// clusters is merged repeatedly until one cluster remains; inter-cluster
// distances are updated with the Lance–Williams recurrences for the
// chosen linkage:
//
//   - Single   — nearest member pair; chains easily, equals the minimum
//     spanning tree's edge structure.
//   - Complete — farthest member pair; compact, diameter-bounded clusters.
//   - Average  — size-weighted mean of member distances (UPGMA).
//   - Ward     — minimal within-cluster variance increase (assumes the
//     input distances are Euclidean).
//
// The output is a merge tree in the conventional encoding: leaves are
// clusters 0..N−1, the t-th merge creates cluster N+t, and every merge
// records its two children, its height and the resulting size. A leaf
// ordering for dendrogram rendering is derived from the tree (left
// subtree before right, recursively).
//
// Determinism: merges scan pairs in a fixed order, so equal distances
// break ties toward the smallest cluster indices; repeated runs produce
// identical trees.
//
// Complexity: O(N³) time, O(N²) memory — comfortable for the ≤~100
// conditions typical of RSA.
package cluster
