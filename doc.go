// Package repsim is your in-memory toolkit for representational similarity
// analysis (RSA) — from raw imaging time series to dissimilarity matrices,
// model comparison, clustering and low-dimensional embeddings.
//
// 🚀 What is repsim?
//
//	A batch-oriented, deterministic library that brings together:
//		• Dataset loading: BOLD matrices (Arrow IPC), events tables, label
//		  tables, ROI masks, Parquet pattern archives
//		• Pattern estimation: per-run GLM fits with HRF-convolved regressors
//		• Dissimilarity: correlation, Euclidean and cosine RDMs in a
//		  canonical condensed (upper-triangle) layout
//		• Model comparison: Spearman rank correlation with permutation-based
//		  significance
//		• Structure discovery: agglomerative clustering (single, complete,
//		  average, Ward) and multidimensional scaling (Torgerson + SMACOF)
//		• Plot payloads: JSON heatmaps, dendrograms and scatter embeddings
//		  for external renderers
//
// ✨ Why choose repsim?
//
//   - Deterministic – every randomized routine takes an explicit seed
//   - Strict sentinels – no panics on user input, errors.Is everywhere
//   - Small surface – plain option structs, no global state
//   - Pure batch – no services, no hidden I/O, no concurrency to reason about
//
// The pipeline reads left to right across subpackages:
//
//	dataset/ — manifests, BOLD readers, events & label tables, masks, archives
//	glm/     — design matrices, HRF convolution, least-squares pattern fits
//	rdm/     — dissimilarity matrices, condensed storage, model RDMs
//	compare/ — rank-correlation comparison of neural and model RDMs
//	cluster/ — hierarchical agglomeration over condensed distances
//	mds/     — classical scaling and SMACOF stress optimization
//	plot/    — JSON plot payloads (heatmap, dendrogram, scatter)
//
// A minimal run:
//
//	set, _ := glm.EstimatePatterns(runs, tr, nil)
//	neural, _ := rdm.Compute(set.Vectors(), set.Conditions(), nil)
//	model, _ := rdm.FromAttribute(sizes, set.Conditions())
//	res, _ := compare.Spearman(neural.Condensed(), model.Condensed())
//	fmt.Println(res.Rho)
//
// See examples/ for full walkthroughs.
package repsim
