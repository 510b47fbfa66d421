// Package dataset loads fMRI study inputs — BOLD time series, stimulus
// events and ROI voxel masks — from files into the in-memory shapes the
// estimation pipeline consumes, and persists estimated response patterns
// for reuse.
//
// 🚀 What does it hold?
//
//	A study is described by a single YAML manifest in one of two layouts:
//	per-run entries (a BOLD file plus an events.tsv each) or a session
//	layout (one session-long BOLD file plus a per-scan label table whose
//	chunk column splits the session into runs).  BOLD matrices travel as
//	Arrow IPC files (one fixed-width float64 row per scan); label tables
//	are folded into onset/duration events grouped by chunk.  Optional
//	named ROI masks restrict voxels in either layout.
//
// ✨ Key features:
//   - YAML study manifest with validation (TR, run entries, mask indices)
//   - Arrow IPC round trip for scans × voxels float64 matrices
//   - BIDS events.tsv reader (onset / duration / trial_type, any column order)
//   - per-scan label tables → boxcar events, grouped by chunk into runs
//   - named ROI masks restricting patterns to a voxel subset
//   - Parquet pattern archive (zstd) so GLM estimates can be shared
//     without refitting
//
// ⚙️ Usage:
//
//	m, err := dataset.LoadManifest("study.yaml")
//	if err != nil { ... }
//
//	runs, err := dataset.LoadRuns(m, "vt") // masked glm.Run per manifest run
//	...
//	set, err := glm.EstimatePatterns(runs, m.TR, nil)
//	...
//	err = dataset.SavePatterns("patterns.parquet", set.Conditions(), set.Vectors())
//
// File paths inside a manifest are resolved relative to the manifest's
// own directory. All loaders return sentinel errors from errors.go;
// nothing in this package panics on user input.
package dataset
