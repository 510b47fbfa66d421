// Package plot turns analysis results into structured JSON plot
// payloads for an external renderer. Nothing here draws pixels: every
// figure is emitted as a self-describing document a sidecar plotting
// service (or a notebook) can materialize.
//
// 🚀 Why payloads instead of images?
//
//	The computation pipeline is a batch tool; rendering styles, sizes and
//	toolkits vary per consumer.  Emitting the *data* of each figure —
//	heatmap cells with labels, dendrogram line segments, embedding points —
//	keeps the pipeline renderer-agnostic and the outputs diffable.
//
// ✨ Supported figures:
//   - RDM heatmap: full square matrix, condition labels, metric name
//   - dendrogram: merge tree flattened to drawable line segments with
//     leaf labels in display order
//   - embedding scatter: one labeled 2-D point per condition plus the
//     final stress
//
// ⚙️ Usage:
//
//	doc := plot.FromRDM(neural, "VT RDM")
//	err := plot.WriteJSON("rdm.json", doc)
//
// All builders return sentinel errors from errors.go on nil or
// inconsistent inputs.
package plot
