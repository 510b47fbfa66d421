// Package plot: document model and sentinel errors.
package plot

import "errors"

var (
	// ErrNilInput indicates a nil RDM, dendrogram or embedding.
	ErrNilInput = errors.New("plot: nil input")

	// ErrLabelMismatch indicates labels whose count disagrees with the
	// number of points or leaves.
	ErrLabelMismatch = errors.New("plot: label count mismatch")

	// ErrBadEmbedding indicates an embedding without points or with
	// coordinate rows narrower than two dimensions.
	ErrBadEmbedding = errors.New("plot: embedding needs at least two dimensions")

	// ErrNilDocument indicates a WriteJSON call without a document.
	ErrNilDocument = errors.New("plot: nil document")
)

// Kind names the figure a Document describes.
type Kind string

const (
	KindHeatmap    Kind = "rdm_heatmap"
	KindDendrogram Kind = "dendrogram"
	KindScatter    Kind = "embedding_scatter"
)

// Document is the universal payload envelope: one figure per document,
// with exactly one of the figure fields populated according to Kind.
type Document struct {
	Kind  Kind   `json:"kind"`
	Title string `json:"title,omitempty"`

	Heatmap    *Heatmap    `json:"heatmap,omitempty"`
	Dendrogram *Dendrogram `json:"dendrogram,omitempty"`
	Scatter    *Scatter    `json:"scatter,omitempty"`
}

// Heatmap carries a full square dissimilarity matrix with its axis
// labels; renderers index Cells[row][col].
type Heatmap struct {
	Labels []string    `json:"labels"`
	Cells  [][]float64 `json:"cells"`
	Metric string      `json:"metric"`
}

// Segment is one drawable line of a dendrogram, in (leaf-position,
// merge-height) coordinates: leaves sit at integer x positions 0..N−1,
// y is the linkage height.
type Segment struct {
	X0 float64 `json:"x0"`
	Y0 float64 `json:"y0"`
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
}

// Dendrogram is a merge tree flattened for drawing: leaf labels in
// display order plus the line segments of every merge bracket.
type Dendrogram struct {
	Labels   []string  `json:"labels"`
	Segments []Segment `json:"segments"`
}

// ScatterPoint is one labeled 2-D embedding coordinate.
type ScatterPoint struct {
	Label string  `json:"label"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// Scatter is an embedding figure: one point per condition and the raw
// stress of the configuration.
type Scatter struct {
	Points []ScatterPoint `json:"points"`
	Stress float64        `json:"stress"`
}
