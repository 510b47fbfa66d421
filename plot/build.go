package plot

import (
	"github.com/repsimlab/repsim/cluster"
	"github.com/repsimlab/repsim/mds"
	"github.com/repsimlab/repsim/rdm"
)

// FromRDM builds a heatmap document: the condensed triangle expanded to
// its full square form, with condition labels and the metric name.
//
// Errors: ErrNilInput.
func FromRDM(r *rdm.RDM, title string) (*Document, error) {
	if r == nil {
		return nil, ErrNilInput
	}

	var (
		n     = r.NumConditions()
		sq    = r.Square()
		cells = make([][]float64, n)
	)
	for i := 0; i < n; i++ {
		cells[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			cells[i][j] = sq.At(i, j)
		}
	}

	return &Document{
		Kind:  KindHeatmap,
		Title: title,
		Heatmap: &Heatmap{
			Labels: r.Labels(),
			Cells:  cells,
			Metric: r.Metric().String(),
		},
	}, nil
}

// FromDendrogram flattens a merge tree into drawable line segments.
// Leaves sit at x = 0..N−1 following the tree's display order; every
// merge contributes a three-segment bracket (two risers and a bridge)
// at its linkage height, and internal nodes sit at the midpoint of
// their children.
//
// Errors: ErrNilInput.
func FromDendrogram(d *cluster.Dendrogram, title string) (*Document, error) {
	if d == nil {
		return nil, ErrNilInput
	}

	var (
		n      = len(d.Order)
		pos    = make(map[int]float64, 2*n-1) // cluster id → x position
		height = make(map[int]float64, 2*n-1) // cluster id → merge height
		labels = make([]string, n)
		segs   = make([]Segment, 0, 3*(n-1))
	)
	for x, leaf := range d.Order {
		pos[leaf] = float64(x)
		labels[x] = d.Labels[leaf]
	}

	for step, m := range d.Merges {
		var (
			xl, xr = pos[m.Left], pos[m.Right]
			yl, yr = height[m.Left], height[m.Right]
		)
		segs = append(segs,
			Segment{X0: xl, Y0: yl, X1: xl, Y1: m.Height},
			Segment{X0: xr, Y0: yr, X1: xr, Y1: m.Height},
			Segment{X0: xl, Y0: m.Height, X1: xr, Y1: m.Height},
		)

		id := n + step
		pos[id] = (xl + xr) / 2
		height[id] = m.Height
	}

	return &Document{
		Kind:       KindDendrogram,
		Title:      title,
		Dendrogram: &Dendrogram{Labels: labels, Segments: segs},
	}, nil
}

// FromEmbedding builds a scatter document from the first two embedding
// dimensions. labels must carry one name per point.
//
// Errors: ErrNilInput, ErrBadEmbedding, ErrLabelMismatch.
func FromEmbedding(e *mds.Embedding, labels []string, title string) (*Document, error) {
	if e == nil {
		return nil, ErrNilInput
	}
	if len(e.Points) == 0 || len(e.Points[0]) < 2 {
		return nil, ErrBadEmbedding
	}
	if len(labels) != len(e.Points) {
		return nil, ErrLabelMismatch
	}

	points := make([]ScatterPoint, len(e.Points))
	for i, p := range e.Points {
		points[i] = ScatterPoint{Label: labels[i], X: p[0], Y: p[1]}
	}

	return &Document{
		Kind:    KindScatter,
		Title:   title,
		Scatter: &Scatter{Points: points, Stress: e.Stress},
	}, nil
}
