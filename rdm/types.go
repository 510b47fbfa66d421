// Package rdm: metric enum, options and the RDM value type.
package rdm

// Metric selects the pairwise dissimilarity between two response patterns.
//
//   - Correlation — 1 − Pearson r. Scale- and offset-invariant; the standard
//     choice for fMRI response patterns. Undefined on constant patterns
//     (ErrZeroVariance).
//   - Euclidean — L2 norm of the difference. Sensitive to overall amplitude.
//   - Cosine — 1 − cosine similarity. Scale-invariant but offset-sensitive;
//     undefined on all-zero patterns (ErrZeroNorm).
//   - Model — marker for hand-built model RDMs; not a computable metric and
//     rejected by Compute.
type Metric int

const (
	// Correlation distance: 1 − Pearson correlation coefficient.
	Correlation Metric = iota

	// Euclidean distance: ‖a − b‖₂.
	Euclidean

	// Cosine distance: 1 − (a·b)/(‖a‖‖b‖).
	Cosine

	// Model marks a hand-authored dissimilarity structure.
	Model
)

// String returns the canonical lowercase metric name.
func (m Metric) String() string {
	switch m {
	case Correlation:
		return "correlation"
	case Euclidean:
		return "euclidean"
	case Cosine:
		return "cosine"
	case Model:
		return "model"
	default:
		return "unknown"
	}
}

// ParseMetric maps a canonical name back onto a Metric.
// Returns ErrUnknownMetric for anything else (including "model", which is
// a marker, not a computable metric).
func ParseMetric(s string) (Metric, error) {
	switch s {
	case "correlation":
		return Correlation, nil
	case "euclidean":
		return Euclidean, nil
	case "cosine":
		return Cosine, nil
	default:
		return 0, ErrUnknownMetric
	}
}

// Options configures RDM computation.
//
// Fields:
//   - Metric — pairwise dissimilarity kind; see Metric.
//
// Example:
//
//	opts := rdm.DefaultOptions()
//	opts.Metric = rdm.Euclidean
//	r, err := rdm.Compute(patterns, labels, &opts)
type Options struct {
	Metric Metric
}

// DefaultOptions returns the canonical configuration: correlation distance.
func DefaultOptions() Options {
	return Options{Metric: Correlation}
}

// RDM is a representational dissimilarity matrix over N conditions, stored
// as the vectorized upper triangle in canonical order: pair (i,j) for i<j,
// ordered by i then j. Immutable after construction; accessors copy.
type RDM struct {
	n      int
	metric Metric
	labels []string  // len n, may hold empty strings
	data   []float64 // len n·(n−1)/2
}

// NumConditions returns N, the number of conditions.
func (r *RDM) NumConditions() int { return r.n }

// Len returns the number of condensed entries, N·(N−1)/2.
func (r *RDM) Len() int { return len(r.data) }

// Metric reports the metric that produced this RDM (Model for hand-built).
func (r *RDM) Metric() Metric { return r.metric }

// Labels returns a copy of the condition labels (length N).
func (r *RDM) Labels() []string {
	out := make([]string, len(r.labels))
	copy(out, r.labels)
	return out
}

// Condensed returns a copy of the vectorized upper triangle.
func (r *RDM) Condensed() []float64 {
	out := make([]float64, len(r.data))
	copy(out, r.data)
	return out
}
