// Package cluster: linkage enum, merge-tree types and sentinel errors.
package cluster

import "errors"

var (
	// ErrNilRDM indicates a nil dissimilarity input.
	ErrNilRDM = errors.New("cluster: nil RDM")

	// ErrUnknownLinkage is returned for a Linkage value outside the enum.
	ErrUnknownLinkage = errors.New("cluster: unknown linkage rule")
)

// Linkage selects the inter-cluster distance update rule.
type Linkage int

const (
	// Single linkage: distance of the nearest member pair.
	Single Linkage = iota

	// Complete linkage: distance of the farthest member pair.
	Complete

	// Average linkage (UPGMA): size-weighted mean member distance.
	Average

	// Ward linkage: minimal within-cluster variance increase.
	Ward
)

// String returns the canonical lowercase linkage name.
func (l Linkage) String() string {
	switch l {
	case Single:
		return "single"
	case Complete:
		return "complete"
	case Average:
		return "average"
	case Ward:
		return "ward"
	default:
		return "unknown"
	}
}

// ParseLinkage maps a canonical name back onto a Linkage.
func ParseLinkage(s string) (Linkage, error) {
	switch s {
	case "single":
		return Single, nil
	case "complete":
		return Complete, nil
	case "average":
		return Average, nil
	case "ward":
		return Ward, nil
	default:
		return 0, ErrUnknownLinkage
	}
}

// Merge is one agglomeration step. Children identify the merged clusters:
// ids below N are leaves (condition indices); id N+t is the cluster the
// t-th merge created.
type Merge struct {
	Left   int
	Right  int
	Height float64
	Size   int
}

// Dendrogram is the complete merge tree over N conditions: exactly N−1
// merges, plus the leaf order a renderer should use (left subtree before
// right, recursively from the root).
type Dendrogram struct {
	Merges []Merge
	Order  []int
	Labels []string
}
