// Package cluster — Lance–Williams agglomeration over a condensed RDM.
//
// Design:
//   - Working state is a shrinking active-cluster list with a full
//     inter-cluster distance table; merges collapse two entries into one.
//   - Deterministic pair scan (i→j) makes tie-breaking stable: the merge
//     with the smallest indices wins among equal distances.
//   - No randomness, no goroutines; strict sentinels only.
package cluster

import (
	"math"

	"github.com/repsimlab/repsim/rdm"
)

// Agglomerate clusters the conditions of r bottom-up under the given
// linkage and returns the full dendrogram.
//
// Contracts:
//   - r is non-nil (its constructor already guarantees N ≥ 2 and finite,
//     symmetric, zero-diagonal contents).
//
// Errors: ErrNilRDM, ErrUnknownLinkage.
//
// Complexity: O(N³) time, O(N²) space.
func Agglomerate(r *rdm.RDM, linkage Linkage) (*Dendrogram, error) {
	if r == nil {
		return nil, ErrNilRDM
	}
	if linkage != Single && linkage != Complete && linkage != Average && linkage != Ward {
		return nil, ErrUnknownLinkage
	}

	// Working distance table over active clusters. Positions shrink as
	// clusters merge; ids and sizes travel alongside.
	var (
		n     = r.NumConditions()
		dist  = squareTable(r)
		ids   = make([]int, n)
		sizes = make([]int, n)
		i     int
	)
	for i = 0; i < n; i++ {
		ids[i] = i
		sizes[i] = 1
	}

	var (
		merges = make([]Merge, 0, n-1)
		step   int
	)
	for step = 0; step < n-1; step++ {
		// Closest active pair, first-wins tie-break.
		a, b := closestPair(dist)

		// Record the merge; new cluster id continues the leaf numbering.
		merged := Merge{
			Left:   ids[a],
			Right:  ids[b],
			Height: dist[a][b],
			Size:   sizes[a] + sizes[b],
		}
		merges = append(merges, merged)

		// Lance–Williams update writes the new cluster's distances into
		// row/column a, then row/column b is dropped.
		updateDistances(dist, sizes, a, b, linkage)
		ids[a] = n + step
		sizes[a] = merged.Size
		dist, ids, sizes = dropIndex(dist, ids, sizes, b)
	}

	return &Dendrogram{
		Merges: merges,
		Order:  leafOrder(merges, n),
		Labels: r.Labels(),
	}, nil
}

// squareTable expands the condensed triangle into a mutable full table.
func squareTable(r *rdm.RDM) [][]float64 {
	var (
		n   = r.NumConditions()
		out = make([][]float64, n)
		i   int
		j   int
		v   float64
	)
	for i = 0; i < n; i++ {
		out[i] = make([]float64, n)
	}
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			v, _ = r.At(i, j) // indices in range by construction
			out[i][j] = v
			out[j][i] = v
		}
	}
	return out
}

// closestPair returns the active pair (a, b), a<b, with minimal distance,
// scanning in fixed order so ties resolve to the smallest indices.
func closestPair(dist [][]float64) (int, int) {
	var (
		best       = math.Inf(1)
		a, b       = 0, 1
		i, j, size = 0, 0, len(dist)
	)
	for i = 0; i < size; i++ {
		for j = i + 1; j < size; j++ {
			if dist[i][j] < best {
				best = dist[i][j]
				a, b = i, j
			}
		}
	}
	return a, b
}

// updateDistances applies the Lance–Williams recurrence for the merge of
// positions a and b, writing the merged cluster's distances into slot a.
func updateDistances(dist [][]float64, sizes []int, a, b int, linkage Linkage) {
	var (
		size     = len(dist)
		na       = float64(sizes[a])
		nb       = float64(sizes[b])
		dab      = dist[a][b]
		k        int
		dak, dbk float64
		nd       float64
	)
	for k = 0; k < size; k++ {
		if k == a || k == b {
			continue
		}
		dak, dbk = dist[a][k], dist[b][k]

		switch linkage {
		case Single:
			nd = math.Min(dak, dbk)
		case Complete:
			nd = math.Max(dak, dbk)
		case Average:
			nd = (na*dak + nb*dbk) / (na + nb)
		default: // Ward; Agglomerate rejected everything else.
			nk := float64(sizes[k])
			nd = math.Sqrt(((na+nk)*dak*dak + (nb+nk)*dbk*dbk - nk*dab*dab) / (na + nb + nk))
		}

		dist[a][k] = nd
		dist[k][a] = nd
	}
}

// dropIndex removes position b from the working table and its parallel
// id/size slices, returning the shrunk views.
func dropIndex(dist [][]float64, ids []int, sizes []int, b int) ([][]float64, []int, []int) {
	size := len(dist)

	copy(dist[b:], dist[b+1:])
	dist = dist[:size-1]
	for i := range dist {
		copy(dist[i][b:], dist[i][b+1:])
		dist[i] = dist[i][:size-1]
	}

	copy(ids[b:], ids[b+1:])
	copy(sizes[b:], sizes[b+1:])

	return dist, ids[:size-1], sizes[:size-1]
}
