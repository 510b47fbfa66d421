package cluster_test

import (
	"testing"

	"github.com/repsimlab/repsim/cluster"
	"github.com/repsimlab/repsim/rdm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lineRDM builds a Euclidean RDM over 1-D "patterns" at the given
// coordinates, which keeps every expected pairwise distance obvious.
func lineRDM(t *testing.T, coords []float64, labels []string) *rdm.RDM {
	t.Helper()

	patterns := make([][]float64, len(coords))
	for i, c := range coords {
		patterns[i] = []float64{c}
	}
	opts := rdm.Options{Metric: rdm.Euclidean}
	r, err := rdm.Compute(patterns, labels, &opts)
	require.NoError(t, err)
	return r
}

// TestAgglomerate_SingleLinkage pins the full merge sequence on points
// 0, 1, 3, 7: single linkage follows the minimum spanning tree, so the
// merge heights are the sorted MST edge weights 1, 2, 4.
func TestAgglomerate_SingleLinkage(t *testing.T) {
	r := lineRDM(t, []float64{0, 1, 3, 7}, []string{"a", "b", "c", "d"})

	d, err := cluster.Agglomerate(r, cluster.Single)
	require.NoError(t, err)
	require.Len(t, d.Merges, 3)

	assert.Equal(t, cluster.Merge{Left: 0, Right: 1, Height: 1, Size: 2}, d.Merges[0])
	assert.Equal(t, cluster.Merge{Left: 4, Right: 2, Height: 2, Size: 3}, d.Merges[1])
	assert.Equal(t, cluster.Merge{Left: 5, Right: 3, Height: 4, Size: 4}, d.Merges[2])

	assert.Equal(t, []int{0, 1, 2, 3}, d.Order)
	assert.Equal(t, []string{"a", "b", "c", "d"}, d.Labels)
}

// TestAgglomerate_CompleteLinkage verifies the farthest-pair rule on the
// same geometry: heights become 1, 3, 7.
func TestAgglomerate_CompleteLinkage(t *testing.T) {
	r := lineRDM(t, []float64{0, 1, 3, 7}, nil)

	d, err := cluster.Agglomerate(r, cluster.Complete)
	require.NoError(t, err)

	heights := []float64{d.Merges[0].Height, d.Merges[1].Height, d.Merges[2].Height}
	assert.Equal(t, []float64{1, 3, 7}, heights)
}

// TestAgglomerate_MonotoneHeights checks non-decreasing merge heights for
// every linkage on a two-cluster geometry.
func TestAgglomerate_MonotoneHeights(t *testing.T) {
	// Two tight groups far apart.
	r := lineRDM(t, []float64{0, 0.5, 1, 10, 10.4, 11}, nil)

	for _, linkage := range []cluster.Linkage{cluster.Single, cluster.Complete, cluster.Average, cluster.Ward} {
		d, err := cluster.Agglomerate(r, linkage)
		require.NoError(t, err, linkage.String())

		for i := 1; i < len(d.Merges); i++ {
			assert.GreaterOrEqual(t, d.Merges[i].Height, d.Merges[i-1].Height,
				"%s merge %d", linkage, i)
		}
		// The final merge spans all conditions.
		assert.Equal(t, 6, d.Merges[len(d.Merges)-1].Size)
	}
}

// TestAgglomerate_GroupsBeforeGap verifies that both tight groups fully
// form before the cross-gap merge under average linkage.
func TestAgglomerate_GroupsBeforeGap(t *testing.T) {
	r := lineRDM(t, []float64{0, 0.5, 1, 10, 10.4, 11}, nil)

	d, err := cluster.Agglomerate(r, cluster.Average)
	require.NoError(t, err)

	// The last merge is the only one bridging the gap; its height dwarfs
	// the within-group merges.
	last := d.Merges[len(d.Merges)-1]
	assert.Greater(t, last.Height, 8.0)
	for _, m := range d.Merges[:len(d.Merges)-1] {
		assert.Less(t, m.Height, 1.5)
	}

	// Leaf order keeps each group contiguous.
	order := d.Order
	require.Len(t, order, 6)
	half := map[int]bool{}
	for _, leaf := range order[:3] {
		half[leaf] = true
	}
	group := leaf3(half)
	assert.True(t, group, "first three ordered leaves come from one group, got %v", order)
}

// leaf3 reports whether the set holds {0,1,2} or {3,4,5}.
func leaf3(half map[int]bool) bool {
	return (half[0] && half[1] && half[2]) || (half[3] && half[4] && half[5])
}

// TestAgglomerate_Validation covers the sentinels.
func TestAgglomerate_Validation(t *testing.T) {
	_, err := cluster.Agglomerate(nil, cluster.Single)
	assert.ErrorIs(t, err, cluster.ErrNilRDM)

	r := lineRDM(t, []float64{0, 1}, nil)
	_, err = cluster.Agglomerate(r, cluster.Linkage(99))
	assert.ErrorIs(t, err, cluster.ErrUnknownLinkage)
}

// TestParseLinkage_RoundTrip covers the name mapping.
func TestParseLinkage_RoundTrip(t *testing.T) {
	for _, l := range []cluster.Linkage{cluster.Single, cluster.Complete, cluster.Average, cluster.Ward} {
		got, err := cluster.ParseLinkage(l.String())
		require.NoError(t, err)
		assert.Equal(t, l, got)
	}
	_, err := cluster.ParseLinkage("centroid")
	assert.ErrorIs(t, err, cluster.ErrUnknownLinkage)
}
