package rdm_test

import (
	"testing"

	"github.com/repsimlab/repsim/rdm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFromAttribute_SizeModel pins the worked size-model example: with
// sizes [.3, .35, .2, .2, .1, .5, 1, 0] the first condensed entry is
// |0.3 − 0.35| = 0.05.
func TestFromAttribute_SizeModel(t *testing.T) {
	sizes := []float64{.3, .35, .2, .2, .1, .5, 1, 0}

	m, err := rdm.FromAttribute(sizes, nil)
	require.NoError(t, err)

	assert.Equal(t, 8, m.NumConditions())
	assert.Equal(t, 28, m.Len())
	assert.Equal(t, rdm.Model, m.Metric())

	first, err := m.At(0, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.05, first, 1e-12)

	// Identical attribute values sit at distance zero: sizes[2] == sizes[3].
	same, err := m.At(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 0.0, same)
}

// TestFromAttribute_Validation covers count and finiteness rejection.
func TestFromAttribute_Validation(t *testing.T) {
	_, err := rdm.FromAttribute([]float64{1}, nil)
	assert.ErrorIs(t, err, rdm.ErrNoPatterns)

	_, err = rdm.FromAttribute([]float64{1, 2}, []string{"a"})
	assert.ErrorIs(t, err, rdm.ErrDimensionMismatch)
}

// TestFromCategories_Binary verifies the 0/1 same/different structure of a
// category model (the classic animate vs inanimate hypothesis).
func TestFromCategories_Binary(t *testing.T) {
	groups := []string{"animate", "animate", "inanimate", "inanimate"}
	labels := []string{"face", "cat", "house", "chair"}

	m, err := rdm.FromCategories(groups, labels)
	require.NoError(t, err)

	// Canonical order: (0,1) (0,2) (0,3) (1,2) (1,3) (2,3).
	assert.Equal(t, []float64{0, 1, 1, 1, 1, 0}, m.Condensed())
	assert.Equal(t, labels, m.Labels())
}

// TestFromCategories_Validation covers the shape sentinels.
func TestFromCategories_Validation(t *testing.T) {
	_, err := rdm.FromCategories([]string{"solo"}, nil)
	assert.ErrorIs(t, err, rdm.ErrNoPatterns)

	_, err = rdm.FromCategories([]string{"a", "b"}, []string{"too", "many", "labels"})
	assert.ErrorIs(t, err, rdm.ErrDimensionMismatch)
}
