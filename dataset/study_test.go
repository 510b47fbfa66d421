package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildStudy lays out a two-run study on disk: manifest, Arrow BOLD
// files and events tables, with a two-voxel ROI mask.
func buildStudy(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	for r := 1; r <= 2; r++ {
		scans := make([][]float64, 6)
		for i := range scans {
			scans[i] = []float64{float64(r), float64(i), float64(r * i), 0.5}
		}
		require.NoError(t, WriteBOLD(filepath.Join(dir, fmt.Sprintf("run-%d.arrow", r)), scans))

		events := "onset\tduration\ttrial_type\n0\t4\tface\n8\t4\thouse\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, fmt.Sprintf("run-%d.tsv", r)), []byte(events), 0o644))
	}

	manifest := `
study: demo
tr: 2.0
runs:
  - {name: run-1, bold: run-1.arrow, events: run-1.tsv}
  - {name: run-2, bold: run-2.arrow, events: run-2.tsv}
masks:
  roi: [1, 3]
`
	path := filepath.Join(dir, "study.yaml")
	require.NoError(t, os.WriteFile(path, []byte(manifest), 0o644))
	return path
}

// TestLoadRuns_Masked: manifest → masked glm.Run slices with the
// expected shapes and parsed events.
func TestLoadRuns_Masked(t *testing.T) {
	m, err := LoadManifest(buildStudy(t))
	require.NoError(t, err)

	runs, err := LoadRuns(m, "roi")
	require.NoError(t, err)
	require.Len(t, runs, 2)

	for _, run := range runs {
		rows, cols := run.Bold.Dims()
		assert.Equal(t, 6, rows)
		assert.Equal(t, 2, cols) // mask keeps voxels 1 and 3
		require.Len(t, run.Events, 2)
		assert.Equal(t, "face", run.Events[0].Condition)
		assert.Equal(t, "house", run.Events[1].Condition)
	}

	// Masked columns carry the original voxel values.
	assert.InDelta(t, 3.0, runs[0].Bold.At(3, 0), 0) // voxel 1 of scan 3, run 1
	assert.InDelta(t, 0.5, runs[0].Bold.At(3, 1), 0) // voxel 3 is constant 0.5
}

// TestLoadRuns_Unmasked keeps every voxel.
func TestLoadRuns_Unmasked(t *testing.T) {
	m, err := LoadManifest(buildStudy(t))
	require.NoError(t, err)

	runs, err := LoadRuns(m, "")
	require.NoError(t, err)
	_, cols := runs[0].Bold.Dims()
	assert.Equal(t, 4, cols)
}

// buildSessionStudy lays out a session-layout study: one Arrow BOLD
// spanning two chunks plus the label table splitting it into runs.
func buildSessionStudy(t *testing.T, labelRows string) string {
	t.Helper()
	dir := t.TempDir()

	scans := make([][]float64, 8)
	for i := range scans {
		scans[i] = []float64{float64(i), float64(2 * i)}
	}
	require.NoError(t, WriteBOLD(filepath.Join(dir, "session.arrow"), scans))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "labels.txt"), []byte(labelRows), 0o644))

	manifest := "study: haxby\ntr: 2.0\nbold: session.arrow\nlabels: labels.txt\n"
	path := filepath.Join(dir, "study.yaml")
	require.NoError(t, os.WriteFile(path, []byte(manifest), 0o644))
	return path
}

// TestLoadRuns_SessionLayout: the session BOLD splits into one run per
// chunk, with the chunk's scans and folded events.
func TestLoadRuns_SessionLayout(t *testing.T) {
	m, err := LoadManifest(buildSessionStudy(t,
		"labels chunks\n"+
			"rest 0\nface 0\nface 0\nrest 0\n"+
			"house 1\nhouse 1\nrest 1\nface 1\n"))
	require.NoError(t, err)

	runs, err := LoadRuns(m, "")
	require.NoError(t, err)
	require.Len(t, runs, 2)

	rows, cols := runs[0].Bold.Dims()
	assert.Equal(t, 4, rows)
	assert.Equal(t, 2, cols)
	require.Len(t, runs[0].Events, 1)
	assert.Equal(t, "face", runs[0].Events[0].Condition)
	assert.InDelta(t, 2.0, runs[0].Events[0].Onset, 0)
	assert.InDelta(t, 4.0, runs[0].Events[0].Duration, 0)

	// Chunk 1 scans carry the original session values.
	rows, _ = runs[1].Bold.Dims()
	assert.Equal(t, 4, rows)
	assert.InDelta(t, 4.0, runs[1].Bold.At(0, 0), 0)
	require.Len(t, runs[1].Events, 2)
	assert.Equal(t, "house", runs[1].Events[0].Condition)
	assert.InDelta(t, 0.0, runs[1].Events[0].Onset, 0)
	assert.Equal(t, "face", runs[1].Events[1].Condition)
	assert.InDelta(t, 6.0, runs[1].Events[1].Onset, 0)
}

// TestLoadRuns_SessionLabelMismatch: a label table shorter than the
// session is rejected.
func TestLoadRuns_SessionLabelMismatch(t *testing.T) {
	m, err := LoadManifest(buildSessionStudy(t, "face 0\nface 0\n"))
	require.NoError(t, err)

	_, err = LoadRuns(m, "")
	assert.ErrorIs(t, err, ErrLabelScanMismatch)
}

// TestLoadRuns_UnknownMask surfaces the lookup sentinel before any file
// is read.
func TestLoadRuns_UnknownMask(t *testing.T) {
	m, err := LoadManifest(buildStudy(t))
	require.NoError(t, err)

	_, err = LoadRuns(m, "nope")
	assert.ErrorIs(t, err, ErrUnknownMask)
}
