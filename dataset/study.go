package dataset

import (
	"gonum.org/v1/gonum/mat"

	"github.com/repsimlab/repsim/glm"
)

// LoadRuns materializes a manifest into glm.Run values, optionally
// restricted to the named ROI mask (maskName "" keeps all voxels).
//
// Run-layout manifests read one BOLD + events.tsv pair per entry.
// Session-layout manifests read the single session BOLD and its label
// table, partition scans by chunk, and yield one run per chunk in
// ascending chunk order.
//
// Errors: ErrUnknownMask, ErrLabelScanMismatch, plus every BOLD, mask,
// events and label-table sentinel.
func LoadRuns(m *Manifest, maskName string) ([]glm.Run, error) {
	var mask []int
	if maskName != "" {
		var err error
		if mask, err = m.Mask(maskName); err != nil {
			return nil, err
		}
	}

	if len(m.Runs) == 0 {
		return loadSession(m, mask)
	}

	runs := make([]glm.Run, 0, len(m.Runs))
	for i := range m.Runs {
		run, err := loadRun(m, &m.Runs[i], mask)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, nil
}

// loadSession splits a session-long BOLD matrix into runs using the
// per-scan label table: one run per chunk, events from the folded label
// blocks. Chunks whose scans are all rest carry no events and are
// skipped.
func loadSession(m *Manifest, mask []int) ([]glm.Run, error) {
	scans, err := ReadBOLD(m.Resolve(m.BOLD))
	if err != nil {
		return nil, err
	}
	if scans, err = ApplyMask(scans, mask); err != nil {
		return nil, err
	}

	rows, err := readLabelRows(m.Resolve(m.Labels))
	if err != nil {
		return nil, err
	}
	if len(rows) != len(scans) {
		return nil, ErrLabelScanMismatch
	}

	byChunk := make(map[int][][]float64)
	for i, r := range rows {
		byChunk[r.chunk] = append(byChunk[r.chunk], scans[i])
	}

	events := foldLabelRows(rows, m.TR)
	runs := make([]glm.Run, 0, len(events))
	for _, chunk := range ChunkOrder(events) {
		runs = append(runs, glm.Run{
			Bold:   denseFrom(byChunk[chunk]),
			Events: events[chunk],
		})
	}
	return runs, nil
}

// loadRun reads one run's BOLD and events files.
func loadRun(m *Manifest, spec *RunSpec, mask []int) (glm.Run, error) {
	scans, err := ReadBOLD(m.Resolve(spec.BOLD))
	if err != nil {
		return glm.Run{}, err
	}
	if scans, err = ApplyMask(scans, mask); err != nil {
		return glm.Run{}, err
	}

	events, err := ReadEvents(m.Resolve(spec.Events))
	if err != nil {
		return glm.Run{}, err
	}

	return glm.Run{Bold: denseFrom(scans), Events: events}, nil
}

// denseFrom copies a rectangular [][]float64 into a *mat.Dense.
func denseFrom(rows [][]float64) *mat.Dense {
	var (
		r    = len(rows)
		c    = len(rows[0])
		flat = make([]float64, 0, r*c)
	)
	for _, row := range rows {
		flat = append(flat, row...)
	}
	return mat.NewDense(r, c, flat)
}
