// Package glm: events, runs, options, outputs and sentinel errors.
package glm

import (
	"errors"
	"sort"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrNoRuns indicates an empty run collection.
	ErrNoRuns = errors.New("glm: no runs provided")

	// ErrNoScans indicates a run whose BOLD matrix has no rows.
	ErrNoScans = errors.New("glm: run has no scans")

	// ErrNoEvents indicates a run without any condition events.
	ErrNoEvents = errors.New("glm: run has no events")

	// ErrBadTR indicates a non-positive or non-finite repetition time.
	ErrBadTR = errors.New("glm: repetition time must be positive and finite")

	// ErrBadEvent indicates a negative onset, a non-positive duration, or a
	// non-finite event field.
	ErrBadEvent = errors.New("glm: malformed event")

	// ErrEventOutOfWindow indicates an event starting at or beyond the end
	// of the scanned window.
	ErrEventOutOfWindow = errors.New("glm: event onset beyond scan window")

	// ErrBadDriftOrder indicates a negative polynomial drift order.
	ErrBadDriftOrder = errors.New("glm: drift order must be non-negative")

	// ErrNoVoxels indicates a BOLD matrix without columns.
	ErrNoVoxels = errors.New("glm: run has no voxels")

	// ErrVoxelMismatch indicates runs with differing voxel counts.
	ErrVoxelMismatch = errors.New("glm: runs disagree on voxel count")

	// ErrUnknownCondition indicates an event whose condition is outside the
	// closed universe configured via Options.Conditions.
	ErrUnknownCondition = errors.New("glm: event condition outside configured universe")

	// ErrSingularDesign indicates a rank-deficient design matrix (e.g. a
	// condition boxcar that never switches off duplicates the intercept).
	ErrSingularDesign = errors.New("glm: design matrix is rank deficient")

	// ErrUnderdeterminedDesign indicates a run with fewer scans than
	// design columns; the least-squares system has no unique solution.
	ErrUnderdeterminedDesign = errors.New("glm: fewer scans than design columns")
)

// Event is one stimulus presentation: a condition active on [Onset,
// Onset+Duration), in seconds from run start.
type Event struct {
	Onset     float64
	Duration  float64
	Condition string
}

// Run pairs one run's BOLD matrix (scans × voxels, already masked to the
// ROI of interest) with its condition events.
type Run struct {
	Bold   *mat.Dense
	Events []Event
}

// Options configures design construction and fitting.
//
// Fields:
//   - ConvolveHRF — convolve condition boxcars with the canonical
//     double-gamma HRF (default true; false keeps raw boxcars).
//   - DriftOrder — highest power of the polynomial drift regressors
//     (default 1, a linear trend; 0 keeps only the intercept).
//   - Conditions — optional closed condition universe. When set, events
//     with unlisted conditions are rejected and listed conditions never
//     observed in any run are reported as missing. When empty, the
//     universe is the union of observed conditions.
type Options struct {
	ConvolveHRF bool
	DriftOrder  int
	Conditions  []string
}

// DefaultOptions returns the canonical configuration: HRF convolution on,
// linear drift, open condition universe.
func DefaultOptions() Options {
	return Options{ConvolveHRF: true, DriftOrder: 1}
}

// PatternSet is the immutable outcome of EstimatePatterns: one averaged
// coefficient vector per estimated condition, plus the list of requested
// conditions that no run contained.
type PatternSet struct {
	conditions []string // estimated, sorted
	missing    []string // requested but never observed, sorted
	voxels     int
	patterns   map[string][]float64
}

// Conditions returns the estimated condition names in sorted order.
func (s *PatternSet) Conditions() []string {
	out := make([]string, len(s.conditions))
	copy(out, s.conditions)
	return out
}

// Missing returns requested conditions that appeared in no run.
func (s *PatternSet) Missing() []string {
	out := make([]string, len(s.missing))
	copy(out, s.missing)
	return out
}

// Voxels returns the pattern dimensionality.
func (s *PatternSet) Voxels() int { return s.voxels }

// Pattern returns a copy of one condition's response pattern; ok is false
// for unknown or missing conditions.
func (s *PatternSet) Pattern(condition string) ([]float64, bool) {
	p, ok := s.patterns[condition]
	if !ok {
		return nil, false
	}
	out := make([]float64, len(p))
	copy(out, p)
	return out, true
}

// Vectors returns all patterns ordered by Conditions(), shaped for
// rdm.Compute.
func (s *PatternSet) Vectors() [][]float64 {
	out := make([][]float64, len(s.conditions))
	for i, c := range s.conditions {
		p := s.patterns[c]
		v := make([]float64, len(p))
		copy(v, p)
		out[i] = v
	}
	return out
}

// sortedUnique returns the sorted deduplicated copy of names.
func sortedUnique(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
