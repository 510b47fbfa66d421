// Package dataset: sentinel errors.
//
// Validation order inside every loader is shape → values → semantics:
// structural problems (missing sections, ragged rows) are reported before
// value problems (bad numbers), which are reported before semantic ones
// (unknown run or mask names, out-of-range voxels).
package dataset

import "errors"

var (
	// ErrEmptyManifest indicates a manifest file without any content.
	ErrEmptyManifest = errors.New("dataset: manifest is empty")

	// ErrNoRuns indicates a manifest with neither run entries nor a
	// session BOLD + label table pair.
	ErrNoRuns = errors.New("dataset: manifest lists no runs")

	// ErrMixedLayout indicates a manifest combining run entries with
	// session-level bold/labels paths.
	ErrMixedLayout = errors.New("dataset: manifest mixes run and session layouts")

	// ErrBadSessionSpec indicates a session-layout manifest missing its
	// bold or labels path.
	ErrBadSessionSpec = errors.New("dataset: session layout needs both bold and labels paths")

	// ErrBadTR indicates a non-positive or non-finite repetition time.
	ErrBadTR = errors.New("dataset: repetition time must be positive and finite")

	// ErrBadRunSpec indicates a run entry missing its BOLD or events path.
	ErrBadRunSpec = errors.New("dataset: run entry missing bold or events path")

	// ErrUnknownRun indicates a reference to a run name the manifest does
	// not declare.
	ErrUnknownRun = errors.New("dataset: unknown run name")

	// ErrUnknownMask indicates a reference to an undeclared ROI mask.
	ErrUnknownMask = errors.New("dataset: unknown mask name")

	// ErrNoScans indicates a BOLD matrix without rows.
	ErrNoScans = errors.New("dataset: bold matrix has no scans")

	// ErrNoVoxels indicates a BOLD matrix without columns.
	ErrNoVoxels = errors.New("dataset: bold matrix has no voxels")

	// ErrRaggedRows indicates BOLD rows of unequal width.
	ErrRaggedRows = errors.New("dataset: bold rows disagree on voxel count")

	// ErrBadBOLDFile indicates an Arrow file whose layout is not a single
	// fixed-width float64 scan column.
	ErrBadBOLDFile = errors.New("dataset: not a bold arrow file")

	// ErrBadEventsFile indicates an events table missing the onset,
	// duration or trial_type column.
	ErrBadEventsFile = errors.New("dataset: events file missing required columns")

	// ErrBadEventValue indicates an onset or duration that does not parse,
	// is negative, or is non-finite.
	ErrBadEventValue = errors.New("dataset: malformed onset or duration")

	// ErrBadLabelTable indicates a label table row without exactly a label
	// and a chunk index.
	ErrBadLabelTable = errors.New("dataset: malformed label table row")

	// ErrLabelScanMismatch indicates a label table whose row count
	// disagrees with the session BOLD's scan count.
	ErrLabelScanMismatch = errors.New("dataset: label rows disagree with bold scans")

	// ErrMaskOutOfRange indicates a mask index outside the voxel range.
	ErrMaskOutOfRange = errors.New("dataset: mask index out of voxel range")

	// ErrEmptyArchive indicates a pattern archive without any rows.
	ErrEmptyArchive = errors.New("dataset: pattern archive is empty")

	// ErrArchiveShape indicates archive rows whose pattern widths disagree,
	// or a save call with mismatched label and pattern counts.
	ErrArchiveShape = errors.New("dataset: archive patterns disagree on shape")
)
