package dataset

import (
	"io"
	"os"

	"github.com/parquet-go/parquet-go"
)

// patternRow is the Parquet row layout of a pattern archive: one named
// response pattern per row.
type patternRow struct {
	Condition string    `parquet:"condition"`
	Pattern   []float64 `parquet:"pattern"`
}

// SavePatterns persists per-condition response patterns to a Parquet
// file (zstd), one row per condition, preserving slice order.
//
// Contracts: len(conditions) == len(patterns) ≥ 1, all patterns equally
// wide and non-empty.
//
// Errors: ErrEmptyArchive, ErrArchiveShape, plus wrapped I/O failures.
func SavePatterns(path string, conditions []string, patterns [][]float64) error {
	// Stage 1 — shape validation.
	if len(patterns) == 0 {
		return ErrEmptyArchive
	}
	if len(conditions) != len(patterns) || len(patterns[0]) == 0 {
		return ErrArchiveShape
	}
	width := len(patterns[0])
	for _, p := range patterns {
		if len(p) != width {
			return ErrArchiveShape
		}
	}

	// Stage 2 — write rows.
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	pw := parquet.NewGenericWriter[patternRow](f, parquet.Compression(&parquet.Zstd))
	rows := make([]patternRow, len(patterns))
	for i := range patterns {
		rows[i] = patternRow{Condition: conditions[i], Pattern: patterns[i]}
	}
	if _, err = pw.Write(rows); err != nil {
		_ = pw.Close()
		return err
	}
	return pw.Close()
}

// LoadPatterns reads a pattern archive back into parallel condition and
// pattern slices, in row order.
//
// Errors: ErrEmptyArchive, ErrArchiveShape, plus wrapped I/O and Parquet
// decode failures.
func LoadPatterns(path string) ([]string, [][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, nil, err
	}
	pf, err := parquet.OpenFile(f, info.Size())
	if err != nil {
		return nil, nil, err
	}

	pr := parquet.NewGenericReader[patternRow](pf)
	rows := make([]patternRow, pr.NumRows())
	if _, err = pr.Read(rows); err != nil && err != io.EOF {
		return nil, nil, err
	}
	if len(rows) == 0 {
		return nil, nil, ErrEmptyArchive
	}

	var (
		width      = len(rows[0].Pattern)
		conditions = make([]string, len(rows))
		patterns   = make([][]float64, len(rows))
	)
	for i, row := range rows {
		if len(row.Pattern) != width || width == 0 {
			return nil, nil, ErrArchiveShape
		}
		conditions[i] = row.Condition
		patterns[i] = row.Pattern
	}
	return conditions, patterns, nil
}
