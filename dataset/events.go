package dataset

import (
	"encoding/csv"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/repsimlab/repsim/glm"
)

// ReadEvents loads a BIDS-style tab-separated events table. The header
// row must contain onset, duration and trial_type columns (any order,
// extra columns are ignored). Rows keep file order.
//
// Errors: ErrBadEventsFile, ErrBadEventValue, plus wrapped I/O and CSV
// parse failures.
func ReadEvents(path string) ([]glm.Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.Comma = '\t'
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 1 {
		return nil, ErrBadEventsFile
	}

	// Stage 1 — locate the required columns.
	var (
		onsetCol, durCol, typeCol = -1, -1, -1
	)
	for i, name := range records[0] {
		switch strings.TrimSpace(name) {
		case "onset":
			onsetCol = i
		case "duration":
			durCol = i
		case "trial_type":
			typeCol = i
		}
	}
	if onsetCol < 0 || durCol < 0 || typeCol < 0 {
		return nil, ErrBadEventsFile
	}

	// Stage 2 — parse the rows.
	events := make([]glm.Event, 0, len(records)-1)
	for _, row := range records[1:] {
		onset, err := parseEventNumber(row, onsetCol)
		if err != nil {
			return nil, err
		}
		dur, err := parseEventNumber(row, durCol)
		if err != nil {
			return nil, err
		}
		if typeCol >= len(row) || strings.TrimSpace(row[typeCol]) == "" {
			return nil, ErrBadEventsFile
		}
		events = append(events, glm.Event{
			Onset:     onset,
			Duration:  dur,
			Condition: strings.TrimSpace(row[typeCol]),
		})
	}
	return events, nil
}

// parseEventNumber reads one non-negative finite float cell.
func parseEventNumber(row []string, col int) (float64, error) {
	if col >= len(row) {
		return 0, ErrBadEventsFile
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(row[col]), 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrBadEventValue
	}
	return v, nil
}

// RestLabel marks scans in a label table that belong to no condition.
const RestLabel = "rest"

// labelRow is one parsed label-table line: the condition shown during
// one scan and the chunk (run) that scan belongs to.
type labelRow struct {
	label string
	chunk int
}

// readLabelRows parses a label table: whitespace-separated rows of
// "label chunk", one per scan, with an optional "labels chunks" header.
func readLabelRows(path string) ([]labelRow, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var rows []labelRow
	for i, line := range strings.Split(string(raw), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if i == 0 && fields[0] == "labels" {
			continue // header row
		}
		if len(fields) != 2 {
			return nil, ErrBadLabelTable
		}
		chunk, err := strconv.Atoi(fields[1])
		if err != nil || chunk < 0 {
			return nil, ErrBadLabelTable
		}
		rows = append(rows, labelRow{label: fields[0], chunk: chunk})
	}
	if len(rows) == 0 {
		return nil, ErrBadLabelTable
	}
	return rows, nil
}

// foldLabelRows converts per-scan labels into boxcar events, grouped by
// chunk, with onsets measured from each chunk's first scan. Consecutive
// scans sharing a label fold into one event; RestLabel rows separate
// events without producing any.
func foldLabelRows(rows []labelRow, tr float64) map[int][]glm.Event {
	var (
		out        = make(map[int][]glm.Event)
		chunkStart = make(map[int]int) // chunk → absolute index of its first scan
		start      = -1                // absolute index of the open block
		current    labelRow
	)
	flush := func(end int) {
		if start < 0 || current.label == RestLabel {
			return
		}
		base := chunkStart[current.chunk]
		out[current.chunk] = append(out[current.chunk], glm.Event{
			Onset:     float64(start-base) * tr,
			Duration:  float64(end-start) * tr,
			Condition: current.label,
		})
	}
	for i, r := range rows {
		if _, seen := chunkStart[r.chunk]; !seen {
			chunkStart[r.chunk] = i
		}
		if start < 0 || r.label != current.label || r.chunk != current.chunk {
			flush(i)
			start, current = i, r
		}
	}
	flush(len(rows))

	return out
}

// ReadLabelTable loads a per-scan label table and folds it into
// onset/duration events split by run: one event list per chunk index,
// scan indices converted to seconds via tr. LoadRuns consumes this for
// session-layout manifests; it is equally usable on its own for
// label-table datasets.
//
// Errors: ErrBadTR, ErrBadLabelTable, plus wrapped I/O failures.
func ReadLabelTable(path string, tr float64) (map[int][]glm.Event, error) {
	if tr <= 0 || math.IsNaN(tr) || math.IsInf(tr, 0) {
		return nil, ErrBadTR
	}
	rows, err := readLabelRows(path)
	if err != nil {
		return nil, err
	}
	return foldLabelRows(rows, tr), nil
}

// ChunkOrder returns the chunk indices of a label-table event map in
// ascending order, the run order LoadRuns and callers iterate in.
func ChunkOrder(events map[int][]glm.Event) []int {
	out := make([]int, 0, len(events))
	for c := range events {
		out = append(out, c)
	}
	sort.Ints(out)
	return out
}
