package dataset

import (
	"os"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

// boldColumn is the single column of a BOLD Arrow file: one fixed-width
// float64 list per scan.
const boldColumn = "scan"

// WriteBOLD persists a scans × voxels matrix as an Arrow IPC stream with
// a single fixed-size-list column, one entry per scan.
//
// Contracts: at least one scan, at least one voxel, equal row widths.
//
// Errors: ErrNoScans, ErrNoVoxels, ErrRaggedRows, plus wrapped I/O
// failures.
func WriteBOLD(path string, scans [][]float64) error {
	// Stage 1 — shape validation.
	if len(scans) == 0 {
		return ErrNoScans
	}
	voxels := len(scans[0])
	if voxels == 0 {
		return ErrNoVoxels
	}
	for _, row := range scans {
		if len(row) != voxels {
			return ErrRaggedRows
		}
	}

	// Stage 2 — build the record batch.
	mem := memory.DefaultAllocator
	schema := arrow.NewSchema([]arrow.Field{
		{Name: boldColumn, Type: arrow.FixedSizeListOf(int32(voxels), arrow.PrimitiveTypes.Float64)},
	}, nil)

	b := array.NewRecordBuilder(mem, schema)
	defer b.Release()

	listB := b.Field(0).(*array.FixedSizeListBuilder)
	valB := listB.ValueBuilder().(*array.Float64Builder)
	for _, row := range scans {
		listB.Append(true)
		valB.AppendValues(row, nil)
	}

	rec := b.NewRecordBatch()
	defer rec.Release()

	// Stage 3 — write the IPC stream.
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := ipc.NewWriter(f, ipc.WithSchema(schema), ipc.WithAllocator(mem))
	if err = w.Write(rec); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}

// ReadBOLD loads a BOLD Arrow IPC stream back into a scans × voxels
// matrix. Multiple batches concatenate in stream order.
//
// Errors: ErrBadBOLDFile for a foreign layout, ErrNoScans for an empty
// stream, plus wrapped I/O failures.
func ReadBOLD(path string) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := ipc.NewReader(f, ipc.WithAllocator(memory.DefaultAllocator))
	if err != nil {
		return nil, err
	}
	defer r.Release()

	var out [][]float64
	for r.Next() {
		rec := r.RecordBatch()

		if rec.NumCols() != 1 || rec.Schema().Field(0).Name != boldColumn {
			return nil, ErrBadBOLDFile
		}
		col, ok := rec.Column(0).(*array.FixedSizeList)
		if !ok {
			return nil, ErrBadBOLDFile
		}
		vals, ok := col.ListValues().(*array.Float64)
		if !ok {
			return nil, ErrBadBOLDFile
		}

		var (
			voxels = int(col.DataType().(*arrow.FixedSizeListType).Len())
			flat   = vals.Float64Values()
			rows   = int(rec.NumRows())
			i      int
		)
		for i = 0; i < rows; i++ {
			row := make([]float64, voxels)
			copy(row, flat[i*voxels:(i+1)*voxels])
			out = append(out, row)
		}
	}
	if err = r.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrNoScans
	}
	return out, nil
}
