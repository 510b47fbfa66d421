package dataset

// ApplyMask restricts a scans × voxels matrix to the masked voxel
// columns, in mask order. An empty mask returns the input unchanged.
//
// Errors: ErrNoScans, ErrMaskOutOfRange.
func ApplyMask(scans [][]float64, mask []int) ([][]float64, error) {
	if len(scans) == 0 {
		return nil, ErrNoScans
	}
	if len(mask) == 0 {
		return scans, nil
	}

	voxels := len(scans[0])
	for _, v := range mask {
		if v < 0 || v >= voxels {
			return nil, ErrMaskOutOfRange
		}
	}

	out := make([][]float64, len(scans))
	for i, row := range scans {
		if len(row) != voxels {
			return nil, ErrRaggedRows
		}
		sub := make([]float64, len(mask))
		for k, v := range mask {
			sub[k] = row[v]
		}
		out[i] = sub
	}
	return out, nil
}
