// SPDX-License-Identifier: MIT
// Package: lvcausal/dataset
//
// derive.go — copy-on-write derivations.
//
// Contract:
//   • The receiver is never modified.
//   • WithColumn shares every untouched column buffer with the receiver;
//     only the new/replaced column is freshly allocated.
//   • Select allocates fresh buffers for every column.

package dataset

// WithColumn returns a new Dataset equal to d plus the column name=values.
// If name already exists its column is replaced in place (same position);
// otherwise the column is appended.
//
// Errors: ErrEmptyName, ErrLengthMismatch, ErrNaNInf.
//
// Complexity: O(rows + cols).
func (d *Dataset) WithColumn(name string, values []float64) (*Dataset, error) {
	if name == "" {
		return nil, datasetErrorf(opWithColumn, ErrEmptyName)
	}
	if len(values) != d.rows {
		return nil, datasetErrorf(opWithColumn, ErrLengthMismatch)
	}
	if err := validateFinite(values); err != nil {
		return nil, datasetErrorf(opWithColumn, err)
	}

	owned := append([]float64(nil), values...)

	names := append([]string(nil), d.names...)
	cols := append([][]float64(nil), d.cols...)
	index := make(map[string]int, len(names)+1)
	for k, v := range d.index {
		index[k] = v
	}

	if j, ok := index[name]; ok {
		cols[j] = owned
	} else {
		index[name] = len(names)
		names = append(names, name)
		cols = append(cols, owned)
	}

	return &Dataset{names: names, index: index, cols: cols, rows: d.rows}, nil
}

// Select returns a new Dataset made of the rows at the given indices, in
// the given order. Indices may repeat (sampling with replacement is the
// caller's choice).
//
// Errors: ErrOutOfRange for any index outside [0, Len()).
//
// Complexity: O(len(indices)·cols).
func (d *Dataset) Select(indices []int) (*Dataset, error) {
	for _, i := range indices {
		if i < 0 || i >= d.rows {
			return nil, datasetErrorf(opSelect, ErrOutOfRange)
		}
	}

	cols := make([][]float64, len(d.cols))
	for j, src := range d.cols {
		dst := make([]float64, len(indices))
		for k, i := range indices {
			dst[k] = src[i]
		}
		cols[j] = dst
	}

	index := make(map[string]int, len(d.index))
	for k, v := range d.index {
		index[k] = v
	}

	return &Dataset{
		names: append([]string(nil), d.names...),
		index: index,
		cols:  cols,
		rows:  len(indices),
	}, nil
}
