// SPDX-License-Identifier: MIT
// Package: lvcausal/dataset
//
// dataset.go — constructors and the read-only API.
//
// Contract:
//   • Constructors validate in a fixed order: column count → names →
//     duplicates → lengths → finiteness. The first violation wins.
//   • Accessors never expose internal buffers.

package dataset

import (
	"fmt"
	"math"
	"sort"
)

// New builds a Dataset from the given columns, keeping their order.
// Input slices are copied.
//
// Errors: ErrNoColumns, ErrEmptyName, ErrDuplicateColumn, ErrLengthMismatch,
// ErrNaNInf (each wrapped with the "New" tag).
//
// Complexity: O(rows·cols) time and memory.
func New(cols ...Column) (*Dataset, error) {
	if len(cols) == 0 {
		return nil, datasetErrorf(opNew, ErrNoColumns)
	}

	names := make([]string, len(cols))
	data := make([][]float64, len(cols))
	for i, c := range cols {
		names[i] = c.Name
		data[i] = append([]float64(nil), c.Values...)
	}

	ds, err := assemble(names, data)
	if err != nil {
		return nil, datasetErrorf(opNew, err)
	}

	return ds, nil
}

// FromRows builds a Dataset from a sequence of row maps. Every row must
// carry the same set of keys as the first row; columns are ordered
// lexically by name.
//
// An empty row slice is rejected with ErrNoColumns because no column names
// can be inferred from it.
func FromRows(rows []map[string]float64) (*Dataset, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, datasetErrorf(opFromRows, ErrNoColumns)
	}

	names := make([]string, 0, len(rows[0]))
	for name := range rows[0] {
		names = append(names, name)
	}
	sort.Strings(names)

	data := make([][]float64, len(names))
	for j := range data {
		data[j] = make([]float64, len(rows))
	}
	for i, row := range rows {
		if len(row) != len(names) {
			return nil, datasetErrorf(opFromRows, ErrMissingColumn)
		}
		for j, name := range names {
			v, ok := row[name]
			if !ok {
				return nil, datasetErrorf(opFromRows, ErrMissingColumn)
			}
			data[j][i] = v
		}
	}

	ds, err := assemble(names, data)
	if err != nil {
		return nil, datasetErrorf(opFromRows, err)
	}

	return ds, nil
}

// assemble validates owned buffers and wires the index. It takes ownership
// of names and data.
func assemble(names []string, data [][]float64) (*Dataset, error) {
	if len(names) == 0 {
		return nil, ErrNoColumns
	}

	index := make(map[string]int, len(names))
	for i, name := range names {
		if name == "" {
			return nil, ErrEmptyName
		}
		if _, dup := index[name]; dup {
			return nil, ErrDuplicateColumn
		}
		index[name] = i
	}

	rows := len(data[0])
	for _, col := range data {
		if len(col) != rows {
			return nil, ErrLengthMismatch
		}
		if err := validateFinite(col); err != nil {
			return nil, err
		}
	}

	return &Dataset{names: names, index: index, cols: data, rows: rows}, nil
}

// validateFinite rejects NaN and ±Inf cells.
func validateFinite(col []float64) error {
	for _, v := range col {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNaNInf
		}
	}

	return nil
}

// Len returns the number of rows.
func (d *Dataset) Len() int { return d.rows }

// Width returns the number of columns.
func (d *Dataset) Width() int { return len(d.names) }

// Names returns the column names in order. The slice is a copy.
func (d *Dataset) Names() []string {
	return append([]string(nil), d.names...)
}

// Has reports whether a column called name exists.
func (d *Dataset) Has(name string) bool {
	_, ok := d.index[name]
	return ok
}

// Column returns a copy of the named column.
// Returns ErrMissingColumn (wrapped with the column name) when absent.
func (d *Dataset) Column(name string) ([]float64, error) {
	j, ok := d.index[name]
	if !ok {
		return nil, datasetErrorf(opColumn, missing(name))
	}

	return append([]float64(nil), d.cols[j]...), nil
}

// Row returns row i as a name → value map.
func (d *Dataset) Row(i int) (map[string]float64, error) {
	if i < 0 || i >= d.rows {
		return nil, datasetErrorf(opRow, ErrOutOfRange)
	}

	row := make(map[string]float64, len(d.names))
	for j, name := range d.names {
		row[name] = d.cols[j][i]
	}

	return row, nil
}

// missing wraps ErrMissingColumn with the offending name.
func missing(name string) error {
	return fmt.Errorf("%w %q", ErrMissingColumn, name)
}
