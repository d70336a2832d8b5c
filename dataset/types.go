// SPDX-License-Identifier: MIT
// Package: lvcausal/dataset
//
// types.go — Column and Dataset definitions.

package dataset

// Column is a named numeric series used to build a Dataset.
// Values are copied on construction; the caller keeps ownership of the slice.
type Column struct {
	Name   string
	Values []float64
}

// Dataset is an immutable, column-major table of named float64 columns.
//
// Invariants (established by every constructor):
//   - len(names) == len(cols) ≥ 1
//   - every column has exactly rows elements
//   - names are unique and non-empty; index maps name → position
//   - every cell is finite
//
// Column buffers are never written after construction, which is what makes
// sharing them between a Dataset and its derivatives safe.
type Dataset struct {
	names []string
	index map[string]int
	cols  [][]float64
	rows  int
}
