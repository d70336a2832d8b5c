// SPDX-License-Identifier: MIT
// Package: lvcausal/dataset
//
// errors.go — sentinel errors for the dataset package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers use errors.Is.
//   • Every message is prefixed with "dataset: " for easy grepping.
//   • Call sites attach context with datasetErrorf(op, err), never by
//     formatting parameters into the sentinel itself.
//   • Nothing in this package panics on user input.

package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrNoColumns is returned when a dataset would have zero columns.
	ErrNoColumns = errors.New("dataset: at least one column is required")

	// ErrEmptyName indicates a column with an empty name.
	ErrEmptyName = errors.New("dataset: column name is empty")

	// ErrDuplicateColumn indicates two columns share a name.
	ErrDuplicateColumn = errors.New("dataset: duplicate column name")

	// ErrLengthMismatch indicates columns (or a replacement column) of unequal length.
	ErrLengthMismatch = errors.New("dataset: column length mismatch")

	// ErrMissingColumn indicates a referenced column is not present.
	ErrMissingColumn = errors.New("dataset: missing column")

	// ErrNaNInf indicates a NaN or ±Inf cell; the model assumes no missing values.
	ErrNaNInf = errors.New("dataset: NaN or Inf value")

	// ErrOutOfRange indicates a row index outside [0, Len()).
	ErrOutOfRange = errors.New("dataset: row index out of range")
)

// Operation tags used as error prefixes.
const (
	opNew        = "New"
	opFromRows   = "FromRows"
	opColumn     = "Column"
	opRow        = "Row"
	opWithColumn = "WithColumn"
	opSelect     = "Select"
)

// datasetErrorf prefixes err with the operation tag, keeping the sentinel
// reachable through errors.Is.
func datasetErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
