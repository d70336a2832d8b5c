// Package dataset holds the in-memory tabular data consumed by the
// estimator and refute packages: ordered, named numeric columns of equal
// length.
//
// 🚀 What is a Dataset?
//
//	A Dataset is column-major and immutable once built. Every derivation
//	(adding a column, replacing a column, selecting rows) returns a NEW
//	Dataset and leaves the receiver untouched, so a baseline table can be
//	handed to any number of refutation strategies without defensive copies.
//
// ✨ Key features:
//   - construction from named columns (New) or from row maps (FromRows)
//   - strict validation: equal lengths, unique non-empty names, finite cells
//   - copy-on-write derivation: WithColumn, Select
//   - Column returns a private copy; callers cannot corrupt shared buffers
//
// ⚙️ Usage:
//
//	ds, err := dataset.New(
//	  dataset.Column{Name: "Z0", Values: z},
//	  dataset.Column{Name: "v0", Values: t},
//	  dataset.Column{Name: "y", Values: y},
//	)
//	if err != nil {
//	  // ErrLengthMismatch, ErrDuplicateColumn, ErrNaNInf, ...
//	}
//	noisy, err := ds.WithColumn("w_random", noise) // ds is unchanged
//
// Errors are package-level sentinels; branch on them with errors.Is.
package dataset
