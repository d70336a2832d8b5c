package dataset_test

import (
	"fmt"

	"github.com/katalvlaran/lvcausal/dataset"
)

// ExampleDataset_WithColumn shows copy-on-write derivation: the original
// table keeps its shape after a column is added.
func ExampleDataset_WithColumn() {
	ds, err := dataset.New(
		dataset.Column{Name: "Z0", Values: []float64{0, 1, 0, 1}},
		dataset.Column{Name: "v0", Values: []float64{0, 1, 0, 1}},
		dataset.Column{Name: "y", Values: []float64{0, 10, 0, 10}},
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	augmented, err := ds.WithColumn("w_random", []float64{0.3, -1.2, 0.7, 0.1})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println(ds.Names(), ds.Len())
	fmt.Println(augmented.Names(), augmented.Len())
	// Output:
	// [Z0 v0 y] 4
	// [Z0 v0 y w_random] 4
}
