package io

import (
	"fmt"

	"github.com/phil-mansfield/table"
	"gonum.org/v1/gonum/spatial/r3"
)

// ReadPoints reads the points stored in the columns cols of the text table
// fname.
func ReadPoints(fname string, cols Columns) ([]r3.Vec, error) {
	data, err := table.ReadTable(fname, cols[:], nil)
	if err != nil { return nil, err }
	if len(data) != 3 {
		return nil, fmt.Errorf(
			"Expected 3 columns from %s, but read %d.", fname, len(data),
		)
	}

	xs, ys, zs := data[0], data[1], data[2]
	vs := make([]r3.Vec, len(xs))
	for i := range vs {
		vs[i] = r3.Vec{X: xs[i], Y: ys[i], Z: zs[i]}
	}
	return vs, nil
}
