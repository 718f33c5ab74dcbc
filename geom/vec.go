package geom

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Tuple returns the components of v in x, y, z order.
func Tuple(v r3.Vec) [3]float64 { return [3]float64{v.X, v.Y, v.Z} }

// FromTuple is the inverse of Tuple.
func FromTuple(t [3]float64) r3.Vec { return r3.Vec{X: t[0], Y: t[1], Z: t[2]} }
