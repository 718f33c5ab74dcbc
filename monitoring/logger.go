// Package monitoring holds the diagnostic logger shared by the plane tools.
package monitoring

import (
	"log"

	"gonum.org/v1/gonum/spatial/r3"
)

// Logf is the package-level diagnostic logger. It defaults to log.Printf but
// may be replaced by SetLogger.
var Logf func(format string, v ...interface{}) = log.Printf

// SetLogger replaces the package logger. Passing nil sets a no-op logger.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}

// NearPlaneLogger reports a point which was classified as being in front of a
// plane despite lying very close to it. It has the signature of
// geom.NearPlaneFunc.
func NearPlaneLogger(v r3.Vec, dist float64) {
	Logf(
		"Found very small distance (%g) between point (%g, %g, %g) and "+
			"plane, assuming point in front of plane, might be wrong",
		dist, v.X, v.Y, v.Z,
	)
}
