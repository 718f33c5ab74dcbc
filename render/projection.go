/*package render draws points which have been classified against a plane.

Plots are two dimensional, so points are first projected onto one of the
coordinate planes. PNG output is written with gonum/plot and matplotlib output
is generated with pyplot.
*/
package render

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/phil-mansfield/planegeom/geom"
)

// Projection selects the two coordinates which are plotted.
type Projection int

const (
	XY Projection = iota
	XZ
	YZ
)

// ParseProjection converts "xy", "xz", or "yz" to a Projection.
func ParseProjection(s string) (Projection, error) {
	switch strings.ToLower(s) {
	case "xy":
		return XY, nil
	case "xz":
		return XZ, nil
	case "yz":
		return YZ, nil
	}
	return XY, fmt.Errorf(
		"Unrecognized projection '%s'. Only 'xy', 'xz', and 'yz' are supported.", s,
	)
}

func (proj Projection) String() string {
	switch proj {
	case XY:
		return "xy"
	case XZ:
		return "xz"
	case YZ:
		return "yz"
	}
	return "unknown"
}

// Labels returns the axis labels of the projection.
func (proj Projection) Labels() (x, y string) {
	s := proj.String()
	return s[:1], s[1:]
}

// Project returns the two plotted coordinates of v.
func (proj Projection) Project(v r3.Vec) (x, y float64) {
	switch proj {
	case XZ:
		return v.X, v.Z
	case YZ:
		return v.Y, v.Z
	}
	return v.X, v.Y
}

// Series is the projected set of points which lie on one side of a plane.
type Series struct {
	Side   geom.Side
	Xs, Ys []float64
}

var sideOrder = []geom.Side{geom.Front, geom.Back, geom.OnPlane}

// Split projects vs and groups them by side. Series are returned in Front,
// Back, OnPlane order and empty series are dropped.
func Split(vs []r3.Vec, sides []geom.Side, proj Projection) ([]Series, error) {
	if len(vs) != len(sides) {
		return nil, fmt.Errorf(
			"Given %d points, but %d sides.", len(vs), len(sides),
		)
	}

	series := []Series{}
	for _, side := range sideOrder {
		s := Series{Side: side}
		for i := range vs {
			if sides[i] != side { continue }
			x, y := proj.Project(vs[i])
			s.Xs = append(s.Xs, x)
			s.Ys = append(s.Ys, y)
		}
		if len(s.Xs) > 0 { series = append(series, s) }
	}
	return series, nil
}
