package geom

import (
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// DistanceEps is the largest absolute distance at which a point is still
	// considered to lie on a plane. It sits just above the rounding error that
	// r3 arithmetic produces for coordinates of typical magnitude.
	DistanceEps = 3.7539393815679e-9

	// NearPlaneLimit is the distance below which a point classified as Front
	// is reported to a NearPlaneFunc. Distances this small are the ones that
	// print in exponent form.
	NearPlaneLimit = 1e-4
)

// Side is the location of a point relative to a plane.
type Side int

// Sides of a plane. Front is the side the normal points towards.
const (
	OnPlane Side = iota + 1
	Front
	Back
)

func (s Side) String() string {
	switch s {
	case OnPlane:
		return "ON_PLANE"
	case Front:
		return "FRONT"
	case Back:
		return "BACK"
	}
	return "UNKNOWN"
}

// NearPlaneFunc is called when a point is classified as Front even though it
// is only slightly further than DistanceEps from the plane. dist is the signed
// distance that was used for the classification.
type NearPlaneFunc func(v r3.Vec, dist float64)

// Side classifies v as being in front of, behind, or on the plane.
func (p Plane) Side(v r3.Vec) Side {
	return p.SideWarn(v, nil)
}

// SideWarn is identical to Side, but calls warn when the Front classification
// of v is fragile. warn may be nil. The result does not depend on warn.
func (p Plane) SideWarn(v r3.Vec, warn NearPlaneFunc) Side {
	dist := p.Distance(v)
	if dist < -DistanceEps {
		return Back
	} else if dist > DistanceEps {
		if warn != nil && dist < NearPlaneLimit {
			warn(v, dist)
		}
		return Front
	}
	return OnPlane
}

// ClassifyAll classifies every point in vs against p.
func ClassifyAll(p Plane, vs []r3.Vec, warn NearPlaneFunc) []Side {
	sides := make([]Side, len(vs))
	for i := range vs {
		sides[i] = p.SideWarn(vs[i], warn)
	}
	return sides
}
