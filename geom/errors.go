package geom

import "errors"

var (
	// ErrCollinearPoints is returned when three points lie on one line and
	// do not define a plane.
	ErrCollinearPoints = errors.New("points are collinear")

	// ErrNoUniqueIntersection is returned when three planes do not meet at a
	// single point.
	ErrNoUniqueIntersection = errors.New("planes have no unique intersection")

	// ErrNonFinite is returned when a point, normal, or offset is infinite or
	// NaN, or when the resulting plane could not be represented.
	ErrNonFinite = errors.New("values are not finite")

	// ErrDegenerateNormal is returned for a zero-length normal.
	ErrDegenerateNormal = errors.New("normal has zero length")
)
