/*package geom contains routines for working with planes in three dimensions.

A Plane is built from three points and can then classify other points as lying
in front of it, behind it, or on it, and can be intersected with two other
planes. Vector arithmetic is done with gonum's spatial/r3 package.
*/
package geom

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Plane is the set of points X satisfying dot(Normal(), X) = Offset(). The
// normal always has unit length.
//
// Planes are immutable values and may be copied and shared freely.
type Plane struct {
	normal r3.Vec
	offset float64
}

// New creates the plane passing through a, b, and c. The normal is the
// normalized cross product of (a - b) and (c - b), so the ordering of the
// points determines which side of the plane is the front.
//
// If the three points lie on a single line, an error wrapping
// ErrCollinearPoints is returned. If a coordinate or edge is not finite, an
// error wrapping ErrNonFinite is returned.
func New(a, b, c r3.Vec) (Plane, error) {
	// Edges are rescaled to unit max-norm so the cross product can neither
	// overflow nor underflow for finite edges.
	ba, _ := maxNormalize(r3.Sub(a, b))
	bc, _ := maxNormalize(r3.Sub(c, b))
	n := r3.Cross(ba, bc)

	norm := r3.Norm(n)
	if !isFinite(norm) {
		return Plane{}, fmt.Errorf(
			"%w: %v, %v, %v", ErrNonFinite, Tuple(a), Tuple(b), Tuple(c),
		)
	} else if norm == 0 {
		return Plane{}, fmt.Errorf(
			"%w: %v, %v, %v", ErrCollinearPoints, Tuple(a), Tuple(b), Tuple(c),
		)
	}

	normal := r3.Scale(1/norm, n)
	offset := r3.Dot(normal, b)
	if !isFinite(offset) {
		return Plane{}, fmt.Errorf("%w: offset of %v", ErrNonFinite, Tuple(b))
	}
	return Plane{normal: normal, offset: offset}, nil
}

// NewFromNormal creates the plane dot(normal, X) = offset. normal does not
// need to be normalized: both normal and offset are rescaled by its length.
func NewFromNormal(normal r3.Vec, offset float64) (Plane, error) {
	n, scale := maxNormalize(normal)
	norm := r3.Norm(n)
	if !isFinite(norm) || !isFinite(offset) {
		return Plane{}, fmt.Errorf(
			"%w: %v, %g", ErrNonFinite, Tuple(normal), offset,
		)
	} else if norm == 0 {
		return Plane{}, fmt.Errorf("%w: %v", ErrDegenerateNormal, Tuple(normal))
	}

	unitOffset := offset / scale / norm
	if !isFinite(unitOffset) {
		return Plane{}, fmt.Errorf(
			"%w: %v, %g", ErrNonFinite, Tuple(normal), offset,
		)
	}
	return Plane{normal: r3.Scale(1/norm, n), offset: unitOffset}, nil
}

// maxNormalize divides v by its largest absolute component, which is also
// returned. Zero vectors are returned unchanged.
func maxNormalize(v r3.Vec) (r3.Vec, float64) {
	scale := math.Max(math.Abs(v.X), math.Max(math.Abs(v.Y), math.Abs(v.Z)))
	if scale == 0 || !isFinite(scale) { return v, scale }
	return r3.Vec{X: v.X / scale, Y: v.Y / scale, Z: v.Z / scale}, scale
}

func isFinite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

// Normal returns the unit normal of the plane.
func (p Plane) Normal() r3.Vec { return p.normal }

// Offset returns the signed distance from the origin to the plane, measured
// along the normal.
func (p Plane) Offset() float64 { return p.offset }

// Distance returns the signed distance from the plane to v. Positive values
// are in front of the plane.
func (p Plane) Distance(v r3.Vec) float64 {
	return r3.Dot(p.normal, v) - p.offset
}

// Flip returns the same set of points with the normal reversed, which swaps
// Front and Back.
func (p Plane) Flip() Plane {
	return Plane{normal: r3.Scale(-1, p.normal), offset: -p.offset}
}

// Project returns the point on the plane closest to v.
func (p Plane) Project(v r3.Vec) r3.Vec {
	return r3.Sub(v, r3.Scale(p.Distance(v), p.normal))
}

// Intersect returns the single point shared by p, p2, and p3.
//
// If the normals of the three planes are linearly dependent (two of the
// planes are parallel, or all three share a line) an error wrapping
// ErrNoUniqueIntersection is returned. The dependence test is exact, so
// nearly parallel planes give a large, poorly conditioned point rather than
// an error.
func (p Plane) Intersect(p2, p3 Plane) (r3.Vec, error) {
	n1, n2, n3 := p.normal, p2.normal, p3.normal
	d1, d2, d3 := p.offset, p2.offset, p3.offset

	n2xn3 := r3.Cross(n2, n3)
	n3xn1 := r3.Cross(n3, n1)
	n1xn2 := r3.Cross(n1, n2)

	num := r3.Add(
		r3.Add(r3.Scale(d1, n2xn3), r3.Scale(d2, n3xn1)),
		r3.Scale(d3, n1xn2),
	)
	div := r3.Dot(n1, n2xn3)
	if div == 0 {
		return r3.Vec{}, fmt.Errorf(
			"%w: %v, %v, %v", ErrNoUniqueIntersection, p, p2, p3,
		)
	}

	return r3.Scale(1/div, num), nil
}

func (p Plane) String() string {
	return fmt.Sprintf(
		"(%g, %g, %g)·X = %g", p.normal.X, p.normal.Y, p.normal.Z, p.offset,
	)
}
