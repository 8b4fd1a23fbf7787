// Package point provides the numeric primitives shared by the DCEL, hull,
// Delaunay, and Voronoi packages: 3D points, vector arithmetic, and the
// orientation/collinearity predicates the rest of the module builds on.
package point

import "golang.org/x/exp/constraints"

// Number is the set of numeric types the geometry core can be instantiated
// over. Callers choose precision: integer types give exact results for
// small inputs, float types trade exactness for range.
type Number interface {
	constraints.Signed | constraints.Float
}

// Vec is a point (or, depending on context, a displacement vector) in 3D
// space over a caller-chosen numeric type F.
type Vec[F Number] struct {
	X, Y, Z F
}

// Sub returns a - b.
func (a Vec[F]) Sub(b Vec[F]) Vec[F] {
	return Vec[F]{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Eq reports whether a and b have identical coordinates.
func (a Vec[F]) Eq(b Vec[F]) bool {
	return a.X == b.X && a.Y == b.Y && a.Z == b.Z
}

// Less gives a lexicographic order on (X, Y, Z), used by the planar
// fallback to sort points before building monotone chains.
func (a Vec[F]) Less(b Vec[F]) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.Z < b.Z
}

// Labeled extends a Vec with an opaque label, used to trace an input index
// through the paraboloid lift performed by the Delaunay triangulator.
type Labeled[F Number, L any] struct {
	Vec[F]
	Label L
}

// Positioned is satisfied by any point type carrying an underlying Vec[F]
// position. The hull engine is built against this instead of Vec[F]
// directly, so it runs equally over plain points and Labeled ones.
type Positioned[F Number] interface {
	Position() Vec[F]
}

// Position implements Positioned for Vec itself.
func (v Vec[F]) Position() Vec[F] { return v }

// Position implements Positioned for Labeled, discarding the label.
func (l Labeled[F, L]) Position() Vec[F] { return l.Vec }

// Cross returns the cross product a x b.
func Cross[F Number](a, b Vec[F]) Vec[F] {
	return Vec[F]{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

// Dot returns the scalar (dot) product of a and b.
func Dot[F Number](a, b Vec[F]) F {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Determinant returns the determinant of the 3x3 matrix with rows a, b, c.
// This is equivalent to Dot(a, Cross(b, c)), the signed volume of the
// parallelepiped spanned by a, b, c.
func Determinant[F Number](a, b, c Vec[F]) F {
	return a.X*(b.Y*c.Z-b.Z*c.Y) -
		a.Y*(b.X*c.Z-b.Z*c.X) +
		a.Z*(b.X*c.Y-b.Y*c.X)
}

// Orientation returns the signed volume of the tetrahedron p,q,r,s. It is
// positive when s lies on the side of the plane p->q->r that the normal
// (q-p) x (r-p) points toward, zero when the four points are coplanar, and
// negative otherwise.
func Orientation[F Number](p, q, r, s Vec[F]) F {
	a := q.Sub(p)
	b := r.Sub(p)
	c := s.Sub(p)
	return Determinant(a, b, c)
}

// Collinear reports whether p, q, r lie on a common line. It tests that
// (q-p) and (r-p) are parallel via pairwise coordinate cross products, with
// no division so it is exact for any Number instantiation.
func Collinear[F Number](p, q, r Vec[F]) bool {
	a := q.Sub(p)
	b := r.Sub(p)
	return a.X*b.Y == b.X*a.Y &&
		a.Y*b.Z == b.Y*a.Z &&
		a.Z*b.X == b.Z*a.X
}
