package point

// XY is a 2D point. It underlies the Delaunay and Voronoi packages, which
// lift 2D inputs onto a 3D paraboloid and therefore fix F to float64 (the
// circumcenter formula requires division, so an exact integer Number isn't
// available at this layer regardless of the input coordinate type).
type XY struct {
	X, Y float64
}

// Sub returns a - b.
func (a XY) Sub(b XY) XY {
	return XY{a.X - b.X, a.Y - b.Y}
}

// Less gives a lexicographic order on (X, Y).
func (a XY) Less(b XY) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}

// Norm2 returns the squared Euclidean length of a.
func (a XY) Norm2() float64 {
	return a.X*a.X + a.Y*a.Y
}

// Cross2 returns the z-component of the 3D cross product of a and b treated
// as vectors in the z=0 plane: a.X*b.Y - a.Y*b.X. Positive means b is
// counterclockwise from a.
func Cross2(a, b XY) float64 {
	return a.X*b.Y - a.Y*b.X
}
