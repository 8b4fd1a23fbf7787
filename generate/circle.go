package generate

import (
	"math"
	"math/rand"

	"github.com/hullgraph/hull3d/point"
)

// RandomCirclePoints2D samples n points uniformly at random on the circle of
// the given radius centered at the origin. n must be at least 3 or it will
// panic. These points are cocircular, a degenerate Delaunay input: four or
// more cocircular points lift to coplanar points on the paraboloid.
func RandomCirclePoints2D(rnd *rand.Rand, n int, radius float64) []point.XY {
	if n <= 2 {
		panic("generate: RandomCirclePoints2D needs at least 3 points")
	}
	pts := make([]point.XY, n)
	for i := range pts {
		angle := rnd.Float64() * 2 * math.Pi
		pts[i] = point.XY{
			X: math.Cos(angle) * radius,
			Y: math.Sin(angle) * radius,
		}
	}
	return pts
}

// RegularPolygon2D computes the sides vertices of a regular polygon
// circumscribed by a circle with the given center and radius. Sides must be
// at least 3 or it will panic.
func RegularPolygon2D(center point.XY, radius float64, sides int) []point.XY {
	if sides <= 2 {
		panic("generate: RegularPolygon2D needs at least 3 sides")
	}
	coords := make([]point.XY, sides)
	for i := 0; i < sides; i++ {
		angle := math.Pi/2 + float64(i)/float64(sides)*2*math.Pi
		coords[i] = point.XY{
			X: center.X + math.Cos(angle)*radius,
			Y: center.Y + math.Sin(angle)*radius,
		}
	}
	return coords
}

// CoplanarPlane3D returns n points confined to the plane through origin
// spanned by basisU and basisV, with random coefficients in [0, extent).
func CoplanarPlane3D(rnd *rand.Rand, n int, origin, basisU, basisV point.Vec[float64], extent float64) []point.Vec[float64] {
	pts := make([]point.Vec[float64], n)
	for i := range pts {
		u := rnd.Float64() * extent
		v := rnd.Float64() * extent
		pts[i] = point.Vec[float64]{
			X: origin.X + u*basisU.X + v*basisV.X,
			Y: origin.Y + u*basisU.Y + v*basisV.Y,
			Z: origin.Z + u*basisU.Z + v*basisV.Z,
		}
	}
	return pts
}
