// Package generate produces randomized and structured point sets for tests,
// fuzzing, and the CLI, in the style of a rand.Rand-seeded generator library.
package generate

import (
	"math/rand"

	"github.com/hullgraph/hull3d/point"
)

// Box is an axis-aligned 3D box, the domain RandomPoints3D samples uniformly
// from.
type Box struct {
	Min, Max point.Vec[float64]
}

// RandomPoints3D returns n points sampled uniformly at random from box.
func RandomPoints3D(rnd *rand.Rand, n int, box Box) []point.Vec[float64] {
	pts := make([]point.Vec[float64], n)
	for i := range pts {
		pts[i] = point.Vec[float64]{
			X: box.Min.X + rnd.Float64()*(box.Max.X-box.Min.X),
			Y: box.Min.Y + rnd.Float64()*(box.Max.Y-box.Min.Y),
			Z: box.Min.Z + rnd.Float64()*(box.Max.Z-box.Min.Z),
		}
	}
	return pts
}

// RandomGrid2D returns the rows*cols integer lattice points of
// [0, cols-1] x [0, rows-1], in row-major order.
func RandomGrid2D(rows, cols int) []point.XY {
	if rows <= 0 || cols <= 0 {
		panic("generate: RandomGrid2D needs positive rows and cols")
	}
	pts := make([]point.XY, 0, rows*cols)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			pts = append(pts, point.XY{X: float64(x), Y: float64(y)})
		}
	}
	return pts
}

// RandomTerrain3D returns the rows*cols integer lattice points of
// RandomGrid2D lifted to 3D with a Perlin-noise height scaled by amplitude,
// giving a convex-hull/Delaunay fuzz input that is neither coplanar (like
// CoplanarPlane3D) nor exactly cocircular (like RandomCirclePoints2D).
func RandomTerrain3D(rnd *rand.Rand, rows, cols int, amplitude float64) []point.Vec[float64] {
	field := NewHeightField(cols, rows, rnd)
	flat := RandomGrid2D(rows, cols)
	pts := make([]point.Vec[float64], len(flat))
	for i, p := range flat {
		// Gradient noise is zero at every lattice point, so sample at the
		// centre of the cell whose lower corner is p.
		pts[i] = point.Vec[float64]{X: p.X, Y: p.Y, Z: amplitude * field.Sample(p.X+0.5, p.Y+0.5)}
	}
	return pts
}
