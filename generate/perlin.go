package generate

import (
	"math"
	"math/rand"
)

// HeightField samples Perlin noise over an integer 2D grid, used to build
// non-degenerate terrain-like 3D point clouds (points whose z lies off any
// single plane, unlike CoplanarPlane3D's deliberately degenerate output).
type HeightField struct {
	gradients [][]point2
	w, h      int
}

type point2 struct{ X, Y float64 }

// NewHeightField builds a HeightField covering a (w+1) x (h+1) grid of
// integer lattice points.
func NewHeightField(w, h int, rnd *rand.Rand) HeightField {
	gradients := make([][]point2, w+1)
	for i := range gradients {
		gradients[i] = make([]point2, h+1)
		for j := range gradients[i] {
			angle := rnd.Float64() * math.Pi * 2
			gradients[i][j] = point2{X: math.Cos(angle), Y: math.Sin(angle)}
		}
	}
	return HeightField{gradients: gradients, w: w, h: h}
}

// Sample returns the noise value at (x, y), which must lie within the grid
// this HeightField was built with.
func (f HeightField) Sample(x, y float64) float64 {
	x0 := int(x)
	x1 := x0 + 1
	y0 := int(y)
	y1 := y0 + 1

	n0 := f.dotGridGradient(x0, y0, x, y)
	n1 := f.dotGridGradient(x1, y0, x, y)
	n2 := f.dotGridGradient(x0, y1, x, y)
	n3 := f.dotGridGradient(x1, y1, x, y)

	sx := x - float64(x0)
	sy := y - float64(y0)

	lerp := func(a, b, w float64) float64 { return (1-w)*a + w*b }
	return lerp(lerp(n0, n1, sx), lerp(n2, n3, sx), sy)
}

func (f HeightField) dotGridGradient(x, y int, px, py float64) float64 {
	dx := px - float64(x)
	dy := py - float64(y)
	g := f.gradients[x][y]
	return dx*g.X + dy*g.Y
}
