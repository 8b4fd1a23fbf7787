package generate_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/hullgraph/hull3d/generate"
	"github.com/hullgraph/hull3d/point"
)

func TestRandomCirclePoints2DAreCocircular(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	pts := generate.RandomCirclePoints2D(rnd, 10, 5)
	for _, p := range pts {
		dist := math.Hypot(p.X, p.Y)
		if math.Abs(dist-5) > 1e-9 {
			t.Errorf("point %v has radius %v, want 5", p, dist)
		}
	}
}

func TestRegularPolygon2D(t *testing.T) {
	pts := generate.RegularPolygon2D(point.XY{}, 2, 6)
	if len(pts) != 6 {
		t.Fatalf("got %d vertices, want 6", len(pts))
	}
}

func TestCoplanarPlane3D(t *testing.T) {
	rnd := rand.New(rand.NewSource(4))
	origin := pt(0, 0, 0)
	u := pt(1, 0, 0)
	v := pt(0, 1, 0)
	pts := generate.CoplanarPlane3D(rnd, 20, origin, u, v, 10)
	for _, p := range pts {
		if p.Z != 0 {
			t.Errorf("point %v should lie in the z=0 plane", p)
		}
	}
}
