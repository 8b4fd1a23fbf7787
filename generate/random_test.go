package generate_test

import (
	"math/rand"
	"testing"

	"github.com/hullgraph/hull3d/generate"
	"github.com/hullgraph/hull3d/point"
)

func pt(x, y, z float64) point.Vec[float64] { return point.Vec[float64]{X: x, Y: y, Z: z} }

func TestRandomPoints3DWithinBox(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	box := generate.Box{
		Min: pt(-5, -5, -5),
		Max: pt(5, 5, 5),
	}
	pts := generate.RandomPoints3D(rnd, 50, box)
	if len(pts) != 50 {
		t.Fatalf("got %d points, want 50", len(pts))
	}
	for _, p := range pts {
		if p.X < box.Min.X || p.X > box.Max.X || p.Y < box.Min.Y || p.Y > box.Max.Y || p.Z < box.Min.Z || p.Z > box.Max.Z {
			t.Errorf("point %v outside box %v", p, box)
		}
	}
}

func TestRandomGrid2D(t *testing.T) {
	pts := generate.RandomGrid2D(3, 4)
	if len(pts) != 12 {
		t.Fatalf("got %d points, want 12", len(pts))
	}
}

func TestRandomTerrain3D(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	pts := generate.RandomTerrain3D(rnd, 4, 4, 2)
	if len(pts) != 16 {
		t.Fatalf("got %d points, want 16", len(pts))
	}
}
