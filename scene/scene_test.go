package scene_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hullgraph/hull3d/hull"
	"github.com/hullgraph/hull3d/point"
	"github.com/hullgraph/hull3d/scene"
	"github.com/hullgraph/hull3d/voronoi"
)

func TestFromHullTetrahedron(t *testing.T) {
	pts := []point.Vec[float64]{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 0, Y: 0, Z: 1},
	}
	m, peak := hull.ComputeConvexHull3D[float64, point.Vec[float64]](pts)
	require.NotEqual(t, -1, int(peak))

	s := scene.FromHull[float64, point.Vec[float64]](m, peak, scene.White)
	require.Len(t, s.Vertices, 4)
	require.Len(t, s.TriangleIdx, 4*3)
	require.Empty(t, s.LineIdx)
}

func TestFromVoronoi(t *testing.T) {
	pts := []point.XY{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}, {X: 5, Y: 5},
	}
	d := voronoi.ComputeVoronoiDiagram(pts)
	s := scene.FromVoronoi(d, scene.White)
	require.Len(t, s.Vertices, len(d.Vertices))
	require.Empty(t, s.TriangleIdx)

	for i := 0; i < len(s.LineIdx); i += 2 {
		require.Falsef(t, d.Vertices[s.LineIdx[i]].AtInfinity || d.Vertices[s.LineIdx[i+1]].AtInfinity,
			"line segment should not reference a point at infinity")
	}
}
