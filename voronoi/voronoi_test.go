package voronoi_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hullgraph/hull3d/point"
	"github.com/hullgraph/hull3d/voronoi"
)

func TestFivePointDiagram(t *testing.T) {
	pts := []point.XY{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}, {X: 5, Y: 5},
	}
	d := voronoi.ComputeVoronoiDiagram(pts)
	require.NotEmpty(t, d.Vertices)
	require.NotEmpty(t, d.Edges)

	for _, e := range d.Edges {
		require.GreaterOrEqual(t, e.U, 0)
		require.Less(t, e.U, len(d.Vertices))
		require.GreaterOrEqual(t, e.V, 0)
		require.Less(t, e.V, len(d.Vertices))
	}

	var finite, infinite int
	for _, v := range d.Vertices {
		if v.AtInfinity {
			infinite++
		} else {
			finite++
		}
	}
	require.Positive(t, finite)
	require.Positive(t, infinite)
}

func TestFivePointDiagramExactCounts(t *testing.T) {
	pts := []point.XY{
		{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 17, Y: 5},
	}
	d := voronoi.ComputeVoronoiDiagram(pts)
	require.Len(t, d.Vertices, 7)
	require.Len(t, d.Edges, 6)

	var finite, infinite int
	for _, v := range d.Vertices {
		if v.AtInfinity {
			infinite++
		} else {
			finite++
		}
	}
	require.Equal(t, 2, finite)
	require.Equal(t, 5, infinite)
}

func TestEmptyInput(t *testing.T) {
	d := voronoi.ComputeVoronoiDiagram(nil)
	require.Empty(t, d.Vertices)
	require.Empty(t, d.Edges)
}
