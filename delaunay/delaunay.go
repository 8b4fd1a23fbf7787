// Package delaunay computes the Delaunay triangulation of a planar point
// set by lifting the points onto a paraboloid, taking the 3D convex hull of
// the lift, and discarding the upward-facing half of that hull.
package delaunay

import (
	"github.com/hullgraph/hull3d/dcel"
	"github.com/hullgraph/hull3d/hull"
	"github.com/hullgraph/hull3d/point"
)

// zPlus is the unit vector along the lifted z-axis, used by isFaceUpward to
// test the sign of a face's normal without computing its magnitude.
var zPlus = point.Vec[float64]{X: 0, Y: 0, Z: 1}

// isFaceUpward reports whether f's outward normal has a non-negative z
// component: lifted faces with this property are either upward-facing or
// vertical (the three lifted points are collinear in the projection, which
// happens whenever the source points include three or more collinear
// points, e.g. along a straight edge of a grid), and in both cases sit on
// the side of the paraboloid hull that must be discarded rather than kept
// as a real triangulation face.
func isFaceUpward(m *dcel.Mesh[point.Labeled[float64, int]], f dcel.FaceID) bool {
	edges := m.FaceToEdgeList(f)
	a := m.VertexData(m.EdgeOrigin(edges[0])).Vec
	b := m.VertexData(m.EdgeOrigin(edges[1])).Vec
	c := m.VertexData(m.EdgeOrigin(edges[2])).Vec
	return point.Determinant(b.Sub(a), c.Sub(a), zPlus) >= 0
}

// Triangulate computes the Delaunay triangulation of points and returns the
// mesh together with the outer face produced by merging every upward-facing
// (unbounded-envelope) face of the lifted hull. Each live vertex's data
// carries the index of its source point via Label. Returns dcel.NilFace if
// points has fewer than three non-collinear entries.
func Triangulate(points []point.XY, opts ...hull.Option[float64]) (*dcel.Mesh[point.Labeled[float64, int]], dcel.FaceID) {
	lifted := make([]point.Labeled[float64, int], len(points))
	for i, p := range points {
		lifted[i] = point.Labeled[float64, int]{
			Vec:   point.Vec[float64]{X: p.X, Y: p.Y, Z: p.X*p.X + p.Y*p.Y},
			Label: i,
		}
	}

	m, peak := hull.ComputeConvexHull3D[float64, point.Labeled[float64, int]](lifted, opts...)
	if peak == dcel.NilVertex {
		return m, dcel.NilFace
	}

	seen := map[dcel.FaceID]bool{}
	var upward []dcel.FaceID
	for _, e := range m.ExploreGraph(peak) {
		f := m.EdgeFace(e)
		if seen[f] {
			continue
		}
		seen[f] = true
		if isFaceUpward(m, f) {
			upward = append(upward, f)
		}
	}

	result := m.JoinFaces(upward)
	return m, result.NewFace
}
