// Package voronoi builds the Voronoi diagram dual to a Delaunay
// triangulation: one site per triangulation vertex, one diagram vertex per
// inner triangulation face (its circumcenter), one direction-at-infinity
// vertex per half-edge of the outer face, and one diagram edge per
// undirected triangulation edge.
package voronoi

import (
	"github.com/hullgraph/hull3d/dcel"
	"github.com/hullgraph/hull3d/delaunay"
	"github.com/hullgraph/hull3d/point"
)

// Vertex is a point of the Voronoi diagram: either a finite circumcenter, or
// a direction at infinity for an unbounded cell boundary.
type Vertex struct {
	X, Y       float64
	AtInfinity bool
}

// Edge connects two Vertex indices into Diagram.Vertices.
type Edge struct {
	U, V int
}

// Diagram is a Voronoi diagram as a point list and an undirected edge list
// over it.
type Diagram struct {
	Vertices []Vertex
	Edges    []Edge
}

// circumcenter computes the Voronoi vertex dual to halfEdge's incident face.
// If that face is outerFace, the result is instead the direction, from the
// edge's perpendicular bisector, along which that cell's boundary runs to
// infinity.
func circumcenter(m *dcel.Mesh[point.Labeled[float64, int]], halfEdge dcel.EdgeID, outerFace dcel.FaceID) Vertex {
	a := m.VertexData(m.EdgeOrigin(halfEdge)).Position()
	b := m.VertexData(m.EdgeDestination(halfEdge)).Position()

	if m.EdgeFace(halfEdge) == outerFace {
		return Vertex{X: b.Y - a.Y, Y: a.X - b.X, AtInfinity: true}
	}

	c := m.VertexData(m.EdgeDestination(m.EdgeNext(halfEdge))).Position()
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	dInverse := 1 / d

	aNorm2 := a.X*a.X + a.Y*a.Y
	bNorm2 := b.X*b.X + b.Y*b.Y
	cNorm2 := c.X*c.X + c.Y*c.Y

	return Vertex{
		X: (aNorm2*(b.Y-c.Y) + bNorm2*(c.Y-a.Y) + cNorm2*(a.Y-b.Y)) * dInverse,
		Y: (aNorm2*(c.X-b.X) + bNorm2*(a.X-c.X) + cNorm2*(b.X-a.X)) * dInverse,
	}
}

// FromTriangulation computes the Voronoi diagram dual to a Delaunay
// triangulation given by its outer (unbounded) face.
func FromTriangulation(m *dcel.Mesh[point.Labeled[float64, int]], outerFace dcel.FaceID) Diagram {
	var diagram Diagram
	if outerFace == dcel.NilFace {
		return diagram
	}

	internalFaceToVertex := make(map[dcel.FaceID]int)
	outerEdgeToVertex := make(map[dcel.EdgeID]int)

	origin := m.EdgeOrigin(m.FaceOuterComponent(outerFace))
	allEdges := m.ExploreGraph(origin)

	for _, e := range allEdges {
		f := m.EdgeFace(e)
		if f == outerFace {
			outerEdgeToVertex[e] = len(diagram.Vertices)
			diagram.Vertices = append(diagram.Vertices, circumcenter(m, e, outerFace))
			continue
		}
		if _, ok := internalFaceToVertex[f]; !ok {
			internalFaceToVertex[f] = len(diagram.Vertices)
			diagram.Vertices = append(diagram.Vertices, circumcenter(m, e, outerFace))
		}
	}

	vertexOf := func(e dcel.EdgeID) int {
		f := m.EdgeFace(e)
		if f == outerFace {
			return outerEdgeToVertex[e]
		}
		return internalFaceToVertex[f]
	}

	seen := make(map[[2]dcel.EdgeID]bool)
	for _, e := range allEdges {
		twin := m.EdgeTwin(e)
		key := [2]dcel.EdgeID{e, twin}
		if key[0] > key[1] {
			key[0], key[1] = key[1], key[0]
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		diagram.Edges = append(diagram.Edges, Edge{U: vertexOf(e), V: vertexOf(twin)})
	}

	return diagram
}

// ComputeVoronoiDiagram is the convenience wrapper taking raw 2D points
// directly, triangulating them with delaunay.Triangulate before dualizing.
func ComputeVoronoiDiagram(points []point.XY) Diagram {
	m, outerFace := delaunay.Triangulate(points)
	return FromTriangulation(m, outerFace)
}
