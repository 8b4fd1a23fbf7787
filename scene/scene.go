// Package scene converts hull, Delaunay, and Voronoi results into a
// renderer-agnostic vertex/index buffer, mirroring the separation between
// geometry data and renderer state found in g3n-engine's geometry package:
// a RenderingScene is pure data, with no GL/window code attached.
package scene

import (
	"github.com/hullgraph/hull3d/dcel"
	"github.com/hullgraph/hull3d/point"
	"github.com/hullgraph/hull3d/voronoi"
)

// ColoredVertex is one vertex of a RenderingScene: a position plus an RGBA
// color for the renderer to interpolate across a primitive.
type ColoredVertex struct {
	X, Y, Z float64
	R, G, B, A float32
}

// RenderingScene is the entire payload a renderer needs to draw a mesh or
// diagram: one vertex buffer and two index buffers (triangles, lines).
type RenderingScene struct {
	Vertices    []ColoredVertex
	TriangleIdx []uint32
	LineIdx     []uint32
}

// White is the default vertex color used when the caller doesn't need
// per-face or per-cell coloring.
var White = [4]float32{1, 1, 1, 1}

// FromHull walks every live face reachable from peak and emits one triangle
// fan per face (faces merged by coplanarity may have more than 3 sides).
func FromHull[F point.Number, T point.Positioned[F]](m *dcel.Mesh[T], peak dcel.VertexID, color [4]float32) RenderingScene {
	var s RenderingScene
	vertexIdx := make(map[dcel.VertexID]uint32)
	vertexOf := func(v dcel.VertexID) uint32 {
		if idx, ok := vertexIdx[v]; ok {
			return idx
		}
		p := m.VertexData(v).Position()
		idx := uint32(len(s.Vertices))
		s.Vertices = append(s.Vertices, ColoredVertex{
			X: float64(p.X), Y: float64(p.Y), Z: float64(p.Z),
			R: color[0], G: color[1], B: color[2], A: color[3],
		})
		vertexIdx[v] = idx
		return idx
	}

	seen := map[dcel.FaceID]bool{}
	for _, e := range m.ExploreGraph(peak) {
		f := m.EdgeFace(e)
		if f == dcel.NilFace || seen[f] {
			continue
		}
		seen[f] = true
		verts := m.FaceToEdgeList(f)
		if len(verts) < 3 {
			continue
		}
		first := vertexOf(m.EdgeOrigin(verts[0]))
		prev := vertexOf(m.EdgeOrigin(verts[1]))
		for i := 2; i < len(verts); i++ {
			cur := vertexOf(m.EdgeOrigin(verts[i]))
			s.TriangleIdx = append(s.TriangleIdx, first, prev, cur)
			prev = cur
		}
	}
	return s
}

// FromDelaunay is FromHull specialized to the Delaunay triangulator's
// paraboloid-labeled vertex type, walking from any vertex of the outer
// face rather than the hull's peak.
func FromDelaunay(m *dcel.Mesh[point.Labeled[float64, int]], outerFace dcel.FaceID, color [4]float32) RenderingScene {
	if outerFace == dcel.NilFace {
		return RenderingScene{}
	}
	origin := m.EdgeOrigin(m.FaceOuterComponent(outerFace))
	return FromHull[float64, point.Labeled[float64, int]](m, origin, color)
}

// FromVoronoi converts a Voronoi diagram into a line-segment scene. Edges
// touching a point at infinity are dropped: a RenderingScene has no ray
// primitive, only finite lines and triangles.
func FromVoronoi(d voronoi.Diagram, color [4]float32) RenderingScene {
	var s RenderingScene
	for _, v := range d.Vertices {
		s.Vertices = append(s.Vertices, ColoredVertex{
			X: v.X, Y: v.Y, Z: 0,
			R: color[0], G: color[1], B: color[2], A: color[3],
		})
	}
	for _, e := range d.Edges {
		if d.Vertices[e.U].AtInfinity || d.Vertices[e.V].AtInfinity {
			continue
		}
		s.LineIdx = append(s.LineIdx, uint32(e.U), uint32(e.V))
	}
	return s
}
