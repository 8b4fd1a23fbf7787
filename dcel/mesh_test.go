package dcel_test

import (
	"testing"

	"github.com/hullgraph/hull3d/dcel"
)

// checkInvariants walks every half-edge reachable from v and asserts the
// twin, next/prev and twin-origin invariants of a half-edge mesh.
func checkInvariants(t *testing.T, m *dcel.Mesh[string], v dcel.VertexID) {
	t.Helper()
	for _, e := range m.ExploreGraph(v) {
		twin := m.EdgeTwin(e)
		if m.EdgeTwin(twin) != e {
			t.Errorf("edge %d: twin.twin != self", e)
		}
		if twin == e {
			t.Errorf("edge %d: twin == self", e)
		}
		if m.EdgePrev(m.EdgeNext(e)) != e {
			t.Errorf("edge %d: next.prev != self", e)
		}
		if m.EdgeNext(m.EdgePrev(e)) != e {
			t.Errorf("edge %d: prev.next != self", e)
		}
		if m.EdgeOrigin(twin) == m.EdgeOrigin(e) {
			t.Errorf("edge %d: twin.origin == origin", e)
		}
	}
}

func TestMakePolygonTriangle(t *testing.T) {
	m := dcel.NewMesh[string]()
	inner := m.MakeTriangle("a", "b", "c")
	if inner == dcel.NilFace {
		t.Fatal("expected non-nil face")
	}

	edges := m.FaceToEdgeList(inner)
	if len(edges) != 3 {
		t.Fatalf("got %d edges, want 3", len(edges))
	}

	var labels []string
	for _, e := range edges {
		labels = append(labels, m.VertexData(m.EdgeOrigin(e)))
	}
	want := []string{"a", "b", "c"}
	for i := range want {
		if labels[i] != want[i] {
			t.Errorf("edges[%d] origin = %q, want %q", i, labels[i], want[i])
		}
	}

	checkInvariants(t, m, m.EdgeOrigin(edges[0]))
}

func TestMakePolygonTooFewPoints(t *testing.T) {
	m := dcel.NewMesh[string]()
	if f := m.MakePolygon([]string{"a", "b"}); f != dcel.NilFace {
		t.Errorf("expected NilFace for a 2-gon, got %v", f)
	}
}

func TestFaceToEdgeListAndAdjacentEdgesEmpty(t *testing.T) {
	m := dcel.NewMesh[string]()
	if got := m.FaceToEdgeList(dcel.NilFace); got != nil {
		t.Errorf("expected nil for NilFace, got %v", got)
	}
	if got := m.AdjacentEdges(dcel.NilVertex); got != nil {
		t.Errorf("expected nil for NilVertex, got %v", got)
	}
}

func TestInscribeVertexDegree(t *testing.T) {
	m := dcel.NewMesh[string]()
	inner := m.MakeTriangle("a", "b", "c")

	peak := m.InscribeVertex(inner, "peak")
	if peak == dcel.NilVertex {
		t.Fatal("expected non-nil vertex")
	}

	adj := m.AdjacentEdges(peak)
	if len(adj) != 3 {
		t.Fatalf("got degree %d, want 3 (matching the old face's degree)", len(adj))
	}

	checkInvariants(t, m, peak)

	total := 0
	seen := map[dcel.EdgeID]bool{}
	for _, e := range m.ExploreGraph(peak) {
		if !seen[e] {
			seen[e] = true
			total++
		}
	}
	// Tetrahedron-like shape: 4 vertices, 4 triangular faces, 12 half-edges.
	if total != 12 {
		t.Errorf("got %d half-edges, want 12", total)
	}
}

func TestRemoveEdgeJoinsFaces(t *testing.T) {
	m := dcel.NewMesh[string]()
	inner := m.MakeTriangle("a", "b", "c")
	peak := m.InscribeVertex(inner, "d")

	// Remove one of the new spoke edges to merge two of the triangles.
	spoke := m.VertexIncidentEdge(peak)
	newFace := m.RemoveEdge(spoke)
	if newFace == dcel.NilFace {
		t.Fatal("expected a new face")
	}

	edges := m.FaceToEdgeList(newFace)
	if len(edges) != 4 {
		t.Fatalf("got %d edges on merged face, want 4", len(edges))
	}
	for _, e := range edges {
		if m.EdgeFace(e) != newFace {
			t.Errorf("edge %d: incident face %v != newFace %v", e, m.EdgeFace(e), newFace)
		}
	}

	checkInvariants(t, m, m.EdgeOrigin(edges[0]))
}

func TestJoinFacesDeterministicBorder(t *testing.T) {
	m := dcel.NewMesh[string]()
	inner := m.MakeTriangle("a", "b", "c")
	peak := m.InscribeVertex(inner, "d")

	faceEdges := m.ExploreGraph(peak)
	facesSet := map[dcel.FaceID]bool{}
	var faces []dcel.FaceID
	for _, e := range faceEdges {
		f := m.EdgeFace(e)
		if f != dcel.NilFace && !facesSet[f] {
			facesSet[f] = true
			faces = append(faces, f)
		}
	}
	if len(faces) != 4 {
		t.Fatalf("got %d faces, want 4", len(faces))
	}

	// Join three of the four faces: all four together form a closed surface
	// with no outside border. The fourth face stays outside the joined set.
	joined := faces[:3]
	joinedSet := map[dcel.FaceID]bool{}
	for _, f := range joined {
		joinedSet[f] = true
	}

	result := m.JoinFaces(joined)
	if result.NewFace == dcel.NilFace {
		t.Fatal("expected a new face")
	}
	if len(result.BorderEdges) != len(result.BorderFaces) {
		t.Fatalf("BorderEdges/BorderFaces length mismatch: %d vs %d", len(result.BorderEdges), len(result.BorderFaces))
	}

	// Walking next around newFace visits exactly BorderEdges in order.
	cur := m.FaceOuterComponent(result.NewFace)
	for i, want := range result.BorderEdges {
		if cur != want {
			t.Errorf("border walk[%d] = %v, want %v", i, cur, want)
		}
		cur = m.EdgeNext(cur)
	}

	// Each border edge's twin is outside the joined set.
	for i, e := range result.BorderEdges {
		twinFace := m.EdgeFace(m.EdgeTwin(e))
		if joinedSet[twinFace] {
			t.Errorf("border edge %d (%v): twin face %v still in joined set", i, e, twinFace)
		}
	}

	checkInvariants(t, m, m.EdgeOrigin(result.BorderEdges[0]))
}

// TestInscribeRemoveRoundTrip exercises the round-trip property: inscribing
// a vertex into a square, removing one spoke (merging two triangles back
// into a quad), then removing the now-degree-2 vertex at the spoke's other
// endpoint, should yield a triangle (a triangle fan minus one spoke has a
// quad; removing the redundant vertex on that quad leaves a triangle).
func TestInscribeRemoveRoundTrip(t *testing.T) {
	m := dcel.NewMesh[string]()
	square := m.MakePolygon([]string{"a", "b", "c", "d"})
	peak := m.InscribeVertex(square, "p")

	var spokeToB dcel.EdgeID = dcel.NilEdge
	for _, e := range m.AdjacentEdges(peak) {
		if m.VertexData(m.EdgeDestination(e)) == "b" {
			spokeToB = e
		}
	}
	if spokeToB == dcel.NilEdge {
		t.Fatal("could not find spoke to b")
	}

	quad := m.RemoveEdge(spokeToB)
	quadEdges := m.FaceToEdgeList(quad)
	if len(quadEdges) != 4 {
		t.Fatalf("got %d edges after removing one spoke, want 4", len(quadEdges))
	}

	var vertexB dcel.VertexID = dcel.NilVertex
	for _, e := range quadEdges {
		if m.VertexData(m.EdgeOrigin(e)) == "b" {
			vertexB = m.EdgeOrigin(e)
		}
	}
	if vertexB == dcel.NilVertex {
		t.Fatal("could not find vertex b")
	}
	if adj := m.AdjacentEdges(vertexB); len(adj) != 2 {
		t.Fatalf("vertex b has degree %d after spoke removal, want 2", len(adj))
	}

	triangleEdge := m.RemoveRedundantVertex(vertexB)
	if triangleEdge == dcel.NilEdge {
		t.Fatal("expected a new half-edge")
	}

	triangle := m.EdgeFace(triangleEdge)
	triangleEdges := m.FaceToEdgeList(triangle)
	if len(triangleEdges) != 3 {
		t.Fatalf("got %d edges on final face, want 3 (the quad minus b)", len(triangleEdges))
	}

	checkInvariants(t, m, m.EdgeOrigin(triangleEdges[0]))

	// b should no longer appear anywhere in the live mesh.
	for _, e := range m.ExploreGraph(m.EdgeOrigin(triangleEdges[0])) {
		if m.VertexData(m.EdgeOrigin(e)) == "b" {
			t.Errorf("vertex b still reachable after removal")
		}
	}
}

func TestRemoveRedundantVertexWrongDegree(t *testing.T) {
	m := dcel.NewMesh[string]()
	inner := m.MakeTriangle("a", "b", "c")
	peak := m.InscribeVertex(inner, "p") // degree 3, not 2
	if got := m.RemoveRedundantVertex(peak); got != dcel.NilEdge {
		t.Errorf("expected NilEdge for a degree-3 vertex, got %v", got)
	}
}
