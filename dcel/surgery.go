package dcel

import "sort"

// InscribeVertex inserts a new vertex in the interior of a degree-d face,
// connected by d new edges to each vertex on the face's boundary, producing
// d new triangular faces. oldFace is invalidated. The returned vertex's
// incident edge points toward the origin of oldFace's outer component
// half-edge, which matters for the hull engine's coplanar-merge logic.
//
// Returns NilVertex if oldFace has no recoverable boundary (degree 0).
func (m *Mesh[T]) InscribeVertex(oldFace FaceID, data T) VertexID {
	edges := m.FaceToEdgeList(oldFace)
	degree := len(edges)
	if degree == 0 {
		return NilVertex
	}

	newVertex := m.newVertex(data)

	newEdgesFrom := make([]EdgeID, degree)
	newEdgesTo := make([]EdgeID, degree)
	newFaces := make([]FaceID, degree)
	for i := 0; i < degree; i++ {
		newEdgesFrom[i] = m.newEdge()
		newEdgesTo[i] = m.newEdge()
		newFaces[i] = m.newFace()
	}

	for i := 0; i < degree; i++ {
		iPrev := (i - 1 + degree) % degree
		iNext := (i + 1) % degree

		m.edges[newEdgesFrom[i]].twin = newEdgesTo[i]
		m.edges[newEdgesTo[i]].twin = newEdgesFrom[i]

		m.edges[newEdgesFrom[i]].origin = newVertex
		m.edges[newEdgesTo[i]].origin = m.edges[edges[i]].origin

		m.edges[newEdgesFrom[i]].next = edges[i]
		m.edges[newEdgesFrom[i]].prev = newEdgesTo[iNext]
		m.edges[newEdgesTo[i]].next = newEdgesFrom[iPrev]
		m.edges[newEdgesTo[i]].prev = edges[iPrev]

		m.edges[newEdgesFrom[i]].face = newFaces[i]
		m.edges[newEdgesTo[i]].face = newFaces[iPrev]

		m.faces[newFaces[i]].outerComponent = newEdgesFrom[i]

		m.edges[edges[i]].next = newEdgesTo[iNext]
		m.edges[edges[i]].prev = newEdgesFrom[i]
		m.edges[edges[i]].face = newFaces[i]
	}

	m.vertices[newVertex].incidentEdge = newEdgesFrom[0]

	m.invalidateFace(oldFace)

	return newVertex
}

// RemoveEdge removes the undirected edge underlying halfEdge, merging its
// two distinct incident faces into one new face. Both half-edges, and the
// two old faces, are invalidated. Preconditions (not checked): neither
// endpoint has degree 2, and the two incident faces are distinct.
func (m *Mesh[T]) RemoveEdge(halfEdge EdgeID) FaceID {
	twinEdge := m.edges[halfEdge].twin

	u := m.edges[halfEdge].origin
	v := m.edges[twinEdge].origin

	fromU := m.edges[halfEdge].next
	toU := m.edges[twinEdge].prev
	fromV := m.edges[twinEdge].next
	toV := m.edges[halfEdge].prev

	upperFace := m.edges[halfEdge].face
	lowerFace := m.edges[twinEdge].face

	upperFaceEdges := m.FaceToEdgeList(upperFace)
	lowerFaceEdges := m.FaceToEdgeList(lowerFace)

	newFace := m.newFace()
	m.faces[newFace].outerComponent = fromU

	for _, e := range upperFaceEdges {
		m.edges[e].face = newFace
	}
	for _, e := range lowerFaceEdges {
		m.edges[e].face = newFace
	}

	m.edges[fromU].prev = toU
	m.edges[toU].next = fromU
	m.edges[toV].next = fromV
	m.edges[fromV].prev = toV

	// fromU originates at v (it is halfEdge.next, and next always starts
	// where its predecessor ends) and fromV originates at u symmetrically,
	// so the vertex assignments below are intentionally cross-wired.
	m.vertices[u].incidentEdge = fromV
	m.vertices[v].incidentEdge = fromU

	m.invalidateFace(upperFace)
	m.invalidateFace(lowerFace)
	m.invalidateEdge(halfEdge)
	m.invalidateEdge(twinEdge)

	return newFace
}

// JoinResult is the outcome of JoinFaces.
type JoinResult struct {
	// NewFace is the replacement face for the joined input faces.
	NewFace FaceID

	// BorderEdges is the cyclic list of half-edges forming the outside
	// border of NewFace, in order.
	BorderEdges []EdgeID

	// BorderFaces holds, for each entry in BorderEdges, the original face
	// that edge belonged to before the join (same length as BorderEdges).
	BorderFaces []FaceID

	// RemovedEdges and RemovedVertices are entities that were interior to
	// the joined region and are now invalidated.
	RemovedEdges    []EdgeID
	RemovedVertices []VertexID
}

// JoinFaces merges a set of faces sharing a single connected outside border
// into one new face. Behavior is undefined if the input faces do not share
// a single connected outside border. The border walk starts from the first
// half-edge (in face order) of the first input face whose twin is outside
// the input set, which fixes the ordering of BorderEdges deterministically:
// BorderEdges begins with the border edge that follows it and ends with it.
func (m *Mesh[T]) JoinFaces(faces []FaceID) JoinResult {
	if len(faces) == 0 {
		return JoinResult{NewFace: NilFace}
	}

	// Zero tags on all half-edges (both directions) and vertices of input faces.
	for _, f := range faces {
		for _, e := range m.FaceToEdgeList(f) {
			m.edges[e].tag = 0
			m.edges[m.edges[e].twin].tag = 0
			m.vertices[m.edges[e].origin].tag = 0
		}
	}

	// Mark every half-edge of every input face with tag 1.
	for _, f := range faces {
		for _, e := range m.FaceToEdgeList(f) {
			m.edges[e].tag = 1
		}
	}

	// Find a starting border edge: first half-edge of the first input face
	// whose twin has tag 0.
	start := NilEdge
findStart:
	for _, f := range faces {
		for _, e := range m.FaceToEdgeList(f) {
			if m.edges[m.edges[e].twin].tag == 0 {
				start = e
				break findStart
			}
		}
	}
	if start == NilEdge {
		// The input faces have no outside border at all (e.g. a closed
		// sphere of faces); undefined per contract.
		return JoinResult{NewFace: NilFace}
	}

	// Walk the border: rotate around the destination vertex of each
	// border edge until the next border edge is found.
	var borderEdges []EdgeID
	var borderFaces []FaceID
	cur := start
	for {
		cur = m.edges[cur].next
		for m.edges[m.edges[cur].twin].tag == 1 {
			cur = m.edges[m.edges[cur].twin].next
		}
		borderEdges = append(borderEdges, cur)
		borderFaces = append(borderFaces, m.edges[cur].face)
		if cur == start {
			break
		}
	}

	// Tag border-edge origins.
	for _, e := range borderEdges {
		m.vertices[m.edges[e].origin].tag = 1
	}

	var removedEdges []EdgeID
	removedVertexSet := make(map[VertexID]struct{})
	for _, f := range faces {
		for _, e := range m.FaceToEdgeList(f) {
			if m.edges[m.edges[e].twin].tag == 1 {
				removedEdges = append(removedEdges, e)
			}
			if m.vertices[m.edges[e].origin].tag == 0 {
				removedVertexSet[m.edges[e].origin] = struct{}{}
			}
		}
	}
	removedVertices := make([]VertexID, 0, len(removedVertexSet))
	for v := range removedVertexSet {
		removedVertices = append(removedVertices, v)
	}
	sort.Slice(removedVertices, func(i, j int) bool { return removedVertices[i] < removedVertices[j] })

	for _, v := range removedVertices {
		m.invalidateVertex(v)
	}
	for _, e := range removedEdges {
		m.invalidateEdge(e)
	}
	for _, f := range faces {
		m.invalidateFace(f)
	}

	newFace := m.newFace()
	m.faces[newFace].outerComponent = borderEdges[0]

	n := len(borderEdges)
	for i := 0; i < n; i++ {
		iPrev := (i - 1 + n) % n
		iNext := (i + 1) % n
		e := borderEdges[i]
		m.edges[e].face = newFace
		m.vertices[m.edges[e].origin].incidentEdge = e
		m.edges[e].next = borderEdges[iNext]
		m.edges[e].prev = borderEdges[iPrev]
	}

	return JoinResult{
		NewFace:         newFace,
		BorderEdges:     borderEdges,
		BorderFaces:     borderFaces,
		RemovedEdges:    removedEdges,
		RemovedVertices: removedVertices,
	}
}

// RemoveRedundantVertex removes v, which must have degree exactly 2,
// bridging its two neighbors with one new undirected edge. The new
// half-edges inherit the incident faces of the two edges they replace.
// Returns the new half-edge whose incident face was the face of v's
// incident edge, or NilEdge (performing no mutation) if v's degree isn't 2.
func (m *Mesh[T]) RemoveRedundantVertex(v VertexID) EdgeID {
	adj := m.AdjacentEdges(v)
	if len(adj) != 2 {
		return NilEdge
	}
	e0, e1 := adj[0], adj[1]
	t0, t1 := m.edges[e0].twin, m.edges[e1].twin

	// e0.prev == t1 and e1.prev == t0 for a degree-2 vertex: the two faces
	// touching v are face(e0) (bounded by ... t1, e0 ...) and face(e1)
	// (bounded by ... t0, e1 ...).
	newFromT1Side := m.newEdge() // bridges t1's origin -> t0's origin, face(e0)
	newFromT0Side := m.newEdge() // the reverse direction, face(e1)

	m.edges[newFromT1Side].origin = m.edges[t1].origin
	m.edges[newFromT1Side].twin = newFromT0Side
	m.edges[newFromT1Side].face = m.edges[e0].face
	m.edges[newFromT1Side].next = m.edges[e0].next
	m.edges[newFromT1Side].prev = m.edges[t1].prev

	m.edges[newFromT0Side].origin = m.edges[t0].origin
	m.edges[newFromT0Side].twin = newFromT1Side
	m.edges[newFromT0Side].face = m.edges[e1].face
	m.edges[newFromT0Side].next = m.edges[e1].next
	m.edges[newFromT0Side].prev = m.edges[t0].prev

	m.edges[m.edges[newFromT1Side].prev].next = newFromT1Side
	m.edges[m.edges[newFromT1Side].next].prev = newFromT1Side
	m.edges[m.edges[newFromT0Side].prev].next = newFromT0Side
	m.edges[m.edges[newFromT0Side].next].prev = newFromT0Side

	faceOfE0 := m.edges[e0].face
	if m.faces[faceOfE0].outerComponent == e0 || m.faces[faceOfE0].outerComponent == t1 {
		m.faces[faceOfE0].outerComponent = newFromT1Side
	}
	faceOfE1 := m.edges[e1].face
	if m.faces[faceOfE1].outerComponent == e1 || m.faces[faceOfE1].outerComponent == t0 {
		m.faces[faceOfE1].outerComponent = newFromT0Side
	}

	m.vertices[m.edges[newFromT1Side].origin].incidentEdge = newFromT1Side
	m.vertices[m.edges[newFromT0Side].origin].incidentEdge = newFromT0Side

	m.invalidateVertex(v)
	m.invalidateEdge(e0)
	m.invalidateEdge(t0)
	m.invalidateEdge(e1)
	m.invalidateEdge(t1)

	return newFromT1Side
}
