package hull

import "github.com/hullgraph/hull3d/dcel"

// conflictGraph is the bipartite relation between unprocessed input points
// (identified by their index into the shuffled remaining-points slice) and
// the hull faces currently visible to them.
//
// pointToFaces backs membership tests and single-point deletions; faceToPoints
// backs the bulk iteration and bulk deletion that dominate when a face is
// joined away. Keeping both directions in sync is this type's whole job.
type conflictGraph struct {
	pointToFaces map[int]map[dcel.FaceID]struct{}
	faceToPoints map[dcel.FaceID][]int
}

func newConflictGraph() *conflictGraph {
	return &conflictGraph{
		pointToFaces: make(map[int]map[dcel.FaceID]struct{}),
		faceToPoints: make(map[dcel.FaceID][]int),
	}
}

// link records that point conflicts with (sees) face.
func (g *conflictGraph) link(point int, face dcel.FaceID) {
	if g.pointToFaces[point] == nil {
		g.pointToFaces[point] = make(map[dcel.FaceID]struct{})
	}
	g.pointToFaces[point][face] = struct{}{}
	g.faceToPoints[face] = append(g.faceToPoints[face], point)
}

// visibleFaces returns the set of faces visible to point. The caller must
// not retain the returned map across a mutation of g.
func (g *conflictGraph) visibleFaces(point int) map[dcel.FaceID]struct{} {
	return g.pointToFaces[point]
}

// removeFace deletes face and every (point, face) link involving it.
func (g *conflictGraph) removeFace(face dcel.FaceID) {
	for _, p := range g.faceToPoints[face] {
		delete(g.pointToFaces[p], face)
	}
	delete(g.faceToPoints, face)
}

// transferFace moves from's conflict list onto to (used when a coplanar new
// triangle is merged into a pre-existing face) and erases from's own entry.
func (g *conflictGraph) transferFace(from, to dcel.FaceID) {
	pts := g.faceToPoints[from]
	for _, p := range pts {
		delete(g.pointToFaces[p], from)
		if g.pointToFaces[p] == nil {
			g.pointToFaces[p] = make(map[dcel.FaceID]struct{})
		}
		g.pointToFaces[p][to] = struct{}{}
	}
	g.faceToPoints[to] = append(g.faceToPoints[to], pts...)
	delete(g.faceToPoints, from)
}
