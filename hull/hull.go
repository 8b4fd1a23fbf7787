// Package hull implements the randomized-incremental 3D convex hull engine:
// seed selection, a bipartite conflict graph between unprocessed points and
// current hull faces, and the incremental insertion loop with coplanar-face
// merging, on top of the dcel package's half-edge surgery.
package hull

import (
	"sort"

	"github.com/hullgraph/hull3d/dcel"
	"github.com/hullgraph/hull3d/point"
)

// facePointOrientation evaluates point.Orientation against the first three
// vertices of f's boundary, which is the plane f lies in (for a triangle,
// all three vertices; for a coplanar-merged larger face, any three adjacent
// vertices still describe the same plane).
func facePointOrientation[F point.Number, T point.Positioned[F]](m *dcel.Mesh[T], f dcel.FaceID, p T) F {
	edges := m.FaceToEdgeList(f)
	a := m.VertexData(m.EdgeOrigin(edges[0])).Position()
	b := m.VertexData(m.EdgeOrigin(edges[1])).Position()
	c := m.VertexData(m.EdgeOrigin(edges[2])).Position()
	return point.Orientation(a, b, c, p.Position())
}

// collectSeeds scans points linearly for up to four points satisfying
// returning the seeds (swapped into positive orientation when
// four were found) and every rejected point in input order.
func collectSeeds[F point.Number, T point.Positioned[F]](points []T) (seeds []T, remaining []T) {
	for _, p := range points {
		switch len(seeds) {
		case 0:
			seeds = append(seeds, p)
		case 1:
			if !p.Position().Eq(seeds[0].Position()) {
				seeds = append(seeds, p)
			} else {
				remaining = append(remaining, p)
			}
		case 2:
			if !point.Collinear(seeds[0].Position(), seeds[1].Position(), p.Position()) {
				seeds = append(seeds, p)
			} else {
				remaining = append(remaining, p)
			}
		case 3:
			switch o := point.Orientation(seeds[0].Position(), seeds[1].Position(), seeds[2].Position(), p.Position()); {
			case o == 0:
				remaining = append(remaining, p)
			case o > 0:
				seeds = append(seeds, p)
			default:
				seeds[0], seeds[1] = seeds[1], seeds[0]
				seeds = append(seeds, p)
			}
		default:
			remaining = append(remaining, p)
		}
	}
	return seeds, remaining
}

// ComputeConvexHull3D builds the 3D convex hull of points, returning the
// mesh it was built in and any vertex of the resulting hull. It returns
// dcel.NilVertex if points contains fewer than three distinct, non-collinear
// points. T is any point type carrying a position (plain points or, e.g.,
// the Delaunay triangulator's paraboloid-lifted labeled points).
func ComputeConvexHull3D[F point.Number, T point.Positioned[F]](points []T, opts ...Option[F]) (*dcel.Mesh[T], dcel.VertexID) {
	cfg := newConfig(opts)
	m := dcel.NewMesh[T]()

	seeds, remaining := collectSeeds(points)
	if len(seeds) < 3 {
		return m, dcel.NilVertex
	}
	if len(seeds) == 3 {
		return planarFallback(m, seeds, remaining, cfg)
	}

	base := m.MakeTriangle(seeds[0], seeds[1], seeds[2])
	peak := m.InscribeVertex(base, seeds[3])
	cfg.notify(InitialTetrahedron, peak)

	spokes := m.AdjacentEdges(peak)
	baseEdge := m.EdgeNext(spokes[0])
	faces := []dcel.FaceID{
		m.EdgeFace(m.EdgeTwin(baseEdge)),
		m.EdgeFace(spokes[0]),
		m.EdgeFace(spokes[1]),
		m.EdgeFace(spokes[2]),
	}

	cg := newConflictGraph()
	cfg.shuffle(len(remaining), func(i, j int) { remaining[i], remaining[j] = remaining[j], remaining[i] })
	for _, f := range faces {
		for idx, p := range remaining {
			if facePointOrientation(m, f, p) > 0 {
				cg.link(idx, f)
			}
		}
	}

	for idx, p := range remaining {
		visible := cg.visibleFaces(idx)
		if len(visible) == 0 {
			continue
		}
		visibleFaces := make([]dcel.FaceID, 0, len(visible))
		for f := range visible {
			visibleFaces = append(visibleFaces, f)
		}
		sort.Slice(visibleFaces, func(i, j int) bool { return visibleFaces[i] < visibleFaces[j] })

		joinRes := m.JoinFaces(visibleFaces)
		borderVertices := make([]dcel.VertexID, len(joinRes.BorderEdges))
		for i, e := range joinRes.BorderEdges {
			borderVertices[i] = m.EdgeOrigin(e)
		}
		cfg.notify(AfterJoinFaces, peak)

		peak = m.InscribeVertex(joinRes.NewFace, p)
		cfg.notify(AfterInscribeVertex, peak)

		mergeCoplanarFaces(m, peak, joinRes, cg, remaining)
		cfg.notify(AfterMergeFaces, peak)

		for _, f := range visibleFaces {
			cg.removeFace(f)
		}

		for _, v := range borderVertices {
			if m.VertexLive(v) {
				m.RemoveRedundantVertex(v)
			}
		}
		cfg.notify(AfterRemoveRedundantVertices, peak)

		debugCheckInvariants[F, T](m, cg, remaining)
	}

	return m, peak
}

// mergeCoplanarFaces walks the new triangles created around peak: for each,
// test it for coplanarity with the pre-existing face across its border
// edge and either merge it in (folding the neighbor's conflict list onto the
// merged face) or seed its own conflict list from the union of the border
// edge's two pre-join faces.
//
// A single pass collapses one degenerate interior edge per coplanar pair
// sharing an outside neighbor; this iterates that collapse to a fixed point
// so a run of three or more consecutive coplanar triangles against the same
// neighbor still ends up as a single merge, not just the first pair.
func mergeCoplanarFaces[F point.Number, T point.Positioned[F]](m *dcel.Mesh[T], peak dcel.VertexID, joinRes dcel.JoinResult, cg *conflictGraph, remaining []T) {
	spokes := m.AdjacentEdges(peak)
	n := len(spokes)
	if n == 0 {
		return
	}

	adjFace := make([]dcel.FaceID, n)
	flagged := make([]bool, n)
	active := make([]bool, n)
	for j := 0; j < n; j++ {
		active[j] = true
		border := m.EdgeNext(spokes[j])
		adjFace[j] = m.EdgeFace(m.EdgeTwin(border))
		thirdVertex := m.EdgeDestination(m.EdgeNext(m.EdgeTwin(border)))
		tj := m.EdgeFace(spokes[j])
		flagged[j] = facePointOrientation(m, tj, m.VertexData(thirdVertex)) == 0
	}

	nextActive := func(j int) int {
		k := (j + 1) % n
		for !active[k] && k != j {
			k = (k + 1) % n
		}
		return k
	}

	for changed := true; changed; {
		changed = false
		for j := 0; j < n; j++ {
			if !active[j] || !flagged[j] {
				continue
			}
			k := nextActive(j)
			if k == j {
				break
			}
			if flagged[k] && adjFace[j] == adjFace[k] {
				m.RemoveEdge(spokes[k])
				active[k] = false
				changed = true
			}
		}
	}

	for j := 0; j < n; j++ {
		if !active[j] {
			continue
		}
		tj := m.EdgeFace(spokes[j])
		if flagged[j] {
			border := m.EdgeNext(spokes[j])
			merged := m.RemoveEdge(border)
			cg.transferFace(adjFace[j], merged)
			continue
		}

		candidates := make(map[int]struct{})
		for _, p := range cg.faceToPoints[joinRes.BorderFaces[j]] {
			candidates[p] = struct{}{}
		}
		for _, p := range cg.faceToPoints[adjFace[j]] {
			candidates[p] = struct{}{}
		}
		for p := range candidates {
			if facePointOrientation(m, tj, remaining[p]) > 0 {
				cg.link(p, tj)
			}
		}
	}
}
