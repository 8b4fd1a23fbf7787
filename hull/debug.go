//go:build hull3ddebug

package hull

import (
	"fmt"

	"github.com/hullgraph/hull3d/dcel"
	"github.com/hullgraph/hull3d/point"
)

// debugCheckInvariants walks the conflict graph's bipartite structure and
// panics with a descriptive message at the first violation of its
// contract: a point appears in a face's list iff that face appears in the
// point's set, iff facePointOrientation(face, point) > 0 against the
// point's current position. It also checks that every face the graph
// still references is live in the mesh.
//
// Built only under -tags hull3ddebug: this walks every (point, face) pair
// the graph currently holds, which is too costly to run unconditionally
// on every insertion of a production build.
func debugCheckInvariants[F point.Number, T point.Positioned[F]](m *dcel.Mesh[T], cg *conflictGraph, remaining []T) {
	for idx, faces := range cg.pointToFaces {
		for f := range faces {
			if !containsPoint(cg.faceToPoints[f], idx) {
				panic(fmt.Sprintf("hull3ddebug: point %d lists face %d but face %d has no link back to point %d", idx, f, f, idx))
			}
			if !m.FaceLive(f) {
				panic(fmt.Sprintf("hull3ddebug: point %d is linked to dead face %d", idx, f))
			}
			if facePointOrientation(m, f, remaining[idx]) <= 0 {
				panic(fmt.Sprintf("hull3ddebug: point %d is linked to face %d but facePointOrientation is not positive", idx, f))
			}
		}
	}
	for f, pts := range cg.faceToPoints {
		for _, idx := range pts {
			if _, ok := cg.pointToFaces[idx][f]; !ok {
				panic(fmt.Sprintf("hull3ddebug: face %d lists point %d but point %d has no link back to face %d", f, idx, idx, f))
			}
		}
	}
}

func containsPoint(pts []int, target int) bool {
	for _, p := range pts {
		if p == target {
			return true
		}
	}
	return false
}
