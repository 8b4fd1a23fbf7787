package hull

import "github.com/hullgraph/hull3d/dcel"

// Phase identifies one of the five well-defined points in the incremental
// insertion loop at which an Observer is notified.
type Phase int

const (
	// InitialTetrahedron fires once, after the seed tetrahedron (or its
	// planar-fallback polygon) has been built.
	InitialTetrahedron Phase = iota

	// AfterJoinFaces fires after a point's visible faces have been joined
	// into a single face, before the new peak is inscribed.
	AfterJoinFaces

	// AfterInscribeVertex fires after the new peak vertex has been
	// inscribed into the joined face.
	AfterInscribeVertex

	// AfterMergeFaces fires after coplanar-face merging has run for the
	// current point.
	AfterMergeFaces

	// AfterRemoveRedundantVertices fires after the border-vertex cleanup
	// sweep for the current point.
	AfterRemoveRedundantVertices
)

// Observer is invoked synchronously at each Phase with the current peak
// vertex handle. It must not mutate the mesh; a visualizer typically uses it
// to pause the engine between meaningful states by blocking internally.
type Observer func(phase Phase, peak dcel.VertexID)
