//go:build !hull3ddebug

package hull

import (
	"github.com/hullgraph/hull3d/dcel"
	"github.com/hullgraph/hull3d/point"
)

// debugCheckInvariants is a no-op outside of -tags hull3ddebug builds; see
// debug.go for the real check.
func debugCheckInvariants[F point.Number, T point.Positioned[F]](m *dcel.Mesh[T], cg *conflictGraph, remaining []T) {
}
