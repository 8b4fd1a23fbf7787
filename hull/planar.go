package hull

import (
	"sort"

	"github.com/hullgraph/hull3d/dcel"
	"github.com/hullgraph/hull3d/point"
)

// planarFallback handles the case where all input points are coplanar: the
// three seeds define the plane (and, via their cross product, an orientation
// normal), and a 2D convex hull is built on that plane by Andrew's
// monotone-chain construction.
func planarFallback[F point.Number, T point.Positioned[F]](m *dcel.Mesh[T], seeds []T, remaining []T, cfg *config[F]) (*dcel.Mesh[T], dcel.VertexID) {
	all := make([]T, 0, len(seeds)+len(remaining))
	all = append(all, seeds...)
	all = append(all, remaining...)
	sort.Slice(all, func(i, j int) bool { return all[i].Position().Less(all[j].Position()) })

	normal := point.Cross(seeds[1].Position().Sub(seeds[0].Position()), seeds[2].Position().Sub(seeds[0].Position()))

	// turn reports the sign of the normal-projected cross product of (a-o)
	// and (b-o): positive means a left turn with respect to normal.
	turn := func(o, a, b T) F {
		return point.Dot(normal, point.Cross(a.Position().Sub(o.Position()), b.Position().Sub(o.Position())))
	}

	chain := func(pts []T) []T {
		var c []T
		for _, p := range pts {
			for len(c) >= 2 && turn(c[len(c)-2], c[len(c)-1], p) <= 0 {
				c = c[:len(c)-1]
			}
			c = append(c, p)
		}
		return c
	}

	lower := chain(all)

	reversed := make([]T, len(all))
	for i, p := range all {
		reversed[len(all)-1-i] = p
	}
	upper := chain(reversed)

	if len(lower) < 1 || len(upper) < 1 {
		return m, dcel.NilVertex
	}
	polygon := make([]T, 0, len(lower)+len(upper)-2)
	polygon = append(polygon, lower[:len(lower)-1]...)
	polygon = append(polygon, upper[:len(upper)-1]...)

	face := m.MakePolygon(polygon)
	if face == dcel.NilFace {
		return m, dcel.NilVertex
	}
	any := m.EdgeOrigin(m.FaceOuterComponent(face))
	cfg.notify(InitialTetrahedron, any)
	return m, any
}
