package hull

import (
	"math/rand"

	"github.com/hullgraph/hull3d/dcel"
)

type config[F any] struct {
	rand     *rand.Rand
	observer Observer
}

// Option configures a ComputeConvexHull3D run, following this codebase's
// functional-option convention.
type Option[F any] func(*config[F])

// WithRand supplies the random source used to shuffle the non-seed points
// before insertion. Tests that need a reproducible hull should
// pass a rand.New(rand.NewSource(seed)) built from a fixed seed; the default
// is the package-level global source.
func WithRand[F any](r *rand.Rand) Option[F] {
	return func(c *config[F]) { c.rand = r }
}

// WithObserver registers a callback notified at the five phases of the
// incremental insertion loop.
func WithObserver[F any](o Observer) Option[F] {
	return func(c *config[F]) { c.observer = o }
}

// newConfig leaves rand nil by default, meaning "use the math/rand package
// source" (auto-seeded since Go 1.20); tests pass WithRand for a
// reproducible shuffle.
func newConfig[F any](opts []Option[F]) *config[F] {
	c := &config[F]{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *config[F]) shuffle(n int, swap func(i, j int)) {
	if c.rand != nil {
		c.rand.Shuffle(n, swap)
		return
	}
	rand.Shuffle(n, swap)
}

func (c *config[F]) notify(phase Phase, peak dcel.VertexID) {
	if c.observer != nil {
		c.observer(phase, peak)
	}
}
