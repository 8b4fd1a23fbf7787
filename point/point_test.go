package point_test

import (
	"testing"

	"github.com/hullgraph/hull3d/point"
)

func TestOrientationSign(t *testing.T) {
	p := point.Vec[float64]{X: 0, Y: 0, Z: 0}
	q := point.Vec[float64]{X: 1, Y: 0, Z: 0}
	r := point.Vec[float64]{X: 0, Y: 1, Z: 0}

	above := point.Vec[float64]{X: 0, Y: 0, Z: 1}
	below := point.Vec[float64]{X: 0, Y: 0, Z: -1}
	onPlane := point.Vec[float64]{X: 1, Y: 1, Z: 0}

	if got := point.Orientation(p, q, r, above); got <= 0 {
		t.Errorf("expected positive orientation, got %v", got)
	}
	if got := point.Orientation(p, q, r, below); got >= 0 {
		t.Errorf("expected negative orientation, got %v", got)
	}
	if got := point.Orientation(p, q, r, onPlane); got != 0 {
		t.Errorf("expected zero orientation, got %v", got)
	}
}

func TestCollinear(t *testing.T) {
	p := point.Vec[int]{X: 0, Y: 0, Z: 0}
	q := point.Vec[int]{X: 1, Y: 1, Z: 1}
	r := point.Vec[int]{X: 2, Y: 2, Z: 2}
	s := point.Vec[int]{X: 2, Y: 2, Z: 3}

	if !point.Collinear(p, q, r) {
		t.Errorf("expected p,q,r to be collinear")
	}
	if point.Collinear(p, q, s) {
		t.Errorf("expected p,q,s not to be collinear")
	}
}

func TestVecLess(t *testing.T) {
	a := point.Vec[int]{X: 0, Y: 5, Z: 0}
	b := point.Vec[int]{X: 1, Y: 0, Z: 0}
	if !a.Less(b) {
		t.Errorf("expected a < b by X")
	}
	if b.Less(a) {
		t.Errorf("expected b not < a")
	}
}

func TestCross2(t *testing.T) {
	a := point.XY{X: 1, Y: 0}
	b := point.XY{X: 0, Y: 1}
	if got := point.Cross2(a, b); got != 1 {
		t.Errorf("got %v, want 1", got)
	}
}
