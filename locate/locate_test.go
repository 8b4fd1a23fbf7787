package locate_test

import (
	"testing"

	"github.com/hullgraph/hull3d/locate"
	"github.com/hullgraph/hull3d/point"
)

func TestNearest(t *testing.T) {
	pts := []point.XY{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 5, Y: 5},
	}
	idx := locate.NewIndex(pts)

	got, ok := idx.Nearest(1, 1)
	if !ok {
		t.Fatal("expected a nearest site")
	}
	if got != 0 {
		t.Errorf("nearest to (1,1) = site %d, want 0", got)
	}

	got, ok = idx.Nearest(9, 9)
	if !ok {
		t.Fatal("expected a nearest site")
	}
	if got != 3 {
		t.Errorf("nearest to (9,9) = site %d, want 3", got)
	}
}

func TestNearestEmpty(t *testing.T) {
	idx := locate.NewIndex(nil)
	if _, ok := idx.Nearest(0, 0); ok {
		t.Error("expected no nearest site for an empty index")
	}
}

func TestRangeSearch(t *testing.T) {
	pts := []point.XY{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 5, Y: 5},
	}
	idx := locate.NewIndex(pts)

	var found []int
	err := idx.RangeSearch(locate.Box{MinX: -1, MinY: -1, MaxX: 6, MaxY: 6}, func(id int) error {
		found = append(found, id)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(found) != 2 {
		t.Errorf("found %d sites in range, want 2 (got %v)", len(found), found)
	}
}
