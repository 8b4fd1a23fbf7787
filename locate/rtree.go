// Package locate answers "which finite Voronoi vertex is nearest a query
// point" in better than linear time. It is purely additive: it consumes an
// already-built voronoi.Diagram and never participates in constructing one,
// so it cannot influence that package's invariants.
//
// The index is an R-tree (node/entry arena, quadratic-cost best split,
// nearest-first priority search via a binary heap) specialized to a 2D Box.
package locate

import (
	"container/heap"
	"math"

	"github.com/hullgraph/hull3d/point"
	"github.com/hullgraph/hull3d/voronoi"
)

const (
	minChildren = 2
	maxChildren = 4
)

type entry struct {
	box Box
	// For leaf nodes, this is a vertex index into Index.sites. For
	// non-leaf nodes, it is the child node index.
	data int
}

type node struct {
	entries    [1 + maxChildren]entry
	numEntries int
	parent     int
	isLeaf     bool
}

// Index is an in-memory spatial index over a fixed set of 2D sites,
// supporting nearest-site queries.
type Index struct {
	nodes []node
	root  int
	sites []point.XY
}

// NewIndex builds an Index over pts. The indices returned by Nearest refer
// back into pts (by position).
func NewIndex(pts []point.XY) *Index {
	idx := &Index{sites: pts, root: -1}
	for i, p := range pts {
		idx.insert(boxFromPoint(p.X, p.Y), i)
	}
	return idx
}

// FromVoronoiDiagram builds an Index over a Voronoi diagram's finite
// vertices. The indices returned by Nearest refer into d.Vertices.
func FromVoronoiDiagram(d voronoi.Diagram) *Index {
	idx := &Index{root: -1}
	for i, v := range d.Vertices {
		if v.AtInfinity {
			continue
		}
		idx.sites = append(idx.sites, point.XY{X: v.X, Y: v.Y})
		idx.insert(boxFromPoint(v.X, v.Y), i)
	}
	return idx
}

func (t *Index) hasRoot() bool {
	return t.root != -1
}

func (t *Index) insert(box Box, recordID int) {
	if !t.hasRoot() {
		t.nodes = append(t.nodes, node{isLeaf: true})
		t.root = len(t.nodes) - 1
	}

	level := t.nodeDepth(t.root) - 1
	leaf := t.chooseBestNode(box, level)

	n := &t.nodes[leaf]
	n.entries[n.numEntries] = entry{box: box, data: recordID}
	n.numEntries++
	t.adjustBoxesUpwards(leaf, box)

	if t.nodes[leaf].numEntries <= maxChildren {
		return
	}
	newNode := t.splitNode(leaf)
	root1, root2 := t.adjustTree(leaf, newNode)
	if root2 != -1 {
		t.joinRoots(root1, root2)
	}
}

func (t *Index) nodeDepth(nodeIdx int) int {
	d := 1
	for !t.nodes[nodeIdx].isLeaf {
		d++
		nodeIdx = t.nodes[nodeIdx].entries[0].data
	}
	return d
}

func calculateBound(n *node) Box {
	b := n.entries[0].box
	for i := 1; i < n.numEntries; i++ {
		b = combine(b, n.entries[i].box)
	}
	return b
}

func (t *Index) adjustBoxesUpwards(nodeIdx int, box Box) {
	for nodeIdx != t.root {
		parent := t.nodes[nodeIdx].parent
		for i := 0; i < t.nodes[parent].numEntries; i++ {
			e := &t.nodes[parent].entries[i]
			if e.data == nodeIdx {
				e.box = combine(e.box, box)
			}
		}
		nodeIdx = parent
	}
}

func (t *Index) joinRoots(r1, r2 int) {
	t.nodes = append(t.nodes, node{
		entries: [1 + maxChildren]entry{
			{box: calculateBound(&t.nodes[r1]), data: r1},
			{box: calculateBound(&t.nodes[r2]), data: r2},
		},
		numEntries: 2,
		parent:     -1,
		isLeaf:     false,
	})
	newRoot := len(t.nodes) - 1
	t.nodes[r1].parent = newRoot
	t.nodes[r2].parent = newRoot
	t.root = newRoot
}

func (t *Index) adjustTree(n, nn int) (int, int) {
	for {
		if n == t.root {
			return n, nn
		}
		parent := t.nodes[n].parent
		for i := 0; i < t.nodes[parent].numEntries; i++ {
			if t.nodes[parent].entries[i].data == n {
				t.nodes[parent].entries[i].box = calculateBound(&t.nodes[n])
				break
			}
		}

		pp := -1
		if nn != -1 {
			child := &t.nodes[parent]
			child.entries[child.numEntries] = entry{box: calculateBound(&t.nodes[nn]), data: nn}
			child.numEntries++
			t.nodes[nn].parent = parent
			if t.nodes[parent].numEntries > maxChildren {
				pp = t.splitNode(parent)
			}
		}

		n, nn = parent, pp
	}
}

// pickSeeds runs Guttman's QS1: the pair of entries whose bounding boxes
// waste the most area if combined anchor the two new groups.
func pickSeeds(entries []entry) (int, int) {
	bestWaste := math.Inf(-1)
	var seedA, seedB int
	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			waste := area(combine(entries[i].box, entries[j].box)) - area(entries[i].box) - area(entries[j].box)
			if waste > bestWaste {
				bestWaste, seedA, seedB = waste, i, j
			}
		}
	}
	return seedA, seedB
}

func writeGroup(n *node, group []entry) {
	n.numEntries = 0
	for _, e := range group {
		n.entries[n.numEntries] = e
		n.numEntries++
	}
	for i := n.numEntries; i < len(n.entries); i++ {
		n.entries[i] = entry{}
	}
}

// splitNode splits the overflowing node n into two groups using Guttman's
// quadratic-cost split: pickSeeds anchors each group on the worst-wasting
// pair, then each remaining entry is assigned, one at a time, to whichever
// group it prefers most strongly (QS2/QS3), falling back to dumping the
// rest into whichever group needs them to satisfy minChildren.
func (t *Index) splitNode(n int) int {
	entries := append([]entry(nil), t.nodes[n].entries[:t.nodes[n].numEntries]...)
	seedA, seedB := pickSeeds(entries)

	assigned := make([]bool, len(entries))
	groupA := []entry{entries[seedA]}
	groupB := []entry{entries[seedB]}
	boxA, boxB := entries[seedA].box, entries[seedB].box
	assigned[seedA], assigned[seedB] = true, true
	remaining := len(entries) - 2

	for remaining > 0 {
		if len(groupA)+remaining <= minChildren {
			for i, e := range entries {
				if !assigned[i] {
					groupA = append(groupA, e)
				}
			}
			break
		}
		if len(groupB)+remaining <= minChildren {
			for i, e := range entries {
				if !assigned[i] {
					groupB = append(groupB, e)
				}
			}
			break
		}

		best, bestPreference, bestToA := -1, -1.0, false
		for i, e := range entries {
			if assigned[i] {
				continue
			}
			dA := area(combine(boxA, e.box)) - area(boxA)
			dB := area(combine(boxB, e.box)) - area(boxB)
			preference := math.Abs(dA - dB)
			if best == -1 || preference > bestPreference {
				best, bestPreference = i, preference
				bestToA = dA < dB || (dA == dB && area(boxA) < area(boxB))
			}
		}
		assigned[best] = true
		remaining--
		if bestToA {
			groupA = append(groupA, entries[best])
			boxA = combine(boxA, entries[best].box)
		} else {
			groupB = append(groupB, entries[best])
			boxB = combine(boxB, entries[best].box)
		}
	}

	t.nodes = append(t.nodes, node{isLeaf: t.nodes[n].isLeaf})
	newNode := len(t.nodes) - 1
	writeGroup(&t.nodes[n], groupA)
	writeGroup(&t.nodes[newNode], groupB)

	if !t.nodes[newNode].isLeaf {
		for i := 0; i < t.nodes[newNode].numEntries; i++ {
			t.nodes[t.nodes[newNode].entries[i].data].parent = newNode
		}
	}
	return newNode
}

func (t *Index) chooseBestNode(box Box, level int) int {
	n := t.root
	for {
		if level == 0 {
			return n
		}
		bestDelta := enlargement(box, t.nodes[n].entries[0].box)
		bestEntry := 0
		for i := 1; i < t.nodes[n].numEntries; i++ {
			entryBox := t.nodes[n].entries[i].box
			delta := enlargement(box, entryBox)
			if delta < bestDelta {
				bestDelta = delta
				bestEntry = i
			} else if delta == bestDelta && area(entryBox) < area(t.nodes[n].entries[bestEntry].box) {
				bestEntry = i
			}
		}
		n = t.nodes[n].entries[bestEntry].data
		level--
	}
}

// Nearest returns the index (into the slice the Index was built from) of
// the site closest to (x, y), and false if the index is empty.
func (t *Index) Nearest(x, y float64) (int, bool) {
	if !t.hasRoot() {
		return 0, false
	}

	queue := &candidateQueue{x: x, y: y}
	enqueueNode := func(n *node) {
		for i := 0; i < n.numEntries; i++ {
			heap.Push(queue, candidate{box: n.entries[i].box, data: n.entries[i].data, isChild: !n.isLeaf})
		}
	}
	enqueueNode(&t.nodes[t.root])

	for queue.Len() > 0 {
		c := heap.Pop(queue).(candidate)
		if !c.isChild {
			return c.data, true
		}
		enqueueNode(&t.nodes[c.data])
	}
	return 0, false
}

// RangeSearch calls callback with the index of every site whose box
// overlaps box, stopping early if callback returns an error.
func (t *Index) RangeSearch(box Box, callback func(recordID int) error) error {
	if !t.hasRoot() {
		return nil
	}
	var recurse func(*node) error
	recurse = func(n *node) error {
		for i := 0; i < n.numEntries; i++ {
			e := n.entries[i]
			if !overlap(e.box, box) {
				continue
			}
			if n.isLeaf {
				if err := callback(e.data); err != nil {
					return err
				}
			} else if err := recurse(&t.nodes[e.data]); err != nil {
				return err
			}
		}
		return nil
	}
	return recurse(&t.nodes[t.root])
}

type candidate struct {
	box     Box
	data    int
	isChild bool
}

type candidateQueue struct {
	entries []candidate
	x, y    float64
}

func (q *candidateQueue) Len() int { return len(q.entries) }
func (q *candidateQueue) Less(i, j int) bool {
	return squaredDistanceToPoint(q.entries[i].box, q.x, q.y) < squaredDistanceToPoint(q.entries[j].box, q.x, q.y)
}
func (q *candidateQueue) Swap(i, j int) { q.entries[i], q.entries[j] = q.entries[j], q.entries[i] }
func (q *candidateQueue) Push(x any)    { q.entries = append(q.entries, x.(candidate)) }
func (q *candidateQueue) Pop() any {
	e := q.entries[len(q.entries)-1]
	q.entries = q.entries[:len(q.entries)-1]
	return e
}
