package locate

import "math"

// Box is an axis-aligned 2D bounding box, inclusive on both ends.
type Box struct {
	MinX, MinY, MaxX, MaxY float64
}

func boxFromPoint(x, y float64) Box {
	return Box{MinX: x, MinY: y, MaxX: x, MaxY: y}
}

// combine returns the smallest box containing both a and b.
func combine(a, b Box) Box {
	return Box{
		MinX: math.Min(a.MinX, b.MinX),
		MinY: math.Min(a.MinY, b.MinY),
		MaxX: math.Max(a.MaxX, b.MaxX),
		MaxY: math.Max(a.MaxY, b.MaxY),
	}
}

func area(b Box) float64 {
	return (b.MaxX - b.MinX) * (b.MaxY - b.MinY)
}

// enlargement is how much larger a's area becomes after being combined
// with b, used to choose the least-enlarging subtree during insertion.
func enlargement(b, a Box) float64 {
	return area(combine(a, b)) - area(a)
}

func overlap(a, b Box) bool {
	return a.MinX <= b.MaxX && b.MinX <= a.MaxX &&
		a.MinY <= b.MaxY && b.MinY <= a.MaxY
}

// squaredDistanceToPoint is the squared Euclidean distance from (x, y) to
// the closest point of b (zero if (x, y) is inside b).
func squaredDistanceToPoint(b Box, x, y float64) float64 {
	dx := 0.0
	switch {
	case x < b.MinX:
		dx = b.MinX - x
	case x > b.MaxX:
		dx = x - b.MaxX
	}
	dy := 0.0
	switch {
	case y < b.MinY:
		dy = b.MinY - y
	case y > b.MaxY:
		dy = y - b.MaxY
	}
	return dx*dx + dy*dy
}
