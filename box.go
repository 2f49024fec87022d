package exactextract

import "math"

// Box is an axis-aligned rectangle with XMin <= XMax and YMin <= YMax.
type Box struct {
	XMin, YMin, XMax, YMax float64
}

// NewBox constructs a Box, rejecting NaN components and an inverted
// rectangle.
func NewBox(xmin, ymin, xmax, ymax float64) (Box, error) {
	for _, v := range []float64{xmin, ymin, xmax, ymax} {
		if math.IsNaN(v) {
			return Box{}, failureErrorf("box coordinate is NaN")
		}
	}
	if xmin > xmax || ymin > ymax {
		return Box{}, failureErrorf("box is inverted: (%v,%v,%v,%v)", xmin, ymin, xmax, ymax)
	}
	return Box{XMin: xmin, YMin: ymin, XMax: xmax, YMax: ymax}, nil
}

// Width returns XMax - XMin.
func (b Box) Width() float64 { return b.XMax - b.XMin }

// Height returns YMax - YMin.
func (b Box) Height() float64 { return b.YMax - b.YMin }

// Area returns the box's area.
func (b Box) Area() float64 { return b.Width() * b.Height() }

// LowerLeft returns the (XMin, YMin) corner.
func (b Box) LowerLeft() Coordinate { return Coordinate{b.XMin, b.YMin} }

// LowerRight returns the (XMax, YMin) corner.
func (b Box) LowerRight() Coordinate { return Coordinate{b.XMax, b.YMin} }

// UpperRight returns the (XMax, YMax) corner.
func (b Box) UpperRight() Coordinate { return Coordinate{b.XMax, b.YMax} }

// UpperLeft returns the (XMin, YMax) corner.
func (b Box) UpperLeft() Coordinate { return Coordinate{b.XMin, b.YMax} }

// Contains reports whether c lies within b, boundary inclusive.
func (b Box) Contains(c Coordinate) bool {
	return c.X >= b.XMin && c.X <= b.XMax && c.Y >= b.YMin && c.Y <= b.YMax
}

// StrictlyContains reports whether c lies within b, boundary exclusive.
func (b Box) StrictlyContains(c Coordinate) bool {
	return c.X > b.XMin && c.X < b.XMax && c.Y > b.YMin && c.Y < b.YMax
}

// Crossing returns the point at which the segment (a, to) first leaves the
// box, plus the side it crosses. The caller must guarantee that a is
// inside-or-on the box and to is strictly outside; calling Crossing when
// both endpoints are inside is a programming error and panics.
//
// The edge to test against is chosen by the sign of dx, dy between a and
// to, following spec order: dy>0 tests TOP, dy<0 tests BOTTOM, dx<0 tests
// LEFT, dx>0 tests RIGHT. When more than one test could apply (corner
// exit), the first match in the fixed order TOP, BOTTOM, LEFT, RIGHT wins.
// This order differs from the LEFT, RIGHT, BOTTOM, TOP order Cell.Side
// uses for a coordinate on a corner.
func (b Box) Crossing(a, to Coordinate) (Coordinate, Side) {
	dx := to.X - a.X
	dy := to.Y - a.Y

	if dy > 0 {
		if c, ok := segmentIntersection(a, to, b.UpperLeft(), b.UpperRight()); ok {
			return c, SideTop
		}
	}
	if dy < 0 {
		if c, ok := segmentIntersection(a, to, b.LowerRight(), b.LowerLeft()); ok {
			return c, SideBottom
		}
	}
	if dx < 0 {
		if c, ok := segmentIntersection(a, to, b.LowerLeft(), b.UpperLeft()); ok {
			return c, SideLeft
		}
	}
	if dx > 0 {
		if c, ok := segmentIntersection(a, to, b.LowerRight(), b.UpperRight()); ok {
			return c, SideRight
		}
	}

	panic("exactextract: Box.Crossing called with a segment that does not leave the box")
}

// segmentIntersection computes the intersection of segment (p1, p2) with
// segment (p3, p4), returning ok=false if the segments are parallel or do
// not intersect within both parameter ranges.
func segmentIntersection(p1, p2, p3, p4 Coordinate) (Coordinate, bool) {
	d1x := p2.X - p1.X
	d1y := p2.Y - p1.Y
	d2x := p4.X - p3.X
	d2y := p4.Y - p3.Y

	denom := d1x*d2y - d1y*d2x
	if denom == 0 {
		return Coordinate{}, false
	}

	dx := p3.X - p1.X
	dy := p3.Y - p1.Y

	t := (dx*d2y - dy*d2x) / denom
	u := (dx*d1y - dy*d1x) / denom

	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Coordinate{}, false
	}

	return Coordinate{X: p1.X + t*d1x, Y: p1.Y + t*d1y}, true
}
