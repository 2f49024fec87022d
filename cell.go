package exactextract

// Location classifies a coordinate relative to a Cell's box.
type Location int

const (
	LocationInside Location = iota
	LocationBoundary
	LocationOutside
)

// TakeResult reports what Cell.Take did with the coordinate it was given.
type TakeResult int

const (
	// Kept means the coordinate was absorbed into the in-progress
	// traversal; the caller should continue with the next ring vertex.
	Kept TakeResult = iota
	// Left means the coordinate lay outside the cell; the in-progress
	// traversal was closed with an exit point on the cell boundary, and
	// the caller must route the coordinate to the neighbouring cell.
	Left
)

// Cell owns a Box and the ordered list of Traversals a ring has made
// through it. At most one traversal is ever in progress; it is always the
// last element of traversals.
type Cell struct {
	box        Box
	traversals []Traversal
}

// NewCell constructs an empty Cell over box.
func NewCell(box Box) *Cell {
	return &Cell{box: box}
}

// Box returns the cell's rectangle.
func (c *Cell) Box() Box { return c.box }

// Area returns the cell's area.
func (c *Cell) Area() float64 { return c.box.Area() }

// Side returns the side of the cell's box that coordinate lies on, or NONE
// for an interior point. A coordinate exactly on a corner resolves
// deterministically in the order LEFT, RIGHT, BOTTOM, TOP.
func (c *Cell) Side(coord Coordinate) Side {
	switch {
	case coord.X == c.box.XMin:
		return SideLeft
	case coord.X == c.box.XMax:
		return SideRight
	case coord.Y == c.box.YMin:
		return SideBottom
	case coord.Y == c.box.YMax:
		return SideTop
	default:
		return SideNone
	}
}

// Location classifies coord as INSIDE, BOUNDARY, or OUTSIDE the cell.
func (c *Cell) Location(coord Coordinate) Location {
	if c.box.StrictlyContains(coord) {
		return LocationInside
	}
	if c.box.Contains(coord) {
		return LocationBoundary
	}
	return LocationOutside
}

// traversalInProgress returns the traversal currently being built, opening
// a new one if the list is empty or the last traversal has already exited.
func (c *Cell) traversalInProgress() *Traversal {
	if len(c.traversals) == 0 || c.traversals[len(c.traversals)-1].Traversed() {
		c.traversals = append(c.traversals, Traversal{})
	}
	return &c.traversals[len(c.traversals)-1]
}

// lastTraversal returns the most recently opened traversal. Calling this
// before any call to Take is a programming error and panics.
func (c *Cell) lastTraversal() *Traversal {
	return &c.traversals[len(c.traversals)-1]
}

// Take feeds one ring coordinate to the cell, per spec.md §4.D:
//
//  1. If no traversal is in progress, open one.
//  2. If the traversal is still empty, enter the cell at coord.
//  3. Otherwise, if coord is INSIDE or on the BOUNDARY, append it.
//  4. Otherwise coord is OUTSIDE: compute the crossing point and exit.
//
// When Take returns Left, crossing and exitSide report the point and side
// the traversal left by, so the caller can call Take(crossing) on the
// adjoining cell before retrying coord there.
func (c *Cell) Take(coord Coordinate) (result TakeResult, crossing Coordinate, exitSide Side) {
	t := c.traversalInProgress()

	if t.Empty() {
		t.Enter(coord, c.Side(coord))
		return Kept, Coordinate{}, SideNone
	}

	if c.Location(coord) != LocationOutside {
		t.Add(coord)
		return Kept, Coordinate{}, SideNone
	}

	x, side := c.box.Crossing(t.LastCoordinate(), coord)
	t.Exit(x, side)
	return Left, x, side
}

// ForceExit finalises the in-progress traversal, if any, whose last
// coordinate lies exactly on the cell boundary. This handles rings whose
// closing vertex lands exactly on a cell edge without a following vertex
// to trigger a normal Take-driven exit. An in-progress traversal that began
// in the cell's interior and has returned to its first coordinate (a ring
// that never left the cell) is also finalised, with no exit side, so that
// CoveredFraction treats it as a closed ring.
func (c *Cell) ForceExit() {
	if len(c.traversals) == 0 {
		return
	}
	t := c.lastTraversal()
	if t.Traversed() {
		return
	}
	last := t.LastCoordinate()
	if c.Location(last) == LocationBoundary {
		t.ForceExit(c.Side(last))
	} else if t.EntrySide() == SideNone && len(t.Coords()) >= 4 && t.Coords()[0].Equal(last) {
		t.ForceExit(SideNone)
	}
}

// CoveredFraction returns the fraction of the cell's area covered by the
// rings that have passed through it, per spec.md §4.D.
func (c *Cell) CoveredFraction() float64 {
	if len(c.traversals) == 1 && c.traversals[0].IsClosedRing() {
		return SignedArea(c.traversals[0].Coords()) / c.Area()
	}

	var active []*Traversal
	for i := range c.traversals {
		t := &c.traversals[i]
		if !t.Traversed() || !t.MultipleUniqueCoordinates() {
			continue
		}
		active = append(active, t)
	}

	return leftHandArea(c.box, active) / c.Area()
}

// WKT renders the cell's box as a WKT POLYGON, corners in lower-left,
// lower-right, upper-right, upper-left, lower-left order.
func (c *Cell) WKT() string {
	return boxWKT(c.box)
}
