package exactextract

import "math"

// shoelaceRaw computes the signed area of coords, treated as a closed ring
// (the last vertex implicitly connects back to the first). Positive for a
// counter-clockwise winding in a y-up coordinate system.
func shoelaceRaw(coords []Coordinate) float64 {
	n := len(coords)
	if n < 2 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += coords[i].X*coords[j].Y - coords[j].X*coords[i].Y
	}
	return sum / 2
}

// SignedArea returns the area enclosed by a closed ring, via the shoelace
// formula. The core uses the absolute value: orientation is not tracked
// once a ring has been reduced to an area.
func SignedArea(ring []Coordinate) float64 {
	return math.Abs(shoelaceRaw(ring))
}

// cornerAfter returns the corner reached by walking counter-clockwise from
// side to its successor side.
func cornerAfter(box Box, side Side) Coordinate {
	switch side {
	case SideBottom:
		return box.LowerRight()
	case SideRight:
		return box.UpperRight()
	case SideTop:
		return box.UpperLeft()
	case SideLeft:
		return box.LowerLeft()
	default:
		panic("exactextract: cornerAfter called with SideNone")
	}
}

// nextSideCCW returns the side that follows side when walking the box
// boundary counter-clockwise: BOTTOM -> RIGHT -> TOP -> LEFT -> BOTTOM.
func nextSideCCW(side Side) Side {
	switch side {
	case SideBottom:
		return SideRight
	case SideRight:
		return SideTop
	case SideTop:
		return SideLeft
	case SideLeft:
		return SideBottom
	default:
		panic("exactextract: nextSideCCW called with SideNone")
	}
}

// closedPolygonFor augments a traversal's coordinates with the boundary
// corners needed to connect its exit point back to its entry point,
// walking the box boundary counter-clockwise. If entrySide and exitSide
// coincide, the loop below adds no corners, giving the zero-length
// completing arc that spec.md §4.E mandates for that case.
//
// A traversal whose EntrySide is NONE began at a point strictly inside the
// cell: the ring's first vertex happened to land in this cell's interior
// before ever crossing a side (see DESIGN.md's decision on this open
// question). There is no real side to walk back to, so we anchor the
// traversal to a virtual entry on the box's TOP edge directly above the
// true starting point — the "reference corner" of §4.E read as "close
// toward the top": the vertical ray from any interior point always exits
// through TOP, so the anchor point (entryX, box.YMax) is always valid, and
// the final leg from that anchor straight down to the real starting
// coordinate closes the polygon exactly along the true (non-boundary)
// first edge of the traversal.
func closedPolygonFor(box Box, t *Traversal) []Coordinate {
	entrySide := t.EntrySide()
	var anchor Coordinate
	interiorStart := entrySide == SideNone
	if interiorStart {
		entrySide = SideTop
		anchor = Coordinate{X: t.Coords()[0].X, Y: box.YMax}
	}

	poly := make([]Coordinate, len(t.Coords()), len(t.Coords())+5)
	copy(poly, t.Coords())

	for cur := t.ExitSide(); cur != entrySide; cur = nextSideCCW(cur) {
		poly = append(poly, cornerAfter(box, cur))
	}

	if interiorStart {
		poly = append(poly, anchor)
	}

	return poly
}

// leftHandArea computes the area of the region of box lying to the left of
// the union of the given traversals (§4.E). Degenerate traversals (fewer
// than 2 distinct coordinates) must already be excluded by the caller.
func leftHandArea(box Box, traversals []*Traversal) float64 {
	var total float64
	for _, t := range traversals {
		total += shoelaceRaw(closedPolygonFor(box, t))
	}
	return total
}
