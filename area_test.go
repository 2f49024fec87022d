package exactextract

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignedAreaUnitSquare(t *testing.T) {
	ring := []Coordinate{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}
	require.InDelta(t, 1.0, SignedArea(ring), 1e-12)
}

func TestClosedPolygonForBoundaryEntry(t *testing.T) {
	box := mustBox(t, 1, 1, 2, 2)

	var tr Traversal
	tr.Enter(Coordinate{1, 1.5}, SideLeft)
	tr.Exit(Coordinate{2, 1.5}, SideRight)

	poly := closedPolygonFor(box, &tr)
	area := shoelaceRaw(poly)

	// Entering at y=1.5 on the left and exiting at y=1.5 on the right,
	// closing counter-clockwise via the top, encloses the upper half of
	// the cell (area 0.5).
	require.InDelta(t, 0.5, area, 1e-12)
}

func TestClosedPolygonForInteriorStart(t *testing.T) {
	// Bottom-left cell of spec.md's centred-square scenario: the ring's
	// first vertex (0.5, 0.5) lies strictly inside the cell [0,1]x[0,1],
	// and the first segment exits via the right side at (1, 0.5).
	box := mustBox(t, 0, 0, 1, 1)

	var tr Traversal
	tr.Enter(Coordinate{0.5, 0.5}, SideNone)
	tr.Exit(Coordinate{1, 0.5}, SideRight)

	poly := closedPolygonFor(box, &tr)
	area := shoelaceRaw(poly)

	require.InDelta(t, 0.25, area, 1e-12)
}

func TestLeftHandAreaSumsMultipleTraversals(t *testing.T) {
	box := mustBox(t, 0, 0, 1, 1)

	var a, b Traversal
	a.Enter(Coordinate{0, 0.25}, SideLeft)
	a.Exit(Coordinate{0.5, 0}, SideBottom)

	b.Enter(Coordinate{0.5, 1}, SideTop)
	b.Exit(Coordinate{1, 0.75}, SideRight)

	got := leftHandArea(box, []*Traversal{&a, &b})
	require.Greater(t, got, 0.0)
	require.Less(t, got, 1.0)
}
