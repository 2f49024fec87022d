package exactextract

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCellSideAndLocation(t *testing.T) {
	c := NewCell(mustBox(t, 0, 0, 1, 1))

	require.Equal(t, SideLeft, c.Side(Coordinate{0, 0.5}))
	require.Equal(t, SideRight, c.Side(Coordinate{1, 0.5}))
	require.Equal(t, SideBottom, c.Side(Coordinate{0.5, 0}))
	require.Equal(t, SideTop, c.Side(Coordinate{0.5, 1}))
	require.Equal(t, SideNone, c.Side(Coordinate{0.5, 0.5}))

	require.Equal(t, LocationInside, c.Location(Coordinate{0.5, 0.5}))
	require.Equal(t, LocationBoundary, c.Location(Coordinate{0, 0.5}))
	require.Equal(t, LocationOutside, c.Location(Coordinate{2, 2}))
}

func TestCellCoveredFractionClosedRing(t *testing.T) {
	c := NewCell(mustBox(t, 0, 0, 1, 1))

	for _, v := range []Coordinate{{0.1, 0.1}, {0.2, 0.1}, {0.2, 0.2}, {0.1, 0.2}, {0.1, 0.1}} {
		c.Take(v)
	}
	c.ForceExit()

	require.InDelta(t, 0.01, c.CoveredFraction(), 1e-12)
}

func TestCellTakeRoutesExitOnLeave(t *testing.T) {
	c := NewCell(mustBox(t, 0, 0, 1, 1))

	result, _, _ := c.Take(Coordinate{0.5, 0.5})
	require.Equal(t, Kept, result)

	result, crossing, side := c.Take(Coordinate{2, 0.5})
	require.Equal(t, Left, result)
	require.Equal(t, SideRight, side)
	require.Equal(t, Coordinate{1, 0.5}, crossing)
}

func TestCellForceExitOnlyWhenOnBoundary(t *testing.T) {
	c := NewCell(mustBox(t, 0, 0, 1, 1))
	c.Take(Coordinate{0.5, 0.5})
	c.ForceExit() // last coordinate is interior, so this must stay in progress

	require.False(t, c.lastTraversal().Traversed())
}
