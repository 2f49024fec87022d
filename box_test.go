package exactextract

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBoxRejectsInverted(t *testing.T) {
	_, err := NewBox(1, 0, 0, 1)
	require.Error(t, err)
}

func TestNewBoxRejectsNaN(t *testing.T) {
	_, err := NewBox(0, 0, 1, nan())
	require.Error(t, err)
}

func nan() float64 {
	var zero float64
	return zero / zero
}

func TestBoxCorners(t *testing.T) {
	b, err := NewBox(0, 0, 2, 3)
	require.NoError(t, err)

	require.Equal(t, Coordinate{0, 0}, b.LowerLeft())
	require.Equal(t, Coordinate{2, 0}, b.LowerRight())
	require.Equal(t, Coordinate{2, 3}, b.UpperRight())
	require.Equal(t, Coordinate{0, 3}, b.UpperLeft())
	require.Equal(t, 2.0, b.Width())
	require.Equal(t, 3.0, b.Height())
	require.Equal(t, 6.0, b.Area())
}

func TestBoxContains(t *testing.T) {
	b, err := NewBox(0, 0, 1, 1)
	require.NoError(t, err)

	require.True(t, b.Contains(Coordinate{0, 0}))
	require.True(t, b.Contains(Coordinate{1, 1}))
	require.False(t, b.StrictlyContains(Coordinate{0, 0}))
	require.True(t, b.StrictlyContains(Coordinate{0.5, 0.5}))
	require.False(t, b.Contains(Coordinate{1.1, 0.5}))
}

func TestBoxCrossingPicksDeterministicSide(t *testing.T) {
	b, err := NewBox(0, 0, 1, 1)
	require.NoError(t, err)

	cases := []struct {
		name     string
		a, to    Coordinate
		wantSide Side
	}{
		{"exits_top", Coordinate{0.5, 0.5}, Coordinate{0.5, 2}, SideTop},
		{"exits_bottom", Coordinate{0.5, 0.5}, Coordinate{0.5, -1}, SideBottom},
		{"exits_left", Coordinate{0.5, 0.5}, Coordinate{-1, 0.5}, SideLeft},
		{"exits_right", Coordinate{0.5, 0.5}, Coordinate{2, 0.5}, SideRight},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, side := b.Crossing(tc.a, tc.to)
			require.Equal(t, tc.wantSide, side)
		})
	}
}

func TestBoxCrossingPanicsWhenSegmentStaysInside(t *testing.T) {
	b, err := NewBox(0, 0, 1, 1)
	require.NoError(t, err)

	require.Panics(t, func() {
		b.Crossing(Coordinate{0.2, 0.2}, Coordinate{0.8, 0.8})
	})
}
