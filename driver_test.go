package exactextract_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	exactextract "github.com/alpha-beta-soup/exactextract"
	"github.com/alpha-beta-soup/exactextract/fixtures"
)

func TestDriverScenarios(t *testing.T) {
	for _, sc := range fixtures.Scenarios {
		t.Run(sc.Name, func(t *testing.T) {
			grid, err := exactextract.NewGrid(sc.Extent, sc.Dx, sc.Dy, sc.Kind)
			require.NoError(t, err)

			d := exactextract.NewDriver(grid)
			matrix, err := d.Process(sc.Rings)
			require.NoError(t, err)

			require.Equal(t, len(sc.Expected), matrix.Rows())
			for row := range sc.Expected {
				require.Equal(t, len(sc.Expected[row]), matrix.Cols())
				for col, want := range sc.Expected[row] {
					require.InDeltaf(t, want, matrix.At(row, col), 1e-9,
						"cell (%d,%d)", row, col)
				}
			}
		})
	}
}

func TestDriverProcessRejectsUnclosedRing(t *testing.T) {
	grid, err := exactextract.NewGrid(mustNewBox(t, 0, 0, 3, 3), 1, 1, exactextract.Bounded)
	require.NoError(t, err)

	d := exactextract.NewDriver(grid)
	_, err = d.Process([][]exactextract.Coordinate{
		{{0.5, 0.5}, {1.5, 0.5}, {1.5, 1.5}},
	})
	require.Error(t, err)
	require.True(t, errors.Is(err, exactextract.ErrInvalidRing))
}

func TestDriverProcessRejectsShortRing(t *testing.T) {
	grid, err := exactextract.NewGrid(mustNewBox(t, 0, 0, 3, 3), 1, 1, exactextract.Bounded)
	require.NoError(t, err)

	d := exactextract.NewDriver(grid)
	_, err = d.Process([][]exactextract.Coordinate{
		{{0.5, 0.5}, {1.5, 0.5}, {0.5, 0.5}},
	})
	require.Error(t, err)
	require.True(t, errors.Is(err, exactextract.ErrInvalidRing))
}
