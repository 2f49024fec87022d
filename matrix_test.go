package exactextract

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatrixSetAndAt(t *testing.T) {
	m, err := NewMatrix[float64](2, 3)
	require.NoError(t, err)

	m.Set(1, 2, 0.75)
	require.Equal(t, 0.75, m.At(1, 2))
	require.Equal(t, 0.0, m.At(0, 0))
}

func TestMatrixRowIsAView(t *testing.T) {
	m, err := NewMatrix[float64](2, 2)
	require.NoError(t, err)

	row := m.Row(0)
	row[1] = 3
	require.Equal(t, 3.0, m.At(0, 1))
}

func TestMatrixIncrement(t *testing.T) {
	m, err := NewMatrix[float64](1, 1)
	require.NoError(t, err)

	m.Increment(0, 0, 0.5)
	m.Increment(0, 0, 0.25)
	require.Equal(t, 0.75, m.At(0, 0))
}

func TestMatrixEqual(t *testing.T) {
	a, err := NewMatrix[float64](1, 2)
	require.NoError(t, err)
	b, err := NewMatrix[float64](1, 2)
	require.NoError(t, err)

	require.True(t, Equal(a, b))
	a.Set(0, 0, 1)
	require.False(t, Equal(a, b))
}

func TestNewMatrixRejectsNegativeDimensions(t *testing.T) {
	_, err := NewMatrix[float64](-1, 2)
	require.Error(t, err)
}

func TestMatrixIndexPanicsOutOfRange(t *testing.T) {
	m, err := NewMatrix[float64](1, 1)
	require.NoError(t, err)

	require.Panics(t, func() { m.At(5, 5) })
}
