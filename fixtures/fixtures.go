// Package fixtures holds literal grid/ring/expected-matrix cases used to
// exercise the coverage engine end to end, the way a rendering library
// keeps a table of named test paths alongside its rasteriser.
package fixtures

import "github.com/alpha-beta-soup/exactextract"

// Scenario pairs a grid and a set of rings with the covered-fraction
// matrix they are expected to produce.
type Scenario struct {
	Name     string
	Extent   exactextract.Box
	Dx, Dy   float64
	Kind     exactextract.Kind
	Rings    [][]exactextract.Coordinate
	Expected [][]float64 // rows top-down, as printed in the matrix
}

func ring(coords ...float64) []exactextract.Coordinate {
	if len(coords)%2 != 0 {
		panic("fixtures: ring called with an odd number of coordinate components")
	}
	out := make([]exactextract.Coordinate, 0, len(coords)/2)
	for i := 0; i < len(coords); i += 2 {
		out = append(out, exactextract.Coordinate{X: coords[i], Y: coords[i+1]})
	}
	return out
}

func box(xmin, ymin, xmax, ymax float64) exactextract.Box {
	b, err := exactextract.NewBox(xmin, ymin, xmax, ymax)
	if err != nil {
		panic(err)
	}
	return b
}

// Scenarios is the literal scenario table.
var Scenarios = []Scenario{
	{
		Name:   "square_ring_centred_on_3x3",
		Extent: box(0, 0, 3, 3),
		Dx:     1, Dy: 1,
		Kind: exactextract.Bounded,
		Rings: [][]exactextract.Coordinate{
			ring(0.5, 0.5, 2.5, 0.5, 2.5, 2.5, 0.5, 2.5, 0.5, 0.5),
		},
		Expected: [][]float64{
			{0.25, 0.5, 0.25},
			{0.5, 1.0, 0.5},
			{0.25, 0.5, 0.25},
		},
	},
	{
		Name:   "ring_entirely_in_one_cell",
		Extent: box(0, 0, 3, 3),
		Dx:     1, Dy: 1,
		Kind: exactextract.Bounded,
		Rings: [][]exactextract.Coordinate{
			ring(0.1, 0.1, 0.2, 0.1, 0.2, 0.2, 0.1, 0.2, 0.1, 0.1),
		},
		Expected: [][]float64{
			{0, 0, 0},
			{0, 0, 0},
			{0.01, 0, 0},
		},
	},
	{
		Name:   "ring_coincident_with_extent",
		Extent: box(0, 0, 3, 3),
		Dx:     1, Dy: 1,
		Kind: exactextract.Bounded,
		Rings: [][]exactextract.Coordinate{
			ring(0, 0, 3, 0, 3, 3, 0, 3, 0, 0),
		},
		Expected: [][]float64{
			{1.0, 1.0, 1.0},
			{1.0, 1.0, 1.0},
			{1.0, 1.0, 1.0},
		},
	},
	{
		Name:   "infinite_grid_halo_absorbs_overshoot",
		Extent: box(0, 0, 2, 2),
		Dx:     1, Dy: 1,
		Kind: exactextract.Infinite,
		Rings: [][]exactextract.Coordinate{
			ring(-1, -1, 3, -1, 3, 3, -1, 3, -1, -1),
		},
		Expected: [][]float64{
			{1.0, 1.0},
			{1.0, 1.0},
		},
	},
	{
		Name:   "triangular_ring_on_3x3",
		Extent: box(0, 0, 3, 3),
		Dx:     1, Dy: 1,
		Kind: exactextract.Bounded,
		Rings: [][]exactextract.Coordinate{
			ring(0, 0, 3, 0, 0, 3, 0, 0),
		},
		Expected: [][]float64{
			{0.5, 0, 0},
			{1.0, 0.5, 0},
			{1.0, 1.0, 0.5},
		},
	},
}
