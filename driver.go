package exactextract

type cellKey struct{ row, col int }

// Driver walks one or more polygon rings across a Grid, building a Cell for
// every cell the rings actually touch, and renders the result as a Matrix
// of covered fractions over the grid's real (non-halo) extent.
type Driver struct {
	grid  Grid
	cells map[cellKey]*Cell
}

// NewDriver returns a Driver over grid.
func NewDriver(grid Grid) *Driver {
	return &Driver{grid: grid, cells: make(map[cellKey]*Cell)}
}

func (d *Driver) cellAt(row, col int) *Cell {
	key := cellKey{row, col}
	c, ok := d.cells[key]
	if !ok {
		c = NewCell(d.grid.GridCell(row, col))
		d.cells[key] = c
	}
	return c
}

// Process walks each ring in rings through the grid, then fills any cell
// fully enclosed by a ring but never touched by a ring edge (see
// DESIGN.md's note on this open question), and returns the resulting
// covered-fraction Matrix over the grid's real extent.
func (d *Driver) Process(rings [][]Coordinate) (Matrix[float64], error) {
	for _, ring := range rings {
		if err := d.processRing(ring); err != nil {
			return Matrix[float64]{}, err
		}
	}

	pad := d.grid.kind.padding()
	realRows := d.grid.Rows() - 2*pad
	realCols := d.grid.Cols() - 2*pad

	out, err := NewMatrix[float64](realRows, realCols)
	if err != nil {
		return Matrix[float64]{}, err
	}

	for key, cell := range d.cells {
		row, col := key.row-pad, key.col-pad
		if row < 0 || row >= realRows || col < 0 || col >= realCols {
			continue
		}
		out.Set(row, col, cell.CoveredFraction())
	}

	d.fillInterior(rings, out, pad)

	return out, nil
}

func (d *Driver) processRing(ring []Coordinate) error {
	if len(ring) < 4 || !ring[0].Equal(ring[len(ring)-1]) {
		return invalidRingErrorf("ring has %d vertices and must be closed with at least 4", len(ring))
	}

	row, col, err := d.locate(ring[0])
	if err != nil {
		return err
	}

	touched := map[cellKey]struct{}{{row, col}: {}}
	cell := d.cellAt(row, col)
	cell.Take(ring[0])

	for i := 1; i < len(ring); i++ {
		v := ring[i]
		for {
			result, x, side := cell.Take(v)
			if result == Kept {
				break
			}
			row, col = step(row, col, side)
			cell = d.cellAt(row, col)
			touched[cellKey{row, col}] = struct{}{}
			cell.Take(x)
		}
	}

	for key := range touched {
		d.cells[key].ForceExit()
	}
	return nil
}

// step returns the (row, col) of the cell adjoining (row, col) across side.
// Rows increase downward (toward YMin); columns increase rightward.
func step(row, col int, side Side) (int, int) {
	switch side {
	case SideLeft:
		return row, col - 1
	case SideRight:
		return row, col + 1
	case SideTop:
		return row - 1, col
	case SideBottom:
		return row + 1, col
	default:
		panic("exactextract: step called with SideNone")
	}
}

func (d *Driver) locate(c Coordinate) (row, col int, err error) {
	row, err = d.grid.GetRow(c.Y)
	if err != nil {
		return 0, 0, err
	}
	col, err = d.grid.GetColumn(c.X)
	if err != nil {
		return 0, 0, err
	}
	return row, col, nil
}

// fillInterior sets to 1.0 every real cell within the bounding box of the
// input rings' vertices that was never touched by a traversal but whose
// centre lies inside the combined ring set. A straight-edged ring can fully
// enclose a cell without any of its edges ever entering that cell (e.g. a
// large square ring around a grid's centre cell); such cells are, by
// definition, not recorded by processRing, so they need this separate
// point-in-polygon pass to reach full coverage.
func (d *Driver) fillInterior(rings [][]Coordinate, out Matrix[float64], pad int) {
	minRow, maxRow, minCol, maxCol, ok := ringBounds(d.grid, rings)
	if !ok {
		return
	}

	realRows, realCols := out.Rows(), out.Cols()
	minRow = clampInt(minRow-pad, 0, realRows-1)
	maxRow = clampInt(maxRow-pad, 0, realRows-1)
	minCol = clampInt(minCol-pad, 0, realCols-1)
	maxCol = clampInt(maxCol-pad, 0, realCols-1)

	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			if _, touched := d.cells[cellKey{row + pad, col + pad}]; touched {
				continue
			}
			box := d.grid.GridCell(row+pad, col+pad)
			center := Coordinate{X: (box.XMin + box.XMax) / 2, Y: (box.YMin + box.YMax) / 2}
			if pointInRings(center, rings) {
				out.Set(row, col, 1.0)
			}
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ringBounds returns the row/column range (inclusive, in the grid's own
// padded indexing) spanned by every vertex of every ring.
func ringBounds(grid Grid, rings [][]Coordinate) (minRow, maxRow, minCol, maxCol int, ok bool) {
	first := true
	for _, ring := range rings {
		for _, c := range ring {
			row, err := grid.GetRow(c.Y)
			if err != nil {
				continue
			}
			col, err := grid.GetColumn(c.X)
			if err != nil {
				continue
			}
			if first {
				minRow, maxRow, minCol, maxCol = row, row, col, col
				first = false
				continue
			}
			if row < minRow {
				minRow = row
			}
			if row > maxRow {
				maxRow = row
			}
			if col < minCol {
				minCol = col
			}
			if col > maxCol {
				maxCol = col
			}
		}
	}
	return minRow, maxRow, minCol, maxCol, !first
}

// pointInRings applies the even-odd rule to the combined edge list of every
// ring, treating each ring as a closed loop regardless of whether its
// first and last coordinates already coincide.
func pointInRings(p Coordinate, rings [][]Coordinate) bool {
	inside := false
	for _, ring := range rings {
		n := len(ring)
		if n < 2 {
			continue
		}
		for i, j := 0, n-1; i < n; j, i = i, i+1 {
			a, b := ring[i], ring[j]
			if (a.Y > p.Y) == (b.Y > p.Y) {
				continue
			}
			xCross := a.X + (p.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			if p.X < xCross {
				inside = !inside
			}
		}
	}
	return inside
}
