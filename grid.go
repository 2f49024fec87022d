package exactextract

import "math"

// Kind selects a Grid's extent-query behaviour at its boundary.
type Kind int

const (
	// Bounded grids reject coordinates outside their extent.
	Bounded Kind = iota
	// Infinite grids surround their extent with a one-cell halo and clamp
	// out-of-extent queries to the border row/column.
	Infinite
)

func (k Kind) padding() int {
	if k == Infinite {
		return 1
	}
	return 0
}

// Grid discretises a Box into axis-aligned cells of size (dx, dy). The Kind
// tag selects whether out-of-extent queries fail (Bounded) or clamp to a
// one-cell halo (Infinite); per the design notes this is a runtime tag
// rather than a generic type parameter, since the per-query branch is
// negligible next to the geometry work it guards.
type Grid struct {
	extent   Box
	dx, dy   float64
	kind     Kind
	rows     int
	cols     int
}

// NewGrid builds a Grid over extent at resolution (dx, dy). dx and dy must
// be positive.
func NewGrid(extent Box, dx, dy float64, kind Kind) (Grid, error) {
	if dx <= 0 || dy <= 0 {
		return Grid{}, failureErrorf("dx and dy must be positive, got dx=%v dy=%v", dx, dy)
	}

	pad := kind.padding()
	cols := 2*pad + int(math.Round(extent.Width()/dx))
	rows := 2*pad + int(math.Round(extent.Height()/dy))

	return Grid{extent: extent, dx: dx, dy: dy, kind: kind, rows: rows, cols: cols}, nil
}

// Extent returns the grid's (unpadded) bounding box.
func (g Grid) Extent() Box { return g.extent }

// Dx returns the cell width.
func (g Grid) Dx() float64 { return g.dx }

// Dy returns the cell height.
func (g Grid) Dy() float64 { return g.dy }

// Kind returns the grid's boundary-query variant.
func (g Grid) Kind() Kind { return g.kind }

// Rows returns the number of rows, including any padding halo.
func (g Grid) Rows() int { return g.rows }

// Cols returns the number of columns, including any padding halo.
func (g Grid) Cols() int { return g.cols }

// GetColumn maps an x-coordinate to a column index. For a Bounded grid, x
// outside [XMin, XMax] fails with ErrOutOfRange; x == XMax resolves to the
// last real column. For an Infinite grid, x outside the extent clamps to
// the halo column, and x == XMax resolves to the last real (non-halo)
// column so the right edge never silently falls into padding.
func (g Grid) GetColumn(x float64) (int, error) {
	pad := g.kind.padding()

	if g.kind == Infinite {
		if x < g.extent.XMin {
			return 0, nil
		}
		if x > g.extent.XMax {
			return g.cols - 1, nil
		}
		if x == g.extent.XMax {
			return g.cols - 2, nil
		}
	} else {
		if x < g.extent.XMin || x > g.extent.XMax {
			return 0, outOfRangeErrorf("x", x)
		}
		if x == g.extent.XMax {
			return g.cols - 1, nil
		}
	}

	return pad + int(math.Floor((x-g.extent.XMin)/g.dx)), nil
}

// GetRow maps a y-coordinate to a row index. Rows are numbered from the
// top: YMax is row 0. For a Bounded grid, y outside [YMin, YMax] fails
// with ErrOutOfRange; y == YMin resolves to the last real row. For an
// Infinite grid, y above YMax clamps to the halo row 0 and y below YMin
// clamps to the last halo row; y == YMin resolves to the last real row.
func (g Grid) GetRow(y float64) (int, error) {
	pad := g.kind.padding()

	if g.kind == Infinite {
		if y > g.extent.YMax {
			return 0, nil
		}
		if y < g.extent.YMin {
			return g.rows - 1, nil
		}
		if y == g.extent.YMin {
			return g.rows - 2, nil
		}
	} else {
		if y < g.extent.YMin || y > g.extent.YMax {
			return 0, outOfRangeErrorf("y", y)
		}
		if y == g.extent.YMin {
			return g.rows - 1, nil
		}
	}

	return pad + int(math.Floor((g.extent.YMax-y)/g.dy)), nil
}

// RowOffset returns the row offset of other's extent relative to g's,
// measured in g's cell units. Used to align two grids' output matrices.
func (g Grid) RowOffset(other Grid) int {
	return int(math.Round(math.Abs(other.extent.YMax-g.extent.YMax) / g.dy))
}

// ColOffset returns the column offset of other's extent relative to g's,
// measured in g's cell units.
func (g Grid) ColOffset(other Grid) int {
	return int(math.Round(math.Abs(g.extent.XMin-other.extent.XMin) / g.dx))
}

// GridCell returns the Box of the cell at (row, col), accounting for
// padding. The caller must ensure row < Rows() and col < Cols().
func (g Grid) GridCell(row, col int) Box {
	pad := g.kind.padding()

	xmin := g.extent.XMin + float64(col-pad)*g.dx
	xmax := xmin + g.dx
	ymax := g.extent.YMax - float64(row-pad)*g.dy
	ymin := ymax - g.dy

	return Box{XMin: xmin, YMin: ymin, XMax: xmax, YMax: ymax}
}

// ShrinkToFit snaps b to cell boundaries, returning the smallest
// grid-aligned Grid (same dx, dy, kind) whose extent contains b. It fails
// with ErrRange if b is not contained in g's own extent, and with
// ErrFailure if a single one-cell retry cannot correct a floating-point
// inclusion violation (see the design notes on this limit: it covers
// normal drift but not adversarial (xmin, dx) pairs).
func (g Grid) ShrinkToFit(b Box) (Grid, error) {
	if b.XMin < g.extent.XMin || b.YMin < g.extent.YMin || b.XMax > g.extent.XMax || b.YMax > g.extent.YMax {
		return Grid{}, rangeErrorf(b)
	}

	pad := g.kind.padding()

	col0, err := g.GetColumn(b.XMin)
	if err != nil {
		return Grid{}, err
	}
	row1, err := g.GetRow(b.YMax)
	if err != nil {
		return Grid{}, err
	}

	snappedXMin := g.extent.XMin + float64(col0-pad)*g.dx
	snappedYMax := g.extent.YMax - float64(row1-pad)*g.dy

	if b.XMin < snappedXMin {
		snappedXMin -= g.dx
		col0--
	}
	if b.YMax > snappedYMax {
		snappedYMax += g.dy
		row1--
	}

	col1, err := g.GetColumn(b.XMax)
	if err != nil {
		return Grid{}, err
	}
	row0, err := g.GetRow(b.YMin)
	if err != nil {
		return Grid{}, err
	}

	numRows := 1 + (row0 - row1)
	numCols := 1 + (col1 - col0)

	reducedXMax := math.Max(snappedXMin+float64(numCols)*g.dx, b.XMax)
	reducedYMin := math.Min(snappedYMax-float64(numRows)*g.dy, b.YMin)

	reducedExtent := Box{XMin: snappedXMin, YMin: reducedYMin, XMax: reducedXMax, YMax: snappedYMax}
	reduced, err := NewGrid(reducedExtent, g.dx, g.dy, g.kind)
	if err != nil {
		return Grid{}, err
	}

	if b.XMin < reduced.extent.XMin || b.YMin < reduced.extent.YMin || b.XMax > reduced.extent.XMax || b.YMax > reduced.extent.YMax {
		return Grid{}, failureErrorf("shrink_to_fit postcondition violated for box %v", b)
	}

	return reduced, nil
}

// isIntegral reports whether d is equal to its own floor, i.e. it has no
// fractional part.
func isIntegral(d float64) bool {
	return d == math.Floor(d)
}

// CompatibleWith reports whether g and other share a rational alignment:
// their resolutions are integer multiples of one another, and their
// origins are offset by an integer number of the finer resolution's cells.
func (g Grid) CompatibleWith(other Grid) bool {
	if !isIntegral(math.Max(g.dx, other.dx) / math.Min(g.dx, other.dx)) {
		return false
	}
	if !isIntegral(math.Max(g.dy, other.dy) / math.Min(g.dy, other.dy)) {
		return false
	}
	if !isIntegral(math.Abs(other.extent.XMin-g.extent.XMin) / math.Min(g.dx, other.dx)) {
		return false
	}
	if !isIntegral(math.Abs(other.extent.YMin-g.extent.YMin) / math.Min(g.dy, other.dy)) {
		return false
	}
	return true
}

// CommonGrid returns the finest grid (by g's Kind) covering both g's and
// other's extents. It fails with ErrIncompatible if the two grids are not
// CompatibleWith one another.
func (g Grid) CommonGrid(other Grid) (Grid, error) {
	if !g.CompatibleWith(other) {
		return Grid{}, incompatibleErrorf(g, other)
	}

	commonDx := math.Min(g.dx, other.dx)
	commonDy := math.Min(g.dy, other.dy)

	commonXMin := math.Min(g.extent.XMin, other.extent.XMin)
	commonYMax := math.Max(g.extent.YMax, other.extent.YMax)

	commonXMax := math.Max(g.extent.XMax, other.extent.XMax)
	commonYMin := math.Min(g.extent.YMin, other.extent.YMin)

	nx := math.Round((commonXMax - commonXMin) / commonDx)
	ny := math.Round((commonYMax - commonYMin) / commonDy)

	commonXMax = math.Max(commonXMax, commonXMin+nx*commonDx)
	commonYMin = math.Min(commonYMin, commonYMax-ny*commonDy)

	return NewGrid(Box{XMin: commonXMin, YMin: commonYMin, XMax: commonXMax, YMax: commonYMax}, commonDx, commonDy, g.kind)
}

// Equal reports whether g and other have the same extent, resolution, and
// kind.
func (g Grid) Equal(other Grid) bool {
	return g.extent == other.extent && g.dx == other.dx && g.dy == other.dy && g.kind == other.kind
}
