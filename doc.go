// Package exactextract computes, for each cell of a rectangular raster,
// the exact fraction of that cell covered by a polygon or buffered line.
//
// The package is the numerical core of a zonal-statistics workflow: given
// a Grid discretising a bounding box at a fixed resolution and a sequence
// of polygon rings, a Driver walks the rings across the grid and produces
// a Matrix of covered fractions, one per cell of the grid's real extent
// (cells the rings never reach stay 0 unless fully enclosed). Coverage is computed
// analytically (a generalised shoelace formula over per-cell boundary
// traversals), not by sampling, so the result is exact up to floating-point
// rounding.
//
// The package is purely geometric: it does not reproject coordinates, read
// rasters, or perform statistical aggregation. Callers own I/O and are
// responsible for supplying rings with consistent winding.
package exactextract
