package exactextract

// Coordinate is a point in the plane. Equality is exact bitwise comparison
// of components; callers that snap input to a grid get exact hits on cell
// boundaries, which the traversal logic in cell.go depends on.
type Coordinate struct {
	X, Y float64
}

// Equal reports whether c and other have identical components. This is
// deliberately not an epsilon comparison: the traversal state machine in
// Traversal.Add relies on exact equality to detect repeated vertices.
func (c Coordinate) Equal(other Coordinate) bool {
	return c.X == other.X && c.Y == other.Y
}
