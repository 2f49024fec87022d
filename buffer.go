package exactextract

import "math"

// JoinStyle selects how BufferLine connects consecutive offset segments at
// an interior vertex.
type JoinStyle int

const (
	JoinMiter JoinStyle = iota
	JoinBevel
)

// CapStyle selects how BufferLine terminates an open line's ends. Only
// ButtCap is implemented; see DESIGN.md for why round and square caps were
// left out of this supplemental feature.
type CapStyle int

const ButtCap CapStyle = 0

const collinearityThreshold = 1e-9

type bufferSegment struct {
	a, b Coordinate
	t, n Coordinate // unit tangent, unit normal (90 degrees CCW of t)
}

func sub(a, b Coordinate) Coordinate { return Coordinate{X: a.X - b.X, Y: a.Y - b.Y} }
func add(a, b Coordinate) Coordinate { return Coordinate{X: a.X + b.X, Y: a.Y + b.Y} }
func scale(a Coordinate, k float64) Coordinate { return Coordinate{X: a.X * k, Y: a.Y * k} }
func length(a Coordinate) float64 { return math.Hypot(a.X, a.Y) }
func dot(a, b Coordinate) float64 { return a.X*b.X + a.Y*b.Y }
func cross(a, b Coordinate) float64 { return a.X*b.Y - a.Y*b.X }

// BufferLine builds the closed outline polygon of an open polyline offset
// by halfWidth on each side, suitable for rasterising a linear feature (a
// road centreline, a stream course) the same way a filled ring is. points
// must describe a non-closed line of at least two distinct coordinates.
// The returned ring is closed and wound counter-clockwise.
//
// Joins follow join; when join is JoinMiter and the miter length would
// exceed miterLimit times halfWidth, the join falls back to a bevel, the
// same rule spec.md's driver algorithms never need but a line-buffering
// client does.
func BufferLine(points []Coordinate, halfWidth float64, join JoinStyle, miterLimit float64) ([]Coordinate, error) {
	if halfWidth <= 0 {
		return nil, failureErrorf("BufferLine: halfWidth must be positive, got %v", halfWidth)
	}

	segs := buildSegments(points)
	if len(segs) == 0 {
		return nil, invalidRingErrorf("BufferLine: fewer than two distinct points")
	}

	var outline []Coordinate

	// Forward pass along the +normal side, start cap at the first point.
	first := segs[0]
	outline = append(outline, add(first.a, scale(first.n, halfWidth)))
	for i, seg := range segs {
		if i > 0 {
			outline = append(outline, add(seg.a, scale(seg.n, halfWidth)))
		}
		outline = append(outline, add(seg.b, scale(seg.n, halfWidth)))
		if i < len(segs)-1 {
			next := segs[i+1]
			appendJoin(&outline, seg.b, seg, next, halfWidth, join, miterLimit, true)
		}
	}

	// End cap, then backward pass along the -normal side.
	last := segs[len(segs)-1]
	outline = append(outline, sub(last.b, scale(last.n, halfWidth)))
	for i := len(segs) - 1; i >= 0; i-- {
		seg := segs[i]
		if i < len(segs)-1 {
			outline = append(outline, sub(seg.b, scale(seg.n, halfWidth)))
		}
		outline = append(outline, sub(seg.a, scale(seg.n, halfWidth)))
		if i > 0 {
			prev := segs[i-1]
			appendJoin(&outline, seg.a, prev, seg, halfWidth, join, miterLimit, false)
		}
	}

	// Close the ring: the backward pass ends at the start cap, not at the
	// forward pass's starting point, so the closing edge must be added
	// explicitly for the result to be a valid Driver input ring.
	outline = append(outline, outline[0])

	// The passes above trace the outline clockwise; reverse it so the
	// buffered area lies to the left of the ring, as the Driver expects.
	for i, j := 0, len(outline)-1; i < j; i, j = i+1, j-1 {
		outline[i], outline[j] = outline[j], outline[i]
	}

	return outline, nil
}

func buildSegments(points []Coordinate) []bufferSegment {
	var segs []bufferSegment
	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		d := sub(b, a)
		l := length(d)
		if l < collinearityThreshold {
			continue
		}
		t := scale(d, 1/l)
		n := Coordinate{X: -t.Y, Y: t.X}
		segs = append(segs, bufferSegment{a: a, b: b, t: t, n: n})
	}
	return segs
}

// appendJoin adds the geometry connecting seg to next (outer side) at their
// shared vertex p, on the side selected by positiveSide.
func appendJoin(outline *[]Coordinate, p Coordinate, seg, next bufferSegment, halfWidth float64, join JoinStyle, miterLimit float64, positiveSide bool) {
	sinTheta := cross(seg.t, next.t)
	if math.Abs(sinTheta) < collinearityThreshold {
		return
	}

	outerTurn := sinTheta < 0
	if !positiveSide {
		outerTurn = !outerTurn
	}
	if !outerTurn {
		// Inner side of the turn: the two offset segments already overlap;
		// no join geometry is needed beyond the offset points already added.
		return
	}

	if join == JoinBevel {
		return
	}

	cosTheta := dot(seg.t, next.t)
	sinHalf := math.Sqrt(math.Max(0, (1+cosTheta)/2))
	if sinHalf < collinearityThreshold || 1/sinHalf > miterLimit {
		return
	}

	bisector := add(seg.n, next.n)
	if !positiveSide {
		bisector = scale(bisector, -1)
	}
	bl := length(bisector)
	if bl < collinearityThreshold {
		return
	}
	bisector = scale(bisector, 1/bl)

	miterDist := halfWidth / sinHalf
	*outline = append(*outline, add(p, scale(bisector, miterDist)))
}
