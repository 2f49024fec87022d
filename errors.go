package exactextract

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel causes. Callers can test for these with errors.Is; the core
// always wraps one of them with context via errors.Wrapf or errors.Wrap so a message and
// a stack trace are available without the core itself logging anything.
var (
	// ErrOutOfRange is the cause when a coordinate falls outside the
	// extent of a bounded Grid.
	ErrOutOfRange = errors.New("coordinate out of range")

	// ErrRange is the cause when Grid.ShrinkToFit is asked to snap to a
	// box that is not contained in the grid's own extent.
	ErrRange = errors.New("shrink target exceeds grid extent")

	// ErrIncompatible is the cause when Grid.CommonGrid is called on two
	// grids that do not share a rational alignment.
	ErrIncompatible = errors.New("grids are not compatible")

	// ErrFailure is the cause when a numerical post-condition is violated,
	// e.g. ShrinkToFit cannot produce a box containing its target even
	// after the one-cell retry.
	ErrFailure = errors.New("numerical post-condition violated")

	// ErrInvalidRing is the cause when a ring passed to the Driver has
	// fewer than 4 coordinates or is not closed (first != last).
	ErrInvalidRing = errors.New("ring is not a valid closed ring")
)

// outOfRangeErrorf wraps ErrOutOfRange with the offending coordinate value.
func outOfRangeErrorf(axis string, v float64) error {
	return errors.Wrapf(ErrOutOfRange, "%s=%v", axis, v)
}

// rangeErrorf wraps ErrRange with the box that could not be fit.
func rangeErrorf(b Box) error {
	return errors.Wrapf(ErrRange, "box %v not contained in grid extent", b)
}

// incompatibleErrorf wraps ErrIncompatible with the two grids involved.
func incompatibleErrorf(a, b Grid) error {
	return errors.Wrapf(ErrIncompatible, "dx=(%v,%v) dy=(%v,%v) xmin=(%v,%v) ymin=(%v,%v)",
		a.dx, b.dx, a.dy, b.dy, a.extent.XMin, b.extent.XMin, a.extent.YMin, b.extent.YMin)
}

// failureErrorf wraps ErrFailure with a short description of what failed.
func failureErrorf(format string, args ...interface{}) error {
	return errors.Wrap(ErrFailure, fmt.Sprintf(format, args...))
}

// invalidRingErrorf wraps ErrInvalidRing with the offending ring length.
func invalidRingErrorf(format string, args ...interface{}) error {
	return errors.Wrap(ErrInvalidRing, fmt.Sprintf(format, args...))
}
