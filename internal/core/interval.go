package core

import "fmt"

// Interval is an inclusive range of pixel coordinates on one axis.
// The zero value is the single point 0.
type Interval struct {
	start float64
	end   float64
}

// NewInterval creates an interval covering [start, end].
// Reversed bounds are swapped so that Start <= End always holds.
func NewInterval(start, end float64) Interval {
	if end < start {
		start, end = end, start
	}
	return Interval{start: start, end: end}
}

// Start returns the inclusive lower bound.
func (i Interval) Start() float64 {
	return i.start
}

// End returns the inclusive upper bound.
func (i Interval) End() float64 {
	return i.end
}

// Len returns End - Start.
func (i Interval) Len() float64 {
	return i.end - i.start
}

// Contains reports whether v lies within the interval, bounds included.
func (i Interval) Contains(v float64) bool {
	return i.start <= v && v <= i.end
}

// Overlaps reports whether the two intervals share at least one point.
// Touching bounds count as overlap. The test is symmetric, so an interval
// that fully contains the other is detected from either side.
func (i Interval) Overlaps(o Interval) bool {
	return i.start <= o.end && o.start <= i.end
}

func (i Interval) String() string {
	return fmt.Sprintf("[%g, %g]", i.start, i.end)
}

// Box is an axis-aligned collision area in pixel space.
// Boxes are derived from live entity state on every query and never cached.
type Box struct {
	X Interval
	Y Interval
}

// NewBox creates a box from inclusive X and Y bounds.
func NewBox(x0, x1, y0, y1 float64) Box {
	return Box{X: NewInterval(x0, x1), Y: NewInterval(y0, y1)}
}

// CollidesWith reports whether both axes of the two boxes overlap.
func (b Box) CollidesWith(o Box) bool {
	return b.X.Overlaps(o.X) && b.Y.Overlaps(o.Y)
}

func (b Box) String() string {
	return fmt.Sprintf("x%s y%s", b.X, b.Y)
}
