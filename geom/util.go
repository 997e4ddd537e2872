package geom

import "math"

// The coordinate range is scene pixels, so all tolerances are absolute
// rather than relative to coordinate magnitude. They encode that scale
// assumption; revisit them before feeding in coordinates of a wildly
// different order.
const (
	// DedupTolerance collapses collision points closer than this on both
	// axes into a single hit.
	DedupTolerance = 1e-6

	// CollinearEps is the cutoff below which an orientation value counts as
	// collinear. Bounding boxes are inflated by the same amount.
	CollinearEps = 1e-9

	// DegenerateLengthSq is the squared length below which a path collapses
	// to a point and has no parameterization.
	DegenerateLengthSq = 1e-12
)

// To compensate for imprecision in floats, coordinate equality is tolerance
// based. Without this, a hit recomputed through two different edges would
// show up as two distinct collision points.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < DedupTolerance
}

// SamePoint reports whether two points coincide within DedupTolerance on
// both axes.
func SamePoint(a, b Point) bool {
	return Equal(a.X, b.X) && Equal(a.Y, b.Y)
}

// Often we want to treat an array as a circular buffer. This gives the
// modular index given length n, but unlike the raw modulo operator, it only
// gives positive values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// boundsContain reports whether p lies inside the segment's bounding box,
// inflated by CollinearEps. This is only a prefilter: a non-collinear point
// inside the box still passes, so callers must pair it with an orientation
// check.
func (s Segment) boundsContain(p Point) bool {
	return math.Min(s.Start.X, s.End.X)-CollinearEps <= p.X &&
		p.X <= math.Max(s.Start.X, s.End.X)+CollinearEps &&
		math.Min(s.Start.Y, s.End.Y)-CollinearEps <= p.Y &&
		p.Y <= math.Max(s.Start.Y, s.End.Y)+CollinearEps
}
