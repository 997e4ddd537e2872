package geom

// Point is a position in the scene plane. Points are plain values; two
// points are the same point exactly when their coordinates are equal, which
// is what hull deduplication and sorting rely on.
type Point struct {
	X float64
	Y float64
}

// Less orders points lexicographically, X first and Y breaking ties. This is
// the ordering used to sort points for hull construction.
func (p Point) Less(other Point) bool {
	if p.X == other.X {
		return p.Y < other.Y
	}
	return p.X < other.X
}

// Segment is directed from Start to End. Both the path and hull edges are
// segments.
type Segment struct {
	Start Point
	End   Point
}

// Path is the directed segment the probe travels along. The endpoints are
// placed independently by the caller, so either may still be absent; only a
// complete path has collision semantics.
type Path struct {
	Start *Point
	End   *Point
}

func (p Path) Complete() bool {
	return p.Start != nil && p.End != nil
}

// Segment returns the path as a concrete segment. Only valid on a complete
// path.
func (p Path) Segment() Segment {
	return Segment{*p.Start, *p.End}
}

// Hull is a convex polygon in counterclockwise order. It may degenerate to a
// single point or to two points (a segment) and is always derived from a
// point set by ConvexHull, never built by hand.
type Hull []Point
