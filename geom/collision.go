package geom

import "math"

// PointLocation is the verdict of classifying a point against a hull.
type PointLocation int

const (
	Undefined PointLocation = iota
	Inside
	Outside
	OnBoundary
)

func (l PointLocation) String() string {
	switch l {
	case Inside:
		return "inside"
	case Outside:
		return "outside"
	case OnBoundary:
		return "on boundary"
	}
	return "undefined"
}

// Collisions finds where the path meets the hull boundary: every proper edge
// intersection, plus each path endpoint that sits within tolerance of an
// edge (a grazing endpoint counts as contact even when the segment never
// properly crosses anything). Hits closer than DedupTolerance on both axes
// collapse into one. An incomplete path has no collisions.
//
// Results come back in discovery order, which is not meaningful; sort them
// if a stable display order matters.
func Collisions(hull Hull, path Path, tolerance float64) []Point {
	if !path.Complete() {
		return nil
	}
	seg := path.Segment()

	var hits []Point
	add := func(p Point) {
		for _, q := range hits {
			if SamePoint(p, q) {
				return
			}
		}
		hits = append(hits, p)
	}

	edges := hull.Edges()
	for _, edge := range edges {
		if pt, ok := IntersectionPoint(seg, edge); ok {
			add(pt)
		}
	}

	for _, edge := range edges {
		for _, endpoint := range []Point{seg.Start, seg.End} {
			if PointOnSegment(edge.Start, edge.End, endpoint, tolerance) {
				add(endpoint)
			}
		}
	}
	return hits
}

// FirstHitParam returns the smallest parameter t in [0, 1] at which one of
// the hits lies along the path, by projecting each hit onto the path
// direction. The hits are assumed to already lie on the path, which holds
// for everything Collisions produces: edge intersections are on the path by
// construction, and tolerant endpoint touches are the path endpoints
// themselves, landing at exactly t = 0 or 1. There is no parameter for an
// incomplete or zero-length path, or when no hit projects into range.
func FirstHitParam(path Path, hits []Point) (float64, bool) {
	if !path.Complete() || len(hits) == 0 {
		return 0, false
	}

	dx := path.End.X - path.Start.X
	dy := path.End.Y - path.Start.Y
	l2 := dx*dx + dy*dy
	if l2 <= DegenerateLengthSq {
		return 0, false
	}

	best := math.Inf(1)
	found := false
	for _, h := range hits {
		t := ((h.X-path.Start.X)*dx + (h.Y-path.Start.Y)*dy) / l2
		if t >= 0 && t <= 1 && t < best {
			best = t
			found = true
		}
	}
	if !found {
		return 0, false
	}
	return best, true
}

// PointAtParam resolves a path parameter back to a coordinate. Only valid on
// a complete path.
func PointAtParam(path Path, t float64) Point {
	return Point{
		X: path.Start.X + t*(path.End.X-path.Start.X),
		Y: path.Start.Y + t*(path.End.Y-path.Start.Y),
	}
}

// Classify locates p relative to the hull: strictly inside, strictly
// outside, on the boundary, or undefined when there is no point or no hull.
// boundaryTol widens the on-boundary band the same way it widens Collisions;
// eps governs the strict orientation test.
//
// The edge walk deliberately keeps going after a boundary touch instead of
// returning immediately: a point within tolerance of one edge can still be
// strictly right of another, and that outside verdict must win. Flipping the
// order would report such points as on the boundary of a region they are
// outside of.
func Classify(hull Hull, p *Point, eps, boundaryTol float64) PointLocation {
	if p == nil || len(hull) == 0 {
		return Undefined
	}

	if len(hull) == 1 {
		if math.Hypot(p.X-hull[0].X, p.Y-hull[0].Y) <= eps {
			return OnBoundary
		}
		return Outside
	}
	if len(hull) == 2 {
		if PointOnSegment(hull[0], hull[1], *p, eps) {
			return OnBoundary
		}
		return Outside
	}

	onBoundary := false
	for i, a := range hull {
		b := hull[CircularIndex(i+1, len(hull))]

		if PointOnSegment(a, b, *p, math.Max(eps, boundaryTol)) {
			onBoundary = true
			continue
		}

		// Strictly right of a CCW edge means outside the convex region.
		if Cross(a, b, *p) < -eps {
			return Outside
		}
	}
	if onBoundary {
		return OnBoundary
	}
	return Inside
}
