package geom

import "sort"

// ConvexHull builds the convex hull of the points with the monotone chain
// algorithm. The result winds counterclockwise and keeps only strictly
// convex vertices; collinear boundary points are dropped, so callers that
// need every boundary point must post-process. Zero or one distinct points
// pass through unchanged. This never fails: any finite input yields a valid,
// possibly degenerate, hull.
func ConvexHull(points []Point) Hull {
	// Exact-equality dedup before sorting, as a set would do.
	seen := make(map[Point]struct{}, len(points))
	pts := make([]Point, 0, len(points))
	for _, p := range points {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		pts = append(pts, p)
	}
	sort.Slice(pts, func(i, j int) bool { return pts[i].Less(pts[j]) })

	if len(pts) <= 1 {
		return Hull(pts)
	}

	var lower Hull
	for _, p := range pts {
		for len(lower) >= 2 && Cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}

	var upper Hull
	for i := len(pts) - 1; i >= 0; i-- {
		p := pts[i]
		for len(upper) >= 2 && Cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	// Each chain's last point is the other chain's first, so drop both.
	return append(lower[:len(lower)-1], upper[:len(upper)-1]...)
}

// Edges returns the hull boundary as consecutive directed segments in CCW
// order, including the closing edge back to the first vertex. A two-point
// hull has a single edge; anything smaller has none.
func (h Hull) Edges() []Segment {
	if len(h) < 2 {
		return nil
	}
	if len(h) == 2 {
		return []Segment{{h[0], h[1]}}
	}
	edges := make([]Segment, len(h))
	for i, p := range h {
		edges[i] = Segment{p, h[CircularIndex(i+1, len(h))]}
	}
	return edges
}

// SignedArea is the shoelace area of the hull polygon. Positive for CCW
// hulls of three or more vertices, zero for degenerate hulls.
func (h Hull) SignedArea() float64 {
	if len(h) < 3 {
		return 0
	}
	var sum float64
	for i, p := range h {
		q := h[CircularIndex(i+1, len(h))]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}
