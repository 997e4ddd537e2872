package geom

import "math"

// Cross returns the signed cross product of the vectors (a−o) and (b−o).
// Positive means the turn o→a→b bends left, negative right, zero collinear.
func Cross(o, a, b Point) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

// Orientation classifies c against the directed line a→b. It is Cross with a
// playing the origin; zero (within CollinearEps) means collinear.
func Orientation(a, b, c Point) float64 {
	return Cross(a, b, c)
}

// SegmentsIntersect reports whether the two closed segments share at least
// one point. Proper crossings are detected by the four orientation values
// straddling; touching and collinear-overlap cases fall through to the
// collinearity-plus-bounding-box checks.
func SegmentsIntersect(s1, s2 Segment) bool {
	o1 := Orientation(s1.Start, s1.End, s2.Start)
	o2 := Orientation(s1.Start, s1.End, s2.End)
	o3 := Orientation(s2.Start, s2.End, s1.Start)
	o4 := Orientation(s2.Start, s2.End, s1.End)

	if o1*o2 < 0 && o3*o4 < 0 {
		return true
	}

	if math.Abs(o1) < CollinearEps && s1.boundsContain(s2.Start) {
		return true
	}
	if math.Abs(o2) < CollinearEps && s1.boundsContain(s2.End) {
		return true
	}
	if math.Abs(o3) < CollinearEps && s2.boundsContain(s1.Start) {
		return true
	}
	if math.Abs(o4) < CollinearEps && s2.boundsContain(s1.End) {
		return true
	}
	return false
}

// IntersectionPoint computes where two segments meet, or false when they
// don't. Parallel and collinear-overlapping segments don't have a unique
// answer; in that case the first endpoint of (s1.Start, s1.End, s2.Start,
// s2.End) lying on both segments is reported, not the full overlap extent.
func IntersectionPoint(s1, s2 Segment) (Point, bool) {
	if !SegmentsIntersect(s1, s2) {
		return Point{}, false
	}

	xdiff := Point{s1.Start.X - s1.End.X, s2.Start.X - s2.End.X}
	ydiff := Point{s1.Start.Y - s1.End.Y, s2.Start.Y - s2.End.Y}

	div := det(xdiff, ydiff)
	if math.Abs(div) < CollinearEps {
		for _, p := range []Point{s1.Start, s1.End, s2.Start, s2.End} {
			if s1.boundsContain(p) && s2.boundsContain(p) {
				return p, true
			}
		}
		return Point{}, false
	}

	d := Point{det(s1.Start, s1.End), det(s2.Start, s2.End)}
	pt := Point{det(d, xdiff) / div, det(d, ydiff) / div}

	// The line-line solution can drift off the segments when they are nearly
	// parallel. Re-validate before reporting it.
	if s1.boundsContain(pt) && s2.boundsContain(pt) {
		return pt, true
	}
	return Point{}, false
}

func det(a, b Point) float64 {
	return a.X*b.Y - a.Y*b.X
}

// PointOnSegment reports whether p lies within eps of the segment from a to
// b, measured to the closest point on the segment. The projection parameter
// is clamped to the segment, and a zero-length segment degenerates to a
// plain distance test against a.
func PointOnSegment(a, b, p Point, eps float64) bool {
	abx, aby := b.X-a.X, b.Y-a.Y
	ab2 := abx*abx + aby*aby
	if ab2 == 0 {
		return math.Hypot(p.X-a.X, p.Y-a.Y) <= eps
	}

	t := ((p.X-a.X)*abx + (p.Y-a.Y)*aby) / ab2
	t = math.Max(0, math.Min(1, t))
	qx, qy := a.X+t*abx, a.Y+t*aby

	return math.Hypot(p.X-qx, p.Y-qy) <= eps
}
