// Convex-hull collision queries for Go.
//
// This package answers "where along a directed path does first contact with
// an obstacle region occur": it builds the convex hull of a set of obstacle
// points, intersects a path segment with the hull boundary (including
// tolerant endpoint grazes), and reports the earliest contact as a parameter
// along the path.
package collide

import (
	"github.com/mkarlsen/collide/geom"
)

type Point = geom.Point
type Segment = geom.Segment
type Path = geom.Path
type Hull = geom.Hull
type PointLocation = geom.PointLocation

const (
	Undefined  = geom.Undefined
	Inside     = geom.Inside
	Outside    = geom.Outside
	OnBoundary = geom.OnBoundary
)

// ConvexHull returns the convex hull of the obstacle points in
// counterclockwise order. Degenerate inputs (empty, one point, collinear
// points) yield degenerate hulls rather than errors; the only error is a
// non-finite input coordinate.
func ConvexHull(points []Point) (result Hull, err error) {
	defer func() {
		recoveredErr := geom.HandleGeomPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	geom.CheckFinite(points...)
	return geom.ConvexHull(points), nil
}

// Collisions returns the points where the path meets the hull boundary,
// deduplicated, in discovery order. An incomplete path yields no collisions.
func Collisions(hull Hull, path Path, tolerance float64) (result []Point, err error) {
	defer func() {
		recoveredErr := geom.HandleGeomPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	geom.CheckFinite(hull...)
	checkPath(path)
	geom.CheckTolerance(tolerance)
	return geom.Collisions(hull, path, tolerance), nil
}

// FirstHit returns the smallest parameter t in [0, 1] at which one of the
// collision points lies along the path. ok is false when the path is
// incomplete or degenerate, or when no hit projects into range; that is an
// expected outcome, not an error.
func FirstHit(path Path, hits []Point) (t float64, ok bool, err error) {
	defer func() {
		recoveredErr := geom.HandleGeomPanicRecover(recover())
		if recoveredErr != nil {
			t = 0
			ok = false
			err = recoveredErr
		}
	}()
	checkPath(path)
	geom.CheckFinite(hits...)
	t, ok = geom.FirstHitParam(path, hits)
	return t, ok, nil
}

// Classify locates a point relative to the hull. A nil point or an empty
// hull classifies as Undefined.
func Classify(hull Hull, p *Point, eps, boundaryTol float64) (loc PointLocation, err error) {
	defer func() {
		recoveredErr := geom.HandleGeomPanicRecover(recover())
		if recoveredErr != nil {
			loc = geom.Undefined
			err = recoveredErr
		}
	}()
	geom.CheckFinite(hull...)
	if p != nil {
		geom.CheckFinite(*p)
	}
	geom.CheckTolerance(eps)
	geom.CheckTolerance(boundaryTol)
	return geom.Classify(hull, p, eps, boundaryTol), nil
}

func checkPath(path Path) {
	if path.Start != nil {
		geom.CheckFinite(*path.Start)
	}
	if path.End != nil {
		geom.CheckFinite(*path.End)
	}
}
