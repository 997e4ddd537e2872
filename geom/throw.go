package geom

import (
	"math"

	"github.com/pkg/errors"
)

// The core functions here are total and answer degenerate inputs with empty
// results, so threading error returns through every arithmetic helper would
// add complexity for nothing. Input validation instead panics, and the
// public API recovers to convert to an error.

type GeomError error

// Panic with a GeomError.
func fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}

func HandleGeomPanicRecover(r interface{}) error {
	if r != nil {
		if geomError, ok := r.(GeomError); ok {
			return geomError
		}
		panic(r)
	}
	return nil
}

// CheckFinite panics with a GeomError if any coordinate is NaN or infinite.
// Float comparisons silently swallow NaN, so malformed input has to be
// stopped at the boundary rather than detected downstream.
func CheckFinite(points ...Point) {
	for _, p := range points {
		if !finite(p.X) || !finite(p.Y) {
			fatalf("non-finite coordinate (%v, %v)", p.X, p.Y)
		}
	}
}

// CheckTolerance panics with a GeomError unless tol is finite and
// non-negative.
func CheckTolerance(tol float64) {
	if !finite(tol) || tol < 0 {
		fatalf("tolerance must be finite and non-negative, got %v", tol)
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
