package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvexHull(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, ConvexHull(nil))
	})

	t.Run("single point", func(t *testing.T) {
		assert.Equal(t, Hull{{1, 1}}, ConvexHull([]Point{{1, 1}}))
	})

	t.Run("two points", func(t *testing.T) {
		hull := ConvexHull([]Point{{2, 2}, {0, 0}})
		assert.Equal(t, Hull{{0, 0}, {2, 2}}, hull)
	})

	t.Run("unit square, CCW from origin", func(t *testing.T) {
		hull := ConvexHull([]Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
		assert.Equal(t, Hull{{0, 0}, {1, 0}, {1, 1}, {0, 1}}, hull)
	})

	t.Run("interior points are dropped", func(t *testing.T) {
		hull := ConvexHull([]Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0.5, 0.5}, {0.2, 0.7}})
		assert.Equal(t, Hull{{0, 0}, {1, 0}, {1, 1}, {0, 1}}, hull)
	})

	t.Run("collinear middle point is excluded", func(t *testing.T) {
		hull := ConvexHull([]Point{{0, 0}, {1, 0}, {2, 0}})
		assert.Equal(t, Hull{{0, 0}, {2, 0}}, hull)
	})

	t.Run("duplicates collapse", func(t *testing.T) {
		hull := ConvexHull([]Point{{0, 0}, {1, 0}, {0, 0}, {1, 1}, {1, 0}})
		assert.Equal(t, Hull{{0, 0}, {1, 0}, {1, 1}}, hull)
	})

	t.Run("input order is irrelevant", func(t *testing.T) {
		hull := ConvexHull([]Point{{1, 1}, {0, 1}, {1, 0}, {0, 0}})
		assert.Equal(t, Hull{{0, 0}, {1, 0}, {1, 1}, {0, 1}}, hull)
	})

	t.Run("square fixture", func(t *testing.T) {
		hull := ConvexHull(LoadFixture("square"))
		assert.Equal(t, Hull{{0, 0}, {40, 0}, {40, 40}, {0, 40}}, hull)
	})
}

func TestConvexHullProperties(t *testing.T) {
	points := LoadFixture("scatter")
	hull := ConvexHull(points)

	t.Run("positive signed area", func(t *testing.T) {
		assert.Positive(t, hull.SignedArea())
	})

	t.Run("strictly convex CCW vertices", func(t *testing.T) {
		n := len(hull)
		for i := range hull {
			turn := Cross(hull[i], hull[CircularIndex(i+1, n)], hull[CircularIndex(i+2, n)])
			assert.Positive(t, turn)
		}
	})

	t.Run("no input point lies outside", func(t *testing.T) {
		for _, p := range points {
			p := p
			assert.NotEqual(t, Outside, Classify(hull, &p, CollinearEps, 0))
		}
	})

	t.Run("idempotent on its own output", func(t *testing.T) {
		assert.Equal(t, hull, ConvexHull(hull))
	})
}

func TestHullEdges(t *testing.T) {
	t.Run("degenerate hulls have no edges", func(t *testing.T) {
		assert.Empty(t, Hull{}.Edges())
		assert.Empty(t, Hull{{1, 2}}.Edges())
	})

	t.Run("two points make one edge", func(t *testing.T) {
		edges := Hull{{0, 0}, {2, 2}}.Edges()
		assert.Equal(t, []Segment{{Point{0, 0}, Point{2, 2}}}, edges)
	})

	t.Run("polygon includes the closing edge", func(t *testing.T) {
		edges := Hull{{0, 0}, {1, 0}, {1, 1}, {0, 1}}.Edges()
		assert.Len(t, edges, 4)
		assert.Equal(t, Segment{Point{0, 1}, Point{0, 0}}, edges[3])
	})
}

func TestSignedArea(t *testing.T) {
	t.Run("unit square", func(t *testing.T) {
		assert.InDelta(t, 1, Hull{{0, 0}, {1, 0}, {1, 1}, {0, 1}}.SignedArea(), CollinearEps)
	})

	t.Run("degenerate hulls", func(t *testing.T) {
		assert.Zero(t, Hull{{0, 0}, {5, 5}}.SignedArea())
	})
}
