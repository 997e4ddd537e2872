package geom

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"

	"github.com/mkarlsen/collide/dbg"
)

// Debug rendering of a collision scene: the filled hull, the directed path,
// the hit markers, and the first-hit marker on top. Y grows downward, the
// same orientation as the scene coordinates themselves.

const dbgDrawPadding = 20

// Draw renders the scene to a PNG file at the given scale. Hull vertices are
// labeled with stable-for-the-run readable names so they can be told apart
// while debugging.
func Draw(hull Hull, path Path, hits []Point, scale float64, file string) error {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	extend := func(p Point) {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	for _, p := range hull {
		extend(p)
	}
	if path.Start != nil {
		extend(*path.Start)
	}
	if path.End != nil {
		extend(*path.End)
	}
	for _, p := range hits {
		extend(p)
	}
	if math.IsInf(minX, 1) { // Nothing to draw; emit an empty canvas
		minX, minY, maxX, maxY = 0, 0, 1, 1
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0.1, 0.1, 0.14)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Translate for padding, scale, and translate to min
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	// Hull region, filled then stroked. Degenerate hulls draw as a bare
	// segment or point.
	c.SetLineWidth(2)
	switch {
	case len(hull) >= 3:
		c.MoveTo(hull[0].X, hull[0].Y)
		for _, p := range hull[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
		c.SetRGBA(0.25, 0.5, 0.95, 0.3)
		c.FillPreserve()
		c.SetRGB(0.25, 0.5, 1)
		c.Stroke()
	case len(hull) == 2:
		c.SetRGB(0.25, 0.5, 1)
		c.DrawLine(hull[0].X, hull[0].Y, hull[1].X, hull[1].Y)
		c.Stroke()
	case len(hull) == 1:
		c.SetRGB(0.25, 0.5, 1)
		c.DrawCircle(hull[0].X, hull[0].Y, 3/scale)
		c.Fill()
	}

	// Path
	if path.Complete() {
		c.SetRGB(0.15, 0.8, 0.35)
		c.DrawLine(path.Start.X, path.Start.Y, path.End.X, path.End.Y)
		c.Stroke()
		for _, p := range []Point{*path.Start, *path.End} {
			c.DrawCircle(p.X, p.Y, 4/scale)
			c.Fill()
		}
	}

	// Hits, with the first one emphasized
	c.SetRGB(0.86, 0.15, 0.15)
	for _, p := range hits {
		c.DrawCircle(p.X, p.Y, 4/scale)
		c.Stroke()
	}
	if t, ok := FirstHitParam(path, hits); ok {
		first := PointAtParam(path, t)
		c.DrawCircle(first.X, first.Y, 7/scale)
		c.Stroke()
	}

	// Vertex labels
	c.SetRGB(0.9, 0.9, 0.9)
	for _, p := range hull {
		c.DrawString(dbg.Name(p), p.X+6/scale, p.Y-6/scale)
	}

	return c.SavePNG(file)
}

// CatFile pipes a saved rendering to the terminal (iTerm2 inline images).
func CatFile(file string) {
	imgcat.CatFile(file, os.Stdout)
}
