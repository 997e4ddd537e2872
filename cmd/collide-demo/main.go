package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/mkarlsen/collide"
	"github.com/mkarlsen/collide/geom"
)

// Command-line stand-in for the interactive canvas. Obstacle points come
// from stdin as newline separated "x y" pairs, the path endpoints and hit
// tolerance come from flags, and the hull, collision points, and first-hit
// parameter are printed instead of rendered live. With --draw, the scene is
// also written out as a PNG.

var (
	startFlag = kingpin.Flag("start", "Path start point as x,y.").String()
	endFlag   = kingpin.Flag("end", "Path end point as x,y.").String()
	tolerance = kingpin.Flag("tolerance", "Hit tolerance in scene pixels.").Default("1.5").Float64()
	probeFlag = kingpin.Flag("probe", "Classify this point (as x,y) against the hull.").String()
	drawFile  = kingpin.Flag("draw", "Write a PNG rendering of the scene to this file.").String()
	drawScale = kingpin.Flag("scale", "Rendering scale in pixels per unit.").Default("4").Float64()
	cat       = kingpin.Flag("cat", "Pipe the rendering to the terminal (iTerm2 inline images).").Bool()
)

func main() {
	kingpin.Parse()

	points := readPoints(os.Stdin)
	fmt.Printf("Read %d obstacle points\n", len(points))

	hull, err := collide.ConvexHull(points)
	if err != nil {
		kingpin.Fatalf("bad obstacle input: %v", err)
	}
	fmt.Printf("Hull (%d vertices):", len(hull))
	for _, p := range hull {
		fmt.Printf(" (%.1f, %.1f)", p.X, p.Y)
	}
	fmt.Println()

	path := geom.Path{
		Start: parseFlagPoint("start", *startFlag),
		End:   parseFlagPoint("end", *endFlag),
	}

	hits, err := collide.Collisions(hull, path, *tolerance)
	if err != nil {
		kingpin.Fatalf("collision query failed: %v", err)
	}
	for _, p := range hits {
		fmt.Printf("  hit (%.2f, %.2f)\n", p.X, p.Y)
	}
	if len(hits) > 0 {
		fmt.Println(aurora.Bold(aurora.Red(fmt.Sprintf("Collision detected (%d)", len(hits)))))
	} else {
		fmt.Println(aurora.Bold(aurora.Green("No collision")))
	}

	t, ok, err := collide.FirstHit(path, hits)
	if err != nil {
		kingpin.Fatalf("first-hit query failed: %v", err)
	}
	if ok {
		at := geom.PointAtParam(path, t)
		fmt.Printf("First collision at t=%.3f, point (%.2f, %.2f)\n", t, at.X, at.Y)
	}

	if probe := parseFlagPoint("probe", *probeFlag); probe != nil {
		loc, err := collide.Classify(hull, probe, geom.CollinearEps, *tolerance)
		if err != nil {
			kingpin.Fatalf("classification failed: %v", err)
		}
		fmt.Printf("Probe (%.1f, %.1f) is %s\n", probe.X, probe.Y, loc)
	}

	if *drawFile != "" {
		if err := geom.Draw(hull, path, hits, *drawScale, *drawFile); err != nil {
			kingpin.Fatalf("could not write rendering: %v", err)
		}
		if *cat {
			geom.CatFile(*drawFile)
		}
	}
}

func readPoints(in *os.File) []collide.Point {
	points := []collide.Point{}
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		// Skip blank lines and comments so point files can be annotated
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Fields(line)
		if len(parts) != 2 {
			kingpin.Fatalf("expected \"x y\", got %q", line)
		}
		x, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			kingpin.Fatalf("bad x value %q: %v", parts[0], err)
		}
		y, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			kingpin.Fatalf("bad y value %q: %v", parts[1], err)
		}
		points = append(points, collide.Point{X: x, Y: y})
	}
	return points
}

// Parse an "x,y" flag value into an optional point. An empty flag is an
// unset endpoint, which the engine treats as "no path yet".
func parseFlagPoint(name, value string) *geom.Point {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	if len(parts) != 2 {
		kingpin.Fatalf("--%s expects x,y, got %q", name, value)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		kingpin.Fatalf("--%s has a bad x value: %v", name, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		kingpin.Fatalf("--%s has a bad y value: %v", name, err)
	}
	return &geom.Point{X: x, Y: y}
}
