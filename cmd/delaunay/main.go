// Command delaunay triangulates a point set read from stdin and writes the
// result to stdout as an SVG. Input is newline-separated points in the form
// "x y"; blank lines are skipped. Edges can be forced into the result with
// repeated --constraint flags.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"
	"github.com/logrusorgru/aurora"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/delaunay"
)

const padding = 10

var (
	scale = kingpin.Flag("scale", "Output scale factor.").Default("1.0").Float64()
	constraints = kingpin.Flag("constraint",
		"Edge to force into the triangulation, as a pair of zero-based input indices \"a,b\". Repeatable.").Strings()
	quiet = kingpin.Flag("quiet", "Suppress the summary line on stderr.").Short('q').Bool()
)

func main() {
	kingpin.Parse()

	points := readPoints(os.Stdin)
	var tr delaunay.Triangulator
	tr.SetVertices(points)
	if err := tr.SetConstraints(parseConstraints(*constraints)); err != nil {
		kingpin.Fatalf("%v", err)
	}
	if err := tr.Triangulate(); err != nil {
		kingpin.Fatalf("%v", err)
	}

	writeSVG(os.Stdout, points, tr.Edges(), *scale)

	if !*quiet {
		fmt.Fprintf(os.Stderr, "triangulated %s points into %s triangles (%s edges)\n",
			aurora.Cyan(strconv.Itoa(len(points))),
			aurora.Green(strconv.Itoa(len(tr.Triangles()))),
			aurora.Green(strconv.Itoa(len(tr.Edges()))))
	}
}

func readPoints(in *os.File) []delaunay.Point {
	var points []delaunay.Point
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) != 2 {
			kingpin.Fatalf("invalid point line %q", line)
		}
		x, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			kingpin.Fatalf("invalid x value %q", parts[0])
		}
		y, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			kingpin.Fatalf("invalid y value %q", parts[1])
		}
		points = append(points, delaunay.Point{X: x, Y: y})
	}
	return points
}

func parseConstraints(args []string) []delaunay.Edge {
	edges := make([]delaunay.Edge, 0, len(args))
	for _, arg := range args {
		parts := strings.Split(arg, ",")
		if len(parts) != 2 {
			kingpin.Fatalf("invalid constraint %q, want \"a,b\"", arg)
		}
		a, errA := strconv.Atoi(strings.TrimSpace(parts[0]))
		b, errB := strconv.Atoi(strings.TrimSpace(parts[1]))
		if errA != nil || errB != nil {
			kingpin.Fatalf("invalid constraint %q, want \"a,b\"", arg)
		}
		edges = append(edges, delaunay.Edge{A: a, B: b})
	}
	return edges
}

func writeSVG(out *os.File, points []delaunay.Point, edges []delaunay.Edge, scale float64) {
	if len(points) == 0 {
		return
	}
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	px := func(x float64) int { return int(scale*(x-minX)) + padding }
	py := func(y float64) int { return int(scale*(maxY-y)) + padding }

	canvas := svg.New(out)
	canvas.Start(int(scale*(maxX-minX))+2*padding, int(scale*(maxY-minY))+2*padding)
	for _, e := range edges {
		a, b := points[e.A], points[e.B]
		canvas.Line(px(a.X), py(a.Y), px(b.X), py(b.Y), "stroke:black;stroke-width:1")
	}
	for _, p := range points {
		canvas.Circle(px(p.X), py(p.Y), 2, "fill:red")
	}
	canvas.End()
}
