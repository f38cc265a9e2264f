package internal

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// This is for debugging purposes only

const dbgDrawPadding = 20

// dbgDraw renders the current connectivity graph over the input points and
// displays it inline in the terminal. Call it from anywhere inside the merge
// to watch a seam being sewn.
func (t *Triangulator) dbgDraw(scale float64) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range t.points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	c.Translate(dbgDrawPadding, dbgDrawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	c.SetRGB(0, 1, 1)
	var cons []int
	for n := 0; n < t.graph.size(); n++ {
		cons = t.graph.appendNeighbors(n, cons[:0])
		for _, j := range cons {
			if j > n {
				a, b := t.vert(n), t.vert(j)
				c.DrawLine(a.X, a.Y, b.X, b.Y)
			}
		}
	}
	c.Stroke()

	c.SetRGB(0, 0.5, 0)
	for _, p := range t.points {
		c.DrawCircle(p.X, p.Y, 3/scale)
	}
	c.Fill()

	c.SavePNG("/tmp/delaunay.png")
	imgcat.CatFile("/tmp/delaunay.png", os.Stdout)
}
