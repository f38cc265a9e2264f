package internal

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/osuushi/delaunay/dbg"
)

// Debug formatting for print-debugging the merge and constraint passes.

func (g *graph) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "graph %s (%d vertices)\n", dbg.Name(g), g.size())
	for i := range g.nodes {
		label := fmt.Sprintf("%4d", i)
		switch d := g.degree(i); {
		case d == 0: // not yet reached by any stage
			label = aurora.Red(label).String()
		case d > inlineDegree: // spilled past the inline block
			label = aurora.Cyan(label).String()
		default:
			label = aurora.Green(label).String()
		}
		fmt.Fprintf(&b, "  %s: %v\n", label, g.appendNeighbors(i, nil))
	}
	return b.String()
}
