package internal

import "math"

// enforceConstraints forces each required edge into the finished
// triangulation. Constraint endpoints arrive as original indices and are
// translated through the forward sort map here.
func (t *Triangulator) enforceConstraints() {
	var cons []int
	for _, c := range t.constraints {
		t.enforceConstraint(t.fwd[c.A], t.fwd[c.B], &cons)
	}
}

// enforceConstraint forces the edge curr-targ (sorted positions) in by
// walking the two chains of vertices bounding the constraint line, removing
// every edge crossing it, and retriangulating the two resulting polygons.
// A pair the triangulation already connects is left alone.
func (t *Triangulator) enforceConstraint(curr, targ int, cons *[]int) {
	if t.graph.isConnected(curr, targ) {
		return
	}
	line := t.vecBetween(curr, targ)

	// Seed each chain with curr's neighbor tightest against the constraint
	// line on its side. Vertices exactly on the line count as right-side,
	// matching the walk below.
	lCon, rCon := noVertex, noVertex
	lAngle, rAngle := math.Inf(1), math.Inf(-1)
	*cons = t.graph.appendNeighbors(curr, (*cons)[:0])
	for _, j := range *cons {
		a := relAngle(line, t.vecBetween(curr, j))
		if a > 0 {
			if a < lAngle {
				lAngle = a
				lCon = j
			}
		} else if a > rAngle {
			rAngle = a
			rCon = j
		}
	}
	if lCon == noVertex || rCon == noVertex {
		throwf(ErrBadConstraint, "constraint (%d, %d): no triangulation on both sides of its line",
			t.rev[curr], t.rev[targ])
	}

	leftSide := []int{curr, lCon}
	rightSide := []int{curr, rCon}

	// Walk triangle by triangle toward targ. The two chain fronts always
	// share an edge of the old triangulation; the third vertex of the
	// triangle ahead of that edge is the next front on one side or the
	// other. Excluding the vertex just left keeps the walk moving forward.
	last := curr
	for steps := 0; ; steps++ {
		if steps > t.graph.size() {
			throwf(ErrBadConstraint, "constraint (%d, %d): chain walk does not reach its endpoint",
				t.rev[curr], t.rev[targ])
		}
		next := t.graph.commonConnection(lCon, rCon, last)
		if next == noVertex {
			throwf(ErrBadConstraint, "constraint (%d, %d): crosses a gap in the triangulation",
				t.rev[curr], t.rev[targ])
		}
		if next == targ {
			break
		}
		if relAngle(line, t.vecBetween(curr, next)) > 0 {
			last = lCon
			lCon = next
			leftSide = append(leftSide, next)
		} else {
			last = rCon
			rCon = next
			rightSide = append(rightSide, next)
		}
	}

	// The edges between the two chains are exactly the edges the constraint
	// crosses.
	for _, l := range leftSide[1:] {
		for _, r := range rightSide[1:] {
			if t.graph.isConnected(l, r) {
				t.graph.disconnect(l, r)
			}
		}
	}

	leftSide = append(leftSide, targ)
	rightSide = append(rightSide, targ)
	t.graph.connect(curr, targ)
	t.retriangulate(leftSide)
	t.retriangulate(rightSide)
}

// retriangulate fills the polygon bounded by a chain of connected vertices
// plus the edge from its first to its last vertex. It fans from the chain
// head to every chain vertex visible across the polygon and recurses into
// the pockets the fan skips, the same sweep the leaf triangulator uses for
// triples, generalized to arbitrary chain lengths.
//
// Visibility runs on angles measured against the closing edge: the chain
// lies entirely on one side of it, and a vertex is fannable when its angle
// is strictly tighter than every angle before it.
func (t *Triangulator) retriangulate(chain []int) {
	if len(chain) <= 2 {
		return
	}
	last := len(chain) - 1
	base := t.vecBetween(chain[0], chain[last])

	best := relAngle(base, t.vecBetween(chain[0], chain[1]))
	sign := 1.0
	if best <= 0 {
		sign = -1
	}
	best *= sign

	l := 1
	for i := 2; i < last; i++ {
		a := sign * relAngle(base, t.vecBetween(chain[0], chain[i]))
		if a < best {
			if i-l > 1 {
				t.graph.connect(chain[l], chain[i])
				t.retriangulate(chain[l : i+1])
			}
			t.graph.connect(chain[0], chain[i])
			l = i
			best = a
		}
	}
	if last-l > 1 {
		t.graph.connect(chain[l], chain[last])
		t.retriangulate(chain[l : last+1])
	}
}
