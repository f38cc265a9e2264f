package internal

// Triangulator computes a constrained Delaunay triangulation of a planar
// point set: an x-sorted divide-and-conquer pass builds the unconstrained
// triangulation over a per-vertex connectivity graph, and a constraint pass
// then forces required edges in by local retriangulation.
//
// One instance owns one graph. Supplying new vertices discards the previous
// graph and constraints entirely; nothing is updated incrementally. Not safe
// for concurrent use.
type Triangulator struct {
	points      []Point
	constraints []Edge
	rev, fwd    []int
	graph       *graph
	hasVertices bool
	done        bool
}

// SetVertices supplies the points to triangulate and sorts them. Any
// previously attached constraints and any previous triangulation are
// dropped.
func (t *Triangulator) SetVertices(points []Point) {
	t.points = points
	t.constraints = nil
	t.graph = nil
	t.hasVertices = true
	t.done = false
	t.rev, t.fwd = buildSortMaps(points)
}

// SetConstraints attaches edges that must appear in the triangulation. The
// pairs reference original input positions. Raises ErrNoVertices when called
// before SetVertices, ErrIndexOutOfRange or ErrBadConstraint on bad pairs.
func (t *Triangulator) SetConstraints(constraints []Edge) {
	if !t.hasVertices {
		throwf(ErrNoVertices, "constraints supplied before vertices")
	}
	for _, c := range constraints {
		if c.A < 0 || c.A >= len(t.points) || c.B < 0 || c.B >= len(t.points) {
			throwf(ErrIndexOutOfRange, "constraint (%d, %d) with %d vertices", c.A, c.B, len(t.points))
		}
		if c.A == c.B {
			throwf(ErrBadConstraint, "constraint (%d, %d) connects a vertex to itself", c.A, c.B)
		}
	}
	t.constraints = constraints
}

// Triangulate builds the triangulation: leaf fragments over the sorted
// order, divide-and-conquer merge, then constraint enforcement. Fewer than
// three vertices produce an empty graph rather than an error. Running twice
// without new vertices raises ErrStale; the graph is sized for exactly one
// run and sewing over stale connectivity would corrupt it.
func (t *Triangulator) Triangulate() {
	if t.done {
		throwf(ErrStale, "supply vertices again to retriangulate")
	}
	t.done = true
	t.graph = newGraph(len(t.points))
	if len(t.points) < 3 {
		return
	}
	frags := t.buildStrips()
	t.merge(frags)
	t.enforceConstraints()
}

// vert returns the point at sorted position i.
func (t *Triangulator) vert(i int) Point {
	return t.points[t.rev[i]]
}

// vecBetween is the displacement from sorted position from to sorted
// position to.
func (t *Triangulator) vecBetween(from, to int) vec {
	a, b := t.vert(from), t.vert(to)
	return vec{b.X - a.X, b.Y - a.Y}
}
