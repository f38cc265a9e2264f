package internal

// inlineDegree is the neighbor count a vertex can hold without spilling.
// Average vertex degree in a planar triangulation is just under 6, so the
// inline block covers nearly every vertex.
const inlineDegree = 8

// noVertex marks an empty neighbor slot. It is also returned by
// commonConnection when no vertex qualifies.
const noVertex = -1

// node is one vertex's neighbor set. Slots hold vertex indices into the
// owning graph's arena. Removal punches a hole rather than compacting, and
// add reuses holes before growing the spill slice.
type node struct {
	inline [inlineDegree]int
	more   []int
}

func (n *node) add(v int) {
	for i := range n.inline {
		if n.inline[i] == noVertex {
			n.inline[i] = v
			return
		}
	}
	for i := range n.more {
		if n.more[i] == noVertex {
			n.more[i] = v
			return
		}
	}
	n.more = append(n.more, v)
}

func (n *node) remove(v int) {
	for i := range n.inline {
		if n.inline[i] == v {
			n.inline[i] = noVertex
			return
		}
	}
	for i := range n.more {
		if n.more[i] == v {
			n.more[i] = noVertex
			return
		}
	}
}

func (n *node) contains(v int) bool {
	for i := range n.inline {
		if n.inline[i] == v {
			return true
		}
	}
	for i := range n.more {
		if n.more[i] == v {
			return true
		}
	}
	return false
}

// graph is the per-vertex connectivity arena, indexed by sorted vertex
// position. Adjacency is symmetric at all times: both halves of an edge are
// added or removed together, and there is no directed view of it.
type graph struct {
	nodes []node
}

func newGraph(size int) *graph {
	g := &graph{nodes: make([]node, size)}
	for i := range g.nodes {
		for j := range g.nodes[i].inline {
			g.nodes[i].inline[j] = noVertex
		}
	}
	return g
}

func (g *graph) size() int {
	return len(g.nodes)
}

// connect adds the undirected edge a-b. Connecting an existing edge is a
// no-op; the fan retriangulation can legitimately rediscover a pocket edge.
func (g *graph) connect(a, b int) {
	if a == b {
		panic("graph: connecting a vertex to itself")
	}
	if g.nodes[a].contains(b) {
		return
	}
	g.nodes[a].add(b)
	g.nodes[b].add(a)
}

// disconnect removes the undirected edge a-b if present.
func (g *graph) disconnect(a, b int) {
	g.nodes[a].remove(b)
	g.nodes[b].remove(a)
}

// disconnectAll detaches a from every neighbor, leaving it isolated.
func (g *graph) disconnectAll(a int) {
	n := &g.nodes[a]
	for i := range n.inline {
		if v := n.inline[i]; v != noVertex {
			g.nodes[v].remove(a)
			n.inline[i] = noVertex
		}
	}
	for _, v := range n.more {
		if v != noVertex {
			g.nodes[v].remove(a)
		}
	}
	n.more = n.more[:0]
}

func (g *graph) isConnected(a, b int) bool {
	return g.nodes[a].contains(b)
}

// appendNeighbors appends a's neighbors to buf and returns the extended
// slice. The sewing loop reuses one buffer across iterations.
func (g *graph) appendNeighbors(a int, buf []int) []int {
	n := &g.nodes[a]
	for i := range n.inline {
		if v := n.inline[i]; v != noVertex {
			buf = append(buf, v)
		}
	}
	for _, v := range n.more {
		if v != noVertex {
			buf = append(buf, v)
		}
	}
	return buf
}

// degree counts a's neighbors.
func (g *graph) degree(a int) int {
	return len(g.appendNeighbors(a, nil))
}

// commonConnection finds a vertex adjacent to both a and b, other than
// excluding, or noVertex if there is none. The constraint walker uses it to
// step along the triangles straddling a constraint line.
func (g *graph) commonConnection(a, b, excluding int) int {
	n := &g.nodes[a]
	for i := range n.inline {
		if v := n.inline[i]; v != noVertex && v != excluding && g.isConnected(v, b) {
			return v
		}
	}
	for _, v := range n.more {
		if v != noVertex && v != excluding && g.isConnected(v, b) {
			return v
		}
	}
	return noVertex
}
