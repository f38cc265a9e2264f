package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Run just the sort and leaf-triangulation stages over points.
func stripFixture(points []Point) (*Triangulator, []int) {
	tr := &Triangulator{}
	tr.SetVertices(points)
	tr.graph = newGraph(len(points))
	return tr, tr.buildStrips()
}

// Collect the graph's edges as sorted-position pairs with a < b.
func sortedEdges(g *graph) map[Edge]bool {
	edges := make(map[Edge]bool)
	for n := 0; n < g.size(); n++ {
		for _, j := range g.appendNeighbors(n, nil) {
			if j > n {
				edges[Edge{n, j}] = true
			}
		}
	}
	return edges
}

func TestStripTriple(t *testing.T) {
	tr, frags := stripFixture([]Point{{0, 0}, {1, 1}, {2, 0}})
	assert.Equal(t, []int{0}, frags)
	assert.Equal(t, map[Edge]bool{{0, 1}: true, {1, 2}: true, {0, 2}: true}, sortedEdges(tr.graph))
}

func TestStripCollinearTriple(t *testing.T) {
	// Collinear points must form a path, not a triangle
	tr, frags := stripFixture([]Point{{0, 0}, {1, 1}, {2, 2}})
	assert.Equal(t, []int{0}, frags)
	assert.Equal(t, map[Edge]bool{{0, 1}: true, {1, 2}: true}, sortedEdges(tr.graph))
}

func TestStripHeadColumnFansForward(t *testing.T) {
	// A column at the head of the input fans onto the vertex past it
	tr, frags := stripFixture([]Point{{0, 0}, {0, 1}, {0, 2}, {0, 3}, {1, 0}})
	assert.Equal(t, []int{0}, frags)
	assert.Equal(t, map[Edge]bool{
		{0, 1}: true, {1, 2}: true, {2, 3}: true,
		{0, 4}: true, {1, 4}: true, {2, 4}: true, {3, 4}: true,
	}, sortedEdges(tr.graph))
}

func TestStripTrailingColumnStaysPath(t *testing.T) {
	// A column closing out the input has nothing to fan onto
	tr, frags := stripFixture([]Point{{0, 0}, {0, 1}, {0, 2}})
	assert.Equal(t, []int{0}, frags)
	assert.Equal(t, map[Edge]bool{{0, 1}: true, {1, 2}: true}, sortedEdges(tr.graph))
}

func TestStripColumnAfterHeadFansFromHead(t *testing.T) {
	tr, frags := stripFixture([]Point{{0, 0}, {1, -1}, {1, 1}, {1, 2}})
	assert.Equal(t, []int{0}, frags)
	assert.Equal(t, map[Edge]bool{
		{1, 2}: true, {2, 3}: true,
		{0, 1}: true, {0, 2}: true, {0, 3}: true,
	}, sortedEdges(tr.graph))
}

func TestStripColumnOnThirdSlotClosesPair(t *testing.T) {
	// The column starting at the third vertex is pushed into its own
	// fragment; the two vertices before it close as a pair.
	tr, frags := stripFixture([]Point{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {2, 2}, {3, 0}})
	assert.Equal(t, []int{0, 2}, frags)
	assert.Equal(t, map[Edge]bool{
		{0, 1}: true,
		{2, 3}: true, {3, 4}: true,
		{2, 5}: true, {3, 5}: true, {4, 5}: true,
	}, sortedEdges(tr.graph))
}

func TestStripTrailingVertexGetsOwnFragment(t *testing.T) {
	_, frags := stripFixture([]Point{{0, 0}, {1, 5}, {2, 0}, {3, 6}})
	assert.Equal(t, []int{0, 3}, frags)
}

func TestStripTrailingPair(t *testing.T) {
	tr, frags := stripFixture([]Point{{0, 0}, {1, 5}, {2, 0}, {3, 6}, {4, 1}})
	assert.Equal(t, []int{0, 3}, frags)
	assert.True(t, sortedEdges(tr.graph)[Edge{3, 4}])
}
