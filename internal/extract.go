package internal

import (
	"math"
	"sort"
)

// Edges returns every undirected edge of the triangulation exactly once, as
// pairs of original input indices. It is a read-only query and may be called
// repeatedly.
func (t *Triangulator) Edges() []Edge {
	if t.graph == nil {
		return nil
	}
	var edges []Edge
	var cons []int
	for n := 0; n < t.graph.size(); n++ {
		cons = t.graph.appendNeighbors(n, cons[:0])
		for _, j := range cons {
			if j > n {
				edges = append(edges, Edge{t.rev[n], t.rev[j]})
			}
		}
	}
	return edges
}

// Triangles returns the triangles of the triangulation as triples of
// original input indices, wound clockwise. For each vertex, its
// higher-positioned neighbors are swept by polar angle and every adjacent
// pair in the sweep closes one triangle; the higher-position rule attributes
// each triangle to its lowest-sorted corner so none repeats. This assumes
// the graph is a valid planar triangulation and verifies nothing.
func (t *Triangulator) Triangles() []Triangle {
	if t.graph == nil {
		return nil
	}
	var tris []Triangle
	var cons []int
	var cands []candidate
	for n := 0; n+1 < t.graph.size(); n++ {
		cons = t.graph.appendNeighbors(n, cons[:0])
		cands = cands[:0]
		for _, j := range cons {
			if j > n {
				v := t.vecBetween(n, j)
				cands = append(cands, candidate{math.Atan2(v.y, v.x), j})
			}
		}
		sort.Slice(cands, func(i, j int) bool {
			return cands[i].angle < cands[j].angle
		})
		for m := 0; m+1 < len(cands); m++ {
			tris = append(tris, Triangle{
				A: t.rev[n],
				B: t.rev[cands[m+1].vertex],
				C: t.rev[cands[m].vertex],
			})
		}
	}
	return tris
}
