// Package delaunay computes planar Delaunay triangulations of 2D point
// sets, optionally forcing a set of required edges into the result.
//
// The triangulation is built divide-and-conquer style over a per-vertex
// connectivity graph; constraints are enforced afterwards by removing the
// edges each one crosses and retriangulating the two polygons left behind.
// Computation is pure and deterministic: same points and constraints in,
// same mesh out.
package delaunay

import "github.com/osuushi/delaunay/internal"

type Point = internal.Point
type Edge = internal.Edge
type Triangle = internal.Triangle

// Sentinel errors, matchable with errors.Is on anything this package
// returns.
var (
	// ErrNoVertices: constraints were supplied before any vertices.
	ErrNoVertices = internal.ErrNoVertices
	// ErrIndexOutOfRange: a constraint references a vertex index outside
	// the supplied points.
	ErrIndexOutOfRange = internal.ErrIndexOutOfRange
	// ErrBadConstraint: a constraint connects a vertex to itself, or its
	// endpoints cannot be joined across the triangulation.
	ErrBadConstraint = internal.ErrBadConstraint
	// ErrStale: Triangulate ran twice without new vertices.
	ErrStale = internal.ErrStale
)

// Triangulator triangulates one point set at a time. The zero value is ready
// to use. It is not safe for concurrent use; triangulate independent point
// sets with independent instances.
type Triangulator struct {
	inner internal.Triangulator
}

// SetVertices supplies the points to triangulate. The points are read, never
// written. Calling it drops any constraints and any previous triangulation;
// it returns the triangulator for chaining.
func (t *Triangulator) SetVertices(points []Point) *Triangulator {
	t.inner.SetVertices(points)
	return t
}

// SetConstraints attaches edges that must appear in the final triangulation
// even where not naturally Delaunay. The pairs reference positions in the
// slice given to SetVertices, which must have been called first.
func (t *Triangulator) SetConstraints(constraints []Edge) (err error) {
	defer func() {
		if recoveredErr := internal.HandlePanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
		}
	}()
	t.inner.SetConstraints(constraints)
	return nil
}

// Triangulate computes the triangulation. Fewer than three vertices yield an
// empty result; fully collinear input yields a connected path with no
// triangles. Malformed constraints surface here as ErrBadConstraint.
// Triangulating the same vertices twice is rejected with ErrStale.
func (t *Triangulator) Triangulate() (err error) {
	defer func() {
		if recoveredErr := internal.HandlePanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
		}
	}()
	t.inner.Triangulate()
	return nil
}

// Edges returns every undirected edge of the triangulation exactly once, as
// pairs of original input indices. Repeated calls return the same set.
func (t *Triangulator) Edges() []Edge {
	return t.inner.Edges()
}

// Triangles returns the triangles of the triangulation as original-index
// triples in clockwise winding. Repeated calls return the same set.
func (t *Triangulator) Triangles() []Triangle {
	return t.inner.Triangles()
}

// Triangulate is the one-shot form: triangulate points, forcing any given
// constraint edges into the result.
func Triangulate(points []Point, constraints ...Edge) ([]Triangle, error) {
	var t Triangulator
	t.SetVertices(points)
	if len(constraints) > 0 {
		if err := t.SetConstraints(constraints); err != nil {
			return nil, err
		}
	}
	if err := t.Triangulate(); err != nil {
		return nil, err
	}
	return t.Triangles(), nil
}
