package delaunay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smoke tests for the facade. The algorithm itself is tested in internal.

func TestTriangulate(t *testing.T) {
	triangles, err := Triangulate([]Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}})
	assert.NoError(t, err)
	assert.Len(t, triangles, 2)
}

func TestTriangulateWithConstraint(t *testing.T) {
	triangles, err := Triangulate([]Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}, Edge{A: 0, B: 2})
	require.NoError(t, err)
	assert.Len(t, triangles, 2)
	for _, tri := range triangles {
		assert.Contains(t, []int{tri.A, tri.B, tri.C}, 0)
	}
}

func TestInsufficientInputIsSilentlyEmpty(t *testing.T) {
	var tr Triangulator
	tr.SetVertices([]Point{{X: 0, Y: 0}, {X: 1, Y: 1}})
	require.NoError(t, tr.Triangulate())
	assert.Empty(t, tr.Edges())
	assert.Empty(t, tr.Triangles())
}

func TestConstraintsBeforeVertices(t *testing.T) {
	var tr Triangulator
	err := tr.SetConstraints([]Edge{{A: 0, B: 1}})
	assert.ErrorIs(t, err, ErrNoVertices)
}

func TestConstraintIndexOutOfRange(t *testing.T) {
	var tr Triangulator
	tr.SetVertices([]Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}})
	err := tr.SetConstraints([]Edge{{A: 0, B: 3}})
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	err = tr.SetConstraints([]Edge{{A: -1, B: 2}})
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestSelfConstraint(t *testing.T) {
	var tr Triangulator
	tr.SetVertices([]Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}})
	err := tr.SetConstraints([]Edge{{A: 2, B: 2}})
	assert.ErrorIs(t, err, ErrBadConstraint)
}

func TestRetriangulateWithoutNewVerticesRejected(t *testing.T) {
	var tr Triangulator
	tr.SetVertices([]Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}})
	require.NoError(t, tr.Triangulate())
	assert.ErrorIs(t, tr.Triangulate(), ErrStale)

	// Supplying vertices again resets the instance
	tr.SetVertices([]Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 2}})
	assert.NoError(t, tr.Triangulate())
	assert.Len(t, tr.Triangles(), 1)
}

func TestUnreachableConstraint(t *testing.T) {
	// A fully collinear input has no triangulation on either side of the
	// constraint line, so the chain walk cannot even start.
	var tr Triangulator
	tr.SetVertices([]Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}, {X: 4, Y: 0}})
	require.NoError(t, tr.SetConstraints([]Edge{{A: 0, B: 4}}))
	assert.ErrorIs(t, tr.Triangulate(), ErrBadConstraint)
}

func TestSetVerticesDropsConstraints(t *testing.T) {
	square := []Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	var tr Triangulator
	tr.SetVertices(square)
	require.NoError(t, tr.SetConstraints([]Edge{{A: 0, B: 2}}))

	// Resupplying the vertices discards the constraint; the square reverts
	// to its natural diagonal.
	tr.SetVertices(square)
	require.NoError(t, tr.Triangulate())
	hasForced := false
	for _, e := range tr.Edges() {
		if (e.A == 0 && e.B == 2) || (e.A == 2 && e.B == 0) {
			hasForced = true
		}
	}
	assert.False(t, hasForced)
}

func TestChainedSetup(t *testing.T) {
	var tr Triangulator
	err := tr.SetVertices([]Point{{X: 0, Y: 0}, {X: 3, Y: 1}, {X: 1, Y: 4}}).Triangulate()
	require.NoError(t, err)
	assert.Len(t, tr.Triangles(), 1)
}
