package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSortMaps(t *testing.T) {
	points := []Point{
		{2, 1},
		{0, 5},
		{2, 0},
		{-1, 3},
		{0, -2},
	}
	rev, fwd := buildSortMaps(points)

	// x ascending, y breaking ties
	assert.Equal(t, []int{3, 4, 1, 2, 0}, rev)

	// The maps are inverses
	for sorted, original := range rev {
		assert.Equal(t, sorted, fwd[original])
	}

	// Sorted order is actually sorted
	for i := 1; i < len(rev); i++ {
		a, b := points[rev[i-1]], points[rev[i]]
		less := a.X < b.X || (a.X == b.X && a.Y < b.Y)
		assert.True(t, less, "position %d out of order", i)
	}
}

func TestBuildSortMapsEmpty(t *testing.T) {
	rev, fwd := buildSortMaps(nil)
	assert.Empty(t, rev)
	assert.Empty(t, fwd)
}
