package internal

import "sort"

// buildSortMaps orders the vertex indices by ascending x, breaking ties by
// ascending y, and returns both directions of the mapping: rev[sorted] is the
// original index and fwd[original] is the sorted position. Everything past
// this point works in sorted positions; only constraint translation and
// output extraction touch the maps.
func buildSortMaps(points []Point) (rev, fwd []int) {
	rev = make([]int, len(points))
	for i := range rev {
		rev[i] = i
	}
	sort.SliceStable(rev, func(i, j int) bool {
		a, b := points[rev[i]], points[rev[j]]
		if a.X != b.X {
			return a.X < b.X
		}
		return a.Y < b.Y
	})
	fwd = make([]int, len(points))
	for sorted, original := range rev {
		fwd[original] = sorted
	}
	return rev, fwd
}
