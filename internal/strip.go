package internal

// buildStrips connects the sorted vertices into small disjoint leaf
// triangulations and returns each fragment's starting position. The merge
// stage then sews adjacent fragments together, so all a fragment has to be is
// internally valid: a triangle, a path for collinear runs, or a fan where a
// column of equal-x vertices would otherwise defeat the x-ordered merge.
//
// Columns need the special casing because the merge's tangent search assumes
// the two halves are separated in x. A column is therefore always consumed
// whole: fanned onto the next vertex past it when it heads a fragment, fanned
// from the fragment head when it starts one vertex in, or pushed into its own
// fragment when it would land on a fragment's trailing edge.
func (t *Triangulator) buildStrips() []int {
	n := t.graph.size()
	frags := make([]int, 0, n/2+1)

	i := 0
	for i < n {
		frags = append(frags, i)
		rem := n - i
		switch {
		case rem == 1:
			// Lone trailing vertex; the first merge pass sews it in.
			i = n
		case rem == 2:
			t.graph.connect(i, i+1)
			i = n
		case t.sameX(i, i+1):
			i = t.stripHeadColumn(i)
		case t.sameX(i+1, i+2):
			i = t.stripFannedColumn(i)
		case rem == 3:
			t.connectTriple(i)
			i = n
		case t.sameX(i+2, i+3):
			// The third vertex starts a column. Close this fragment as a
			// pair and let the column head its own fragment.
			t.graph.connect(i, i+1)
			i += 2
		default:
			t.connectTriple(i)
			i += 3
		}
	}
	return frags
}

func (t *Triangulator) sameX(a, b int) bool {
	return t.vert(a).X == t.vert(b).X
}

// stripHeadColumn handles a column starting at the fragment head: path the
// column and fan all of it onto the first vertex past it. A column running to
// the end of the input has nothing to fan onto and stays a path.
func (t *Triangulator) stripHeadColumn(first int) int {
	n := t.graph.size()
	end := first + 1
	for end < n && t.sameX(first, end) {
		end++
	}
	for m := first; m < end-1; m++ {
		t.graph.connect(m, m+1)
	}
	if end == n {
		return end
	}
	for m := first; m < end; m++ {
		t.graph.connect(m, end)
	}
	return end + 1
}

// stripFannedColumn handles a column starting right after the fragment head:
// path the column and fan it from the head.
func (t *Triangulator) stripFannedColumn(first int) int {
	n := t.graph.size()
	end := first + 2
	for end < n && t.sameX(first+1, end) {
		end++
	}
	for m := first + 1; m < end-1; m++ {
		t.graph.connect(m, m+1)
	}
	for m := first + 1; m < end; m++ {
		t.graph.connect(first, m)
	}
	return end
}

// connectTriple closes three vertices as a triangle, or as a path when they
// are collinear.
func (t *Triangulator) connectTriple(first int) {
	t.graph.connect(first, first+1)
	t.graph.connect(first+1, first+2)
	ab := t.vecBetween(first, first+1)
	ac := t.vecBetween(first, first+2)
	if cross(ab, ac) != 0 {
		t.graph.connect(first, first+2)
	}
}
