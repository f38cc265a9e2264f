package internal

import (
	"math"
	"sort"
)

// candidate is a vertex tagged with an angle, used both by the sewing loop
// (angle off the seam) and by triangle extraction (polar angle).
type candidate struct {
	angle  float64
	vertex int
}

// merge runs the divide-and-conquer passes, doubling the fragment span each
// pass and sewing adjacent fragment pairs into larger Delaunay
// triangulations until one remains.
func (t *Triangulator) merge(frags []int) {
	numFrags := len(frags)
	var cons []int
	var cands []candidate
	for span := 2; span>>1 < numFrags; span <<= 1 {
		for m := 0; m < numFrags; m += span {
			if m+span/2 >= numFrags {
				break
			}
			left := frags[m]
			middle := frags[m+span/2]
			right := t.graph.size()
			if m+span < numFrags {
				right = frags[m+span]
			}
			t.mergeHalves(left, middle, right, &cons, &cands)
		}
	}
}

// mergeHalves sews the fragments covering [left, middle) and [middle, right)
// along their lower common tangent.
func (t *Triangulator) mergeHalves(left, middle, right int, cons *[]int, cands *[]candidate) {
	// Lowest vertex on each side. Ties go to the later vertex on the left
	// and the earlier on the right, pulling both toward the seam.
	lowL, lowR := left, middle
	for v := left + 1; v < middle; v++ {
		if t.vert(lowL).Y >= t.vert(v).Y {
			lowL = v
		}
	}
	for v := middle + 1; v < right; v++ {
		if t.vert(lowR).Y > t.vert(v).Y {
			lowR = v
		}
	}

	lowL, lowR = t.lowerTangent(left, middle, right, lowL, lowR)

	// The sewing loop: connect the seam, then advance the endpoint whose
	// candidate wins the in-circle test, until neither side can offer one.
	for {
		lCand := t.sideCandidate(lowL, lowR, middle, true, cons, cands)
		rCand := t.sideCandidate(lowL, lowR, middle, false, cons, cands)
		t.graph.connect(lowL, lowR)
		switch {
		case lCand != noVertex && rCand != noVertex:
			if t.isDelaunay(lowL, lowR, lCand, rCand) {
				lowL = lCand
			} else {
				lowR = rCand
			}
		case lCand != noVertex:
			lowL = lCand
		case rCand != noVertex:
			lowR = rCand
		default:
			return
		}
	}
}

// lowerTangent slides the two lowest vertices outward to a fixed point of
// the tangent slope, alternating sides. The positive and negative slope
// cases scan in opposite directions; a horizontal start is already tangent.
func (t *Triangulator) lowerTangent(left, middle, right, lowL, lowR int) (int, int) {
	s := slope(t.vert(lowL), t.vert(lowR))
	switch {
	case s > 0:
		for {
			prev := lowL
			for v := lowR + 1; v < right; v++ {
				if s2 := slope(t.vert(lowL), t.vert(v)); s2 < s {
					lowR = v
					s = s2
				}
			}
			for v := lowL + 1; v < middle; v++ {
				if s2 := slope(t.vert(v), t.vert(lowR)); s2 >= s {
					lowL = v
					s = s2
				}
			}
			if prev == lowL {
				return lowL, lowR
			}
		}
	case s < 0:
		for {
			prev := lowR
			for v := lowL - 1; v >= left; v-- {
				if s2 := slope(t.vert(v), t.vert(lowR)); s2 > s {
					lowL = v
					s = s2
				}
			}
			for v := lowR - 1; v >= middle; v-- {
				if s2 := slope(t.vert(lowL), t.vert(v)); s2 <= s {
					lowR = v
					s = s2
				}
			}
			if prev == lowR {
				return lowL, lowR
			}
		}
	}
	return lowL, lowR
}

// sideCandidate picks one side's next sewing candidate: the seam endpoint's
// neighbors on that side of the seam, taken in order of increasing angle off
// the seam, skipping anything on or beyond a straight line. A leading
// candidate whose successor invalidates it under the in-circle test cannot
// be Delaunay in the merged result, so it is disconnected on the spot.
func (t *Triangulator) sideCandidate(lowL, lowR, middle int, leftSide bool, cons *[]int, cands *[]candidate) int {
	from := lowL
	base := t.vecBetween(lowL, lowR)
	if !leftSide {
		from = lowR
		base = base.neg()
	}

	*cons = t.graph.appendNeighbors(from, (*cons)[:0])
	*cands = (*cands)[:0]
	for _, j := range *cons {
		a := relAngle(base, t.vecBetween(from, j))
		if !leftSide {
			a = -a
		}
		if a < 0 || a > math.Pi-Tolerance {
			continue
		}
		// Stay in this side's half; earlier seam edges connect across.
		if leftSide && j >= middle || !leftSide && j < middle {
			continue
		}
		*cands = append(*cands, candidate{a, j})
	}
	sort.Slice(*cands, func(i, j int) bool {
		return (*cands)[i].angle < (*cands)[j].angle
	})

	if len(*cands) == 0 {
		return noVertex
	}
	best := (*cands)[0].vertex
	for _, next := range (*cands)[1:] {
		if t.isDelaunay(lowL, lowR, best, next.vertex) {
			break
		}
		t.graph.disconnect(from, best)
		best = next.vertex
	}
	return best
}
