package internal

import "math"

// Tolerance for angle comparisons. The sewing loop culls candidates whose
// angle to the seam is within Tolerance of a straight line, so that boundary
// ties never produce degenerate triangles.
const Tolerance = 1e-6

type vec struct {
	x, y float64
}

func (v vec) neg() vec {
	return vec{-v.x, -v.y}
}

func cross(a, b vec) float64 {
	return a.x*b.y - a.y*b.x
}

func dot(a, b vec) float64 {
	return a.x*b.x + a.y*b.y
}

// relAngle gives the signed angle of v relative to base, in (-pi, pi]. This
// is the argument of the complex ratio v/base, without the division: the
// ratio's imaginary part is cross(base, v) and its real part is dot(base, v),
// up to a shared positive factor that atan2 ignores.
func relAngle(base, v vec) float64 {
	return math.Atan2(cross(base, v), dot(base, v))
}

// slope is the angle coefficient of the line from left to right. Callers in
// the tangent search only compare slopes between vertex pairs spanning the
// two merge halves, whose x coordinates differ unless the halves split a
// vertical run; an infinite result is still ordered correctly there.
func slope(left, right Point) float64 {
	return (right.Y - left.Y) / (right.X - left.X)
}
