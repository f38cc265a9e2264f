package internal

// isDelaunay reports whether vertex d lies outside or on the circumcircle of
// the triangle (a, b, c). The merge and sewing stages use it to decide which
// edges survive; its sign convention is load-bearing and must not drift.
func (t *Triangulator) isDelaunay(a, b, c, d int) bool {
	return inCircleDet(t.vert(a), t.vert(b), t.vert(c), t.vert(d)) <= 0
}

// inCircleDet lifts all four points onto the paraboloid z = x*x + y*y and
// evaluates the 3x3 determinant of the lifted triangle relative to d. With
// (a, b, c) in counterclockwise order, the result is positive exactly when d
// is strictly inside the circumcircle. Collinear a, b, c give zero, which
// counts as outside.
func inCircleDet(a, b, c, d Point) float64 {
	aa := a.X - d.X
	ba := a.Y - d.Y
	ca := a.X*a.X + a.Y*a.Y - d.X*d.X - d.Y*d.Y
	ab := b.X - d.X
	bb := b.Y - d.Y
	cb := b.X*b.X + b.Y*b.Y - d.X*d.X - d.Y*d.Y
	ac := c.X - d.X
	bc := c.Y - d.Y
	cc := c.X*c.X + c.Y*c.Y - d.X*d.X - d.Y*d.Y

	return aa*bb*cc + ba*cb*ac + ca*ab*bc - ca*bb*ac - ba*ab*cc - aa*cb*bc
}
