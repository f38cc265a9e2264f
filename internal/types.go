package internal

// Point is an immutable input coordinate pair. The triangulator never
// modifies the caller's points; vertices are referred to by index everywhere
// past the initial sort.
type Point struct {
	X float64
	Y float64
}

// Edge is an undirected edge between two vertices, identified by their
// positions in the original input slice.
type Edge struct {
	A, B int
}

// Triangle is a triangle of original input indices. Extraction emits the
// vertices in clockwise order.
type Triangle struct {
	A, B, C int
}
