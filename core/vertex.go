package core

import "github.com/katalvlaran/voro3d/geom"

// Vertex is an extreme point of a ConvexCell under construction,
// represented by the three half-space indices that generate it rather
// than by an explicit half-edge structure. Point is computed once, when
// the vertex is created from its generating triple, and is never mutated
// afterwards; the triple is what survives rounding.
type Vertex struct {
	Planes [3]int
	Point  geom.Vec3
}

// SharesEdgeWith reports whether v and w share exactly two of their three
// generating planes, i.e. whether they are joined by an edge of the
// polyhedron. Edges are recovered this way, as plane-pairs shared by
// exactly two vertices, rather than stored explicitly.
func (v Vertex) SharesEdgeWith(w Vertex) (shared [2]int, ok bool) {
	n := 0
	for _, p := range v.Planes {
		for _, q := range w.Planes {
			if p == q {
				if n < 2 {
					shared[n] = p
				}
				n++
			}
		}
	}
	return shared, n == 2
}
