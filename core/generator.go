package core

import "github.com/katalvlaran/voro3d/geom"

// Generator is an immutable seed point inducing one Voronoi cell: a stable
// integer ID and a position already canonicalized for the tessellation's
// active dimensionality.
type Generator struct {
	ID  int
	Loc geom.Vec3
}

// NewGenerator canonicalizes loc for dim and pairs it with id.
func NewGenerator(id int, loc geom.Vec3, dim Dimensionality) Generator {
	return Generator{ID: id, Loc: dim.Canonicalize(loc)}
}
