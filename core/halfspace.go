package core

import "github.com/katalvlaran/voro3d/geom"

// WallNeighbor is the sentinel Neighbor value identifying a half-space as
// a simulation-box wall rather than a bisector with another generator.
const WallNeighbor = -1

// HalfSpace is an oriented clip plane together with the identity of the
// generator it was cut against. Neighbor is WallNeighbor for one of the
// six initial box walls. Shift is the lattice translation
// applied to Neighbor's position before the bisector was computed; it is
// the zero Shift for non-periodic and same-image bisectors.
type HalfSpace struct {
	Plane    geom.Plane
	Neighbor int
	Shift    Shift
}

// IsWall reports whether h is one of the simulation-box walls.
func (h HalfSpace) IsWall() bool {
	return h.Neighbor == WallNeighbor
}

// wall builds a box-wall half-space with outward normal n passing through
// the plane n.Dot(x) = offset.
func wall(n geom.Vec3, offset float64) HalfSpace {
	return HalfSpace{Plane: geom.Plane{Normal: n, Offset: offset}, Neighbor: WallNeighbor}
}
