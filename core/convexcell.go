package core

import (
	"math"

	"github.com/katalvlaran/voro3d/geom"
)

// Wall plane indices, fixed by NewConvexCell's construction order: the
// first six planes of any ConvexCell are always the box walls.
const (
	WallXLo = iota
	WallXHi
	WallYLo
	WallYHi
	WallZLo
	WallZHi
	numWalls
)

// ConvexCell is the mutable working state of one generator's cell during
// construction: the generator itself, the half-spaces clipping it (walls
// first, then bisectors in the order they were accepted), its current
// extreme points, and the running safety radius.
//
// Invariant: ConvexCell always equals the intersection of Planes, and
// Vertices enumerates exactly the extreme points of that intersection.
type ConvexCell struct {
	Generator Generator
	Dim       Dimensionality
	Planes    []HalfSpace
	Vertices  []Vertex
	RSafe     float64
}

// NewConvexCell initializes the convex cell for gen as the simulation
// volume's six box walls, with the eight box corners as its initial vertex
// set. anchor/width describe the clipping box actually used — callers pass
// the 3x-enlarged, recentred box for periodic tessellations and the true
// simulation volume otherwise.
func NewConvexCell(gen Generator, anchor, width geom.Vec3, dim Dimensionality) *ConvexCell {
	xlo, xhi := anchor.X, anchor.X+width.X
	ylo, yhi := anchor.Y, anchor.Y+width.Y
	zlo, zhi := anchor.Z, anchor.Z+width.Z

	planes := make([]HalfSpace, numWalls)
	planes[WallXLo] = wall(geom.Vec3{X: -1}, -xlo)
	planes[WallXHi] = wall(geom.Vec3{X: 1}, xhi)
	planes[WallYLo] = wall(geom.Vec3{Y: -1}, -ylo)
	planes[WallYHi] = wall(geom.Vec3{Y: 1}, yhi)
	planes[WallZLo] = wall(geom.Vec3{Z: -1}, -zlo)
	planes[WallZHi] = wall(geom.Vec3{Z: 1}, zhi)

	xs := [2]struct {
		idx int
		val float64
	}{{WallXLo, xlo}, {WallXHi, xhi}}
	ys := [2]struct {
		idx int
		val float64
	}{{WallYLo, ylo}, {WallYHi, yhi}}
	zs := [2]struct {
		idx int
		val float64
	}{{WallZLo, zlo}, {WallZHi, zhi}}

	vertices := make([]Vertex, 0, 8)
	rSafe := 0.
	for _, x := range xs {
		for _, y := range ys {
			for _, z := range zs {
				pt := geom.Vec3{X: x.val, Y: y.val, Z: z.val}
				vertices = append(vertices, Vertex{Planes: [3]int{x.idx, y.idx, z.idx}, Point: pt})
				if d2 := geom.Dist2(pt, gen.Loc); d2 > rSafe*rSafe {
					rSafe = math.Sqrt(d2)
				}
			}
		}
	}

	return &ConvexCell{
		Generator: gen,
		Dim:       dim,
		Planes:    planes,
		Vertices:  vertices,
		RSafe:     rSafe,
	}
}

// RecomputeRSafe resets RSafe to the maximum distance from the generator to
// any current vertex. Called after every accepted clip; clipping can only
// shrink the cell, so the result never exceeds the previous value.
func (c *ConvexCell) RecomputeRSafe() float64 {
	r := 0.
	for _, v := range c.Vertices {
		if d2 := geom.Dist2(v.Point, c.Generator.Loc); d2 > r*r {
			r = math.Sqrt(d2)
		}
	}
	return r
}
