// Package core defines the central Generator, HalfSpace, Vertex, and
// ConvexCell types shared by every stage of the Voronoi construction
// pipeline, plus the sentinel errors used throughout voro3d.
//
// These types carry no behaviour of their own beyond small accessors and
// invariant checks; the clipping kernel that mutates a ConvexCell lives in
// package cell, and the spatial search that feeds it lives in package
// spatialindex. Keeping the data model in one leaf package (with no
// dependency on cell/spatialindex/voronoi) lets every other package share
// it without import cycles.
//
// Dimensionality:
//
//	Dimensionality1D — active axis x only; y,z collapsed to 0 and ±0.5 slab.
//	Dimensionality2D — active axes x,y; z collapsed.
//	Dimensionality3D — all three axes active.
//
// Errors:
//
//	ErrInvalidDimensionality — dim outside {1,2,3}.
//	ErrDegenerateCell        — clipping produced an empty or collapsed polyhedron.
//
// go get github.com/katalvlaran/voro3d/core
package core
