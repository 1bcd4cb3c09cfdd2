package core

import "errors"

// Sentinel errors returned across the voro3d pipeline. Packages downstream
// of core (cell, voronoi) return these values unwrapped rather than
// declaring their own duplicates.
var (
	// ErrInvalidDimensionality indicates a dimensionality outside {1,2,3}
	// was requested. Fatal: reported before any cell construction begins.
	ErrInvalidDimensionality = errors.New("core: dimensionality must be 1, 2, or 3")

	// ErrDegenerateCell indicates that clipping drove every vertex of a
	// ConvexCell outside the newly added half-space, collapsing the
	// polyhedron. This can only happen when the generator lies outside the
	// clipping box; a (near-)coincident neighbour yields a bisector through
	// or beside the generator, which never puts every vertex outside. The
	// affected cell is recorded as a default VoronoiCell (ID and generator
	// position only, zero volume) rather than treated as a hard failure
	// (see voronoi.Build).
	ErrDegenerateCell = errors.New("core: convex cell collapsed during clipping")
)
