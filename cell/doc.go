// Package cell implements the convex-cell clipping kernel and the
// extraction of a finished ConvexCell into output VoronoiCell and
// VoronoiFace records: the hard, numerically delicate core of the whole
// system.
//
// Build repeatedly clips a core.ConvexCell against the bisector half-space
// of the next neighbour drawn from a spatialindex.Stream, in increasing
// distance, until the safety-radius criterion proves no further neighbour
// can shrink the cell. Extract then walks the surviving half-spaces,
// orders each face's vertices around its normal, and accumulates volume
// and centroid by tetrahedral decomposition.
//
// Complexity and locking:
//
//	Build/Extract touch only the ConvexCell passed in; they share no state
//	across generators and take no locks. This is what makes per-generator
//	construction embarrassingly parallel — callers scatter one ConvexCell
//	and one Stream per goroutine and never communicate.
package cell
