// Package voronoi is the public orchestrator of the tessellation pipeline:
// it builds the spatial index, derives the clipping box (enlarged and
// recentred for periodic tessellations), fans per-cell construction out
// across a worker pool, and finalizes the result into an immutable
// Voronoi value.
//
// Build and BuildPartial are the two entry points. Dimensionality is
// validated, and an empty generator set rejected, before any goroutine is
// spawned — the fatal errors this package returns; a per-cell degeneracy
// (core.ErrDegenerateCell) is caught and recorded as a default
// VoronoiCell instead.
package voronoi
