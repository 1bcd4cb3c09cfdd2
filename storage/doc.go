// Package storage implements the optional persisted export of a finished
// tessellation: writing a voronoi.Voronoi to a hierarchical,
// self-describing binary container.
//
// Realized with github.com/ctessum/cdf, a classic (netCDF-3) reader/writer.
// netCDF-3 has no nested-group primitive, so the logical `Cells`/`Faces`
// groupings become `Cells_`/`Faces_`-prefixed variables sharing the
// `Cells`/`Faces` dimensions: declare every variable and dimension up
// front via cdf.NewHeader, call Header.Define once, then fill each
// variable through File.Writer(name, start, end).
package storage
