// Package finalize implements the second pass over a tessellation's raw
// output: concatenating the per-cell face buffers produced independently
// by each goroutine, filtering faces whose dimensionality doesn't match
// the tessellation, and building the cell-to-faces adjacency that a
// VoronoiFace's Left/Right ids alone cannot express — cyclic cell<->face
// references are resolved with integer ids and this second pass rather
// than mutually-owning pointers.
//
// A face is linked to its Left cell unconditionally, and to its Right cell
// only when Right is a real generator (not a wall) and the face carries no
// shift — a periodic face's two emitting sides are distinct cells in
// different images, so only the owning (Left) side should list it.
package finalize
