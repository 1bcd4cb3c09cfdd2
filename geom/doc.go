// Package geom provides the small, allocation-free vector and plane
// arithmetic used by the convex-cell clipping kernel: 3-vectors, oriented
// planes (half-spaces), and the fixed 3x3 linear solve that recovers a
// vertex's coordinates from the three planes that generate it.
//
// A generic Dense-matrix-plus-LU-solve package is deliberately not reused
// here: the kernel solves one 3x3 system per candidate vertex, many times
// per cell, and a generic Matrix interface (heap-allocated rows,
// error-returning At/Set) would put allocation and indirection on the
// hottest path of the whole system. Cramer's rule on fixed [3]Vec3 arrays
// keeps that path allocation-free. See DESIGN.md for the full
// justification.
package geom
