// Package spatialindex builds a static nearest-neighbour index over a
// generator set and exposes it as a lazy, strictly non-decreasing-distance
// stream, plus a periodic "wrap" variant that interleaves the streams
// rooted at a query point's lattice images.
//
// The index itself is an R-tree (github.com/dhconnelly/rtreego).
// rtreego.Tree.NearestNeighbors is k-bounded and eager, so Index.Nearest
// adapts it into the unbounded lazy stream the clipping kernel needs by
// requesting geometrically growing batches and only yielding
// previously-unseen generators — see nearest.go.
package spatialindex
