package spatialindex

import (
	"container/heap"

	"github.com/katalvlaran/voro3d/core"
	"github.com/katalvlaran/voro3d/geom"
)

// activeShifts enumerates the lattice images a periodic query must wrap
// across: every combination of {-1,0,+1} on the active axes of dim, zero
// on inactive axes — the 26 (or 8 / 2) neighbouring period images plus
// the zero shift itself, depending on dimensionality.
func activeShifts(dim core.Dimensionality) []core.Shift {
	axis := func(active bool) []int32 {
		if active {
			return []int32{-1, 0, 1}
		}
		return []int32{0}
	}
	xs := axis(true)
	ys := axis(dim >= core.Dimensionality2D)
	zs := axis(dim >= core.Dimensionality3D)

	shifts := make([]core.Shift, 0, len(xs)*len(ys)*len(zs))
	for _, x := range xs {
		for _, y := range ys {
			for _, z := range zs {
				shifts = append(shifts, core.Shift{x, y, z})
			}
		}
	}
	return shifts
}

// wrapCursor is one per-image stream together with its next unconsumed
// element, kept in a min-heap ordered by that element's distance so the
// merge always advances the globally nearest stream next.
type wrapCursor struct {
	stream *nearestStream
	next   Neighbor
}

type wrapHeap []*wrapCursor

func (h wrapHeap) Len() int            { return len(h) }
func (h wrapHeap) Less(i, j int) bool  { return h[i].next.Dist2 < h[j].next.Dist2 }
func (h wrapHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *wrapHeap) Push(x interface{}) { *h = append(*h, x.(*wrapCursor)) }
func (h *wrapHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// wrapStream merges the per-image nearestStreams of Index.Wrap in
// strictly non-decreasing true (minimum-image) distance.
type wrapStream struct {
	heap wrapHeap
}

// Next implements Stream.
func (w *wrapStream) Next() (Neighbor, bool) {
	if w.heap.Len() == 0 {
		return Neighbor{}, false
	}
	cur := heap.Pop(&w.heap).(*wrapCursor)
	result := cur.next
	if nb, ok := cur.stream.Next(); ok {
		cur.next = nb
		heap.Push(&w.heap, cur)
	}
	return result, true
}

// Wrap returns the periodic nearest-neighbour stream rooted at origin: the
// interleaving, in global distance order, of the plain nearest-neighbour
// streams rooted at every lattice image of origin across the active axes
// of dim.
func (idx *Index) Wrap(origin geom.Vec3, excludeID int, width geom.Vec3, dim core.Dimensionality) Stream {
	shifts := activeShifts(dim)
	h := make(wrapHeap, 0, len(shifts))
	for _, s := range shifts {
		off := s.Offset(width)
		ns := newNearestStream(idx, origin.Add(off), off, s, excludeID)
		if nb, ok := ns.Next(); ok {
			h = append(h, &wrapCursor{stream: ns, next: nb})
		}
	}
	heap.Init(&h)
	return &wrapStream{heap: h}
}
