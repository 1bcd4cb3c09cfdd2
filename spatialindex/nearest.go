package spatialindex

import (
	"github.com/katalvlaran/voro3d/core"
	"github.com/katalvlaran/voro3d/geom"
)

// initialBatch is the first nearest-neighbour batch size requested from
// the R-tree; it doubles every time a stream's current batch is exhausted
// without the consumer having stopped.
const initialBatch = 8

// Neighbor is one element of a nearest-neighbour stream: the generator
// found, its squared distance from the query point, and — for wrapped
// (periodic) streams — the lattice Shift applied to reach it. Generator.Loc
// already carries that shift applied, so callers can use it directly as
// the bisector's far point.
type Neighbor struct {
	Generator core.Generator
	Dist2     float64
	Shift     core.Shift
}

// Stream is a finite, lazily-produced, strictly non-decreasing-distance
// sequence of neighbours. It is infallible: Next simply returns ok=false
// once exhausted.
type Stream interface {
	Next() (Neighbor, bool)
}

// nearestStream adapts Index.at's eager, k-bounded queries into a lazy,
// unbounded stream by requesting geometrically growing batches.
type nearestStream struct {
	idx        *Index
	queryPoint geom.Vec3
	offset     geom.Vec3 // queryPoint - origin; Generator.Loc is reported as g.Loc - offset
	shift      core.Shift
	exclude    int
	batch      []core.Generator
	batchSize  int
	pos        int
}

func newNearestStream(idx *Index, queryPoint, offset geom.Vec3, shift core.Shift, exclude int) *nearestStream {
	size := initialBatch
	if size > idx.Len() {
		size = idx.Len()
	}
	return &nearestStream{
		idx:        idx,
		queryPoint: queryPoint,
		offset:     offset,
		shift:      shift,
		exclude:    exclude,
		batch:      idx.at(queryPoint, size),
		batchSize:  size,
	}
}

// Next implements Stream.
func (s *nearestStream) Next() (Neighbor, bool) {
	for {
		if s.pos < len(s.batch) {
			g := s.batch[s.pos]
			s.pos++
			if g.ID == s.exclude && s.shift.IsZero() {
				// Only the zero-shift (true self) image is meaningless;
				// periodic self-images at a non-zero shift are legitimate
				// neighbours of a generator close to its own period image.
				continue
			}
			d2 := geom.Dist2(s.queryPoint, g.Loc)
			loc := g.Loc.Sub(s.offset)
			return Neighbor{
				Generator: core.Generator{ID: g.ID, Loc: loc},
				Dist2:     d2,
				Shift:     s.shift,
			}, true
		}
		if s.batchSize >= s.idx.Len() {
			return Neighbor{}, false
		}
		grown := s.batchSize * 2
		if grown > s.idx.Len() {
			grown = s.idx.Len()
		}
		s.batchSize = grown
		s.batch = s.idx.at(s.queryPoint, s.batchSize)
	}
}

// Nearest returns the non-decreasing-distance neighbour stream rooted at
// origin, skipping the generator identified by excludeID (typically the
// cell's own generator).
func (idx *Index) Nearest(origin geom.Vec3, excludeID int) Stream {
	return newNearestStream(idx, origin, geom.Vec3{}, core.Shift{}, excludeID)
}
