package spatialindex

import (
	"errors"

	"github.com/dhconnelly/rtreego"

	"github.com/katalvlaran/voro3d/core"
	"github.com/katalvlaran/voro3d/geom"
)

// ErrEmptyGenerators is returned by NewIndex when given no generators: a
// Voronoi tessellation needs at least one seed point.
var ErrEmptyGenerators = errors.New("spatialindex: no generators")

// rectEpsilon is the side length of each generator's degenerate bounding
// box, which has the generator at its lower corner. rtreego rejects
// zero-width rectangles, so generators are indexed as vanishingly small
// cubes rather than true points.
const rectEpsilon = 1e-9

const (
	minChildren = 25
	maxChildren = 50
)

// Index is a static, read-only nearest-neighbour index over a generator
// set. It is immutable after NewIndex returns, so every cell's
// construction goroutine may query it concurrently without locking.
type Index struct {
	tree       *rtreego.Rtree
	generators []core.Generator
}

// point adapts a Generator into rtreego.Spatial.
type point struct {
	gen core.Generator
}

func (p point) Bounds() *rtreego.Rect {
	loc := p.gen.Loc
	rect, err := rtreego.NewRect(
		rtreego.Point{loc.X, loc.Y, loc.Z},
		[]float64{rectEpsilon, rectEpsilon, rectEpsilon},
	)
	if err != nil {
		// Only possible if rectEpsilon were non-positive, which it never is.
		panic(err)
	}
	return rect
}

// NewIndex builds an R-tree over generators, inserting them one at a time. The returned Index holds
// no reference to anything mutable afterwards.
func NewIndex(generators []core.Generator) (*Index, error) {
	if len(generators) == 0 {
		return nil, ErrEmptyGenerators
	}
	tree := rtreego.NewTree(3, minChildren, maxChildren)
	for _, g := range generators {
		tree.Insert(point{gen: g})
	}
	return &Index{tree: tree, generators: generators}, nil
}

// Len reports the number of indexed generators.
func (idx *Index) Len() int {
	return len(idx.generators)
}

// at returns the k nearest indexed generators to q, in non-decreasing
// distance, querying the underlying R-tree directly (eager, k-bounded).
func (idx *Index) at(q geom.Vec3, k int) []core.Generator {
	if k > len(idx.generators) {
		k = len(idx.generators)
	}
	raw := idx.tree.NearestNeighbors(k, rtreego.Point{q.X, q.Y, q.Z})
	out := make([]core.Generator, len(raw))
	for i, s := range raw {
		out[i] = s.(point).gen
	}
	return out
}
