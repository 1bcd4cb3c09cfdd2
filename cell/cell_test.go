package cell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/voro3d/core"
	"github.com/katalvlaran/voro3d/geom"
	"github.com/katalvlaran/voro3d/spatialindex"
)

// fixedStream replays a pre-sorted slice of neighbours, the simplest
// possible spatialindex.Stream for exercising Build in isolation.
type fixedStream struct {
	items []spatialindex.Neighbor
	pos   int
}

func (s *fixedStream) Next() (spatialindex.Neighbor, bool) {
	if s.pos >= len(s.items) {
		return spatialindex.Neighbor{}, false
	}
	nb := s.items[s.pos]
	s.pos++
	return nb, true
}

func neighborOf(id int, loc geom.Vec3, origin geom.Vec3) spatialindex.Neighbor {
	return spatialindex.Neighbor{Generator: core.Generator{ID: id, Loc: loc}, Dist2: geom.Dist2(origin, loc)}
}

func TestBuild_NoNeighbors_KeepsUnitCube(t *testing.T) {
	gen := core.Generator{ID: 0, Loc: geom.Vec3{X: 0.5, Y: 0.5, Z: 0.5}}
	cc := core.NewConvexCell(gen, geom.Vec3{}, geom.Vec3{X: 1, Y: 1, Z: 1}, core.Dimensionality3D)

	err := Build(cc, &fixedStream{}, 1.0)
	require.NoError(t, err)
	assert.Len(t, cc.Vertices, 8)

	voroCell, faces := Extract(cc)
	assert.InDelta(t, 1.0, voroCell.Volume, 1e-9)
	assert.Len(t, faces, 6)
	for _, f := range faces {
		assert.True(t, f.IsWall())
	}
}

func TestBuild_TwoGenerators_SplitsHalves(t *testing.T) {
	origin := geom.Vec3{X: 0.25, Y: 0.5, Z: 0.5}
	gen := core.Generator{ID: 0, Loc: origin}
	cc := core.NewConvexCell(gen, geom.Vec3{}, geom.Vec3{X: 1, Y: 1, Z: 1}, core.Dimensionality3D)

	neighborLoc := geom.Vec3{X: 0.75, Y: 0.5, Z: 0.5}
	stream := &fixedStream{items: []spatialindex.Neighbor{neighborOf(1, neighborLoc, origin)}}

	err := Build(cc, stream, 1.0)
	require.NoError(t, err)

	voroCell, faces := Extract(cc)
	assert.InDelta(t, 0.5, voroCell.Volume, 1e-9)

	var bisectorCount int
	for _, f := range faces {
		if !f.IsWall() {
			bisectorCount++
			assert.Equal(t, 1, f.Right)
			assert.InDelta(t, 1.0, f.Area, 1e-9)
			assert.InDelta(t, 0.5, f.Centroid.X, 1e-9)
		}
	}
	assert.Equal(t, 1, bisectorCount)
}

func TestBuild_DegenerateCell_ReturnsErrDegenerateCell(t *testing.T) {
	// The generator lies outside the clipping box and its neighbour sits
	// between it and the box: the bisector (x = 1.75) keeps only the side
	// away from the box, so every vertex of the unit cube lies strictly
	// outside it, collapsing the cell entirely.
	origin := geom.Vec3{X: 2, Y: 0.5, Z: 0.5}
	gen := core.Generator{ID: 0, Loc: origin}
	cc := core.NewConvexCell(gen, geom.Vec3{}, geom.Vec3{X: 1, Y: 1, Z: 1}, core.Dimensionality3D)

	between := geom.Vec3{X: 1.5, Y: 0.5, Z: 0.5}
	stream := &fixedStream{items: []spatialindex.Neighbor{neighborOf(1, between, origin)}}

	err := Build(cc, stream, 1.0)
	assert.ErrorIs(t, err, core.ErrDegenerateCell)
}

func TestExtract_DeduplicatesInteriorFacesByID(t *testing.T) {
	// Generator 0 is the lower id: it must own the interior bisector face.
	origin := geom.Vec3{X: 0.25, Y: 0.5, Z: 0.5}
	gen := core.Generator{ID: 0, Loc: origin}
	cc := core.NewConvexCell(gen, geom.Vec3{}, geom.Vec3{X: 1, Y: 1, Z: 1}, core.Dimensionality3D)
	neighborLoc := geom.Vec3{X: 0.75, Y: 0.5, Z: 0.5}
	require.NoError(t, Build(cc, &fixedStream{items: []spatialindex.Neighbor{neighborOf(1, neighborLoc, origin)}}, 1.0))
	_, facesLow := Extract(cc)

	origin2 := neighborLoc
	gen2 := core.Generator{ID: 1, Loc: origin2}
	cc2 := core.NewConvexCell(gen2, geom.Vec3{}, geom.Vec3{X: 1, Y: 1, Z: 1}, core.Dimensionality3D)
	require.NoError(t, Build(cc2, &fixedStream{items: []spatialindex.Neighbor{neighborOf(0, origin, origin2)}}, 1.0))
	_, facesHigh := Extract(cc2)

	var lowInterior, highInterior int
	for _, f := range facesLow {
		if !f.IsWall() {
			lowInterior++
		}
	}
	for _, f := range facesHigh {
		if !f.IsWall() {
			highInterior++
		}
	}
	assert.Equal(t, 1, lowInterior, "lower id owns the shared face")
	assert.Equal(t, 0, highInterior, "higher id does not re-emit it")
}
