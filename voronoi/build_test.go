package voronoi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/voro3d/geom"
	"github.com/katalvlaran/voro3d/integrate"
)

func unitBox() (geom.Vec3, geom.Vec3) {
	return geom.Vec3{}, geom.Vec3{X: 1, Y: 1, Z: 1}
}

func TestBuild_SingleGenerator_FillsUnitCube(t *testing.T) {
	anchor, width := unitBox()
	v, err := Build([]geom.Vec3{{X: 0.5, Y: 0.5, Z: 0.5}}, anchor, width, 3, false)
	require.NoError(t, err)
	require.Len(t, v.Cells(), 1)
	assert.InDelta(t, 1.0, v.Cells()[0].Volume, 1e-9)
	assert.Len(t, v.Faces(), 6)
}

func TestBuild_TwoGenerators_VolumeConservation(t *testing.T) {
	anchor, width := unitBox()
	positions := []geom.Vec3{{X: 0.25, Y: 0.5, Z: 0.5}, {X: 0.75, Y: 0.5, Z: 0.5}}
	v, err := Build(positions, anchor, width, 3, false)
	require.NoError(t, err)

	var total float64
	for _, c := range v.Cells() {
		total += c.Volume
	}
	assert.InDelta(t, 1.0, total, 1e-9)
}

func TestBuild_FourGenerators_Periodic2D(t *testing.T) {
	anchor, width := unitBox()
	positions := []geom.Vec3{
		{X: 0.25, Y: 0.25}, {X: 0.75, Y: 0.25},
		{X: 0.25, Y: 0.75}, {X: 0.75, Y: 0.75},
	}
	v, err := Build(positions, anchor, width, 2, true)
	require.NoError(t, err)

	var total float64
	for _, c := range v.Cells() {
		total += c.Volume
	}
	assert.InDelta(t, 1.0, total, 1e-6)
}

func TestBuildPartial_MaskedCellsAreZeroValueButReferenced(t *testing.T) {
	anchor, width := unitBox()
	positions := []geom.Vec3{{X: 0.25, Y: 0.5, Z: 0.5}, {X: 0.75, Y: 0.5, Z: 0.5}}
	mask := []bool{true, false}

	v, err := BuildPartial(positions, mask, anchor, width, 3, false)
	require.NoError(t, err)
	assert.Zero(t, v.Cells()[1].Volume)
	assert.Equal(t, 1, v.Cells()[1].ID)

	var sawNeighborOne bool
	for _, f := range v.CellFaces(0) {
		if !f.IsWall() && f.Right == 1 {
			sawNeighborOne = true
		}
	}
	assert.True(t, sawNeighborOne, "constructed cell still references the masked neighbour")
}

func TestBuild_InvalidDimensionality(t *testing.T) {
	anchor, width := unitBox()
	_, err := Build([]geom.Vec3{{X: 0.5, Y: 0.5, Z: 0.5}}, anchor, width, 4, false)
	assert.Error(t, err)
}

func TestBuild_SequentialFallbackMatchesParallel(t *testing.T) {
	anchor, width := unitBox()
	positions := []geom.Vec3{
		{X: 0.2, Y: 0.2, Z: 0.2}, {X: 0.8, Y: 0.2, Z: 0.2},
		{X: 0.2, Y: 0.8, Z: 0.2}, {X: 0.8, Y: 0.8, Z: 0.8},
	}
	vSeq, err := Build(positions, anchor, width, 3, false, WithWorkers(1))
	require.NoError(t, err)
	vPar, err := Build(positions, anchor, width, 3, false)
	require.NoError(t, err)

	require.Equal(t, len(vSeq.Cells()), len(vPar.Cells()))
	for i := range vSeq.Cells() {
		assert.InDelta(t, vSeq.Cells()[i].Volume, vPar.Cells()[i].Volume, 1e-9)
	}
}

func TestBuild_WithScalarIntegrator(t *testing.T) {
	anchor, width := unitBox()
	v, err := Build([]geom.Vec3{{X: 0.5, Y: 0.5, Z: 0.5}}, anchor, width, 3, false,
		WithScalarIntegrators(integrate.AreaFactory))
	require.NoError(t, err)
	require.Len(t, v.ScalarFaceIntegrals(), 1)
	assert.Len(t, v.ScalarFaceIntegrals()[0], len(v.Faces()))
	for i, area := range v.ScalarFaceIntegrals()[0] {
		assert.Equal(t, v.Faces()[i].Area, area)
	}
}
