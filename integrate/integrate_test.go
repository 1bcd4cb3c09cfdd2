package integrate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/voro3d/core"
	"github.com/katalvlaran/voro3d/geom"
)

func TestAreaFactory_ReportsFaceArea(t *testing.T) {
	face := core.VoronoiFace{Area: 2.5}
	got := AreaFactory().Consume(face)
	assert.Equal(t, 2.5, got)
}

func TestWeightedNormalFactory_ScalesNormalByArea(t *testing.T) {
	face := core.VoronoiFace{Area: 2, Normal: geom.Vec3{X: 1}}
	got := WeightedNormalFactory().Consume(face)
	assert.Equal(t, geom.Vec3{X: 2}, got)
}

func TestRun_InstantiatesOnePerFactory(t *testing.T) {
	face := core.VoronoiFace{Area: 3}
	calls := 0
	factory := func() ScalarFaceIntegrator {
		calls++
		return AreaFactory()
	}
	got := Run([]ScalarFactory{factory, factory}, face)
	assert.Equal(t, []float64{3, 3}, got)
	assert.Equal(t, 2, calls)
}

func TestRunVector_Empty(t *testing.T) {
	assert.Nil(t, RunVector(nil, core.VoronoiFace{}))
}
