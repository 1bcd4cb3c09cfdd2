package integrate

import (
	"github.com/katalvlaran/voro3d/core"
	"github.com/katalvlaran/voro3d/geom"
)

// ScalarFaceIntegrator consumes one face's geometry and contributes a
// single float64 to that face's entry in the tessellation's scalar face
// integrals.
type ScalarFaceIntegrator interface {
	Consume(face core.VoronoiFace) float64
}

// VectorFaceIntegrator consumes one face's geometry and contributes a
// single geom.Vec3 to that face's entry in the vector face integrals.
type VectorFaceIntegrator interface {
	Consume(face core.VoronoiFace) geom.Vec3
}

// ScalarFactory produces one fresh ScalarFaceIntegrator per face, so a
// stateful integrator never needs to be thread-safe: each face gets its
// own instance.
type ScalarFactory func() ScalarFaceIntegrator

// VectorFactory produces one fresh VectorFaceIntegrator per face.
type VectorFactory func() VectorFaceIntegrator

// ScalarFuncIntegrator adapts a plain function into a ScalarFaceIntegrator,
// for callers whose accumulator carries no state beyond the face itself.
type ScalarFuncIntegrator func(face core.VoronoiFace) float64

// Consume implements ScalarFaceIntegrator.
func (f ScalarFuncIntegrator) Consume(face core.VoronoiFace) float64 { return f(face) }

// VectorFuncIntegrator adapts a plain function into a VectorFaceIntegrator.
type VectorFuncIntegrator func(face core.VoronoiFace) geom.Vec3

// Consume implements VectorFaceIntegrator.
func (f VectorFuncIntegrator) Consume(face core.VoronoiFace) geom.Vec3 { return f(face) }

// AreaFactory builds the trivial scalar integrator that reports each
// face's own area, useful as a smoke-test integrator and as a building
// block for flux computations that weight a per-face quantity by area.
func AreaFactory() ScalarFaceIntegrator {
	return ScalarFuncIntegrator(func(face core.VoronoiFace) float64 { return face.Area })
}

// WeightedNormalFactory builds the vector integrator that reports each
// face's outward normal scaled by its area — the discrete surface element
// `area * normal` used by divergence-theorem-style flux accumulations.
func WeightedNormalFactory() VectorFaceIntegrator {
	return VectorFuncIntegrator(func(face core.VoronoiFace) geom.Vec3 { return face.Normal.Scale(face.Area) })
}

// Run applies factories to face, instantiating one fresh integrator per
// factory, and returns the resulting values in factory order.
func Run(factories []ScalarFactory, face core.VoronoiFace) []float64 {
	if len(factories) == 0 {
		return nil
	}
	out := make([]float64, len(factories))
	for i, factory := range factories {
		out[i] = factory().Consume(face)
	}
	return out
}

// RunVector applies vector factories to face, instantiating one fresh
// integrator per factory, and returns the resulting values in factory
// order.
func RunVector(factories []VectorFactory, face core.VoronoiFace) []geom.Vec3 {
	if len(factories) == 0 {
		return nil
	}
	out := make([]geom.Vec3, len(factories))
	for i, factory := range factories {
		out[i] = factory().Consume(face)
	}
	return out
}
