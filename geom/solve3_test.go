package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/voro3d/geom"
)

// TestIntersect3_BoxCorner verifies that three axis-aligned planes (the
// three walls meeting at a unit-cube corner) intersect exactly at that
// corner.
func TestIntersect3_BoxCorner(t *testing.T) {
	px := geom.Plane{Normal: geom.Vec3{X: 1}, Offset: 1}
	py := geom.Plane{Normal: geom.Vec3{Y: 1}, Offset: 1}
	pz := geom.Plane{Normal: geom.Vec3{Z: 1}, Offset: 1}

	got, err := geom.Intersect3(px, py, pz)
	require.NoError(t, err)
	assert.InDelta(t, 1., got.X, 1e-12)
	assert.InDelta(t, 1., got.Y, 1e-12)
	assert.InDelta(t, 1., got.Z, 1e-12)
}

// TestIntersect3_Singular verifies that three planes sharing a common
// normal direction (parallel planes) are reported as singular rather than
// silently returning a garbage point.
func TestIntersect3_Singular(t *testing.T) {
	p1 := geom.Plane{Normal: geom.Vec3{X: 1}, Offset: 0}
	p2 := geom.Plane{Normal: geom.Vec3{X: 1}, Offset: 1}
	p3 := geom.Plane{Normal: geom.Vec3{Y: 1}, Offset: 0}

	_, err := geom.Intersect3(p1, p2, p3)
	assert.ErrorIs(t, err, geom.ErrSingular)
}

// TestBisector_Midpoint verifies that the bisector of two points passes
// through their midpoint and is oriented toward p (p's signed distance is
// negative/zero).
func TestBisector_Midpoint(t *testing.T) {
	p := geom.Vec3{X: 0, Y: 0, Z: 0}
	q := geom.Vec3{X: 2, Y: 0, Z: 0}

	h := geom.Bisector(p, q)
	mid := geom.Vec3{X: 1, Y: 0, Z: 0}

	assert.InDelta(t, 0., h.SignedDistance(mid), 1e-12)
	assert.Less(t, h.SignedDistance(p), 0.)
	assert.Greater(t, h.SignedDistance(q), 0.)
}
