package storage

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ctessum/cdf"

	"github.com/katalvlaran/voro3d/geom"
	"github.com/katalvlaran/voro3d/voronoi"
)

func TestExport_RoundTripsCellVolume(t *testing.T) {
	anchor, width := geom.Vec3{}, geom.Vec3{X: 1, Y: 1, Z: 1}
	v, err := voronoi.Build([]geom.Vec3{{X: 0.5, Y: 0.5, Z: 0.5}}, anchor, width, 3, false)
	require.NoError(t, err)

	f, err := os.CreateTemp(t.TempDir(), "voro3d-*.nc")
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, Export(v, f))

	rf, err := cdf.Open(f)
	require.NoError(t, err)
	r := rf.Reader("Cells_Volume", nil, nil)
	got := make([]float64, 1)
	_, err = r.Read(got)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got[0], 1e-9)
}

func TestFlattenVec3_OrdersComponents(t *testing.T) {
	out := flattenVec3([]geom.Vec3{{X: 1, Y: 2, Z: 3}, {X: 4, Y: 5, Z: 6}})
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, out)
}
