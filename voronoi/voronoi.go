package voronoi

import (
	"github.com/katalvlaran/voro3d/core"
	"github.com/katalvlaran/voro3d/geom"
)

// Voronoi is the finished tessellation. Once returned by Build or
// BuildPartial, the only method that mutates it is TakeFaces; without
// TakeFaces calls it is safe for unsynchronized concurrent reads.
type Voronoi struct {
	anchor, width geom.Vec3
	dim           core.Dimensionality
	cells         []core.VoronoiCell
	faces         []core.VoronoiFace
	connections   []int
	scalarIntgs   [][]float64
	vectorIntgs   [][]geom.Vec3
}

// Anchor returns the simulation volume's anchor corner.
func (v *Voronoi) Anchor() geom.Vec3 { return v.anchor }

// Width returns the simulation volume's extent along each axis.
func (v *Voronoi) Width() geom.Vec3 { return v.width }

// Dimensionality returns the active dimensionality of the tessellation.
func (v *Voronoi) Dimensionality() core.Dimensionality { return v.dim }

// Cells returns the tessellation's cells, indexed by generator id.
func (v *Voronoi) Cells() []core.VoronoiCell { return v.cells }

// Faces returns the tessellation's faces, in finalize's concatenation
// order. Indices into this slice are what VoronoiCell.FaceConnectionsOffset
// and CellFaceConnections reference.
func (v *Voronoi) Faces() []core.VoronoiFace { return v.faces }

// CellFaceConnections returns the flattened cell->faces adjacency table:
// for cell i, its face indices occupy
// CellFaceConnections[cells[i].FaceConnectionsOffset:][:cells[i].FaceCount].
func (v *Voronoi) CellFaceConnections() []int { return v.connections }

// ScalarFaceIntegrals returns, per registered scalar factory (in
// registration order), one value per face in Faces() order.
func (v *Voronoi) ScalarFaceIntegrals() [][]float64 { return v.scalarIntgs }

// VectorFaceIntegrals returns, per registered vector factory, one value
// per face in Faces() order.
func (v *Voronoi) VectorFaceIntegrals() [][]geom.Vec3 { return v.vectorIntgs }

// CellFaces returns the slice of faces belonging to cells()[cellID],
// following FaceConnectionsOffset/FaceCount through CellFaceConnections.
func (v *Voronoi) CellFaces(cellID int) []core.VoronoiFace {
	c := v.cells[cellID]
	idxs := v.connections[c.FaceConnectionsOffset : c.FaceConnectionsOffset+c.FaceCount]
	out := make([]core.VoronoiFace, len(idxs))
	for i, fi := range idxs {
		out[i] = v.faces[fi]
	}
	return out
}

// TakeFaces returns v's faces, transferring ownership to the caller, and
// clears v's own face slice: afterwards Faces returns nil and CellFaces
// can no longer resolve face indices.
func (v *Voronoi) TakeFaces() []core.VoronoiFace {
	out := v.faces
	v.faces = nil
	return out
}
