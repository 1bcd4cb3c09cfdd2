package finalize

import (
	"github.com/katalvlaran/voro3d/core"
	"github.com/katalvlaran/voro3d/geom"
)

// dimensionalityTolerance bounds how far a face's normal may stray from the
// active plane/axis before HasValidDimensionality rejects it.
const dimensionalityTolerance = 1e-9

// Result is the finalized, immutable tessellation output.
type Result struct {
	Cells               []core.VoronoiCell
	Faces               []core.VoronoiFace
	CellFaceConnections []int
	ScalarFaceIntegrals [][]float64 // [factory][face], parallel to Faces
	VectorFaceIntegrals [][]geom.Vec3
}

// Finalize concatenates the independently-built per-cell outputs into the
// tessellation-wide result. rawFaces and the per-face integral rows
// (perFaceScalar[i]/perFaceVector[i] hold the values for rawFaces[i], one
// per registered factory, in factory order) must be index-aligned with
// each other; cells must already carry their final Volume/Centroid but not
// yet FaceConnectionsOffset/FaceCount, which Finalize computes.
func Finalize(
	cells []core.VoronoiCell,
	rawFaces []core.VoronoiFace,
	perFaceScalar [][]float64,
	perFaceVector [][]geom.Vec3,
	dim core.Dimensionality,
) Result {
	keep := make([]bool, len(rawFaces))
	var nKept int
	for i, f := range rawFaces {
		keep[i] = f.HasValidDimensionality(dim, dimensionalityTolerance)
		if keep[i] {
			nKept++
		}
	}

	faces := make([]core.VoronoiFace, 0, nKept)
	scalarRows := make([][]float64, 0, nKept)
	vectorRows := make([][]geom.Vec3, 0, nKept)
	for i, f := range rawFaces {
		if !keep[i] {
			continue
		}
		faces = append(faces, f)
		if perFaceScalar != nil {
			scalarRows = append(scalarRows, perFaceScalar[i])
		}
		if perFaceVector != nil {
			vectorRows = append(vectorRows, perFaceVector[i])
		}
	}

	perCell := make([][]int, len(cells))
	for i, f := range faces {
		perCell[f.Left] = append(perCell[f.Left], i)
		if !f.IsWall() && !f.HasShift {
			perCell[f.Right] = append(perCell[f.Right], i)
		}
	}

	outCells := make([]core.VoronoiCell, len(cells))
	copy(outCells, cells)
	connections := make([]int, 0, len(faces)*2)
	offset := 0
	for i := range outCells {
		outCells[i].FaceConnectionsOffset = offset
		outCells[i].FaceCount = len(perCell[i])
		connections = append(connections, perCell[i]...)
		offset += len(perCell[i])
	}

	return Result{
		Cells:               outCells,
		Faces:               faces,
		CellFaceConnections: connections,
		ScalarFaceIntegrals: transposeScalar(scalarRows),
		VectorFaceIntegrals: transposeVector(vectorRows),
	}
}

// transposeScalar turns rows[face][factory] into columns[factory][face].
func transposeScalar(rows [][]float64) [][]float64 {
	if len(rows) == 0 {
		return nil
	}
	n := len(rows[0])
	if n == 0 {
		return nil
	}
	out := make([][]float64, n)
	for j := 0; j < n; j++ {
		out[j] = make([]float64, len(rows))
		for i, row := range rows {
			out[j][i] = row[j]
		}
	}
	return out
}

// transposeVector turns rows[face][factory] into columns[factory][face].
func transposeVector(rows [][]geom.Vec3) [][]geom.Vec3 {
	if len(rows) == 0 {
		return nil
	}
	n := len(rows[0])
	if n == 0 {
		return nil
	}
	out := make([][]geom.Vec3, n)
	for j := 0; j < n; j++ {
		out[j] = make([]geom.Vec3, len(rows))
		for i, row := range rows {
			out[j][i] = row[j]
		}
	}
	return out
}
