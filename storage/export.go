package storage

import (
	"errors"
	"fmt"
	"os"

	"github.com/ctessum/cdf"

	"github.com/katalvlaran/voro3d/core"
	"github.com/katalvlaran/voro3d/geom"
	"github.com/katalvlaran/voro3d/voronoi"
)

// ErrStorageFailure wraps any failure encountered while writing the cdf
// container: a malformed header, a short write, a closed file. The
// returned error wraps ErrStorageFailure only; the underlying cdf/os
// error appears in its message text but is not reachable through
// errors.Unwrap, errors.Is or errors.As.
var ErrStorageFailure = errors.New("storage: export failed")

const (
	dimCells       = "Cells"
	dimFaces       = "Faces"
	dimConnections = "Connections"
	dimVec3        = "Vec3"
)

// Export writes v's cells, faces and cell-face connections to w as a
// netCDF-3 container. Face integrals are not written. w must support
// random-access writes, since record variables are filled after the
// header is defined; *os.File is the common case.
func Export(v *voronoi.Voronoi, w *os.File) error {
	cells := v.Cells()
	faces := v.Faces()
	conns := v.CellFaceConnections()

	h := cdf.NewHeader(
		[]string{dimCells, dimFaces, dimConnections, dimVec3},
		[]int{len(cells), len(faces), len(conns), 3},
	)
	h.AddAttribute("", "dimensionality", []int32{int32(v.Dimensionality())})
	h.AddAttribute("", "anchor", vec3ToFloats(v.Anchor()))
	h.AddAttribute("", "width", vec3ToFloats(v.Width()))

	h.AddVariable("Cells_Volume", []string{dimCells}, []float64{0})
	h.AddVariable("Cells_FaceConnectionsOffset", []string{dimCells}, []int32{0})
	h.AddVariable("Cells_FaceCount", []string{dimCells}, []int32{0})
	h.AddVariable("Cells_Centroid", []string{dimCells, dimVec3}, []float64{0})
	h.AddVariable("Cells_Generator", []string{dimCells, dimVec3}, []float64{0})

	h.AddVariable("Faces_Area", []string{dimFaces}, []float64{0})
	h.AddVariable("Faces_Centroid", []string{dimFaces, dimVec3}, []float64{0})
	h.AddVariable("Faces_Normal", []string{dimFaces, dimVec3}, []float64{0})
	twoD := v.Dimensionality() == core.Dimensionality2D
	if twoD {
		h.AddVariable("Faces_Start", []string{dimFaces, dimVec3}, []float64{0})
		h.AddVariable("Faces_End", []string{dimFaces, dimVec3}, []float64{0})
	}

	h.AddVariable("CellFaceConnections", []string{dimConnections}, []int32{0})

	h.Define()

	f, err := cdf.Create(w, h)
	if err != nil {
		return fmt.Errorf("%w: creating header: %v", ErrStorageFailure, err)
	}

	if err := writeCells(f, cells); err != nil {
		return err
	}
	if err := writeFaces(f, faces, twoD); err != nil {
		return err
	}
	if err := writeInt32s(f, "CellFaceConnections", toInt32s(conns)); err != nil {
		return err
	}

	if err := cdf.UpdateNumRecs(w); err != nil {
		return fmt.Errorf("%w: updating record count: %v", ErrStorageFailure, err)
	}
	return nil
}

func writeCells(f *cdf.File, cells []core.VoronoiCell) error {
	volume := make([]float64, len(cells))
	offset := make([]int32, len(cells))
	count := make([]int32, len(cells))
	centroid := make([]geom.Vec3, len(cells))
	generator := make([]geom.Vec3, len(cells))
	for i, c := range cells {
		volume[i] = c.Volume
		offset[i] = int32(c.FaceConnectionsOffset)
		count[i] = int32(c.FaceCount)
		centroid[i] = c.Centroid
		generator[i] = c.Generator
	}

	if err := writeFloat64s(f, "Cells_Volume", volume); err != nil {
		return err
	}
	if err := writeInt32s(f, "Cells_FaceConnectionsOffset", offset); err != nil {
		return err
	}
	if err := writeInt32s(f, "Cells_FaceCount", count); err != nil {
		return err
	}
	if err := writeFloat64s(f, "Cells_Centroid", flattenVec3(centroid)); err != nil {
		return err
	}
	return writeFloat64s(f, "Cells_Generator", flattenVec3(generator))
}

func writeFaces(f *cdf.File, faces []core.VoronoiFace, twoD bool) error {
	area := make([]float64, len(faces))
	centroid := make([]geom.Vec3, len(faces))
	normal := make([]geom.Vec3, len(faces))
	for i, face := range faces {
		area[i] = face.Area
		centroid[i] = face.Centroid
		normal[i] = face.Normal
	}

	if err := writeFloat64s(f, "Faces_Area", area); err != nil {
		return err
	}
	if err := writeFloat64s(f, "Faces_Centroid", flattenVec3(centroid)); err != nil {
		return err
	}
	if err := writeFloat64s(f, "Faces_Normal", flattenVec3(normal)); err != nil {
		return err
	}
	if !twoD {
		return nil
	}

	// 2D mode: faces are segments. direction = area * (normal x z-hat);
	// Start/End are the segment endpoints either side of the centroid.
	start := make([]geom.Vec3, len(faces))
	end := make([]geom.Vec3, len(faces))
	zHat := geom.Vec3{Z: 1}
	for i, face := range faces {
		direction := face.Normal.Cross(zHat).Scale(face.Area)
		start[i] = face.Centroid.Sub(direction.Scale(0.5))
		end[i] = face.Centroid.Add(direction.Scale(0.5))
	}
	if err := writeFloat64s(f, "Faces_Start", flattenVec3(start)); err != nil {
		return err
	}
	return writeFloat64s(f, "Faces_End", flattenVec3(end))
}

func writeFloat64s(f *cdf.File, name string, data []float64) error {
	end := f.Header.Lengths(name)
	start := make([]int, len(end))
	w := f.Writer(name, start, end)
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrStorageFailure, name, err)
	}
	return nil
}

func writeInt32s(f *cdf.File, name string, data []int32) error {
	end := f.Header.Lengths(name)
	start := make([]int, len(end))
	w := f.Writer(name, start, end)
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrStorageFailure, name, err)
	}
	return nil
}

func flattenVec3(vs []geom.Vec3) []float64 {
	out := make([]float64, 0, len(vs)*3)
	for _, v := range vs {
		out = append(out, v.X, v.Y, v.Z)
	}
	return out
}

func vec3ToFloats(v geom.Vec3) []float64 {
	return []float64{v.X, v.Y, v.Z}
}

func toInt32s(xs []int) []int32 {
	out := make([]int32, len(xs))
	for i, x := range xs {
		out[i] = int32(x)
	}
	return out
}
