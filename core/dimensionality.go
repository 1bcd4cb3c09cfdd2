package core

import "github.com/katalvlaran/voro3d/geom"

// Dimensionality selects which axes of R3 are active for a tessellation.
// Inactive axes are collapsed to a conventional value so that volumes and
// areas computed in the active subspace remain numerically meaningful.
type Dimensionality int

const (
	// Dimensionality1D activates only the x axis; y and z are collapsed.
	Dimensionality1D Dimensionality = 1
	// Dimensionality2D activates x and y; z is collapsed.
	Dimensionality2D Dimensionality = 2
	// Dimensionality3D activates all three axes.
	Dimensionality3D Dimensionality = 3
)

// ParseDimensionality validates a raw integer dimensionality, returning
// ErrInvalidDimensionality for anything outside {1,2,3}.
func ParseDimensionality(dim int) (Dimensionality, error) {
	switch dim {
	case 1:
		return Dimensionality1D, nil
	case 2:
		return Dimensionality2D, nil
	case 3:
		return Dimensionality3D, nil
	default:
		return 0, ErrInvalidDimensionality
	}
}

// String implements fmt.Stringer for diagnostics.
func (d Dimensionality) String() string {
	switch d {
	case Dimensionality1D:
		return "1D"
	case Dimensionality2D:
		return "2D"
	case Dimensionality3D:
		return "3D"
	default:
		return "invalid"
	}
}

// Canonicalize zeroes out the components of p that are inactive for d, per
// the unit-width-slab convention ([-0.5, +0.5] on every inactive axis
// collapses to exactly 0).
func (d Dimensionality) Canonicalize(p geom.Vec3) geom.Vec3 {
	switch d {
	case Dimensionality1D:
		return geom.Vec3{X: p.X}
	case Dimensionality2D:
		return geom.Vec3{X: p.X, Y: p.Y}
	default:
		return p
	}
}

// NormalizeVolume adjusts anchor/width so that inactive axes span exactly
// the conventional [-0.5, +0.5] slab before any generator or simulation
// volume is built.
func (d Dimensionality) NormalizeVolume(anchor, width geom.Vec3) (geom.Vec3, geom.Vec3) {
	if d == Dimensionality1D {
		anchor.Y, width.Y = -0.5, 1
	}
	if d == Dimensionality1D || d == Dimensionality2D {
		anchor.Z, width.Z = -0.5, 1
	}
	return anchor, width
}
