package core

import "github.com/katalvlaran/voro3d/geom"

// Shift is an integer lattice offset (i,j,k) applied to a neighbour's
// position under periodic wrap. The zero Shift denotes a non-periodic or
// same-image relationship.
type Shift [3]int32

// IsZero reports whether s is the zero (non-periodic) shift.
func (s Shift) IsZero() bool {
	return s == Shift{}
}

// Negate returns the opposite lattice offset: the shift of a periodic face
// as seen from the neighbour's side is the negation of the owning side's.
func (s Shift) Negate() Shift {
	return Shift{-s[0], -s[1], -s[2]}
}

// Offset returns the real-space translation s represents given the
// simulation volume's width.
func (s Shift) Offset(width geom.Vec3) geom.Vec3 {
	return geom.Vec3{
		X: float64(s[0]) * width.X,
		Y: float64(s[1]) * width.Y,
		Z: float64(s[2]) * width.Z,
	}
}
