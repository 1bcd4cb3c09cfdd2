package cell

import (
	"math"
	"sort"

	"github.com/katalvlaran/voro3d/core"
	"github.com/katalvlaran/voro3d/geom"
)

// minFaceVertices is the smallest number of vertices a plane must carry to
// bound a real face rather than a spurious, already-clipped-away corner.
const minFaceVertices = 3

// faceGeom is one plane's finished geometry: its outward normal (shared
// with the owning half-space), ordered boundary vertices, signed area, and
// centroid.
type faceGeom struct {
	planeIdx int
	normal   geom.Vec3
	ordered  []geom.Vec3
	area     float64
	centroid geom.Vec3
}

// Extract converts the finished ConvexCell cc into its output VoronoiCell
// and the VoronoiFaces it owns. A face is emitted by cc only when it is a
// box wall, when the neighbour is an interior (shift=0) image and cc's id
// is the lower of the two, or when the shift is non-zero (periodic faces
// are emitted from both sides).
func Extract(cc *core.ConvexCell) (core.VoronoiCell, []core.VoronoiFace) {
	planeVerts := collectPlaneVertices(cc)

	var faces []faceGeom
	for planeIdx, pts := range planeVerts {
		if len(pts) < minFaceVertices {
			continue
		}
		fg := buildFaceGeom(planeIdx, cc.Planes[planeIdx].Plane.Normal, pts)
		faces = append(faces, fg)
	}
	// Deterministic ordering before volume accumulation and emission, so
	// that rebuilding with the same input is bit-for-bit reproducible.
	sort.Slice(faces, func(i, j int) bool { return faces[i].planeIdx < faces[j].planeIdx })

	volume, centroid := accumulateVolume(cc.Generator.Loc, faces)

	voroCell := core.VoronoiCell{
		ID:        cc.Generator.ID,
		Generator: cc.Generator.Loc,
		Volume:    volume,
		Centroid:  centroid,
	}

	out := make([]core.VoronoiFace, 0, len(faces))
	for _, fg := range faces {
		h := cc.Planes[fg.planeIdx]
		if !shouldEmit(cc.Generator.ID, h) {
			continue
		}
		right := h.Neighbor
		out = append(out, core.VoronoiFace{
			Area:     fg.area,
			Centroid: fg.centroid,
			Normal:   fg.normal,
			Left:     cc.Generator.ID,
			Right:    right,
			HasShift: !h.Shift.IsZero(),
			Shift:    h.Shift,
		})
	}
	return voroCell, out
}

// shouldEmit applies the interior-face de-duplication policy: emit once
// per shared plane, from whichever side the rule below picks.
func shouldEmit(ownerID int, h core.HalfSpace) bool {
	if h.IsWall() {
		return true
	}
	if !h.Shift.IsZero() {
		return true
	}
	return ownerID < h.Neighbor
}

func collectPlaneVertices(cc *core.ConvexCell) map[int][]geom.Vec3 {
	out := make(map[int][]geom.Vec3, len(cc.Planes))
	for _, v := range cc.Vertices {
		for _, p := range v.Planes {
			out[p] = append(out[p], v.Point)
		}
	}
	return out
}

// buildFaceGeom orders pts cyclically around normal and computes the
// polygon's signed area and centroid by fan triangulation from their
// average point.
func buildFaceGeom(planeIdx int, normal geom.Vec3, pts []geom.Vec3) faceGeom {
	avg := geom.Vec3{}
	for _, p := range pts {
		avg = avg.Add(p)
	}
	avg = avg.Scale(1 / float64(len(pts)))

	u, v := orthonormalBasis(normal)
	type angled struct {
		pt    geom.Vec3
		angle float64
	}
	as := make([]angled, len(pts))
	for i, p := range pts {
		d := p.Sub(avg)
		as[i] = angled{pt: p, angle: math.Atan2(v.Dot(d), u.Dot(d))}
	}
	sort.Slice(as, func(i, j int) bool { return as[i].angle < as[j].angle })

	ordered := make([]geom.Vec3, len(as))
	for i, a := range as {
		ordered[i] = a.pt
	}

	area := 0.
	centroid := geom.Vec3{}
	m := len(ordered)
	for i := 0; i < m; i++ {
		a := ordered[i]
		b := ordered[(i+1)%m]
		triArea := a.Sub(avg).Cross(b.Sub(avg)).Scale(0.5).Dot(normal)
		triCentroid := avg.Add(a).Add(b).Scale(1.0 / 3.0)
		area += triArea
		centroid = centroid.Add(triCentroid.Scale(triArea))
	}
	if area != 0 {
		centroid = centroid.Scale(1 / area)
	} else {
		centroid = avg
	}

	return faceGeom{planeIdx: planeIdx, normal: normal, ordered: ordered, area: area, centroid: centroid}
}

// orthonormalBasis returns two unit vectors u,v such that (u,v,n) is a
// right-handed orthonormal basis, used to project face vertices into 2D
// for angular sorting.
func orthonormalBasis(n geom.Vec3) (u, v geom.Vec3) {
	ref := geom.Vec3{X: 1}
	if math.Abs(n.X) > 0.9 {
		ref = geom.Vec3{Y: 1}
	}
	u = n.Cross(ref).Normalized()
	v = n.Cross(u)
	return u, v
}

// accumulateVolume computes cell volume and centroid by tetrahedral
// decomposition: for each face, fan-triangulate around the face centroid,
// and for each triangle form a tetrahedron with apex at the generator;
// sum signed volumes and volume-weighted tetrahedron centroids.
func accumulateVolume(apex geom.Vec3, faces []faceGeom) (volume float64, centroid geom.Vec3) {
	var volSum float64
	var centSum geom.Vec3
	for _, f := range faces {
		m := len(f.ordered)
		for i := 0; i < m; i++ {
			a := f.ordered[i]
			b := f.ordered[(i+1)%m]
			tetVol := a.Sub(apex).Cross(b.Sub(apex)).Dot(f.centroid.Sub(apex)) / 6
			tetCentroid := apex.Add(f.centroid).Add(a).Add(b).Scale(0.25)
			volSum += tetVol
			centSum = centSum.Add(tetCentroid.Scale(tetVol))
		}
	}
	if volSum == 0 {
		return 0, apex
	}
	return math.Abs(volSum), centSum.Scale(1 / volSum)
}
