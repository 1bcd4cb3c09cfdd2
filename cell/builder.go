package cell

import (
	"github.com/katalvlaran/voro3d/core"
	"github.com/katalvlaran/voro3d/geom"
	"github.com/katalvlaran/voro3d/spatialindex"
)

// Build runs the clipping loop against cc, drawing neighbours from stream
// in increasing distance, until the safety criterion proves no further
// neighbour can shrink the cell.
//
// boxExtent is the characteristic size of the clipping box (the maximum
// of its width components); it scales the "on-plane" tolerance used to
// classify vertices. Build returns core.ErrDegenerateCell if a clip ever
// drives every vertex of cc outside the new half-space; cc is left in its
// last well-defined state when that happens, and the caller is expected
// to record the cell as a default (zero) VoronoiCell rather than treat
// this as a fatal error.
func Build(cc *core.ConvexCell, stream spatialindex.Stream, boxExtent float64, opts ...Option) error {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	tol := cfg.toleranceFactor * boxExtent

	for {
		nb, ok := stream.Next()
		if !ok {
			break
		}
		// A neighbour at distance² >= (2*r_safe)² cannot contribute a
		// bisector that clips any current vertex, because the bisector
		// sits at half that distance from the generator — beyond r_safe.
		threshold := 2 * cc.RSafe
		if nb.Dist2 >= threshold*threshold {
			break
		}

		h := core.HalfSpace{
			Plane:    geom.Bisector(cc.Generator.Loc, nb.Generator.Loc),
			Neighbor: nb.Generator.ID,
			Shift:    nb.Shift,
		}

		changed, err := clip(cc, h, tol)
		if err != nil {
			return err
		}
		if changed {
			cc.RSafe = cc.RecomputeRSafe()
		}
	}
	return nil
}

// outside classifies a vertex against a candidate half-space: true means
// strictly beyond tolerance; "on" vertices are folded into the inside
// group.
func outside(v core.Vertex, h core.HalfSpace, tol float64) bool {
	return h.Plane.SignedDistance(v.Point) > tol
}

// clip applies candidate half-space h to cc: classify every vertex,
// discard those outside, and synthesize a new vertex on every edge that
// crosses h. It reports changed=false when h is redundant (no vertex
// outside) and leaves cc untouched, and returns core.ErrDegenerateCell
// when every vertex is outside (full collapse).
func clip(cc *core.ConvexCell, h core.HalfSpace, tol float64) (changed bool, err error) {
	n := len(cc.Vertices)
	out := make([]bool, n)
	anyOut, anyIn := false, false
	for i, v := range cc.Vertices {
		out[i] = outside(v, h, tol)
		if out[i] {
			anyOut = true
		} else {
			anyIn = true
		}
	}

	if !anyOut {
		return false, nil // h is redundant; discard
	}
	if !anyIn {
		return false, core.ErrDegenerateCell
	}

	k := len(cc.Planes) // index the new plane will occupy

	kept := make([]core.Vertex, 0, n)
	for i, v := range cc.Vertices {
		if !out[i] {
			kept = append(kept, v)
		}
	}

	// Generate one new vertex per edge that crosses h: a pair of old
	// vertices sharing two generating planes, with one inside/on and the
	// other outside. Edges are derived from shared plane-pairs, never
	// stored explicitly — see core.Vertex.SharesEdgeWith.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if out[i] == out[j] {
				continue
			}
			shared, ok := cc.Vertices[i].SharesEdgeWith(cc.Vertices[j])
			if !ok {
				continue
			}
			pt, serr := geom.Intersect3(cc.Planes[shared[0]].Plane, cc.Planes[shared[1]].Plane, h.Plane)
			if serr != nil {
				continue // near-degenerate triple; skip rather than fabricate a vertex
			}
			kept = append(kept, core.Vertex{Planes: [3]int{shared[0], shared[1], k}, Point: pt})
		}
	}

	cc.Planes = append(cc.Planes, h)
	cc.Vertices = kept
	return true, nil
}
