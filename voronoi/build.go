package voronoi

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/voro3d/cell"
	"github.com/katalvlaran/voro3d/core"
	"github.com/katalvlaran/voro3d/finalize"
	"github.com/katalvlaran/voro3d/geom"
	"github.com/katalvlaran/voro3d/integrate"
	"github.com/katalvlaran/voro3d/spatialindex"
)

// Build constructs the full tessellation of positions within the box
// [anchor, anchor+width], with the given dimensionality (1, 2, or 3) and
// periodicity. It returns core.ErrInvalidDimensionality if dim is outside
// {1,2,3}, checked before any cell is constructed.
func Build(positions []geom.Vec3, anchor, width geom.Vec3, dim int, periodic bool, opts ...Option) (*Voronoi, error) {
	return buildInternal(positions, nil, anchor, width, dim, periodic, opts...)
}

// BuildPartial is Build restricted to the generators for which mask[i] is
// true; the rest are recorded as default (zero-volume) cells but may still
// be referenced as the Right side of faces owned by constructed cells.
// len(mask) must equal len(positions).
func BuildPartial(positions []geom.Vec3, mask []bool, anchor, width geom.Vec3, dim int, periodic bool, opts ...Option) (*Voronoi, error) {
	return buildInternal(positions, mask, anchor, width, dim, periodic, opts...)
}

// cellResult is one generator's independently-constructed output, produced
// by a single worker goroutine with no shared mutable state.
type cellResult struct {
	voroCell core.VoronoiCell
	faces    []core.VoronoiFace
	scalar   [][]float64
	vector   [][]geom.Vec3
}

func buildInternal(positions []geom.Vec3, mask []bool, anchor, width geom.Vec3, dim int, periodic bool, opts ...Option) (*Voronoi, error) {
	parsedDim, err := core.ParseDimensionality(dim)
	if err != nil {
		return nil, err
	}
	anchor, width = parsedDim.NormalizeVolume(anchor, width)

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	generators := make([]core.Generator, len(positions))
	for i, p := range positions {
		generators[i] = core.NewGenerator(i, p, parsedDim)
	}

	idx, err := spatialindex.NewIndex(generators)
	if err != nil {
		return nil, err
	}

	clipAnchor, clipWidth := anchor, width
	if periodic {
		// Translated by -width and scaled by 3 along every active axis, so
		// that all relevant periodic images of every generator lie inside.
		// Inactive axes keep their unit-width slab.
		clipAnchor = anchor.Sub(width)
		clipWidth = width.Scale(3)
		if parsedDim < core.Dimensionality3D {
			clipAnchor.Z, clipWidth.Z = anchor.Z, width.Z
		}
		if parsedDim < core.Dimensionality2D {
			clipAnchor.Y, clipWidth.Y = anchor.Y, width.Y
		}
	}

	var cellOpts []cell.Option
	if cfg.toleranceFactor > 0 {
		cellOpts = append(cellOpts, cell.WithToleranceFactor(cfg.toleranceFactor))
	}

	results := make([]cellResult, len(generators))
	eg := new(errgroup.Group)
	eg.SetLimit(cfg.workers)
	for i, g := range generators {
		i, g := i, g
		if mask != nil && !mask[i] {
			results[i] = cellResult{voroCell: core.VoronoiCell{ID: g.ID, Generator: g.Loc}}
			continue
		}
		eg.Go(func() error {
			r, err := buildOneCell(idx, g, clipAnchor, clipWidth, width, parsedDim, periodic, cfg, cellOpts)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	cells := make([]core.VoronoiCell, len(results))
	var rawFaces []core.VoronoiFace
	var scalarRows [][]float64
	var vectorRows [][]geom.Vec3
	for i, r := range results {
		cells[i] = r.voroCell
		rawFaces = append(rawFaces, r.faces...)
		scalarRows = append(scalarRows, r.scalar...)
		vectorRows = append(vectorRows, r.vector...)
	}

	fin := finalize.Finalize(cells, rawFaces, scalarRows, vectorRows, parsedDim)
	return &Voronoi{
		anchor:      anchor,
		width:       width,
		dim:         parsedDim,
		cells:       fin.Cells,
		faces:       fin.Faces,
		connections: fin.CellFaceConnections,
		scalarIntgs: fin.ScalarFaceIntegrals,
		vectorIntgs: fin.VectorFaceIntegrals,
	}, nil
}

// buildOneCell runs the clipping kernel and extraction for a single
// generator, touching only its own ConvexCell and neighbour stream, so
// every generator's cell can be built independently and in parallel. A
// degenerate cell is recorded as a default VoronoiCell rather than
// propagated as an error.
func buildOneCell(
	idx *spatialindex.Index,
	g core.Generator,
	clipAnchor, clipWidth, trueWidth geom.Vec3,
	dim core.Dimensionality,
	periodic bool,
	cfg buildConfig,
	cellOpts []cell.Option,
) (cellResult, error) {
	cc := core.NewConvexCell(g, clipAnchor, clipWidth, dim)

	var stream spatialindex.Stream
	if periodic {
		stream = idx.Wrap(g.Loc, g.ID, trueWidth, dim)
	} else {
		stream = idx.Nearest(g.Loc, g.ID)
	}

	boxExtent := maxComponent(clipWidth)
	if err := cell.Build(cc, stream, boxExtent, cellOpts...); err != nil {
		if err == core.ErrDegenerateCell {
			return cellResult{voroCell: core.VoronoiCell{ID: g.ID, Generator: g.Loc}}, nil
		}
		return cellResult{}, err
	}

	voroCell, faces := cell.Extract(cc)
	scalar := make([][]float64, len(faces))
	vector := make([][]geom.Vec3, len(faces))
	for i, f := range faces {
		scalar[i] = integrate.Run(cfg.scalarFactories, f)
		vector[i] = integrate.RunVector(cfg.vectorFactories, f)
	}
	return cellResult{voroCell: voroCell, faces: faces, scalar: scalar, vector: vector}, nil
}

func maxComponent(v geom.Vec3) float64 {
	m := v.X
	if v.Y > m {
		m = v.Y
	}
	if v.Z > m {
		m = v.Z
	}
	return m
}
