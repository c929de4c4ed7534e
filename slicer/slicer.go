// Package slicer cuts scalar volumes with a plane and returns the cross
// section as colored triangles.
package slicer

import (
	"errors"
	"fmt"
	"time"

	"github.com/notargets/govis/colormap"
	"github.com/notargets/govis/plane"
	"github.com/notargets/govis/topology"
	"github.com/notargets/govis/utils"
	"github.com/notargets/govis/volume"
)

var (
	ErrNotScalar           = errors.New("volume field is not scalar")
	ErrUnsupportedCellType = errors.New("cell type cannot be sliced")
)

type Slicer struct {
	plane          plane.Plane
	parallelDegree int
}

type Option func(s *Slicer)

// WithParallelDegree splits the cells into n buckets processed
// concurrently. n < 1 picks one bucket per CPU.
func WithParallelDegree(n int) Option {
	return func(s *Slicer) { s.parallelDegree = n }
}

func New(p plane.Plane, opts ...Option) (s *Slicer) {
	s = &Slicer{plane: p, parallelDegree: 1}
	for _, opt := range opts {
		opt(s)
	}
	return
}

func (s *Slicer) Plane() plane.Plane { return s.plane }

// Extract is New(p).Extract(vol, cmap).
func Extract(vol volume.Volume, p plane.Plane, cmap *colormap.ColorMap) (*PolygonBuffers, error) {
	return New(p).Extract(vol, cmap)
}

// Extract cuts every cell of vol and returns the triangles in cell order.
// When cmap has no value range, colors are looked up over the range of the
// volume's storage type for 8 bit data and over the data range otherwise;
// cmap itself is left unchanged.
func (s *Slicer) Extract(vol volume.Volume, cmap *colormap.ColorMap) (pb *PolygonBuffers, err error) {
	switch {
	case vol == nil:
		return nil, fmt.Errorf("nil volume")
	case cmap == nil:
		return nil, fmt.Errorf("nil color map")
	case vol.VecLen() != 1:
		return nil, fmt.Errorf("%w: %d components per node", ErrNotScalar, vol.VecLen())
	}
	var src cellSource
	if src, err = newCellSource(vol); err != nil {
		return
	}
	cut := cutter{plane: s.plane, cmap: withRange(cmap, vol), src: src}

	var (
		start  = time.Now()
		ncells = vol.NumberOfCells()
		np     = s.parallelDegree
	)
	if np < 1 {
		np = utils.DefaultParallelDegree(ncells)
	}
	pm := utils.NewPartitionMap(np, ncells)
	parts := make([]PolygonBuffers, pm.ParallelDegree)
	pm.Run(func(bn, kMin, kMax int) {
		var c corners
		for k := kMin; k < kMax; k++ {
			src.load(k, &c)
			cut.cell(&c, &parts[bn])
		}
	})
	pb = &PolygonBuffers{}
	for i := range parts {
		pb.appendBuffers(&parts[i])
	}
	utils.Logger().Debug("sliced volume",
		"plane", s.plane.String(), "topology", src.topology().String(),
		"cells", ncells, "triangles", pb.NumberOfTriangles(),
		"buckets", pm.ParallelDegree, "elapsed", time.Since(start))
	return
}

func withRange(cmap *colormap.ColorMap, vol volume.Volume) *colormap.ColorMap {
	if cmap.HasRange() {
		return cmap
	}
	c := cmap.Clone()
	switch vol.Values().Type() {
	case volume.Int8:
		c.SetRange(-128, 127)
	case volume.Uint8:
		c.SetRange(0, 255)
	default:
		c.SetRange(vol.MinMaxValues())
	}
	return c
}

// corners is one cell gathered for classification.
type corners struct {
	n     int
	pos   [8][3]float32
	value [8]float32
	dist  [8]float64 // plane equation at each corner
}

type cutter struct {
	plane plane.Plane
	cmap  *colormap.ColorMap
	src   cellSource
}

func (ct *cutter) cell(c *corners, pb *PolygonBuffers) {
	topo := ct.src.topology()
	for i := 0; i < c.n; i++ {
		c.dist[i] = ct.plane.Evaluate(vec(c.pos[i]))
	}
	mask := plane.Classify(c.dist[:c.n])
	if mask == 0 || mask == topo.FullMask() {
		return
	}
	edges := topology.TriangleEdges(topo, mask)
	for e := 0; e+2 < len(edges) && edges[e] != topology.EndOfList; e += 3 {
		var (
			p   [3][3]float32
			col [3][3]uint8
		)
		for v := 0; v < 3; v++ {
			a, b := topology.EdgeVertexPair(topo, int(edges[e+v]))
			t := float32(plane.Parameter(c.dist[a], c.dist[b]))
			for d := 0; d < 3; d++ {
				p[v][d] = lerp(c.pos[a][d], c.pos[b][d], t)
			}
			r, g, bl := ct.cmap.At(float64(lerp(c.value[a], c.value[b], t)))
			col[v] = [3]uint8{r, g, bl}
		}
		pb.addTriangle(p, col)
	}
}

func lerp(a, b, t float32) float32 { return (1-t)*a + t*b }
