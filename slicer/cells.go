package slicer

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/govis/topology"
	"github.com/notargets/govis/volume"
)

// cellSource gathers the corners of cell k in the corner order of its
// topology. load must be safe to call from several goroutines.
type cellSource interface {
	topology() topology.Topology
	load(k int, c *corners)
}

func newCellSource(vol volume.Volume) (cellSource, error) {
	switch v := vol.(type) {
	case *volume.Structured:
		return structuredSource{v}, nil
	case *volume.Unstructured:
		topo, ok := v.CellType.Topology()
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedCellType, v.CellType)
		}
		return unstructuredSource{vol: v, topo: topo}, nil
	}
	return nil, fmt.Errorf("unsupported volume %T", vol)
}

func vec(p [3]float32) r3.Vec {
	return r3.Vec{X: float64(p[0]), Y: float64(p[1]), Z: float64(p[2])}
}

// structuredSource walks lattice cells as Cube corners placed at
// min + index*spacing.
type structuredSource struct {
	vol *volume.Structured
}

func (structuredSource) topology() topology.Topology { return topology.Cube }

func (s structuredSource) load(k int, c *corners) {
	var (
		i, j, l = s.vol.CellOrigin(k)
		values  = s.vol.Values()
	)
	c.n = 8
	for n := 0; n < 8; n++ {
		off := topology.CubeLatticeOffset(n)
		ii, jj, ll := i+off[0], j+off[1], l+off[2]
		p := s.vol.NodePosition(ii, jj, ll)
		c.pos[n] = [3]float32{float32(p.X), float32(p.Y), float32(p.Z)}
		c.value[n] = values.Float32At(s.vol.NodeIndex(ii, jj, ll))
	}
}

// unstructuredSource reads cell nodes in connectivity order, which is the
// corner order of the matching topology.
type unstructuredSource struct {
	vol  *volume.Unstructured
	topo topology.Topology
}

func (u unstructuredSource) topology() topology.Topology { return u.topo }

func (u unstructuredSource) load(k int, c *corners) {
	values := u.vol.Values()
	conn := u.vol.CellConnections(k)
	c.n = len(conn)
	for i, node := range conn {
		copy(c.pos[i][:], u.vol.Coords[3*node:3*node+3])
		c.value[i] = values.Float32At(int(node))
	}
}
