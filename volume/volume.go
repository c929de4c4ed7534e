// Package volume holds the read-only inputs of slicing and cell evaluation:
// structured lattices and unstructured meshes carrying a node-based field.
package volume

import (
	"fmt"
	"math"
	"sync"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/govis/topology"
)

// Volume is implemented by Structured and Unstructured.
type Volume interface {
	VecLen() int
	Values() *ScalarArray
	// MinMaxValues returns the explicit value range if one was set, or the
	// range of the data, computed once on first use.
	MinMaxValues() (min, max float64)
	// Bounds returns the object-space bounding box.
	Bounds() r3.Box
	NumberOfNodes() int
	NumberOfCells() int
}

// CellType is the element kind of an unstructured volume.
type CellType uint8

const (
	Tetrahedra CellType = iota
	Hexahedra
	QuadraticTetrahedra
	QuadraticHexahedra
	Pyramid
	Prism
)

func (c CellType) String() string {
	names := [...]string{"Tetrahedra", "Hexahedra", "QuadraticTetrahedra",
		"QuadraticHexahedra", "Pyramid", "Prism"}
	if int(c) >= len(names) {
		return fmt.Sprintf("CellType(%d)", c)
	}
	return names[c]
}

// NodesPerCell returns the node count of c, or 0 for an unknown type.
func (c CellType) NodesPerCell() int {
	switch c {
	case Tetrahedra:
		return 4
	case Hexahedra:
		return 8
	case QuadraticTetrahedra:
		return 10
	case QuadraticHexahedra:
		return 20
	case Pyramid:
		return 5
	case Prism:
		return 6
	}
	return 0
}

// Topology returns the linear topology whose corner ordering matches c.
// Quadratic cells have none.
func (c CellType) Topology() (topology.Topology, bool) {
	switch c {
	case Tetrahedra:
		return topology.Tetrahedron, true
	case Hexahedra:
		return topology.Hexahedron, true
	case Pyramid:
		return topology.Pyramid, true
	case Prism:
		return topology.Prism, true
	}
	return 0, false
}

// ParseCellType accepts the names printed by CellType.String.
func ParseCellType(name string) (CellType, error) {
	for c := Tetrahedra; c <= Prism; c++ {
		if c.String() == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown cell type %q", name)
}

// valueRange caches the value range shared by both volume kinds.
type valueRange struct {
	values   *ScalarArray
	once     sync.Once
	min, max float64
	explicit bool
}

func (vr *valueRange) VecLen() int { return vr.values.VecLen() }

func (vr *valueRange) Values() *ScalarArray { return vr.values }

func (vr *valueRange) NumberOfNodes() int { return vr.values.NumberOfNodes() }

func (vr *valueRange) MinMaxValues() (min, max float64) {
	if !vr.explicit {
		vr.once.Do(func() { vr.min, vr.max = vr.values.MinMax() })
	}
	return vr.min, vr.max
}

// HasMinMaxValues reports whether the range was set explicitly.
func (vr *valueRange) HasMinMaxValues() bool { return vr.explicit }

// SetMinMaxValues overrides the data range.
func (vr *valueRange) SetMinMaxValues(min, max float64) {
	vr.min, vr.max, vr.explicit = min, max, true
}

// Unstructured is a mesh of a single cell type with explicit connectivity.
type Unstructured struct {
	valueRange
	CellType    CellType
	Connections []uint32  // NodesPerCell entries per cell
	Coords      []float32 // x, y, z per node
	ncells      int
	bounds      r3.Box
}

// NewUnstructured validates the connectivity and node arrays and returns the
// mesh. None of the slices are copied.
func NewUnstructured(cellType CellType, coords []float32, connections []uint32,
	values *ScalarArray) (u *Unstructured, err error) {
	npc := cellType.NodesPerCell()
	switch {
	case npc == 0:
		return nil, fmt.Errorf("unsupported cell type %s", cellType)
	case values == nil:
		return nil, fmt.Errorf("missing node values")
	case len(coords)%3 != 0:
		return nil, fmt.Errorf("coordinate array length %d is not a multiple of 3", len(coords))
	case len(connections)%npc != 0:
		return nil, fmt.Errorf("connection array length %d is not a multiple of %d for %s",
			len(connections), npc, cellType)
	}
	nnodes := len(coords) / 3
	if values.NumberOfNodes() != nnodes {
		return nil, fmt.Errorf("have %d node values for %d nodes", values.NumberOfNodes(), nnodes)
	}
	for i, c := range connections {
		if int(c) >= nnodes {
			return nil, fmt.Errorf("cell %d references node %d, mesh has %d nodes", i/npc, c, nnodes)
		}
	}
	u = &Unstructured{
		valueRange:  valueRange{values: values},
		CellType:    cellType,
		Connections: connections,
		Coords:      coords,
		ncells:      len(connections) / npc,
	}
	u.bounds = coordBounds(coords)
	return
}

func coordBounds(coords []float32) (b r3.Box) {
	if len(coords) == 0 {
		return
	}
	b.Min = r3.Vec{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	b.Max = r3.Vec{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}
	for i := 0; i < len(coords); i += 3 {
		x, y, z := float64(coords[i]), float64(coords[i+1]), float64(coords[i+2])
		b.Min = r3.Vec{X: math.Min(b.Min.X, x), Y: math.Min(b.Min.Y, y), Z: math.Min(b.Min.Z, z)}
		b.Max = r3.Vec{X: math.Max(b.Max.X, x), Y: math.Max(b.Max.Y, y), Z: math.Max(b.Max.Z, z)}
	}
	return
}

func (u *Unstructured) NumberOfCells() int { return u.ncells }

func (u *Unstructured) NodesPerCell() int { return u.CellType.NodesPerCell() }

func (u *Unstructured) Bounds() r3.Box { return u.bounds }

// Node returns the position of node i.
func (u *Unstructured) Node(i int) r3.Vec {
	return r3.Vec{
		X: float64(u.Coords[3*i]),
		Y: float64(u.Coords[3*i+1]),
		Z: float64(u.Coords[3*i+2]),
	}
}

// CellConnections returns the node indices of cell, aliasing Connections.
func (u *Unstructured) CellConnections(cell int) []uint32 {
	npc := u.NodesPerCell()
	return u.Connections[cell*npc : (cell+1)*npc]
}

// Structured is a rectilinear lattice of Resolution nodes with implicit
// connectivity. Node values are stored x fastest, then y, then z.
type Structured struct {
	valueRange
	Resolution [3]int
	min, max   r3.Vec
}

// NewStructured returns a lattice whose object box defaults to unit node
// spacing starting at the origin.
func NewStructured(resolution [3]int, values *ScalarArray) (s *Structured, err error) {
	if values == nil {
		return nil, fmt.Errorf("missing node values")
	}
	for _, n := range resolution {
		if n < 2 {
			return nil, fmt.Errorf("resolution %v must have at least 2 nodes per axis", resolution)
		}
	}
	nnodes := resolution[0] * resolution[1] * resolution[2]
	if values.NumberOfNodes() != nnodes {
		return nil, fmt.Errorf("have %d node values for resolution %v", values.NumberOfNodes(), resolution)
	}
	s = &Structured{
		valueRange: valueRange{values: values},
		Resolution: resolution,
		max: r3.Vec{
			X: float64(resolution[0] - 1),
			Y: float64(resolution[1] - 1),
			Z: float64(resolution[2] - 1),
		},
	}
	return
}

// SetObjectBounds places the lattice inside box [min, max].
func (s *Structured) SetObjectBounds(min, max r3.Vec) error {
	if !(max.X > min.X && max.Y > min.Y && max.Z > min.Z) {
		return fmt.Errorf("empty object bounds %v - %v", min, max)
	}
	s.min, s.max = min, max
	return nil
}

func (s *Structured) Bounds() r3.Box { return r3.Box{Min: s.min, Max: s.max} }

func (s *Structured) NumberOfCells() int {
	return (s.Resolution[0] - 1) * (s.Resolution[1] - 1) * (s.Resolution[2] - 1)
}

// Spacing returns the distance between neighbouring nodes along each axis.
func (s *Structured) Spacing() r3.Vec {
	return r3.Vec{
		X: (s.max.X - s.min.X) / float64(s.Resolution[0]-1),
		Y: (s.max.Y - s.min.Y) / float64(s.Resolution[1]-1),
		Z: (s.max.Z - s.min.Z) / float64(s.Resolution[2]-1),
	}
}

// NodeIndex returns the flat index of lattice node (i, j, k).
func (s *Structured) NodeIndex(i, j, k int) int {
	return i + s.Resolution[0]*(j+s.Resolution[1]*k)
}

// NodePosition returns the object-space position of lattice node (i, j, k).
func (s *Structured) NodePosition(i, j, k int) r3.Vec {
	sp := s.Spacing()
	return r3.Vec{
		X: s.min.X + float64(i)*sp.X,
		Y: s.min.Y + float64(j)*sp.Y,
		Z: s.min.Z + float64(k)*sp.Z,
	}
}

// CellOrigin returns the lattice coordinates of the lowest corner of cell,
// cells being numbered x fastest.
func (s *Structured) CellOrigin(cell int) (i, j, k int) {
	nx, ny := s.Resolution[0]-1, s.Resolution[1]-1
	i = cell % nx
	j = (cell / nx) % ny
	k = cell / (nx * ny)
	return
}
