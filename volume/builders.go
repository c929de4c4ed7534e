package volume

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/govis/topology"
)

// Field evaluates a scalar function of position, used to fill synthetic
// volumes.
type Field func(p r3.Vec) float64

var fields = map[string]Field{
	// distance from the origin
	"radial": func(p r3.Vec) float64 { return r3.Norm(p) },
	"linear": func(p r3.Vec) float64 { return p.X + 2*p.Y + 3*p.Z },
	"saddle": func(p r3.Vec) float64 { return p.X*p.X - p.Y*p.Y + p.Z },
	"wave": func(p r3.Vec) float64 {
		return math.Sin(2*math.Pi*p.X) * math.Cos(2*math.Pi*p.Y) * math.Exp(-p.Z)
	},
}

// FieldNames lists the fields known to FieldByName.
func FieldNames() (names []string) {
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

func FieldByName(name string) (Field, error) {
	f, ok := fields[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown field %q, have %v", name, FieldNames())
	}
	return f, nil
}

// Lattice describes a box [Min, Max] sampled by Resolution nodes per axis.
type Lattice struct {
	Resolution [3]int
	Min, Max   r3.Vec
}

func (l Lattice) validate() error {
	for _, n := range l.Resolution {
		if n < 2 {
			return fmt.Errorf("resolution %v must have at least 2 nodes per axis", l.Resolution)
		}
	}
	if !(l.Max.X > l.Min.X && l.Max.Y > l.Min.Y && l.Max.Z > l.Min.Z) {
		return fmt.Errorf("empty lattice box %v - %v", l.Min, l.Max)
	}
	return nil
}

func (l Lattice) node(i, j, k int) r3.Vec {
	return r3.Vec{
		X: l.Min.X + (l.Max.X-l.Min.X)*float64(i)/float64(l.Resolution[0]-1),
		Y: l.Min.Y + (l.Max.Y-l.Min.Y)*float64(j)/float64(l.Resolution[1]-1),
		Z: l.Min.Z + (l.Max.Z-l.Min.Z)*float64(k)/float64(l.Resolution[2]-1),
	}
}

func (l Lattice) index(i, j, k int) uint32 {
	return uint32(i + l.Resolution[0]*(j+l.Resolution[1]*k))
}

func (l Lattice) numNodes() int {
	return l.Resolution[0] * l.Resolution[1] * l.Resolution[2]
}

// cells calls fn with the lattice indices of the 8 corners of every cell,
// in Cube corner order.
func (l Lattice) cells(fn func(corners [8]uint32)) {
	for k := 0; k < l.Resolution[2]-1; k++ {
		for j := 0; j < l.Resolution[1]-1; j++ {
			for i := 0; i < l.Resolution[0]-1; i++ {
				var c [8]uint32
				for n := range c {
					off := topology.CubeLatticeOffset(n)
					c[n] = l.index(i+off[0], j+off[1], k+off[2])
				}
				fn(c)
			}
		}
	}
}

func (l Lattice) nodes() (coords []float32, pts []r3.Vec) {
	pts = make([]r3.Vec, 0, l.numNodes())
	for k := 0; k < l.Resolution[2]; k++ {
		for j := 0; j < l.Resolution[1]; j++ {
			for i := 0; i < l.Resolution[0]; i++ {
				pts = append(pts, l.node(i, j, k))
			}
		}
	}
	coords = make([]float32, 0, 3*len(pts))
	for _, p := range pts {
		coords = append(coords, float32(p.X), float32(p.Y), float32(p.Z))
	}
	return
}

func sample(pts []r3.Vec, field Field) (*ScalarArray, error) {
	values := make([]float32, len(pts))
	for i, p := range pts {
		values[i] = float32(field(p))
	}
	return NewScalarArray(values, 1)
}

// NewStructuredField samples field on the lattice.
func NewStructuredField(l Lattice, field Field) (s *Structured, err error) {
	if err = l.validate(); err != nil {
		return
	}
	_, pts := l.nodes()
	var values *ScalarArray
	if values, err = sample(pts, field); err != nil {
		return
	}
	if s, err = NewStructured(l.Resolution, values); err != nil {
		return
	}
	err = s.SetObjectBounds(l.Min, l.Max)
	return
}

// Decomposition of a lattice cell, in Cube corner numbering, into each
// linear cell type.
var (
	// Hexahedron nodes 0-3 are the upper face.
	cubeToHexahedron = [][]int{{4, 5, 6, 7, 0, 1, 2, 3}}
	// Six tetrahedra around the 0-6 diagonal. Neighbouring cells split
	// their shared faces the same way. Each keeps the reference orientation,
	// det(v0-v3, v1-v3, v2-v3) > 0.
	cubeToTetrahedra = [][]int{
		{0, 2, 1, 6}, {0, 3, 2, 6}, {0, 7, 3, 6},
		{0, 4, 7, 6}, {0, 5, 4, 6}, {0, 1, 5, 6},
	}
	// Two prisms split along the 0-2 diagonal of each z face. Prism nodes
	// 0-2 are the upper triangle.
	cubeToPrisms = [][]int{{4, 5, 6, 0, 1, 2}, {4, 6, 7, 0, 2, 3}}
)

// NewUnstructuredField meshes the lattice box with cells of cellType and
// samples field at the nodes. Pyramid meshes add one node at every cell
// centre as the shared apex of six pyramids, quadratic meshes one node per
// cell edge.
func NewUnstructuredField(l Lattice, cellType CellType, field Field) (u *Unstructured, err error) {
	if err = l.validate(); err != nil {
		return
	}
	coords, pts := l.nodes()
	var conn []uint32
	switch cellType {
	case Hexahedra:
		conn = split(l, cubeToHexahedron)
	case Tetrahedra:
		conn = split(l, cubeToTetrahedra)
	case Prism:
		conn = split(l, cubeToPrisms)
	case Pyramid:
		faces := topology.Faces(topology.Cube)
		l.cells(func(c [8]uint32) {
			var center r3.Vec
			for _, n := range c {
				center = r3.Add(center, pts[n])
			}
			center = r3.Scale(1./8, center)
			apex := uint32(len(pts))
			pts = append(pts, center)
			coords = append(coords, float32(center.X), float32(center.Y), float32(center.Z))
			// Base corners must run counter-clockwise seen from the apex,
			// the reverse of the outward face loop.
			for _, f := range faces {
				conn = append(conn, apex, c[f[3]], c[f[2]], c[f[1]], c[f[0]])
			}
		})
	case QuadraticHexahedra:
		conn = split(l, cubeToHexahedron)
		conn, coords, pts = addMidEdgeNodes(conn, 8, hexahedronEdges(), coords, pts)
	case QuadraticTetrahedra:
		conn = split(l, cubeToTetrahedra)
		conn, coords, pts = addMidEdgeNodes(conn, 4, quadraticTetEdges, coords, pts)
	default:
		return nil, fmt.Errorf("cannot mesh a lattice with %s cells", cellType)
	}
	var values *ScalarArray
	if values, err = sample(pts, field); err != nil {
		return
	}
	return NewUnstructured(cellType, coords, conn, values)
}

func split(l Lattice, pattern [][]int) (conn []uint32) {
	l.cells(func(c [8]uint32) {
		for _, cell := range pattern {
			for _, n := range cell {
				conn = append(conn, c[n])
			}
		}
	})
	return
}

// Edges of a quadratic tetrahedron in mid-edge node order, nodes 4 to 9.
var quadraticTetEdges = [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {2, 3}, {1, 3}}

func hexahedronEdges() (edges [][2]int) {
	for e := 0; e < topology.Hexahedron.NumEdges(); e++ {
		a, b := topology.EdgeVertexPair(topology.Hexahedron, e)
		edges = append(edges, [2]int{a, b})
	}
	return
}

// addMidEdgeNodes turns linear cells of npc nodes into quadratic ones by
// appending a node at the middle of every edge. Cells sharing an edge share
// its node.
func addMidEdgeNodes(linear []uint32, npc int, edges [][2]int, coords []float32,
	pts []r3.Vec) (conn []uint32, _ []float32, _ []r3.Vec) {
	mid := make(map[[2]uint32]uint32)
	for c := 0; c < len(linear); c += npc {
		corners := linear[c : c+npc]
		conn = append(conn, corners...)
		for _, e := range edges {
			a, b := corners[e[0]], corners[e[1]]
			if a > b {
				a, b = b, a
			}
			n, ok := mid[[2]uint32{a, b}]
			if !ok {
				n = uint32(len(pts))
				p := r3.Scale(0.5, r3.Add(pts[a], pts[b]))
				pts = append(pts, p)
				coords = append(coords, float32(p.X), float32(p.Y), float32(p.Z))
				mid[[2]uint32{a, b}] = n
			}
			conn = append(conn, n)
		}
	}
	return conn, coords, pts
}
