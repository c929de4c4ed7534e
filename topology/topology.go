// Package topology holds the per-topology lookup tables used to polygonize a
// plane crossing a cell, together with the reference corner geometry that
// fixes the corner ordering shared by the slicer and the cell evaluators.
package topology

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Topology identifies a cell shape with linear edges.
type Topology uint8

const (
	Tetrahedron Topology = iota
	Hexahedron
	Pyramid
	Prism
	// Cube is the 8-corner cell of a structured lattice. It has the same
	// shape as Hexahedron but a different corner ordering.
	Cube
)

// EndOfList terminates every triangle edge list.
const EndOfList int8 = -1

func (t Topology) String() string {
	if int(t) >= len(tables) {
		return fmt.Sprintf("Topology(%d)", t)
	}
	return tables[t].name
}

// tableSet is the dispatch entry for one topology.
type tableSet struct {
	name      string
	corners   []r3.Vec
	edges     [][2]int
	faces     [][]int
	triangles [][]int8
}

var tables = [...]tableSet{
	Tetrahedron: {
		name:      "Tetrahedron",
		triangles: tetrahedronTriangles[:],
		corners: []r3.Vec{
			{X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 0, Y: 0, Z: 1}, {X: 0, Y: 0, Z: 0},
		},
		edges: [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}},
		faces: [][]int{{0, 1, 2}, {3, 1, 0}, {0, 2, 3}, {3, 2, 1}},
	},
	Hexahedron: {
		name:      "Hexahedron",
		triangles: hexahedronTriangles[:],
		corners: []r3.Vec{
			{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 0, Y: 1, Z: 1},
			{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0},
		},
		edges: boxEdges,
		faces: [][]int{
			{0, 1, 2, 3}, {7, 6, 5, 4}, {4, 5, 1, 0},
			{5, 6, 2, 1}, {6, 7, 3, 2}, {7, 4, 0, 3},
		},
	},
	Pyramid: {
		name:      "Pyramid",
		triangles: pyramidTriangles[:],
		corners: []r3.Vec{
			{X: 0, Y: 0, Z: 1},
			{X: -0.5, Y: -0.5, Z: 0}, {X: 0.5, Y: -0.5, Z: 0},
			{X: 0.5, Y: 0.5, Z: 0}, {X: -0.5, Y: 0.5, Z: 0},
		},
		edges: [][2]int{{0, 1}, {0, 2}, {0, 3}, {0, 4}, {1, 2}, {2, 3}, {3, 4}, {4, 1}},
		faces: [][]int{{4, 3, 2, 1}, {0, 1, 2}, {0, 2, 3}, {0, 3, 4}, {0, 4, 1}},
	},
	Prism: {
		name:      "Prism",
		triangles: prismTriangles[:],
		corners: []r3.Vec{
			{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 0, Y: 1, Z: 1},
			{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0},
		},
		edges: [][2]int{
			{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 5}, {5, 3}, {0, 3}, {1, 4}, {2, 5},
		},
		faces: [][]int{{0, 1, 2}, {5, 4, 3}, {3, 4, 1, 0}, {4, 5, 2, 1}, {5, 3, 0, 2}},
	},
	Cube: {
		name:      "Cube",
		triangles: cubeTriangles[:],
		corners: []r3.Vec{
			{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0},
			{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 0, Y: 1, Z: 1},
		},
		edges: boxEdges,
		faces: [][]int{
			{3, 2, 1, 0}, {4, 5, 6, 7}, {0, 1, 5, 4},
			{1, 2, 6, 5}, {2, 3, 7, 6}, {3, 0, 4, 7},
		},
	},
}

// Edges of both 8-corner orderings: the two quads 0-1-2-3 and 4-5-6-7 and
// the four edges joining them.
var boxEdges = [][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

func lookup(t Topology) *tableSet {
	if int(t) >= len(tables) {
		panic(fmt.Sprintf("unknown topology %d", t))
	}
	return &tables[t]
}

// NumCorners returns the number of corners of t.
func (t Topology) NumCorners() int { return len(lookup(t).corners) }

// NumEdges returns the number of edges of t.
func (t Topology) NumEdges() int { return len(lookup(t).edges) }

// NumMasks returns the number of distinct classification masks, 2^corners.
func (t Topology) NumMasks() int { return 1 << t.NumCorners() }

// FullMask is the mask with every corner on the positive side.
func (t Topology) FullMask() uint { return uint(t.NumMasks() - 1) }

// TriangleEdges returns the edge indices of the triangles crossing a cell
// classified by mask, three per triangle, terminated by EndOfList. Masks
// 0 and FullMask have no triangles and callers are expected to skip them.
//
// For any mask produced by a plane, the triangle (e0, e1, e2) is wound so
// that (p1-p0)x(p2-p0) points toward the positive side of that plane.
func TriangleEdges(t Topology, mask uint) []int8 {
	set := lookup(t)
	if mask >= uint(len(set.triangles)) {
		panic(fmt.Sprintf("mask %d out of range for %s", mask, t))
	}
	return set.triangles[mask]
}

// EdgeVertexPair returns the two corners joined by edge.
func EdgeVertexPair(t Topology, edge int) (a, b int) {
	set := lookup(t)
	if edge < 0 || edge >= len(set.edges) {
		panic(fmt.Sprintf("edge %d out of range for %s", edge, t))
	}
	return set.edges[edge][0], set.edges[edge][1]
}

// ReferenceCorners returns the corner positions of t in its reference cell.
// The returned slice must not be modified.
func ReferenceCorners(t Topology) []r3.Vec { return lookup(t).corners }

// Faces returns the corner loops of each face of t, counter-clockwise when
// seen from outside the cell. The returned slices must not be modified.
func Faces(t Topology) [][]int { return lookup(t).faces }

// CubeLatticeOffset returns the lattice offset (dx, dy, dz) of a Cube corner
// from the cell origin.
func CubeLatticeOffset(corner int) (off [3]int) {
	c := tables[Cube].corners[corner]
	return [3]int{int(c.X), int(c.Y), int(c.Z)}
}
