package topology

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

var allTopologies = []Topology{Tetrahedron, Hexahedron, Pyramid, Prism, Cube}

func centroid(pts []r3.Vec) (c r3.Vec) {
	for _, p := range pts {
		c = r3.Add(c, p)
	}
	return r3.Scale(1/float64(len(pts)), c)
}

func TestTopologySizes(t *testing.T) {
	for _, tc := range []struct {
		topo                   Topology
		corners, edges, nmasks int
	}{
		{Tetrahedron, 4, 6, 16},
		{Hexahedron, 8, 12, 256},
		{Pyramid, 5, 8, 32},
		{Prism, 6, 9, 64},
		{Cube, 8, 12, 256},
	} {
		t.Run(tc.topo.String(), func(t *testing.T) {
			assert.Equal(t, tc.corners, tc.topo.NumCorners())
			assert.Equal(t, tc.edges, tc.topo.NumEdges())
			assert.Equal(t, tc.nmasks, tc.topo.NumMasks())
			assert.Len(t, ReferenceCorners(tc.topo), tc.corners)
			for mask := 0; mask < tc.nmasks; mask++ {
				row := TriangleEdges(tc.topo, uint(mask))
				assert.Equal(t, EndOfList, row[len(row)-1], "row %d must end with the terminator", mask)
			}
		})
	}
	assert.Equal(t, "Topology(9)", Topology(9).String())
	assert.Panics(t, func() { TriangleEdges(Tetrahedron, 16) })
	assert.Panics(t, func() { EdgeVertexPair(Prism, 9) })
}

func TestFacesOutward(t *testing.T) {
	for _, topo := range allTopologies {
		var (
			corners = ReferenceCorners(topo)
			center  = centroid(corners)
			used    = make(map[[2]int]int)
		)
		for _, face := range Faces(topo) {
			var (
				pts    = make([]r3.Vec, len(face))
				newell r3.Vec
			)
			for i, c := range face {
				pts[i] = corners[c]
			}
			for i := range pts {
				newell = r3.Add(newell, r3.Cross(pts[i], pts[(i+1)%len(pts)]))
				a, b := face[i], face[(i+1)%len(face)]
				if a > b {
					a, b = b, a
				}
				used[[2]int{a, b}]++
			}
			assert.Greater(t, r3.Dot(newell, r3.Sub(centroid(pts), center)), 0.,
				"%s face %v is not outward", topo, face)
		}
		// Every edge is shared by exactly two faces.
		assert.Len(t, used, topo.NumEdges())
		for e := 0; e < topo.NumEdges(); e++ {
			a, b := EdgeVertexPair(topo, e)
			if a > b {
				a, b = b, a
			}
			assert.Equal(t, 2, used[[2]int{a, b}], "%s edge %d", topo, e)
		}
	}
}

func TestTriangleTables(t *testing.T) {
	for _, topo := range allTopologies {
		t.Run(topo.String(), func(t *testing.T) {
			for mask := uint(0); mask <= topo.FullMask(); mask++ {
				var (
					row    = TriangleEdges(topo, mask)
					listed = make(map[int]bool)
					n      int
				)
				for n = 0; row[n] != EndOfList; n++ {
					e := int(row[n])
					a, b := EdgeVertexPair(topo, e)
					assert.NotEqual(t, mask>>a&1, mask>>b&1,
						"mask %d lists uncut edge %d", mask, e)
					listed[e] = true
				}
				assert.Zero(t, n%3, "mask %d", mask)
				if mask == 0 || mask == topo.FullMask() {
					assert.Zero(t, n)
					continue
				}
				for e := 0; e < topo.NumEdges(); e++ {
					a, b := EdgeVertexPair(topo, e)
					if mask>>a&1 != mask>>b&1 {
						assert.True(t, listed[e], "mask %d misses cut edge %d", mask, e)
					}
				}
			}
		})
	}
}

func TestTriangleWinding(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for _, topo := range allTopologies {
		var (
			corners = ReferenceCorners(topo)
			center  = centroid(corners)
			f       = make([]float64, len(corners))
		)
		for trial := 0; trial < 5000; trial++ {
			n := r3.Vec{X: rng.NormFloat64(), Y: rng.NormFloat64(), Z: rng.NormFloat64()}
			d := 0.5*rng.NormFloat64() - r3.Dot(n, center)
			var mask uint
			for i, c := range corners {
				f[i] = r3.Dot(n, c) + d
				if f[i] > 0 {
					mask |= 1 << i
				}
			}
			if mask == 0 || mask == topo.FullMask() {
				continue
			}
			row := TriangleEdges(topo, mask)
			require.NotEqual(t, EndOfList, row[0])
			var area float64
			for i := 0; row[i] != EndOfList; i += 3 {
				var p [3]r3.Vec
				for j := 0; j < 3; j++ {
					a, b := EdgeVertexPair(topo, int(row[i+j]))
					s := math.Abs(f[a] / (f[b] - f[a]))
					p[j] = r3.Add(r3.Scale(1-s, corners[a]), r3.Scale(s, corners[b]))
				}
				normal := r3.Cross(r3.Sub(p[1], p[0]), r3.Sub(p[2], p[0]))
				assert.GreaterOrEqual(t, r3.Dot(normal, n), -1e-12,
					"%s mask %d triangle %d faces the negative side", topo, mask, i/3)
				area += r3.Norm(normal)
			}
			assert.Greater(t, area, 0.)
		}
	}
}

func TestHexahedronMidPlane(t *testing.T) {
	// Nodes 0-3 are the z=1 face, so z > 0.5 sets the low nibble.
	row := TriangleEdges(Hexahedron, 0x0f)
	assert.Equal(t, []int8{8, 9, 10, 8, 10, 11}, row[:6])
	assert.Equal(t, EndOfList, row[6])
	// The lattice ordering puts z=1 on the high nibble.
	row = TriangleEdges(Cube, 0xf0)
	assert.Equal(t, []int8{8, 9, 10, 8, 10, 11}, row[:6])
}

func TestCubeLatticeOffset(t *testing.T) {
	expected := [8][3]int{
		{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
		{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
	}
	for corner, off := range expected {
		assert.Equal(t, off, CubeLatticeOffset(corner))
	}
}
