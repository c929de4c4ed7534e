package cell

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/govis/topology"
)

// 20 node serendipity hexahedron. Nodes 0-7 are the hexahedron corners,
// nodes 8-19 the midpoints of the topology.Hexahedron edges in edge order.
var quadraticHexahedron = variant{
	numNodes:      20,
	initialGuess:  r3.Vec{X: 0.5, Y: 0.5, Z: 0.5},
	interpolation: quadHexInterpolation,
	differential:  quadHexDifferential,
	containsLocal: containsUnitCube,
	volume: func(c *Cell) float64 {
		return c.meanDeterminant(hexQuadrature)
	},
	sampling: func(s, t, u float64) r3.Vec { return r3.Vec{X: s, Y: t, Z: u} },
}

// quadHexNodes holds each node in [-1,1] coordinates, zero along the axis
// of an edge node.
var quadHexNodes = func() (nodes [20]r3.Vec) {
	toBi := func(v r3.Vec) r3.Vec { return r3.Sub(r3.Scale(2, v), r3.Vec{X: 1, Y: 1, Z: 1}) }
	for i, c := range hexCorners {
		nodes[i] = toBi(c)
	}
	for e := 0; e < topology.Hexahedron.NumEdges(); e++ {
		a, b := topology.EdgeVertexPair(topology.Hexahedron, e)
		nodes[8+e] = toBi(r3.Scale(0.5, r3.Add(hexCorners[a], hexCorners[b])))
	}
	return
}()

func quadHexInterpolation(l r3.Vec, N []float64) {
	x, y, z := 2*l.X-1, 2*l.Y-1, 2*l.Z-1
	for i, n := range quadHexNodes {
		a, b, c := 1+x*n.X, 1+y*n.Y, 1+z*n.Z
		switch {
		case n.X == 0:
			N[i] = 0.25 * (1 - x*x) * b * c
		case n.Y == 0:
			N[i] = 0.25 * a * (1 - y*y) * c
		case n.Z == 0:
			N[i] = 0.25 * a * b * (1 - z*z)
		default:
			N[i] = 0.125 * a * b * c * (x*n.X + y*n.Y + z*n.Z - 2)
		}
	}
}

// quadHexDifferential differentiates in [-1,1] and applies the factor 2 of
// the map to [0,1].
func quadHexDifferential(l r3.Vec, dN []float64) {
	x, y, z := 2*l.X-1, 2*l.Y-1, 2*l.Z-1
	for i, n := range quadHexNodes {
		a, b, c := 1+x*n.X, 1+y*n.Y, 1+z*n.Z
		var dx, dy, dz float64
		switch {
		case n.X == 0:
			dx = -0.5 * x * b * c
			dy = 0.25 * (1 - x*x) * n.Y * c
			dz = 0.25 * (1 - x*x) * b * n.Z
		case n.Y == 0:
			dx = 0.25 * n.X * (1 - y*y) * c
			dy = -0.5 * y * a * c
			dz = 0.25 * a * (1 - y*y) * n.Z
		case n.Z == 0:
			dx = 0.25 * n.X * b * (1 - z*z)
			dy = 0.25 * a * n.Y * (1 - z*z)
			dz = -0.5 * z * a * b
		default:
			dx = 0.125 * n.X * b * c * (2*x*n.X + y*n.Y + z*n.Z - 1)
			dy = 0.125 * n.Y * a * c * (x*n.X + 2*y*n.Y + z*n.Z - 1)
			dz = 0.125 * n.Z * a * b * (x*n.X + y*n.Y + 2*z*n.Z - 1)
		}
		dN[i] = 2 * dx
		dN[20+i] = 2 * dy
		dN[40+i] = 2 * dz
	}
}
