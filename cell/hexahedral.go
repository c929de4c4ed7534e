package cell

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/govis/topology"
)

// Trilinear hexahedron over the unit cube, nodes at the reference corners
// of topology.Hexahedron.
var hexahedron = variant{
	numNodes:      8,
	initialGuess:  r3.Vec{X: 0.5, Y: 0.5, Z: 0.5},
	interpolation: hexInterpolation,
	differential:  hexDifferential,
	containsLocal: containsUnitCube,
	volume: func(c *Cell) float64 {
		return c.meanDeterminant(hexQuadrature)
	},
	sampling: func(s, t, u float64) r3.Vec { return r3.Vec{X: s, Y: t, Z: u} },
}

var hexCorners = topology.ReferenceCorners(topology.Hexahedron)

// hexQuadrature is the 3x3x3 midpoint rule on the unit cube.
var hexQuadrature = func() (pts []r3.Vec) {
	for k := 0; k < 3; k++ {
		for j := 0; j < 3; j++ {
			for i := 0; i < 3; i++ {
				pts = append(pts, r3.Vec{
					X: (float64(i) + 0.5) / 3,
					Y: (float64(j) + 0.5) / 3,
					Z: (float64(k) + 0.5) / 3,
				})
			}
		}
	}
	return
}()

// linear1D returns the 1D hat function anchored at corner coordinate c and
// its derivative.
func linear1D(x, c float64) (f, df float64) {
	if c > 0.5 {
		return x, 1
	}
	return 1 - x, -1
}

func hexInterpolation(l r3.Vec, N []float64) {
	for i, c := range hexCorners {
		fx, _ := linear1D(l.X, c.X)
		fy, _ := linear1D(l.Y, c.Y)
		fz, _ := linear1D(l.Z, c.Z)
		N[i] = fx * fy * fz
	}
}

func hexDifferential(l r3.Vec, dN []float64) {
	for i, c := range hexCorners {
		fx, dx := linear1D(l.X, c.X)
		fy, dy := linear1D(l.Y, c.Y)
		fz, dz := linear1D(l.Z, c.Z)
		dN[i] = dx * fy * fz
		dN[8+i] = fx * dy * fz
		dN[16+i] = fx * fy * dz
	}
}

func containsUnitCube(l r3.Vec) bool {
	return within(l.X, 0, 1) && within(l.Y, 0, 1) && within(l.Z, 0, 1)
}
