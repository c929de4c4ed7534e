package cell

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Linear wedge. Nodes 0-2 are the triangle at r = 1 and nodes 3-5 the one
// at r = 0, matching topology.Prism.
var prism = variant{
	numNodes:     6,
	initialGuess: r3.Vec{X: 1. / 3, Y: 1. / 3, Z: 0.5},
	interpolation: func(l r3.Vec, N []float64) {
		p, q, r := l.X, l.Y, l.Z
		w := 1 - p - q
		N[0], N[1], N[2] = w*r, p*r, q*r
		N[3], N[4], N[5] = w*(1-r), p*(1-r), q*(1-r)
	},
	differential: func(l r3.Vec, dN []float64) {
		p, q, r := l.X, l.Y, l.Z
		w := 1 - p - q
		copy(dN, []float64{
			-r, r, 0, -(1 - r), 1 - r, 0,
			-r, 0, r, -(1 - r), 0, 1 - r,
			w, p, q, -w, -p, -q,
		})
	},
	containsLocal: func(l r3.Vec) bool {
		return within(l.X, 0, 1) && within(l.Y, 0, 1) && within(l.Z, 0, 1) &&
			l.X+l.Y <= 1+localTolerance
	},
	volume: func(c *Cell) float64 {
		return 0.5 * c.meanDeterminant(prismQuadrature)
	},
	sampling: func(s, t, u float64) r3.Vec {
		if s+t > 1 {
			return r3.Vec{X: 1 - t, Y: 1 - s, Z: u}
		}
		return r3.Vec{X: s, Y: t, Z: u}
	},
}

var prismQuadrature = func() (pts []r3.Vec) {
	for _, r := range []float64{0.2, 0.5, 0.8} {
		for _, pq := range [][2]float64{{0.3, 0.3}, {0.6, 0.3}, {0.3, 0.6}} {
			pts = append(pts, r3.Vec{X: pq[0], Y: pq[1], Z: r})
		}
	}
	return
}()
