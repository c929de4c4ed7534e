package cell

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Linear pyramid. Node 0 is the apex at r = 1 and nodes 1-4 the square base
// [-0.5,0.5]^2 at r = 0, matching topology.Pyramid. The base functions are
// rational so the cell stays conforming with its triangular faces.
var pyramid = variant{
	numNodes:      5,
	initialGuess:  r3.Vec{Z: 0.25},
	interpolation: pyramidInterpolation,
	differential:  pyramidDifferential,
	containsLocal: func(l r3.Vec) bool {
		half := 0.5*(1-l.Z) + localTolerance
		return within(l.Z, 0, 1) && math.Abs(l.X) <= half && math.Abs(l.Y) <= half
	},
	volume: func(c *Cell) float64 {
		x := c.coords
		return 0.5 * (tetVolume(x[0], x[1], x[2], x[3]) + tetVolume(x[0], x[1], x[3], x[4]) +
			tetVolume(x[0], x[1], x[2], x[4]) + tetVolume(x[0], x[2], x[3], x[4]))
	},
	sampling: pyramidSampling,
}

// pyramidBase keeps the rational terms finite at the apex.
func pyramidBase(r float64) float64 {
	return math.Max(1-r, 1e-9)
}

func pyramidInterpolation(l r3.Vec, N []float64) {
	p, q, r := l.X, l.Y, l.Z
	s := pyramidBase(r)
	pq := 4 * p * q / s
	N[0] = r
	N[1] = 0.25 * (s - 2*p - 2*q + pq)
	N[2] = 0.25 * (s + 2*p - 2*q - pq)
	N[3] = 0.25 * (s + 2*p + 2*q + pq)
	N[4] = 0.25 * (s - 2*p + 2*q - pq)
}

func pyramidDifferential(l r3.Vec, dN []float64) {
	p, q, r := l.X, l.Y, l.Z
	s := pyramidBase(r)
	var (
		qs  = 4 * q / s
		ps  = 4 * p / s
		pqs = 4 * p * q / (s * s)
	)
	copy(dN, []float64{
		0, 0.25 * (-2 + qs), 0.25 * (2 - qs), 0.25 * (2 + qs), 0.25 * (-2 - qs),
		0, 0.25 * (-2 + ps), 0.25 * (-2 - ps), 0.25 * (2 + ps), 0.25 * (2 - ps),
		1, 0.25 * (-1 + pqs), 0.25 * (-1 - pqs), 0.25 * (-1 + pqs), 0.25 * (-1 - pqs),
	})
}

// pyramidSampling splits the cube centred on the origin into six pyramids,
// one per face, and maps the one holding the sample onto the reference cell.
func pyramidSampling(s, t, u float64) r3.Vec {
	off := [3]float64{s - 0.5, t - 0.5, u - 0.5}
	axis := 0
	for i := 1; i < 3; i++ {
		if math.Abs(off[i]) > math.Abs(off[axis]) {
			axis = i
		}
	}
	return r3.Vec{
		X: off[(axis+1)%3],
		Y: off[(axis+2)%3],
		Z: 1 - 2*math.Abs(off[axis]),
	}
}
