package cell

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Linear tetrahedron. Node i sits at reference corner i of
// topology.Tetrahedron: (1,0,0), (0,1,0), (0,0,1) and the origin.
var tetrahedron = variant{
	numNodes:     4,
	initialGuess: r3.Vec{X: 0.25, Y: 0.25, Z: 0.25},
	interpolation: func(l r3.Vec, N []float64) {
		N[0], N[1], N[2], N[3] = l.X, l.Y, l.Z, 1-l.X-l.Y-l.Z
	},
	differential: func(_ r3.Vec, dN []float64) {
		copy(dN, []float64{
			1, 0, 0, -1,
			0, 1, 0, -1,
			0, 0, 1, -1,
		})
	},
	containsLocal: containsTetrahedral,
	volume: func(c *Cell) float64 {
		x := c.coords
		return tetVolume(x[0], x[1], x[2], x[3])
	},
	sampling:      tetSampling,
	globalToLocal: tetGlobalToLocal,
}

func tetVolume(a, b, c, d r3.Vec) float64 {
	return math.Abs(r3.Dot(r3.Cross(r3.Sub(b, a), r3.Sub(c, a)), r3.Sub(d, a))) / 6
}

// tetGlobalToLocal solves X - V3 = p(V0-V3) + q(V1-V3) + r(V2-V3). A flat
// cell maps everything to the origin.
func tetGlobalToLocal(c *Cell, global r3.Vec) r3.Vec {
	x := c.coords
	var (
		a = r3.Sub(x[0], x[3])
		b = r3.Sub(x[1], x[3])
		d = r3.Sub(x[2], x[3])
		M = mat.NewDense(3, 3, []float64{
			a.X, b.X, d.X,
			a.Y, b.Y, d.Y,
			a.Z, b.Z, d.Z,
		})
	)
	scale := r3.Norm(a) * r3.Norm(b) * r3.Norm(d)
	if scale == 0 || math.Abs(mat.Det(M)) <= singularRatio*scale {
		return r3.Vec{}
	}
	local, ok := solve3(M, r3.Sub(global, x[3]))
	if !ok {
		return r3.Vec{}
	}
	return local
}

func containsTetrahedral(l r3.Vec) bool {
	return within(l.X, 0, 1) && within(l.Y, 0, 1) && within(l.Z, 0, 1) &&
		l.X+l.Y+l.Z <= 1+localTolerance
}

// tetSampling folds the unit cube onto the reference tetrahedron. Each of
// the five branches is a volume preserving map of one piece of the cube.
func tetSampling(s, t, u float64) r3.Vec {
	switch {
	case s+t+u <= 1:
		return r3.Vec{X: s, Y: t, Z: u}
	case s-t+u >= 1:
		return r3.Vec{X: 1 - u, Y: 1 - s, Z: t}
	case s+t-u >= 1:
		return r3.Vec{X: 1 - s, Y: 1 - t, Z: u}
	case -s+t+u >= 1:
		return r3.Vec{X: 1 - u, Y: s, Z: 1 - t}
	}
	return r3.Vec{
		X: 0.5 * (1 + s - t - u),
		Y: 0.5 * (1 - s + t - u),
		Z: 0.5 * (1 - s - t + u),
	}
}
