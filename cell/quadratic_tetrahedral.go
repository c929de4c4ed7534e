package cell

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// 10 node quadratic tetrahedron. The corners are node 0 at the origin,
// node 1 on the p axis, node 2 on the r axis and node 3 on the q axis.
// Nodes 4-9 sit at the middle of edges 0-1, 0-2, 0-3, 1-2, 2-3 and 1-3.
var quadraticTetrahedron = variant{
	numNodes:      10,
	initialGuess:  r3.Vec{X: 0.25, Y: 0.25, Z: 0.25},
	interpolation: quadTetInterpolation,
	differential:  quadTetDifferential,
	containsLocal: containsTetrahedral,
	volume:        quadTetVolume,
	sampling:      tetSampling,
}

var quadTetNodes = [10]r3.Vec{
	{}, {X: 1}, {Z: 1}, {Y: 1},
	{X: 0.5}, {Z: 0.5}, {Y: 0.5},
	{X: 0.5, Z: 0.5}, {Y: 0.5, Z: 0.5}, {X: 0.5, Y: 0.5},
}

func quadTetInterpolation(l r3.Vec, N []float64) {
	p, q, r := l.X, l.Y, l.Z
	w := 1 - p - q - r
	N[0] = w * (2*w - 1)
	N[1] = p * (2*p - 1)
	N[2] = r * (2*r - 1)
	N[3] = q * (2*q - 1)
	N[4] = 4 * p * w
	N[5] = 4 * r * w
	N[6] = 4 * q * w
	N[7] = 4 * r * p
	N[8] = 4 * q * r
	N[9] = 4 * p * q
}

func quadTetDifferential(l r3.Vec, dN []float64) {
	p, q, r := l.X, l.Y, l.Z
	w := 1 - p - q - r
	copy(dN, []float64{
		// d/dp
		1 - 4*w, 4*p - 1, 0, 0, 4 * (w - p), -4 * r, -4 * q, 4 * r, 0, 4 * q,
		// d/dq
		1 - 4*w, 0, 0, 4*q - 1, -4 * p, -4 * r, 4 * (w - q), 0, 4 * r, 4 * p,
		// d/dr
		1 - 4*w, 0, 4*r - 1, 0, -4 * p, 4 * (w - r), -4 * q, 4 * p, 4 * q, 0,
	})
}

// Eight tetrahedra splitting the reference cell at the edge midpoints.
var quadTetSubCells = [8][4]int{
	{0, 4, 5, 6}, {4, 1, 7, 9}, {5, 7, 2, 8}, {6, 9, 8, 3},
	{4, 7, 5, 6}, {4, 9, 7, 6}, {8, 6, 5, 7}, {8, 7, 9, 6},
}

// quadTetVolume evaluates |det J| at the centroid of each sub-cell. Every
// sub-cell covers 1/48 of the unit cube.
func quadTetVolume(c *Cell) (v float64) {
	pts := make([]r3.Vec, 0, len(quadTetSubCells))
	for _, sub := range quadTetSubCells {
		var ctr r3.Vec
		for _, n := range sub {
			ctr = r3.Add(ctr, quadTetNodes[n])
		}
		pts = append(pts, r3.Scale(0.25, ctr))
	}
	return c.meanDeterminant(pts) * float64(len(pts)) / 48
}
