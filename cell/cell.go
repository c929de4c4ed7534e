// Package cell evaluates interpolation functions, Jacobians, gradients and
// the global to local coordinate mapping inside one cell of an unstructured
// volume.
package cell

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/notargets/govis/utils"
	"github.com/notargets/govis/volume"
)

var ErrIndexOutOfRange = errors.New("cell index out of range")

// NewtonConfig bounds the Newton-Raphson iteration of GlobalToLocal.
type NewtonConfig struct {
	MaxIterations int
	Tolerance     float64 // stop once the local step is shorter than this
}

var DefaultNewton = NewtonConfig{MaxIterations: 100, Tolerance: 1e-6}

// localTolerance widens the reference cell in the containment tests so
// points recovered by Newton-Raphson on a face are still inside.
const localTolerance = 1e-6

// A Jacobian whose determinant is this small relative to the product of
// its row lengths is treated as singular.
const singularRatio = 1e-12

// variant is the dispatch entry of one cell type.
type variant struct {
	numNodes      int
	initialGuess  r3.Vec
	interpolation func(local r3.Vec, N []float64)
	// differential fills dN/dp, dN/dq and dN/dr one after the other.
	differential  func(local r3.Vec, dN []float64)
	containsLocal func(local r3.Vec) bool
	volume        func(c *Cell) float64
	// sampling folds three uniform numbers in [0,1) into the reference cell.
	sampling func(s, t, u float64) r3.Vec
	// globalToLocal is an exact inverse, nil when Newton-Raphson is used.
	globalToLocal func(c *Cell, global r3.Vec) r3.Vec
}

func variantOf(ct volume.CellType) (*variant, error) {
	switch ct {
	case volume.Tetrahedra:
		return &tetrahedron, nil
	case volume.Hexahedra:
		return &hexahedron, nil
	case volume.QuadraticTetrahedra:
		return &quadraticTetrahedron, nil
	case volume.QuadraticHexahedra:
		return &quadraticHexahedron, nil
	case volume.Pyramid:
		return &pyramid, nil
	case volume.Prism:
		return &prism, nil
	}
	return nil, fmt.Errorf("unsupported cell type %s", ct)
}

// Cell is a mutable view of one cell of an unstructured volume. It is not
// safe for concurrent use; give each goroutine its own Cell.
type Cell struct {
	vol     *volume.Unstructured
	v       *variant
	newton  NewtonConfig
	uniform distuv.Uniform

	index  int
	coords []r3.Vec
	values []float32
	local  r3.Vec
	N      []float64
	dN     []float64
}

type Option func(c *Cell)

func WithNewton(cfg NewtonConfig) Option {
	return func(c *Cell) { c.newton = cfg }
}

// WithRandSource makes RandomSampling draw from src.
func WithRandSource(src rand.Source) Option {
	return func(c *Cell) { c.uniform.Src = src }
}

// New returns an evaluator for the cells of vol, bound to cell 0.
func New(vol *volume.Unstructured, opts ...Option) (c *Cell, err error) {
	if vol == nil {
		return nil, fmt.Errorf("nil volume")
	}
	if vol.VecLen() != 1 {
		return nil, fmt.Errorf("volume has %d components per node, need a scalar field", vol.VecLen())
	}
	var v *variant
	if v, err = variantOf(vol.CellType); err != nil {
		return
	}
	if v.numNodes != vol.NodesPerCell() {
		return nil, fmt.Errorf("%s cells have %d nodes, volume declares %d",
			vol.CellType, v.numNodes, vol.NodesPerCell())
	}
	c = &Cell{
		vol:     vol,
		v:       v,
		newton:  DefaultNewton,
		uniform: distuv.Uniform{Min: 0, Max: 1},
		index:   -1,
		coords:  make([]r3.Vec, v.numNodes),
		values:  make([]float32, v.numNodes),
		N:       make([]float64, v.numNodes),
		dN:      make([]float64, 3*v.numNodes),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.newton.MaxIterations < 1 || !(c.newton.Tolerance > 0) {
		return nil, fmt.Errorf("invalid Newton-Raphson settings %+v", c.newton)
	}
	if vol.NumberOfCells() > 0 {
		err = c.Bind(0)
	}
	return
}

// Bind loads the node coordinates and values of cell index.
func (c *Cell) Bind(index int) error {
	if index < 0 || index >= c.vol.NumberOfCells() {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, index, c.vol.NumberOfCells())
	}
	values := c.vol.Values()
	for i, n := range c.vol.CellConnections(index) {
		c.coords[i] = c.vol.Node(int(n))
		c.values[i] = values.Float32At(int(n))
	}
	c.index = index
	c.SetLocalPoint(c.v.initialGuess)
	return nil
}

func (c *Cell) CellIndex() int { return c.index }

func (c *Cell) CellType() volume.CellType { return c.vol.CellType }

func (c *Cell) NumberOfNodes() int { return c.v.numNodes }

// Coords returns the bound node positions. The slice is reused by Bind.
func (c *Cell) Coords() []r3.Vec { return c.coords }

// Values returns the bound node values. The slice is reused by Bind.
func (c *Cell) Values() []float32 { return c.values }

// SetLocalPoint moves the evaluation point and updates the interpolation
// and differential functions there.
func (c *Cell) SetLocalPoint(local r3.Vec) {
	c.local = local
	c.UpdateInterpolationFunctions(local)
	c.UpdateDifferentialFunctions(local)
}

func (c *Cell) LocalPoint() r3.Vec { return c.local }

func (c *Cell) UpdateInterpolationFunctions(local r3.Vec) {
	c.v.interpolation(local, c.N)
}

func (c *Cell) UpdateDifferentialFunctions(local r3.Vec) {
	c.v.differential(local, c.dN)
}

// InterpolationFunctions returns N at the current local point.
func (c *Cell) InterpolationFunctions() []float64 { return c.N }

// DifferentialFunctions returns dN/dp, dN/dq and dN/dr concatenated.
func (c *Cell) DifferentialFunctions() []float64 { return c.dN }

// ScalarAt interpolates the node values at the current local point.
func (c *Cell) ScalarAt() (s float64) {
	for i, n := range c.N {
		s += n * float64(c.values[i])
	}
	return
}

// JacobiMatrix returns the Jacobian at the current local point. Row i holds
// the derivative of the global position along local axis i.
func (c *Cell) JacobiMatrix() *r3.Mat {
	var (
		nn = c.v.numNodes
		J  = r3.NewMat(nil)
	)
	for i := 0; i < 3; i++ {
		var row r3.Vec
		for n, d := range c.dN[i*nn : (i+1)*nn] {
			row = r3.Add(row, r3.Scale(d, c.coords[n]))
		}
		J.Set(i, 0, row.X)
		J.Set(i, 1, row.Y)
		J.Set(i, 2, row.Z)
	}
	return J
}

func singular(J *r3.Mat) bool {
	scale := r3.Norm(J.VecRow(0)) * r3.Norm(J.VecRow(1)) * r3.Norm(J.VecRow(2))
	return scale == 0 || math.Abs(J.Det()) <= singularRatio*scale
}

// solve3 returns x with A x = b, or false when A is singular.
func solve3(A mat.Matrix, b r3.Vec) (x r3.Vec, ok bool) {
	var v mat.VecDense
	if err := v.SolveVec(A, mat.NewVecDense(3, []float64{b.X, b.Y, b.Z})); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return
		}
	}
	x = r3.Vec{X: v.AtVec(0), Y: v.AtVec(1), Z: v.AtVec(2)}
	ok = !(math.IsNaN(x.X) || math.IsNaN(x.Y) || math.IsNaN(x.Z) ||
		math.IsInf(x.X, 0) || math.IsInf(x.Y, 0) || math.IsInf(x.Z, 0))
	return
}

// GradientAt returns the global gradient of the field at the current local
// point. A degenerate cell yields the zero vector.
func (c *Cell) GradientAt() r3.Vec {
	var (
		nn = c.v.numNodes
		g  r3.Vec
	)
	for n := 0; n < nn; n++ {
		v := float64(c.values[n])
		g.X += v * c.dN[n]
		g.Y += v * c.dN[nn+n]
		g.Z += v * c.dN[2*nn+n]
	}
	J := c.JacobiMatrix()
	if singular(J) {
		utils.Logger().Debug("zero gradient for degenerate cell", "cell", c.index)
		return r3.Vec{}
	}
	G, ok := solve3(J, g)
	if !ok {
		return r3.Vec{}
	}
	return G
}

// LocalToGlobal maps local to object space. The evaluation point moves to
// local.
func (c *Cell) LocalToGlobal(local r3.Vec) r3.Vec {
	c.SetLocalPoint(local)
	return c.globalPoint()
}

func (c *Cell) globalPoint() (X r3.Vec) {
	for i, n := range c.N {
		X = r3.Add(X, r3.Scale(n, c.coords[i]))
	}
	return
}

// GlobalToLocal returns the local coordinates of global and leaves the
// evaluation point there. Cells without a closed form inverse iterate
// Newton-Raphson from the reference centroid; when the iteration does not
// converge the last estimate is returned.
func (c *Cell) GlobalToLocal(global r3.Vec) r3.Vec {
	if c.v.globalToLocal != nil {
		local := c.v.globalToLocal(c, global)
		c.SetLocalPoint(local)
		return local
	}
	local := c.v.initialGuess
	for it := 0; it < c.newton.MaxIterations; it++ {
		c.SetLocalPoint(local)
		dX := r3.Sub(global, c.globalPoint())
		J := c.JacobiMatrix()
		if singular(J) {
			utils.Logger().Debug("singular Jacobian in Newton-Raphson",
				"cell", c.index, "iteration", it)
			break
		}
		// X(local+d) ~ X(local) + J^T d
		d, ok := solve3(J.T(), dX)
		if !ok {
			break
		}
		local = r3.Add(local, d)
		if r3.Norm(d) < c.newton.Tolerance {
			c.SetLocalPoint(local)
			return local
		}
	}
	utils.Logger().Debug("Newton-Raphson did not converge",
		"cell", c.index, "global", global, "local", local)
	c.SetLocalPoint(local)
	return local
}

// Volume returns the volume of the bound cell.
func (c *Cell) Volume() float64 {
	local := c.local
	defer c.SetLocalPoint(local)
	return c.v.volume(c)
}

// meanDeterminant averages |det J| over the given local points.
func (c *Cell) meanDeterminant(points []r3.Vec) (mean float64) {
	for _, p := range points {
		c.SetLocalPoint(p)
		mean += math.Abs(c.JacobiMatrix().Det())
	}
	return mean / float64(len(points))
}

// RandomSampling moves the evaluation point to a uniformly distributed
// point of the reference cell and returns its global position.
func (c *Cell) RandomSampling() r3.Vec {
	s, t, u := c.uniform.Rand(), c.uniform.Rand(), c.uniform.Rand()
	return c.LocalToGlobal(c.v.sampling(s, t, u))
}

// Center returns the average of the node positions.
func (c *Cell) Center() (center r3.Vec) {
	for _, p := range c.coords {
		center = r3.Add(center, p)
	}
	return r3.Scale(1/float64(len(c.coords)), center)
}

// Bounds returns the axis aligned box around the nodes.
func (c *Cell) Bounds() (b r3.Box) {
	b.Min, b.Max = c.coords[0], c.coords[0]
	for _, p := range c.coords[1:] {
		b.Min = r3.Vec{X: math.Min(b.Min.X, p.X), Y: math.Min(b.Min.Y, p.Y), Z: math.Min(b.Min.Z, p.Z)}
		b.Max = r3.Vec{X: math.Max(b.Max.X, p.X), Y: math.Max(b.Max.Y, p.Y), Z: math.Max(b.Max.Z, p.Z)}
	}
	return
}

// ContainsLocalPoint reports whether local lies in the reference cell.
func (c *Cell) ContainsLocalPoint(local r3.Vec) bool {
	return c.v.containsLocal(local)
}

// Contains reports whether global lies inside the bound cell. The
// evaluation point is left at the local coordinates of global when the
// bounding box test passes.
func (c *Cell) Contains(global r3.Vec) bool {
	b := c.Bounds()
	pad := localTolerance * r3.Norm(b.Size())
	if global.X < b.Min.X-pad || global.X > b.Max.X+pad ||
		global.Y < b.Min.Y-pad || global.Y > b.Max.Y+pad ||
		global.Z < b.Min.Z-pad || global.Z > b.Max.Z+pad {
		return false
	}
	return c.ContainsLocalPoint(c.GlobalToLocal(global))
}

// ScalarAtGlobal interpolates the field at global if it lies in the bound
// cell.
func (c *Cell) ScalarAtGlobal(global r3.Vec) (s float64, ok bool) {
	if !c.Contains(global) {
		return
	}
	return c.ScalarAt(), true
}

// within reports lo-tol <= x <= hi+tol.
func within(x, lo, hi float64) bool {
	return x >= lo-localTolerance && x <= hi+localTolerance
}
