package cell

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/govis/topology"
	"github.com/notargets/govis/volume"
)

var allTypes = []volume.CellType{
	volume.Tetrahedra, volume.Hexahedra, volume.QuadraticTetrahedra,
	volume.QuadraticHexahedra, volume.Pyramid, volume.Prism,
}

// referenceNodes returns the local coordinates of every node of ct.
func referenceNodes(ct volume.CellType) []r3.Vec {
	switch ct {
	case volume.QuadraticTetrahedra:
		return quadTetNodes[:]
	case volume.QuadraticHexahedra:
		nodes := make([]r3.Vec, 0, 20)
		for _, n := range quadHexNodes {
			nodes = append(nodes, r3.Scale(0.5, r3.Add(n, r3.Vec{X: 1, Y: 1, Z: 1})))
		}
		return nodes
	}
	topo, _ := ct.Topology()
	return topology.ReferenceCorners(topo)
}

var (
	skew = r3.NewMat([]float64{
		2.0, 0.3, 0.1,
		0.2, 1.5, 0.4,
		0.1, 0.2, 1.2,
	})
	shift = r3.Vec{X: 1, Y: -2, Z: 0.5}
)

func affine(l r3.Vec) r3.Vec { return r3.Add(skew.MulVec(l), shift) }

func linearField(p r3.Vec) float64 { return p.X + 2*p.Y + 3*p.Z }

// singleCell builds a one cell volume from node positions, sampling field
// at the nodes.
func singleCell(t *testing.T, ct volume.CellType, nodes []r3.Vec, field func(r3.Vec) float64) *volume.Unstructured {
	var (
		coords = make([]float32, 0, 3*len(nodes))
		values = make([]float32, 0, len(nodes))
		conn   = make([]uint32, 0, len(nodes))
	)
	for i, n := range nodes {
		coords = append(coords, float32(n.X), float32(n.Y), float32(n.Z))
		values = append(values, float32(field(n)))
		conn = append(conn, uint32(i))
	}
	sa, err := volume.NewScalarArray(values, 1)
	require.NoError(t, err)
	vol, err := volume.NewUnstructured(ct, coords, conn, sa)
	require.NoError(t, err)
	return vol
}

func mappedCell(t *testing.T, ct volume.CellType, opts ...Option) *Cell {
	var nodes []r3.Vec
	for _, n := range referenceNodes(ct) {
		nodes = append(nodes, affine(n))
	}
	c, err := New(singleCell(t, ct, nodes, linearField), opts...)
	require.NoError(t, err)
	return c
}

// randomLocal returns a point strictly inside the reference cell of ct.
func randomLocal(rng *rand.Rand, ct volume.CellType) r3.Vec {
	v, _ := variantOf(ct)
	for {
		l := v.sampling(rng.Float64(), rng.Float64(), rng.Float64())
		if ct != volume.Pyramid || l.Z < 0.95 {
			return l
		}
	}
}

func TestShapeFunctions(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	for _, ct := range allTypes {
		t.Run(ct.String(), func(t *testing.T) {
			v, err := variantOf(ct)
			require.NoError(t, err)
			nn := v.numNodes
			assert.Equal(t, ct.NodesPerCell(), nn)
			N := make([]float64, nn)
			dN := make([]float64, 3*nn)
			{ // Kronecker property at the nodes
				for i, node := range referenceNodes(ct) {
					v.interpolation(node, N)
					for j := range N {
						want := 0.
						if i == j {
							want = 1
						}
						assert.InDeltaf(t, want, N[j], 1e-8, "N%d at node %d", j, i)
					}
				}
			}
			{ // Partition of unity, derivatives sum to zero and match finite differences
				const h = 1e-6
				Np, Nm := make([]float64, nn), make([]float64, nn)
				for trial := 0; trial < 50; trial++ {
					l := randomLocal(rng, ct)
					v.interpolation(l, N)
					v.differential(l, dN)
					var sum float64
					for _, n := range N {
						sum += n
					}
					assert.InDelta(t, 1., sum, 1e-12)
					for axis := 0; axis < 3; axis++ {
						var dsum float64
						for _, d := range dN[axis*nn : (axis+1)*nn] {
							dsum += d
						}
						assert.InDelta(t, 0., dsum, 1e-12)

						var step r3.Vec
						switch axis {
						case 0:
							step.X = h
						case 1:
							step.Y = h
						case 2:
							step.Z = h
						}
						v.interpolation(r3.Add(l, step), Np)
						v.interpolation(r3.Sub(l, step), Nm)
						for n := 0; n < nn; n++ {
							assert.InDelta(t, (Np[n]-Nm[n])/(2*h), dN[axis*nn+n], 1e-5)
						}
					}
				}
			}
		})
	}
}

func TestAffineCells(t *testing.T) {
	var (
		rng       = rand.New(rand.NewPCG(11, 13))
		detSkew   = skew.Det()
		refVolume = map[volume.CellType]float64{
			volume.Tetrahedra: 1. / 6, volume.QuadraticTetrahedra: 1. / 6,
			volume.Hexahedra: 1, volume.QuadraticHexahedra: 1,
			volume.Pyramid: 1. / 3, volume.Prism: 0.5,
		}
	)
	for _, ct := range allTypes {
		t.Run(ct.String(), func(t *testing.T) {
			c := mappedCell(t, ct)
			assert.Equal(t, 0, c.CellIndex())
			assert.Equal(t, ct, c.CellType())
			assert.Equal(t, ct.NodesPerCell(), c.NumberOfNodes())
			assert.Len(t, c.Coords(), ct.NodesPerCell())
			assert.Len(t, c.Values(), ct.NodesPerCell())
			assert.InDelta(t, refVolume[ct]*detSkew, c.Volume(), 1e-5)
			for trial := 0; trial < 20; trial++ {
				l := randomLocal(rng, ct)
				X := c.LocalToGlobal(l)
				assert.InDelta(t, 0., r3.Norm(r3.Sub(affine(l), X)), 1e-5)
				assert.InDelta(t, linearField(X), c.ScalarAt(), 1e-4)
				G := c.GradientAt()
				assert.InDelta(t, 1., G.X, 1e-4)
				assert.InDelta(t, 2., G.Y, 1e-4)
				assert.InDelta(t, 3., G.Z, 1e-4)

				back := c.GlobalToLocal(X)
				assert.InDelta(t, 0., r3.Norm(r3.Sub(back, l)), 1e-5)
				assert.Equal(t, back, c.LocalPoint())
				assert.True(t, c.ContainsLocalPoint(back))
				assert.True(t, c.Contains(X))
				s, ok := c.ScalarAtGlobal(X)
				assert.True(t, ok)
				assert.InDelta(t, linearField(X), s, 1e-4)
			}
			{ // Jacobian rows are the images of the local axes
				c.SetLocalPoint(randomLocal(rng, ct))
				J := c.JacobiMatrix()
				for i := 0; i < 3; i++ {
					assert.InDelta(t, 0., r3.Norm(r3.Sub(skew.VecCol(i), J.VecRow(i))), 1e-5)
				}
			}
			{ // Far away points are rejected
				far := r3.Add(c.Center(), r3.Vec{X: 100})
				assert.False(t, c.Contains(far))
				_, ok := c.ScalarAtGlobal(far)
				assert.False(t, ok)
			}
		})
	}
}

func TestDistortedHexahedron(t *testing.T) {
	var nodes []r3.Vec
	for i, n := range referenceNodes(volume.Hexahedra) {
		if i == 2 {
			n = r3.Vec{X: 1.3, Y: 1.2, Z: 1.4}
		}
		nodes = append(nodes, n)
	}
	c, err := New(singleCell(t, volume.Hexahedra, nodes, linearField),
		WithNewton(NewtonConfig{MaxIterations: 50, Tolerance: 1e-10}))
	require.NoError(t, err)
	rng := rand.New(rand.NewPCG(17, 19))
	for trial := 0; trial < 50; trial++ {
		l := r3.Vec{X: rng.Float64(), Y: rng.Float64(), Z: rng.Float64()}
		X := c.LocalToGlobal(l)
		assert.InDelta(t, 0., r3.Norm(r3.Sub(c.GlobalToLocal(X), l)), 1e-8)
	}
	assert.Greater(t, c.Volume(), 1.)
	b := c.Bounds()
	assert.Equal(t, r3.Vec{}, b.Min)
	assert.InDelta(t, 1.4, b.Max.Z, 1e-6)
}

func TestDegenerateCell(t *testing.T) {
	flat := []r3.Vec{{X: 1}, {Y: 1}, {X: 1, Y: 1}, {}}
	c, err := New(singleCell(t, volume.Tetrahedra, flat, linearField))
	require.NoError(t, err)
	assert.Equal(t, r3.Vec{}, c.GradientAt())
	assert.Equal(t, 0., c.Volume())
	assert.Equal(t, r3.Vec{}, c.GlobalToLocal(r3.Vec{X: 0.5, Y: 0.5}))

	var hex []r3.Vec
	for _, n := range referenceNodes(volume.Hexahedra) {
		hex = append(hex, r3.Vec{X: n.X, Y: n.Y})
	}
	c, err = New(singleCell(t, volume.Hexahedra, hex, linearField))
	require.NoError(t, err)
	assert.Equal(t, r3.Vec{}, c.GradientAt())
	// Newton gives up on the first step and keeps the initial guess
	assert.Equal(t, hexahedron.initialGuess, c.GlobalToLocal(r3.Vec{X: 0.2, Y: 0.2}))
}

func TestRandomSampling(t *testing.T) {
	centroid := map[volume.CellType]r3.Vec{
		volume.Tetrahedra:          {X: 0.25, Y: 0.25, Z: 0.25},
		volume.QuadraticTetrahedra: {X: 0.25, Y: 0.25, Z: 0.25},
		volume.Hexahedra:           {X: 0.5, Y: 0.5, Z: 0.5},
		volume.QuadraticHexahedra:  {X: 0.5, Y: 0.5, Z: 0.5},
		volume.Prism:               {X: 1. / 3, Y: 1. / 3, Z: 0.5},
		volume.Pyramid:             {Z: 0.25},
	}
	for _, ct := range allTypes {
		t.Run(ct.String(), func(t *testing.T) {
			const samples = 20000
			c := mappedCell(t, ct, WithRandSource(rand.NewPCG(1, 2)))
			var mean r3.Vec
			for i := 0; i < samples; i++ {
				X := c.RandomSampling()
				l := c.LocalPoint()
				require.True(t, c.ContainsLocalPoint(l), "sample %v outside", l)
				assert.InDelta(t, 0., r3.Norm(r3.Sub(affine(l), X)), 1e-5)
				mean = r3.Add(mean, l)
			}
			mean = r3.Scale(1./samples, mean)
			assert.InDelta(t, 0., r3.Norm(r3.Sub(mean, centroid[ct])), 0.01)

			// Same seed, same sequence
			a := mappedCell(t, ct, WithRandSource(rand.NewPCG(7, 7)))
			b := mappedCell(t, ct, WithRandSource(rand.NewPCG(7, 7)))
			for i := 0; i < 10; i++ {
				assert.Equal(t, a.RandomSampling(), b.RandomSampling())
			}
		})
	}
}

func TestBind(t *testing.T) {
	l := volume.Lattice{Resolution: [3]int{3, 3, 3}, Max: r3.Vec{X: 1, Y: 1, Z: 1}}
	for _, ct := range allTypes {
		t.Run(ct.String(), func(t *testing.T) {
			vol, err := volume.NewUnstructuredField(l, ct, linearField)
			require.NoError(t, err)
			c, err := New(vol)
			require.NoError(t, err)
			var total float64
			for i := 0; i < vol.NumberOfCells(); i++ {
				require.NoError(t, c.Bind(i))
				assert.Equal(t, i, c.CellIndex())
				total += c.Volume()
				G := c.GradientAt()
				assert.InDelta(t, 1., G.X, 1e-4)
				assert.InDelta(t, 2., G.Y, 1e-4)
				assert.InDelta(t, 3., G.Z, 1e-4)
				center := c.Center()
				assert.True(t, c.Contains(center))
				s, ok := c.ScalarAtGlobal(center)
				assert.True(t, ok)
				assert.InDelta(t, linearField(center), s, 1e-4)
			}
			// The cells tile the unit box
			assert.InDelta(t, 1., total, 1e-5)

			err = c.Bind(vol.NumberOfCells())
			assert.True(t, errors.Is(err, ErrIndexOutOfRange))
			assert.True(t, errors.Is(c.Bind(-1), ErrIndexOutOfRange))
			// A failed bind keeps the previous cell
			assert.Equal(t, vol.NumberOfCells()-1, c.CellIndex())
		})
	}
}

func TestNewErrors(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)

	coords := []float32{0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1}
	vec, err := volume.NewScalarArray(make([]float32, 12), 3)
	require.NoError(t, err)
	vol, err := volume.NewUnstructured(volume.Tetrahedra, coords, []uint32{0, 1, 2, 3}, vec)
	require.NoError(t, err)
	_, err = New(vol)
	assert.Error(t, err, "vector data")

	scalar, err := volume.NewScalarArray([]int16{1, 2, 3, 4}, 1)
	require.NoError(t, err)
	vol, err = volume.NewUnstructured(volume.Tetrahedra, coords, []uint32{0, 1, 2, 3}, scalar)
	require.NoError(t, err)
	_, err = New(vol, WithNewton(NewtonConfig{}))
	assert.Error(t, err, "zero Newton settings")

	c, err := New(vol)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2, 3, 4}, c.Values())
	assert.InDelta(t, 2.5, c.ScalarAt(), 1e-12) // at the centroid
	assert.Equal(t, r3.Vec{X: 0.25, Y: 0.25, Z: 0.25}, c.Center())
	assert.InDelta(t, 1./6, c.Volume(), 1e-15)
}
