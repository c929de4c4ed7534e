package plane

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

var unitCube = []r3.Vec{
	{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0},
	{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 0, Y: 1, Z: 1},
}

func TestFromPointNormal(t *testing.T) {
	p, err := FromPointNormal(r3.Vec{X: 0, Y: 0, Z: 0.5}, r3.Vec{Z: 2})
	require.NoError(t, err)
	assert.Equal(t, New(0, 0, 2, -1), p)
	assert.Equal(t, r3.Vec{Z: 2}, p.Normal())
	assert.InDelta(t, 0., p.Evaluate(r3.Vec{X: 3, Y: -4, Z: 0.5}), 1e-15)

	_, err = FromPointNormal(r3.Vec{}, r3.Vec{})
	assert.Error(t, err)
}

func TestBuildMask(t *testing.T) {
	p := New(0, 0, 1, -0.5)
	assert.Equal(t, uint(0xf0), p.BuildMask(unitCube))

	// A vertex exactly on the plane counts as negative.
	on := New(1, 0, 0, -1)
	assert.False(t, on.Above(unitCube[1]))
	assert.Equal(t, uint(0), on.BuildMask(unitCube))

	tet := []r3.Vec{{X: 1}, {Y: 1}, {Z: 1}, {}}
	assert.Equal(t, uint(0x1), New(1, 0, 0, -0.5).BuildMask(tet))
	assert.Equal(t, uint(0xe), New(-1, 0, 0, 0.5).BuildMask(tet))
}

func TestClassify(t *testing.T) {
	assert.Equal(t, uint(0), Classify(nil))
	assert.Equal(t, uint(0x5), Classify([]float64{1, 0, 2, -1}))
	assert.Equal(t, uint(0), Classify([]float64{0, -0.5, math.Copysign(0, -1)}))

	rng := rand.New(rand.NewPCG(3, 4))
	values := make([]float64, len(unitCube))
	for trial := 0; trial < 1000; trial++ {
		p := New(rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64())
		if trial%10 == 0 {
			// Put a corner exactly on the plane.
			p, _ = FromPointNormal(unitCube[trial%len(unitCube)], p.Normal())
		}
		for i, v := range unitCube {
			values[i] = p.Evaluate(v)
		}
		assert.Equal(t, p.BuildMask(unitCube), Classify(values))
		assert.Equal(t, p.BuildMask(unitCube[:5]), Classify(values[:5]))
	}
}

func TestBuildMaskScaleInvariant(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for trial := 0; trial < 1000; trial++ {
		p := New(rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64())
		s := 1e-3 + 1e3*rng.Float64()
		assert.Equal(t, p.BuildMask(unitCube), p.Scale(s).BuildMask(unitCube))
		assert.Equal(t, p.BuildMask(unitCube[:4]), p.Scale(s).BuildMask(unitCube[:4]))
	}
}

func TestIntersect(t *testing.T) {
	p := New(0, 0, 1, -0.5)
	for _, tc := range []struct {
		name   string
		v0, v1 r3.Vec
		point  r3.Vec
		t      float64
	}{
		{"upward edge", r3.Vec{Z: 0}, r3.Vec{Z: 1}, r3.Vec{Z: 0.5}, 0.5},
		{"downward edge", r3.Vec{X: 1, Z: 1}, r3.Vec{X: 1}, r3.Vec{X: 1, Z: 0.5}, 0.5},
		{"short side", r3.Vec{Z: 0.25}, r3.Vec{Z: 1.25}, r3.Vec{Z: 0.5}, 0.25},
	} {
		t.Run(tc.name, func(t *testing.T) {
			point, param := p.Intersect(tc.v0, tc.v1)
			assert.InDelta(t, tc.t, param, 1e-15)
			assert.InDelta(t, tc.point.X, point.X, 1e-15)
			assert.InDelta(t, tc.point.Y, point.Y, 1e-15)
			assert.InDelta(t, tc.point.Z, point.Z, 1e-15)
		})
	}
	assert.InDelta(t, 0.25, Parameter(-1, 3), 1e-15)
	assert.Equal(t, "0*x + 0*y + 1*z + -0.5 = 0", p.String())
}
