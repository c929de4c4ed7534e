package volume

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/govis/topology"
)

func TestScalarArrayTypes(t *testing.T) {
	for _, tc := range []struct {
		values any
		typ    ScalarType
	}{
		{[]int8{-128, 0, 127}, Int8},
		{[]int16{-3, 0, 3}, Int16},
		{[]int32{-3, 0, 3}, Int32},
		{[]int64{-3, 0, 3}, Int64},
		{[]uint8{0, 1, 255}, Uint8},
		{[]uint16{0, 1, 3}, Uint16},
		{[]uint32{0, 1, 3}, Uint32},
		{[]uint64{0, 1, 3}, Uint64},
		{[]float32{-1.5, 0, 2.5}, Float32},
		{[]float64{-1.5, 0, 2.5}, Float64},
	} {
		t.Run(tc.typ.String(), func(t *testing.T) {
			sa, err := NewScalarArray(tc.values, 1)
			require.NoError(t, err)
			assert.Equal(t, tc.typ, sa.Type())
			assert.Equal(t, 3, sa.Len())
			assert.Equal(t, 3, sa.NumberOfNodes())
			assert.Equal(t, float64(sa.Float32At(2)), sa.At(2))
			min, max := sa.MinMax()
			assert.Equal(t, sa.At(0), min)
			assert.Equal(t, sa.At(2), max)
		})
	}
}

func TestScalarArrayErrors(t *testing.T) {
	_, err := NewScalarArray([]string{"a"}, 1)
	assert.True(t, errors.Is(err, ErrUnsupportedType))
	_, err = NewScalarArray([]float32{1, 2, 3}, 2)
	assert.Error(t, err)
	_, err = NewScalarArray([]float32{1, 2}, 0)
	assert.Error(t, err)
}

func TestScalarArrayVectorRange(t *testing.T) {
	sa, err := NewScalarArray([]float64{3, 4, 0, 0, 1, 0}, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, sa.NumberOfNodes())
	min, max := sa.MinMax()
	assert.InDelta(t, 1., min, 1e-15)
	assert.InDelta(t, 5., max, 1e-15)
}

func TestNewUnstructured(t *testing.T) {
	coords := []float32{0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1}
	values, _ := NewScalarArray([]uint8{10, 20, 30, 40}, 1)

	u, err := NewUnstructured(Tetrahedra, coords, []uint32{0, 1, 2, 3}, values)
	require.NoError(t, err)
	assert.Equal(t, 1, u.NumberOfCells())
	assert.Equal(t, 4, u.NumberOfNodes())
	assert.Equal(t, r3.Vec{X: 1}, u.Node(1))
	assert.Equal(t, []uint32{0, 1, 2, 3}, u.CellConnections(0))
	assert.Equal(t, r3.Box{Max: r3.Vec{X: 1, Y: 1, Z: 1}}, u.Bounds())
	min, max := u.MinMaxValues()
	assert.Equal(t, 10., min)
	assert.Equal(t, 40., max)
	u.SetMinMaxValues(0, 100)
	assert.True(t, u.HasMinMaxValues())
	min, max = u.MinMaxValues()
	assert.Equal(t, 0., min)
	assert.Equal(t, 100., max)

	for _, tc := range []struct {
		name   string
		ct     CellType
		coords []float32
		conn   []uint32
	}{
		{"unknown cell type", CellType(42), coords, []uint32{0, 1, 2, 3}},
		{"ragged connections", Tetrahedra, coords, []uint32{0, 1, 2}},
		{"ragged coordinates", Tetrahedra, coords[:11], []uint32{0, 1, 2, 3}},
		{"node out of range", Tetrahedra, coords, []uint32{0, 1, 2, 4}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewUnstructured(tc.ct, tc.coords, tc.conn, values)
			assert.Error(t, err)
		})
	}
	_, err = NewUnstructured(Tetrahedra, coords[:9], []uint32{0, 1, 2, 0}, values)
	assert.Error(t, err, "3 nodes but 4 values")
}

func TestCellType(t *testing.T) {
	for c := Tetrahedra; c <= Prism; c++ {
		parsed, err := ParseCellType(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
		assert.NotZero(t, c.NodesPerCell())
		topo, ok := c.Topology()
		if ok {
			assert.Equal(t, c.NodesPerCell(), topo.NumCorners())
		}
	}
	_, ok := QuadraticHexahedra.Topology()
	assert.False(t, ok)
	_, err := ParseCellType("Octahedra")
	assert.Error(t, err)
	assert.Equal(t, "CellType(9)", CellType(9).String())
}

func TestStructured(t *testing.T) {
	values, _ := NewScalarArray(make([]float64, 3*4*5), 1)
	s, err := NewStructured([3]int{3, 4, 5}, values)
	require.NoError(t, err)
	assert.Equal(t, 2*3*4, s.NumberOfCells())
	assert.Equal(t, r3.Vec{X: 1, Y: 1, Z: 1}, s.Spacing())
	assert.Equal(t, r3.Box{Max: r3.Vec{X: 2, Y: 3, Z: 4}}, s.Bounds())

	require.NoError(t, s.SetObjectBounds(r3.Vec{X: -1, Y: -1, Z: -1}, r3.Vec{X: 1, Y: 2, Z: 3}))
	assert.Equal(t, r3.Vec{X: 1, Y: 1, Z: 1}, s.Spacing())
	assert.Equal(t, r3.Vec{X: 0, Y: 1, Z: 2}, s.NodePosition(1, 2, 3))
	assert.Equal(t, 1+3*(2+4*3), s.NodeIndex(1, 2, 3))
	assert.Error(t, s.SetObjectBounds(r3.Vec{}, r3.Vec{X: 1, Y: 1}))

	i, j, k := s.CellOrigin(2*3*4 - 1)
	assert.Equal(t, [3]int{1, 2, 3}, [3]int{i, j, k})

	_, err = NewStructured([3]int{1, 4, 5}, values)
	assert.Error(t, err)
	_, err = NewStructured([3]int{3, 4, 6}, values)
	assert.Error(t, err)
}

func TestBuilders(t *testing.T) {
	l := Lattice{Resolution: [3]int{3, 3, 3}, Max: r3.Vec{X: 1, Y: 1, Z: 1}}
	field, err := FieldByName("linear")
	require.NoError(t, err)

	s, err := NewStructuredField(l, field)
	require.NoError(t, err)
	assert.Equal(t, 8, s.NumberOfCells())
	assert.InDelta(t, 6., float64(s.Values().At(s.NodeIndex(2, 2, 2))), 1e-6)

	for _, tc := range []struct {
		ct     CellType
		ncells int
		nnodes int
	}{
		{Hexahedra, 8, 27},
		{Tetrahedra, 48, 27},
		{Prism, 16, 27},
		{Pyramid, 48, 35},
		{QuadraticHexahedra, 8, 27 + 54},
		{QuadraticTetrahedra, 48, 27 + 98},
	} {
		t.Run(tc.ct.String(), func(t *testing.T) {
			u, err := NewUnstructuredField(l, tc.ct, field)
			require.NoError(t, err)
			assert.Equal(t, tc.ncells, u.NumberOfCells())
			assert.Equal(t, tc.nnodes, u.NumberOfNodes())
			for n := 0; n < u.NumberOfNodes(); n++ {
				assert.InDelta(t, field(u.Node(n)), u.Values().At(n), 1e-5)
			}
		})
	}
	_, err = NewUnstructuredField(l, CellType(42), field)
	assert.Error(t, err)
	_, err = NewStructuredField(Lattice{Resolution: [3]int{2, 2, 2}}, field)
	assert.Error(t, err)
	_, err = FieldByName("nope")
	assert.Error(t, err)
	assert.Equal(t, []string{"linear", "radial", "saddle", "wave"}, FieldNames())
	assert.InDelta(t, math.Sqrt(3), fields["radial"](r3.Vec{X: 1, Y: 1, Z: 1}), 1e-15)
}

func TestBuildersOrientation(t *testing.T) {
	l := Lattice{Resolution: [3]int{4, 4, 4}, Max: r3.Vec{X: 1, Y: 1, Z: 1}}
	field, err := FieldByName("linear")
	require.NoError(t, err)

	// signedVolume is the triple product of the corner tetrahedron a, b, c, d.
	signedVolume := func(a, b, c, d r3.Vec) float64 {
		return r3.Dot(r3.Cross(r3.Sub(b, a), r3.Sub(c, a)), r3.Sub(d, a))
	}
	for _, tc := range []struct {
		ct      CellType
		topo    topology.Topology
		corners [4]int
	}{
		{Tetrahedra, topology.Tetrahedron, [4]int{0, 1, 2, 3}},
		{QuadraticTetrahedra, topology.Tetrahedron, [4]int{0, 1, 2, 3}},
		{Hexahedra, topology.Hexahedron, [4]int{0, 1, 3, 4}},
		{Prism, topology.Prism, [4]int{0, 1, 2, 3}},
		{Pyramid, topology.Pyramid, [4]int{1, 2, 4, 0}},
	} {
		t.Run(tc.ct.String(), func(t *testing.T) {
			ref := topology.ReferenceCorners(tc.topo)
			k := tc.corners
			want := signedVolume(ref[k[0]], ref[k[1]], ref[k[2]], ref[k[3]])
			require.NotZero(t, want)

			u, err := NewUnstructuredField(l, tc.ct, field)
			require.NoError(t, err)
			for cell := 0; cell < u.NumberOfCells(); cell++ {
				conn := u.CellConnections(cell)
				got := signedVolume(u.Node(int(conn[k[0]])), u.Node(int(conn[k[1]])),
					u.Node(int(conn[k[2]])), u.Node(int(conn[k[3]])))
				require.Greater(t, got*want, 0., "cell %d is inverted", cell)
			}
		})
	}
}
