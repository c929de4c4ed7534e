package volume

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnsupportedType is returned for scalar storage other than the fixed
// width integer and floating point kinds listed under ScalarType.
var ErrUnsupportedType = errors.New("unsupported scalar type")

type ScalarType uint8

const (
	Int8 ScalarType = iota
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
	Float32
	Float64
)

func (s ScalarType) String() string {
	names := [...]string{"int8", "int16", "int32", "int64",
		"uint8", "uint16", "uint32", "uint64", "float32", "float64"}
	if int(s) >= len(names) {
		return fmt.Sprintf("ScalarType(%d)", s)
	}
	return names[s]
}

type number interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ScalarArray is a read-only flat array of node values, VecLen components
// per node, in any supported storage type.
type ScalarArray struct {
	typ    ScalarType
	vecLen int
	length int
	data   any
	at     func(i int) float64
	at32   func(i int) float32
}

// NewScalarArray wraps values, which must be a slice of one of the supported
// element types. The slice is not copied.
func NewScalarArray(values any, vecLen int) (sa *ScalarArray, err error) {
	if vecLen < 1 {
		return nil, fmt.Errorf("vector length must be positive, have %d", vecLen)
	}
	switch v := values.(type) {
	case []int8:
		sa = wrap(v, Int8)
	case []int16:
		sa = wrap(v, Int16)
	case []int32:
		sa = wrap(v, Int32)
	case []int64:
		sa = wrap(v, Int64)
	case []uint8:
		sa = wrap(v, Uint8)
	case []uint16:
		sa = wrap(v, Uint16)
	case []uint32:
		sa = wrap(v, Uint32)
	case []uint64:
		sa = wrap(v, Uint64)
	case []float32:
		sa = wrap(v, Float32)
	case []float64:
		sa = wrap(v, Float64)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, values)
	}
	if sa.length%vecLen != 0 {
		return nil, fmt.Errorf("%d values do not divide into vectors of length %d",
			sa.length, vecLen)
	}
	sa.vecLen = vecLen
	return
}

func wrap[T number](v []T, typ ScalarType) *ScalarArray {
	return &ScalarArray{
		typ:    typ,
		length: len(v),
		data:   v,
		at:     func(i int) float64 { return float64(v[i]) },
		at32:   func(i int) float32 { return float32(v[i]) },
	}
}

func (sa *ScalarArray) Type() ScalarType { return sa.typ }

func (sa *ScalarArray) VecLen() int { return sa.vecLen }

// Len returns the number of stored components.
func (sa *ScalarArray) Len() int { return sa.length }

// NumberOfNodes returns Len()/VecLen().
func (sa *ScalarArray) NumberOfNodes() int { return sa.length / sa.vecLen }

// At returns component i converted to float64.
func (sa *ScalarArray) At(i int) float64 { return sa.at(i) }

// Float32At returns component i converted to float32.
func (sa *ScalarArray) Float32At(i int) float32 { return sa.at32(i) }

// Data returns the wrapped slice.
func (sa *ScalarArray) Data() any { return sa.data }

// MinMax returns the smallest and largest node value. Vector data is ranked
// by Euclidean magnitude.
func (sa *ScalarArray) MinMax() (min, max float64) {
	n := sa.NumberOfNodes()
	if n == 0 {
		return
	}
	min, max = math.Inf(1), math.Inf(-1)
	for i := 0; i < n; i++ {
		var v float64
		if sa.vecLen == 1 {
			v = sa.at(i)
		} else {
			for c := 0; c < sa.vecLen; c++ {
				x := sa.at(i*sa.vecLen + c)
				v += x * x
			}
			v = math.Sqrt(v)
		}
		min, max = math.Min(min, v), math.Max(max, v)
	}
	return
}
