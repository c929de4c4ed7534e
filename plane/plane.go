// Package plane classifies points against a cutting plane a*x+b*y+c*z+d = 0.
package plane

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Plane holds the coefficients of a*x + b*y + c*z + d = 0. Points with a
// positive value lie on the positive side.
type Plane struct {
	A, B, C, D float64
}

func New(a, b, c, d float64) Plane {
	return Plane{A: a, B: b, C: c, D: d}
}

// FromPointNormal returns the plane through point with the given normal.
// The normal need not be unit length.
func FromPointNormal(point, normal r3.Vec) (p Plane, err error) {
	if r3.Norm2(normal) == 0 {
		err = fmt.Errorf("plane normal must be non-zero")
		return
	}
	p = Plane{A: normal.X, B: normal.Y, C: normal.Z, D: -r3.Dot(normal, point)}
	return
}

// Normal returns (a, b, c).
func (p Plane) Normal() r3.Vec {
	return r3.Vec{X: p.A, Y: p.B, Z: p.C}
}

// Scale multiplies every coefficient by s. A positive s describes the same
// plane with the same positive side.
func (p Plane) Scale(s float64) Plane {
	return Plane{A: s * p.A, B: s * p.B, C: s * p.C, D: s * p.D}
}

// Evaluate returns the signed plane value at v.
func (p Plane) Evaluate(v r3.Vec) float64 {
	return p.A*v.X + p.B*v.Y + p.C*v.Z + p.D
}

// Above reports whether v is strictly on the positive side. A point exactly
// on the plane is not above it.
func (p Plane) Above(v r3.Vec) bool {
	return positive(p.Evaluate(v))
}

// BuildMask sets bit i when vertices[i] is strictly on the positive side.
func (p Plane) BuildMask(vertices []r3.Vec) (mask uint) {
	for i, v := range vertices {
		if p.Above(v) {
			mask |= 1 << uint(i)
		}
	}
	return
}

// Classify builds the same mask as BuildMask from plane values that were
// already evaluated, setting bit i when values[i] is strictly positive.
func Classify(values []float64) (mask uint) {
	for i, f := range values {
		if positive(f) {
			mask |= 1 << uint(i)
		}
	}
	return
}

func positive(f float64) bool { return f > 0 }

// Parameter returns the interpolation parameter t = |f0/(f1-f0)| of the
// zero crossing between two plane values of opposite sign.
func Parameter(f0, f1 float64) float64 {
	return math.Abs(f0 / (f1 - f0))
}

// Intersect returns the crossing point (1-t)*v0 + t*v1 on the segment v0-v1
// and its parameter t. The endpoints must lie on opposite sides.
func (p Plane) Intersect(v0, v1 r3.Vec) (point r3.Vec, t float64) {
	t = Parameter(p.Evaluate(v0), p.Evaluate(v1))
	point = r3.Add(r3.Scale(1-t, v0), r3.Scale(t, v1))
	return
}

func (p Plane) String() string {
	return fmt.Sprintf("%g*x + %g*y + %g*z + %g = 0", p.A, p.B, p.C, p.D)
}
