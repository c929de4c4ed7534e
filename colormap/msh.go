package colormap

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// msh is the polar form of CIELAB used by Moreland's diverging maps, with
// L in [0,100].
type msh struct {
	M, S, H float64
}

func toMsh(c colorful.Color) msh {
	l, a, b := c.Lab()
	l, a, b = 100*l, 100*a, 100*b
	var m msh
	m.M = math.Sqrt(l*l + a*a + b*b)
	if m.M > 0.001 {
		m.S = math.Acos(l / m.M)
	}
	if m.S > 0.001 {
		m.H = math.Atan2(b, a)
	}
	return m
}

func (m msh) color() colorful.Color {
	var (
		l = m.M * math.Cos(m.S)
		a = m.M * math.Sin(m.S) * math.Cos(m.H)
		b = m.M * math.Sin(m.S) * math.Sin(m.H)
	)
	return colorful.Lab(l/100, a/100, b/100)
}

func radDiff(h1, h2 float64) float64 {
	d := math.Cos(h1)*math.Cos(h2) + math.Sin(h1)*math.Sin(h2)
	return math.Acos(math.Max(-1, math.Min(1, d)))
}

// adjustHue spins the hue of a saturated color when it is blended toward an
// unsaturated one of magnitude mUnsat.
func adjustHue(sat msh, mUnsat float64) float64 {
	if sat.M >= mUnsat-0.1 {
		return sat.H
	}
	spin := sat.S * math.Sqrt(mUnsat*mUnsat-sat.M*sat.M) / (sat.M * math.Sin(sat.S))
	if sat.H > -math.Pi/3 {
		return sat.H + spin
	}
	return sat.H - spin
}

// blendMsh interpolates two colors through Msh space, passing through white
// when the hues are far apart.
func blendMsh(c1, c2 colorful.Color, t float64) colorful.Color {
	a, b := toMsh(c1), toMsh(c2)
	if a.S > 0.05 && b.S > 0.05 && radDiff(a.H, b.H) > math.Pi/3 {
		mid := math.Max(math.Max(a.M, b.M), 88)
		if t < 0.5 {
			b = msh{M: mid}
			t = 2 * t
		} else {
			a = msh{M: mid}
			t = 2*t - 1
		}
	}
	switch {
	case a.S < 0.05 && b.S > 0.05:
		a.H = adjustHue(b, a.M)
	case b.S < 0.05 && a.S > 0.05:
		b.H = adjustHue(a, b.M)
	}
	mix := func(x, y float64) float64 { return x + t*(y-x) }
	return msh{M: mix(a.M, b.M), S: mix(a.S, b.S), H: mix(a.H, b.H)}.color()
}
