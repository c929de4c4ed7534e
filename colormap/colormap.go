// Package colormap maps scalar values to RGB colors through a lookup table
// built from interpolated control points.
package colormap

import (
	"fmt"
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/floats"
)

const DefaultResolution = 256

// Space selects the color space control points are interpolated in.
type Space uint8

const (
	RGB Space = iota
	HSV
	Lab
	HCL
	Msh
)

func (s Space) String() string {
	names := [...]string{"RGB", "HSV", "Lab", "HCL", "Msh"}
	if int(s) >= len(names) {
		return fmt.Sprintf("Space(%d)", s)
	}
	return names[s]
}

func (s Space) blend(c0, c1 colorful.Color, t float64) colorful.Color {
	switch s {
	case HSV:
		return c0.BlendHsv(c1, t)
	case Lab:
		return c0.BlendLab(c1, t)
	case HCL:
		return c0.BlendHcl(c1, t)
	case Msh:
		return blendMsh(c0, c1, t)
	}
	return c0.BlendRgb(c1, t)
}

// Point is a control color pinned at Value.
type Point struct {
	Value float64
	Color colorful.Color
}

// ColorMap is a table of Resolution colors spread evenly over a value
// range. At is safe for concurrent use; the mutating methods are not.
type ColorMap struct {
	resolution int
	min, max   float64
	space      Space
	points     []Point
	table      []colorful.Color
}

// New returns the default map, a hue ramp from blue at the low end to red
// at the high end.
func New(resolution int) (cm *ColorMap) {
	if resolution < 2 {
		resolution = DefaultResolution
	}
	cm = &ColorMap{resolution: resolution, space: RGB}
	cm.Create()
	return
}

func (cm *ColorMap) Resolution() int { return cm.resolution }

func (cm *ColorMap) ColorSpace() Space { return cm.space }

func (cm *ColorMap) SetColorSpace(s Space) { cm.space = s }

// HasRange reports whether a value range distinct from the table index
// range was set.
func (cm *ColorMap) HasRange() bool { return cm.min != cm.max }

func (cm *ColorMap) Range() (min, max float64) { return cm.min, cm.max }

// SetRange sets the values mapped to the first and last table entries.
// The table itself is not rebuilt.
func (cm *ColorMap) SetRange(min, max float64) {
	cm.min, cm.max = min, max
}

// AddPoint adds a control point. Points take effect on the next Create.
func (cm *ColorMap) AddPoint(value float64, c colorful.Color) {
	cm.points = append(cm.points, Point{Value: value, Color: c})
}

func (cm *ColorMap) Points() []Point { return cm.points }

// ClearPoints drops the control points, Create then restores the hue ramp.
func (cm *ColorMap) ClearPoints() { cm.points = nil }

// domain returns the value interval the table spans: the range if one is
// set, otherwise the table indices.
func (cm *ColorMap) domain() (min, max float64) {
	if cm.HasRange() {
		return cm.min, cm.max
	}
	return 0, float64(cm.resolution - 1)
}

// Create fills the table. Without control points the hue runs from 240
// degrees down to 0. With control points the ends are pinned to black and
// white unless a point already sits there, and every entry blends the two
// points around it.
func (cm *ColorMap) Create() {
	cm.table = make([]colorful.Color, cm.resolution)
	if len(cm.points) == 0 {
		hues := make([]float64, cm.resolution)
		floats.Span(hues, 240, 0)
		for i, h := range hues {
			cm.table[i] = colorful.Hsv(h, 1, 1)
		}
		return
	}
	min, max := cm.domain()
	sort.SliceStable(cm.points, func(i, j int) bool {
		return cm.points[i].Value < cm.points[j].Value
	})
	if cm.points[0].Value > min {
		cm.points = append([]Point{{Value: min, Color: colorful.Color{}}}, cm.points...)
	}
	if cm.points[len(cm.points)-1].Value < max {
		cm.points = append(cm.points, Point{Value: max, Color: colorful.Color{R: 1, G: 1, B: 1}})
	}
	values := make([]float64, cm.resolution)
	floats.Span(values, min, max)
	p := 0
	for i, f := range values {
		for p < len(cm.points)-1 && cm.points[p+1].Value <= f {
			p++
		}
		lo := cm.points[p]
		if p == len(cm.points)-1 || lo.Value == f {
			cm.table[i] = lo.Color
			continue
		}
		hi := cm.points[p+1]
		t := (f - lo.Value) / (hi.Value - lo.Value)
		cm.table[i] = cm.space.blend(lo.Color, hi.Color, t).Clamped()
	}
}

// Table returns the table entries, first entry for the smallest value.
func (cm *ColorMap) Table() []colorful.Color { return cm.table }

// Index returns table entry i as 8 bit channels.
func (cm *ColorMap) Index(i int) (r, g, b uint8) {
	return cm.table[i].RGB255()
}

// At returns the color of value, blending the two nearest table entries.
// Values outside the range take the end colors.
func (cm *ColorMap) At(value float64) (r, g, b uint8) {
	return cm.at(value).RGB255()
}

func (cm *ColorMap) at(value float64) colorful.Color {
	last := cm.resolution - 1
	switch {
	case math.IsNaN(value) || value <= cm.min:
		return cm.table[0]
	case value >= cm.max:
		return cm.table[last]
	}
	v := (value - cm.min) / (cm.max - cm.min) * float64(last)
	s0 := int(v)
	s1 := s0 + 1
	if s1 > last {
		s1 = last
	}
	return cm.table[s0].BlendRgb(cm.table[s1], v-float64(s0))
}

// Clone returns an independent copy, so callers can change its range
// without touching the original.
func (cm *ColorMap) Clone() *ColorMap {
	c := *cm
	c.points = append([]Point(nil), cm.points...)
	c.table = append([]colorful.Color(nil), cm.table...)
	return &c
}

func (cm *ColorMap) String() string {
	min, max := cm.domain()
	return fmt.Sprintf("ColorMap{resolution: %d, range: [%g, %g], points: %d, space: %s}",
		cm.resolution, min, max, len(cm.points), cm.space)
}
