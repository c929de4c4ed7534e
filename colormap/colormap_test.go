package colormap

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rgb8 [3]uint8

func index(cm *ColorMap, i int) rgb8 {
	r, g, b := cm.Index(i)
	return rgb8{r, g, b}
}

func at(cm *ColorMap, v float64) rgb8 {
	r, g, b := cm.At(v)
	return rgb8{r, g, b}
}

func TestDefault(t *testing.T) {
	cm := New(0)
	assert.Equal(t, DefaultResolution, cm.Resolution())
	assert.False(t, cm.HasRange())
	assert.Equal(t, rgb8{0, 0, 255}, index(cm, 0))
	assert.Equal(t, rgb8{255, 0, 0}, index(cm, 255))
	mid := index(cm, 128)
	assert.Equal(t, uint8(255), mid[1], "green near the middle")

	// Without a range every value maps to one of the ends
	assert.Equal(t, index(cm, 0), at(cm, -1))
	assert.Equal(t, index(cm, 255), at(cm, 1))
}

func TestControlPoints(t *testing.T) {
	cm := New(5)
	cm.AddPoint(3, colorful.Color{B: 1})
	cm.AddPoint(1, colorful.Color{R: 1})
	cm.Create()
	require.Len(t, cm.Points(), 4, "black and white ends added")
	assert.Equal(t, []rgb8{{0, 0, 0}, {255, 0, 0}, {128, 0, 128}, {0, 0, 255}, {255, 255, 255}},
		[]rgb8{index(cm, 0), index(cm, 1), index(cm, 2), index(cm, 3), index(cm, 4)})

	cm.ClearPoints()
	cm.Create()
	assert.Equal(t, rgb8{0, 0, 255}, index(cm, 0))
}

func TestRange(t *testing.T) {
	cm := Viridis(DefaultResolution)
	cm.SetRange(-1, 1)
	assert.True(t, cm.HasRange())
	min, max := cm.Range()
	assert.Equal(t, [2]float64{-1, 1}, [2]float64{min, max})
	assert.Equal(t, rgb8{68, 1, 84}, at(cm, -5))
	assert.Equal(t, rgb8{68, 1, 84}, at(cm, -1))
	assert.Equal(t, rgb8{253, 231, 37}, at(cm, 1))
	assert.Equal(t, rgb8{253, 231, 37}, at(cm, 100))

	// Halfway between two entries blends them
	var (
		c0 = cm.Table()[127]
		c1 = cm.Table()[128]
	)
	r, g, b := c0.BlendRgb(c1, 0.5).RGB255()
	assert.Equal(t, rgb8{r, g, b}, at(cm, 0))

	// A collapsed range must not divide by zero
	cm.SetRange(2, 2)
	assert.False(t, cm.HasRange())
	assert.Equal(t, rgb8{68, 1, 84}, at(cm, 2))
	assert.Equal(t, rgb8{253, 231, 37}, at(cm, 3))
}

func TestClone(t *testing.T) {
	cm := CoolWarm(DefaultResolution)
	c := cm.Clone()
	c.SetRange(0, 10)
	c.Table()[0] = colorful.Color{}
	assert.False(t, cm.HasRange())
	assert.Equal(t, rgb8{59, 76, 192}, index(cm, 0))
}

func TestNamed(t *testing.T) {
	names := Names()
	assert.Equal(t, "Default", names[0])
	assert.IsIncreasing(t, names[1:])
	assert.Len(t, names, len(palettes)+1)

	for _, tc := range []struct {
		name        string
		first, last rgb8
	}{
		{"CoolWarm", rgb8{59, 76, 192}, rgb8{180, 4, 38}},
		{"viridis", rgb8{68, 1, 84}, rgb8{253, 231, 37}},
		{"Plasma", rgb8{12, 7, 134}, rgb8{239, 248, 33}},
		{"INFERNO", rgb8{0, 0, 3}, rgb8{252, 254, 164}},
		{"Magma", rgb8{0, 0, 3}, rgb8{251, 252, 191}},
		{"Cividis", rgb8{0, 32, 76}, rgb8{255, 233, 69}},
		{"BrewerSpectral", rgb8{94, 79, 162}, rgb8{158, 1, 66}},
		{"default", rgb8{0, 0, 255}, rgb8{255, 0, 0}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cm, err := ByName(tc.name, DefaultResolution)
			require.NoError(t, err)
			assert.Equal(t, tc.first, index(cm, 0))
			assert.Equal(t, tc.last, index(cm, DefaultResolution-1))
		})
	}
	_, err := ByName("Jet", DefaultResolution)
	assert.Error(t, err)

	// Interior control colors land on their rounded table entries
	v := Viridis(DefaultResolution)
	assert.Equal(t, rgb8{71, 38, 118}, index(v, 28))
	assert.Equal(t, Lab, v.ColorSpace())
}

func TestCoolWarmMidpoint(t *testing.T) {
	cm := CoolWarm(DefaultResolution)
	mid := index(cm, 128)
	for _, c := range mid {
		assert.Greater(t, c, uint8(200), "diverging map is near white at the centre")
	}
	assert.Equal(t, Msh, cm.ColorSpace())
}
