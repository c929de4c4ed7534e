package colormap

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

type palette struct {
	space  Space
	colors [][3]uint8 // low to high
}

var palettes = map[string]palette{
	"CoolWarm": {Msh, [][3]uint8{
		{59, 76, 192}, {180, 4, 38},
	}},
	"BrewerBrBG": {Lab, [][3]uint8{
		{0, 60, 48}, {1, 102, 94}, {53, 151, 143}, {128, 205, 193},
		{199, 234, 229}, {245, 245, 245}, {246, 232, 195}, {223, 194, 125},
		{191, 129, 45}, {140, 81, 10}, {84, 48, 5},
	}},
	"BrewerPiYG": {Lab, [][3]uint8{
		{39, 100, 25}, {77, 146, 33}, {127, 188, 134}, {184, 225, 134},
		{230, 245, 208}, {247, 247, 247}, {253, 224, 239}, {241, 182, 218},
		{222, 119, 174}, {197, 27, 125}, {142, 1, 82},
	}},
	"BrewerPRGn": {Lab, [][3]uint8{
		{0, 68, 27}, {27, 120, 55}, {90, 174, 97}, {166, 219, 160},
		{217, 240, 211}, {247, 247, 247}, {231, 212, 232}, {194, 165, 207},
		{153, 112, 171}, {118, 42, 131}, {64, 0, 75},
	}},
	"BrewerPuOr": {Lab, [][3]uint8{
		{45, 0, 75}, {84, 39, 136}, {128, 115, 172}, {178, 171, 210},
		{216, 218, 235}, {247, 247, 247}, {254, 224, 182}, {253, 184, 99},
		{224, 130, 20}, {179, 88, 6}, {127, 59, 8},
	}},
	"BrewerRdBu": {Lab, [][3]uint8{
		{5, 48, 97}, {33, 102, 172}, {67, 147, 195}, {146, 197, 222},
		{209, 229, 240}, {247, 247, 247}, {253, 219, 199}, {244, 165, 130},
		{214, 96, 77}, {178, 24, 43}, {103, 0, 31},
	}},
	"BrewerRdGy": {Lab, [][3]uint8{
		{26, 26, 26}, {77, 77, 77}, {135, 135, 135}, {186, 186, 186},
		{224, 224, 224}, {255, 255, 255}, {253, 219, 199}, {244, 165, 130},
		{214, 96, 77}, {178, 24, 43}, {103, 0, 31},
	}},
	"BrewerRdYlBu": {Lab, [][3]uint8{
		{49, 54, 149}, {69, 117, 180}, {116, 173, 209}, {171, 217, 233},
		{224, 243, 248}, {255, 255, 191}, {254, 224, 144}, {253, 174, 97},
		{244, 109, 67}, {215, 48, 39}, {165, 0, 38},
	}},
	"BrewerRdYlGn": {Lab, [][3]uint8{
		{0, 104, 55}, {26, 152, 80}, {102, 189, 99}, {166, 217, 106},
		{217, 239, 139}, {255, 255, 191}, {254, 224, 139}, {253, 174, 97},
		{244, 109, 67}, {215, 48, 39}, {165, 0, 38},
	}},
	"BrewerSpectral": {Lab, [][3]uint8{
		{94, 79, 162}, {50, 136, 189}, {102, 194, 165}, {171, 221, 164},
		{230, 245, 152}, {255, 255, 191}, {254, 224, 139}, {253, 174, 97},
		{244, 109, 67}, {213, 62, 79}, {158, 1, 66},
	}},
	"Viridis": {Lab, [][3]uint8{
		{68, 1, 84}, {71, 38, 118}, {62, 72, 136}, {49, 102, 141},
		{37, 130, 142}, {30, 156, 137}, {53, 183, 120}, {109, 206, 88},
		{181, 221, 43}, {253, 231, 37},
	}},
	"Plasma": {Lab, [][3]uint8{
		{12, 7, 134}, {68, 3, 158}, {112, 0, 168}, {154, 21, 158},
		{188, 54, 133}, {215, 86, 108}, {236, 120, 83}, {250, 159, 58},
		{252, 201, 38}, {239, 248, 33},
	}},
	"Inferno": {Lab, [][3]uint8{
		{0, 0, 3}, {25, 11, 62}, {72, 11, 106}, {118, 27, 109},
		{164, 44, 96}, {205, 66, 71}, {237, 104, 37}, {251, 155, 6},
		{247, 209, 60}, {252, 254, 164},
	}},
	"Magma": {Lab, [][3]uint8{
		{0, 0, 3}, {22, 14, 58}, {66, 15, 116}, {111, 30, 129},
		{158, 46, 126}, {203, 62, 113}, {240, 96, 93}, {253, 149, 103},
		{254, 201, 141}, {251, 252, 191},
	}},
	"Cividis": {Lab, [][3]uint8{
		{0, 32, 76}, {0, 50, 110}, {54, 70, 107}, {85, 91, 108},
		{111, 112, 115}, {137, 133, 120}, {166, 156, 117}, {197, 181, 107},
		{228, 206, 91}, {255, 233, 69},
	}},
}

// Names lists the maps known to ByName, including "Default".
func Names() (names []string) {
	names = append(names, "Default")
	for name := range palettes {
		names = append(names, name)
	}
	sort.Strings(names[1:])
	return
}

// ByName returns a named map. Names are matched without regard to case.
func ByName(name string, resolution int) (*ColorMap, error) {
	if strings.EqualFold(name, "Default") || name == "" {
		return New(resolution), nil
	}
	for key, p := range palettes {
		if strings.EqualFold(key, name) {
			return p.build(resolution), nil
		}
	}
	return nil, fmt.Errorf("unknown color map %q, have %v", name, Names())
}

// build spreads the palette colors over the table: the first at entry 0,
// the last at the final entry and the others evenly between.
func (p palette) build(resolution int) *ColorMap {
	cm := New(resolution)
	var (
		res    = float64(cm.resolution)
		n      = len(p.colors)
		stride = 1 / float64(n-1)
	)
	for i, c := range p.colors {
		var value float64
		switch i {
		case 0:
		case n - 1:
			value = res - 1
		default:
			value = math.Round(res * stride * float64(i))
		}
		cm.AddPoint(value, rgb(c))
	}
	cm.SetColorSpace(p.space)
	cm.Create()
	return cm
}

func rgb(c [3]uint8) colorful.Color {
	return colorful.Color{R: float64(c[0]) / 255, G: float64(c[1]) / 255, B: float64(c[2]) / 255}
}

func CoolWarm(resolution int) *ColorMap { return palettes["CoolWarm"].build(resolution) }

func Viridis(resolution int) *ColorMap { return palettes["Viridis"].build(resolution) }

func Plasma(resolution int) *ColorMap { return palettes["Plasma"].build(resolution) }

func Inferno(resolution int) *ColorMap { return palettes["Inferno"].build(resolution) }

func Magma(resolution int) *ColorMap { return palettes["Magma"].build(resolution) }

func Cividis(resolution int) *ColorMap { return palettes["Cividis"].build(resolution) }
