package InputParameters

import (
	"fmt"
	"strings"

	"github.com/ghodss/yaml"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/govis/cell"
	"github.com/notargets/govis/colormap"
	"github.com/notargets/govis/plane"
	"github.com/notargets/govis/volume"
)

// Parameters obtained from the YAML input file
type InputParameters struct {
	Title    string             `json:"Title"`
	Volume   VolumeParameters   `json:"Volume"`
	Plane    PlaneParameters    `json:"Plane"`
	ColorMap ColorMapParameters `json:"ColorMap"`
	Cell     CellParameters     `json:"Cell"`
	// ParallelDegree < 1 uses one bucket per CPU
	ParallelDegree int `json:"ParallelDegree"`
}

type VolumeParameters struct {
	Kind       string     `json:"Kind"`     // Structured or Unstructured
	CellType   string     `json:"CellType"` // Unstructured only, e.g. Tetrahedra
	Resolution [3]int     `json:"Resolution"`
	Min        [3]float64 `json:"Min"`
	Max        [3]float64 `json:"Max"`
	Field      string     `json:"Field"`
}

// PlaneParameters gives the plane either as Coefficients a, b, c, d of
// ax + by + cz + d = 0 or as a Point and Normal.
type PlaneParameters struct {
	Coefficients []float64  `json:"Coefficients"`
	Point        [3]float64 `json:"Point"`
	Normal       [3]float64 `json:"Normal"`
}

type ColorMapParameters struct {
	Name       string    `json:"Name"`
	Resolution int       `json:"Resolution"`
	Range      []float64 `json:"Range"` // optional min, max
}

type CellParameters struct {
	Samples       int     `json:"Samples"` // random samples per cell
	Seed          uint64  `json:"Seed"`
	MaxIterations int     `json:"MaxIterations"`
	Tolerance     float64 `json:"Tolerance"`
}

// NewInputParameters returns the defaults applied before parsing.
func NewInputParameters() *InputParameters {
	return &InputParameters{
		Title: "Slice",
		Volume: VolumeParameters{
			Kind:       "Structured",
			CellType:   volume.Hexahedra.String(),
			Resolution: [3]int{32, 32, 32},
			Max:        [3]float64{1, 1, 1},
			Field:      "radial",
		},
		Plane: PlaneParameters{
			Point:  [3]float64{0.5, 0.5, 0.5},
			Normal: [3]float64{0, 0, 1},
		},
		ColorMap: ColorMapParameters{
			Name:       "Default",
			Resolution: colormap.DefaultResolution,
		},
		Cell: CellParameters{
			Samples:       16,
			Seed:          1,
			MaxIterations: cell.DefaultNewton.MaxIterations,
			Tolerance:     cell.DefaultNewton.Tolerance,
		},
	}
}

func (ip *InputParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%s]\t\t= Volume Kind\n", ip.Volume.Kind)
	if ip.IsUnstructured() {
		fmt.Printf("[%s]\t\t= Cell Type\n", ip.Volume.CellType)
	}
	fmt.Printf("%v\t\t= Resolution\n", ip.Volume.Resolution)
	fmt.Printf("%v - %v\t= Bounds\n", ip.Volume.Min, ip.Volume.Max)
	fmt.Printf("[%s]\t\t= Field\n", ip.Volume.Field)
	if len(ip.Plane.Coefficients) != 0 {
		fmt.Printf("%v\t\t= Plane Coefficients\n", ip.Plane.Coefficients)
	} else {
		fmt.Printf("%v, %v\t= Plane Point, Normal\n", ip.Plane.Point, ip.Plane.Normal)
	}
	fmt.Printf("[%s]\t\t= Color Map\n", ip.ColorMap.Name)
	fmt.Printf("[%d]\t\t\t= Color Map Resolution\n", ip.ColorMap.Resolution)
	fmt.Printf("[%d]\t\t\t= Parallel Degree\n", ip.ParallelDegree)
}

func (ip *InputParameters) IsUnstructured() bool {
	return strings.EqualFold(ip.Volume.Kind, "Unstructured")
}

func vec(a [3]float64) r3.Vec { return r3.Vec{X: a[0], Y: a[1], Z: a[2]} }

func (vp *VolumeParameters) lattice() volume.Lattice {
	return volume.Lattice{Resolution: vp.Resolution, Min: vec(vp.Min), Max: vec(vp.Max)}
}

// Build samples the named field on the described volume.
func (ip *InputParameters) Build() (vol volume.Volume, err error) {
	var field volume.Field
	if field, err = volume.FieldByName(ip.Volume.Field); err != nil {
		return
	}
	switch {
	case ip.IsUnstructured():
		var ct volume.CellType
		if ct, err = volume.ParseCellType(ip.Volume.CellType); err != nil {
			return
		}
		var u *volume.Unstructured
		if u, err = volume.NewUnstructuredField(ip.Volume.lattice(), ct, field); err != nil {
			return
		}
		return u, nil
	case strings.EqualFold(ip.Volume.Kind, "Structured"):
		var s *volume.Structured
		if s, err = volume.NewStructuredField(ip.Volume.lattice(), field); err != nil {
			return
		}
		return s, nil
	}
	return nil, fmt.Errorf("unknown volume kind %q, want Structured or Unstructured", ip.Volume.Kind)
}

// BuildUnstructured is Build for callers that need cells.
func (ip *InputParameters) BuildUnstructured() (*volume.Unstructured, error) {
	if !ip.IsUnstructured() {
		return nil, fmt.Errorf("volume kind %q has no cells, want Unstructured", ip.Volume.Kind)
	}
	vol, err := ip.Build()
	if err != nil {
		return nil, err
	}
	return vol.(*volume.Unstructured), nil
}

func (pp *PlaneParameters) CuttingPlane() (plane.Plane, error) {
	switch len(pp.Coefficients) {
	case 0:
		return plane.FromPointNormal(vec(pp.Point), vec(pp.Normal))
	case 4:
		c := pp.Coefficients
		p := plane.New(c[0], c[1], c[2], c[3])
		if r3.Norm(p.Normal()) == 0 {
			return p, fmt.Errorf("plane %v has no normal", c)
		}
		return p, nil
	}
	return plane.Plane{}, fmt.Errorf("plane needs 4 coefficients, have %d", len(pp.Coefficients))
}

func (cp *ColorMapParameters) Build() (cm *colormap.ColorMap, err error) {
	if cm, err = colormap.ByName(cp.Name, cp.Resolution); err != nil {
		return
	}
	switch len(cp.Range) {
	case 0:
	case 2:
		cm.SetRange(cp.Range[0], cp.Range[1])
	default:
		return nil, fmt.Errorf("color map range needs min and max, have %v", cp.Range)
	}
	return
}

func (cp *CellParameters) Newton() cell.NewtonConfig {
	return cell.NewtonConfig{MaxIterations: cp.MaxIterations, Tolerance: cp.Tolerance}
}
