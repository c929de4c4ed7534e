package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/govis/InputParameters"
	"github.com/notargets/govis/colormap"
	"github.com/notargets/govis/plane"
	"github.com/notargets/govis/slicer"
	"github.com/notargets/govis/topology"
	"github.com/notargets/govis/volume"
)

func parse(t *testing.T, data string) *InputParameters.InputParameters {
	ip := InputParameters.NewInputParameters()
	require.NoError(t, ip.Parse([]byte(data)))
	return ip
}

func TestExampleFile(t *testing.T) {
	ip := parse(t, exampleFile)
	assert.Equal(t, "Sphere Slice", ip.Title)
	assert.True(t, ip.IsUnstructured())
	assert.Equal(t, "CoolWarm", ip.ColorMap.Name)
	ip.Print()
}

func TestRunSlice(t *testing.T) {
	ip := parse(t, `
Title: Mid Plane
ParallelDegree: 3
Volume:
  Kind: Structured
  Resolution: [5, 5, 5]
  Field: linear
Plane:
  Coefficients: [0, 0, 1, -0.4]
ColorMap:
  Name: Viridis
`)
	ms := &ModelSlice{OutFile: filepath.Join(t.TempDir(), "slice.obj")}
	require.NoError(t, RunSlice(ms, ip))

	data, err := os.ReadFile(ms.OutFile)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Equal(t, "# Mid Plane", lines[0])
	var faces int
	for _, line := range lines {
		if strings.HasPrefix(line, "f ") {
			faces++
		}
	}
	assert.Equal(t, 4*4*2, faces)
}

func TestRunCells(t *testing.T) {
	for _, ct := range []string{"Tetrahedra", "Hexahedra", "Prism", "QuadraticHexahedra"} {
		t.Run(ct, func(t *testing.T) {
			ip := parse(t, `
ParallelDegree: 4
Volume:
  Kind: Unstructured
  CellType: `+ct+`
  Resolution: [3, 3, 3]
  Min: [0, 0, 0]
  Max: [2, 2, 2]
  Field: linear
Cell:
  Samples: 4
  Seed: 7
`)
			rep, err := RunCells(ip)
			require.NoError(t, err)
			assert.InDelta(t, 8., rep.TotalVolume, 1e-9)
			assert.Positive(t, rep.MinVolume)
			assert.Zero(t, rep.Misses)
			assert.Less(t, rep.MaxLocalError, 1e-6)
			assert.Equal(t, 4*rep.Cells, rep.Samples)

			again, err := RunCells(ip)
			require.NoError(t, err)
			again.Elapsed = rep.Elapsed
			assert.Equal(t, rep, again)
		})
	}
}

func TestRunCellsStructured(t *testing.T) {
	_, err := RunCells(InputParameters.NewInputParameters())
	assert.Error(t, err)
}

func TestWriteOBJ(t *testing.T) {
	var coords []float32
	for _, n := range topology.ReferenceCorners(topology.Hexahedron) {
		coords = append(coords, float32(n.X), float32(n.Y), float32(n.Z))
	}
	sa, err := volume.NewScalarArray(make([]float32, 8), 1)
	require.NoError(t, err)
	vol, err := volume.NewUnstructured(volume.Hexahedra, coords, []uint32{0, 1, 2, 3, 4, 5, 6, 7}, sa)
	require.NoError(t, err)
	pb, err := slicer.Extract(vol, plane.New(0, 0, 1, -0.5), colormap.New(0))
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, writeOBJ(&sb, pb, "mid plane"))
	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	count := map[string]int{}
	for _, line := range lines {
		count[strings.Fields(line)[0]]++
	}
	assert.Equal(t, map[string]int{"#": 2, "v": 6, "vn": 2, "f": 2}, count)
	assert.Equal(t, "f 4//2 5//2 6//2", lines[len(lines)-1])
	// A constant field takes the low end color, blue
	assert.True(t, strings.HasPrefix(lines[2], "v "))
	assert.True(t, strings.HasSuffix(lines[2], " 0.0000 0.0000 1.0000"))
}
