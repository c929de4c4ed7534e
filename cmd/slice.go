/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/notargets/govis/InputParameters"
	"github.com/notargets/govis/slicer"
	"github.com/notargets/govis/utils"
)

type ModelSlice struct {
	ParamFile string
	OutFile   string
}

// SliceCmd represents the slice command
var SliceCmd = &cobra.Command{
	Use:   "slice",
	Short: "Cut a scalar volume with a plane and write the colored cross section",
	Long: `Builds the volume described by the input parameters, cuts every cell with
the plane and writes the resulting triangles as a Wavefront OBJ file with
per vertex colors`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		ms := &ModelSlice{}
		if ms.ParamFile, err = cmd.Flags().GetString("inputParametersFile"); err != nil {
			panic(err)
		}
		if ms.OutFile, err = cmd.Flags().GetString("outputFile"); err != nil {
			panic(err)
		}
		ip := processInput(ms.ParamFile)
		ip.Print()
		if err = RunSlice(ms, ip); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	},
}

const exampleFile = `
########################################
Title: "Sphere Slice"
ParallelDegree: 0 # one bucket per CPU
Volume:
  Kind: Unstructured # or Structured
  CellType: Tetrahedra
  Resolution: [32, 32, 32]
  Min: [0, 0, 0]
  Max: [1, 1, 1]
  Field: radial
Plane:
  Point: [0.5, 0.5, 0.5]
  Normal: [0, 0, 1]
  # Coefficients: [0, 0, 1, -0.5] # a, b, c, d of ax+by+cz+d=0
ColorMap:
  Name: CoolWarm
  Resolution: 256
  # Range: [0, 1]
Cell:
  Samples: 16
  Seed: 1
########################################
`

func processInput(paramFile string) (ip *InputParameters.InputParameters) {
	var (
		err error
	)
	if len(paramFile) == 0 {
		err = fmt.Errorf("must supply an input parameters file (-F, --inputParametersFile)")
		fmt.Printf("error: %s\n", err.Error())
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
	var data []byte
	if data, err = os.ReadFile(paramFile); err != nil {
		panic(err)
	}
	ip = InputParameters.NewInputParameters()
	if err = ip.Parse(data); err != nil {
		panic(err)
	}
	return
}

func init() {
	rootCmd.AddCommand(SliceCmd)
	SliceCmd.Flags().StringP("inputParametersFile", "F", "", "YAML file describing the volume, plane and color map")
	SliceCmd.Flags().StringP("outputFile", "o", "slice.obj", "Wavefront OBJ file to write")
}

func RunSlice(ms *ModelSlice, ip *InputParameters.InputParameters) (err error) {
	pb, err := Slice(ip)
	if err != nil {
		return
	}
	var f *os.File
	if f, err = os.Create(ms.OutFile); err != nil {
		return
	}
	defer f.Close()
	if err = writeOBJ(f, pb, ip.Title); err != nil {
		return
	}
	b := pb.Bounds()
	fmt.Printf("%d triangles, %d vertices written to %s\n",
		pb.NumberOfTriangles(), pb.NumberOfVertices(), ms.OutFile)
	fmt.Printf("Bounds: %v - %v\n", b.Min, b.Max)
	fmt.Printf("Memory: %s\n", utils.GetMemUsage())
	return f.Close()
}

// Slice builds the volume, plane and color map of ip and extracts the cross
// section.
func Slice(ip *InputParameters.InputParameters) (pb *slicer.PolygonBuffers, err error) {
	var (
		start = time.Now()
	)
	vol, err := ip.Build()
	if err != nil {
		return
	}
	p, err := ip.Plane.CuttingPlane()
	if err != nil {
		return
	}
	cmap, err := ip.ColorMap.Build()
	if err != nil {
		return
	}
	fmt.Printf("Volume: %d nodes, %d cells built in %v\n",
		vol.NumberOfNodes(), vol.NumberOfCells(), time.Since(start))
	start = time.Now()
	if pb, err = slicer.New(p, slicer.WithParallelDegree(ip.ParallelDegree)).Extract(vol, cmap); err != nil {
		return
	}
	fmt.Printf("Slice: %v\n", time.Since(start))
	return
}
