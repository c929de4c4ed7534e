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
	"math"
	"math/rand/v2"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/govis/InputParameters"
	"github.com/notargets/govis/cell"
	"github.com/notargets/govis/utils"
)

// CellCmd represents the cell command
var CellCmd = &cobra.Command{
	Use:   "cell",
	Short: "Evaluate every cell of an unstructured volume",
	Long: `Computes the volume of each cell and the field gradient at its center, and
checks the local/global coordinate mapping at random sample points`,
	Run: func(cmd *cobra.Command, args []string) {
		paramFile, err := cmd.Flags().GetString("inputParametersFile")
		if err != nil {
			panic(err)
		}
		ip := processInput(paramFile)
		ip.Print()
		var rep *CellReport
		if rep, err = RunCells(ip); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		rep.Print()
	},
}

func init() {
	rootCmd.AddCommand(CellCmd)
	CellCmd.Flags().StringP("inputParametersFile", "F", "", "YAML file describing an unstructured volume")
}

type CellReport struct {
	Cells          int
	TotalVolume    float64
	MinVolume      float64
	MaxVolume      float64
	MaxGradient    float64 // largest gradient magnitude at a cell center
	Samples        int
	Misses         int     // samples not found inside their own cell
	MaxLocalError  float64 // largest local coordinate round trip error
	Elapsed        time.Duration
	ParallelDegree int
}

func (r *CellReport) Print() {
	fmt.Printf("[%d]\t\t\t= Cells\n", r.Cells)
	fmt.Printf("%12.6g\t\t= Total Volume\n", r.TotalVolume)
	fmt.Printf("%12.6g - %-12.6g\t= Cell Volume Range\n", r.MinVolume, r.MaxVolume)
	fmt.Printf("%12.6g\t\t= Max Gradient at Center\n", r.MaxGradient)
	fmt.Printf("[%d/%d]\t\t= Sample Misses\n", r.Misses, r.Samples)
	fmt.Printf("%12.6g\t\t= Max Round Trip Error\n", r.MaxLocalError)
	fmt.Printf("%v on %d buckets\n", r.Elapsed, r.ParallelDegree)
	fmt.Printf("Memory: %s\n", utils.GetMemUsage())
}

func (r *CellReport) merge(o *CellReport) {
	if o.Cells == 0 {
		return
	}
	if r.Cells == 0 {
		r.MinVolume, r.MaxVolume = o.MinVolume, o.MaxVolume
	}
	r.Cells += o.Cells
	r.TotalVolume += o.TotalVolume
	r.MinVolume = math.Min(r.MinVolume, o.MinVolume)
	r.MaxVolume = math.Max(r.MaxVolume, o.MaxVolume)
	r.MaxGradient = math.Max(r.MaxGradient, o.MaxGradient)
	r.Samples += o.Samples
	r.Misses += o.Misses
	r.MaxLocalError = math.Max(r.MaxLocalError, o.MaxLocalError)
}

// RunCells evaluates the cells of the unstructured volume in ip, one
// evaluator per bucket. Bucket bn samples from a PCG stream seeded with
// (Seed, bn), so a run is reproducible for a fixed parallel degree.
func RunCells(ip *InputParameters.InputParameters) (rep *CellReport, err error) {
	var (
		start = time.Now()
	)
	vol, err := ip.BuildUnstructured()
	if err != nil {
		return
	}
	np := ip.ParallelDegree
	if np < 1 {
		np = utils.DefaultParallelDegree(vol.NumberOfCells())
	}
	pm := utils.NewPartitionMap(np, vol.NumberOfCells())
	var (
		parts = make([]CellReport, pm.ParallelDegree)
		errs  = make([]error, pm.ParallelDegree)
	)
	pm.Run(func(bn, kMin, kMax int) {
		c, err := cell.New(vol,
			cell.WithNewton(ip.Cell.Newton()),
			cell.WithRandSource(rand.NewPCG(ip.Cell.Seed, uint64(bn))))
		if err != nil {
			errs[bn] = err
			return
		}
		for k := kMin; k < kMax; k++ {
			if errs[bn] = c.Bind(k); errs[bn] != nil {
				return
			}
			evaluate(c, ip.Cell.Samples, &parts[bn])
		}
	})
	rep = &CellReport{ParallelDegree: pm.ParallelDegree}
	for bn := range parts {
		if errs[bn] != nil {
			return nil, errs[bn]
		}
		rep.merge(&parts[bn])
	}
	rep.Elapsed = time.Since(start)
	utils.Logger().Debug("evaluated cells",
		"type", vol.CellType.String(), "cells", rep.Cells, "samples", rep.Samples,
		"elapsed", rep.Elapsed)
	return
}

func evaluate(c *cell.Cell, samples int, r *CellReport) {
	v := c.Volume()
	if r.Cells == 0 {
		r.MinVolume, r.MaxVolume = v, v
	}
	r.Cells++
	r.TotalVolume += v
	r.MinVolume = math.Min(r.MinVolume, v)
	r.MaxVolume = math.Max(r.MaxVolume, v)

	c.GlobalToLocal(c.Center())
	r.MaxGradient = math.Max(r.MaxGradient, r3.Norm(c.GradientAt()))

	for i := 0; i < samples; i++ {
		global := c.RandomSampling()
		local := c.LocalPoint()
		r.Samples++
		if !c.Contains(global) {
			r.Misses++
			continue
		}
		r.MaxLocalError = math.Max(r.MaxLocalError, r3.Norm(r3.Sub(local, c.LocalPoint())))
	}
}
