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
	"bufio"
	"fmt"
	"io"

	"github.com/notargets/govis/slicer"
)

// writeOBJ writes the triangles as a Wavefront OBJ mesh. Vertex colors
// follow the position on each v line, scaled to [0,1], and each face uses
// the normal of its triangle.
func writeOBJ(w io.Writer, pb *slicer.PolygonBuffers, title string) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %s\n# %d triangles\n", title, pb.NumberOfTriangles())
	for i := 0; i < pb.NumberOfVertices(); i++ {
		p, c := pb.Vertex(i), pb.Color(i)
		fmt.Fprintf(bw, "v %g %g %g %.4f %.4f %.4f\n", p[0], p[1], p[2],
			float32(c[0])/255, float32(c[1])/255, float32(c[2])/255)
	}
	for i := 0; i < pb.NumberOfTriangles(); i++ {
		n := pb.Normal(i)
		fmt.Fprintf(bw, "vn %g %g %g\n", n[0], n[1], n[2])
	}
	for i := 0; i < pb.NumberOfTriangles(); i++ {
		v, n := 3*i+1, i+1
		fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n", v, n, v+1, n, v+2, n)
	}
	return bw.Flush()
}
