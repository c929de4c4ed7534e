package slicer

import (
	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/spatial/r3"
)

// PolygonBuffers holds independent triangles: three vertices and three
// vertex colors per triangle and one normal per triangle. Vertices are not
// shared between triangles.
type PolygonBuffers struct {
	Positions []float32 // x, y, z per vertex
	Colors    []uint8   // r, g, b per vertex
	Normals   []float32 // x, y, z per triangle
}

func (pb *PolygonBuffers) NumberOfTriangles() int { return len(pb.Normals) / 3 }

func (pb *PolygonBuffers) NumberOfVertices() int { return len(pb.Positions) / 3 }

// Vertex returns the position of vertex i.
func (pb *PolygonBuffers) Vertex(i int) (v [3]float32) {
	copy(v[:], pb.Positions[3*i:3*i+3])
	return
}

// Normal returns the normal of triangle i. It is not normalized.
func (pb *PolygonBuffers) Normal(i int) (n [3]float32) {
	copy(n[:], pb.Normals[3*i:3*i+3])
	return
}

func (pb *PolygonBuffers) Color(i int) (c [3]uint8) {
	copy(c[:], pb.Colors[3*i:3*i+3])
	return
}

// Bounds returns the box around all vertices, the zero box when empty.
func (pb *PolygonBuffers) Bounds() (b r3.Box) {
	if len(pb.Positions) == 0 {
		return
	}
	lo := [3]float32{math32.Inf(1), math32.Inf(1), math32.Inf(1)}
	hi := [3]float32{math32.Inf(-1), math32.Inf(-1), math32.Inf(-1)}
	for i := 0; i < len(pb.Positions); i += 3 {
		for d := 0; d < 3; d++ {
			lo[d] = math32.Min(lo[d], pb.Positions[i+d])
			hi[d] = math32.Max(hi[d], pb.Positions[i+d])
		}
	}
	b.Min = r3.Vec{X: float64(lo[0]), Y: float64(lo[1]), Z: float64(lo[2])}
	b.Max = r3.Vec{X: float64(hi[0]), Y: float64(hi[1]), Z: float64(hi[2])}
	return
}

func (pb *PolygonBuffers) appendBuffers(o *PolygonBuffers) {
	pb.Positions = append(pb.Positions, o.Positions...)
	pb.Colors = append(pb.Colors, o.Colors...)
	pb.Normals = append(pb.Normals, o.Normals...)
}

// addTriangle appends one triangle. The normal is (p1-p0) x (p2-p0), which
// points to the positive side of the cutting plane.
func (pb *PolygonBuffers) addTriangle(p [3][3]float32, c [3][3]uint8) {
	for i := 0; i < 3; i++ {
		pb.Positions = append(pb.Positions, p[i][:]...)
		pb.Colors = append(pb.Colors, c[i][:]...)
	}
	var (
		u = [3]float32{p[1][0] - p[0][0], p[1][1] - p[0][1], p[1][2] - p[0][2]}
		v = [3]float32{p[2][0] - p[0][0], p[2][1] - p[0][1], p[2][2] - p[0][2]}
	)
	pb.Normals = append(pb.Normals,
		u[1]*v[2]-u[2]*v[1],
		u[2]*v[0]-u[0]*v[2],
		u[0]*v[1]-u[1]*v[0],
	)
}
