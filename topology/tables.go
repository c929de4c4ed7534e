package topology

// Triangle edge lists indexed by classification mask. Bit i of a mask is set
// when corner i lies on the positive side of the plane. Each row lists edge
// indices three at a time and is padded with EndOfList.
//
// The rows were produced by walking every face counter-clockwise from
// outside, pairing each negative-to-positive crossing with the next
// positive-to-negative one, chaining the resulting segments into loops and
// fanning each loop into triangles. TestTriangleTables checks the result.

var tetrahedronTriangles = [16][]int8{
	{-1, -1, -1, -1, -1, -1, -1},
	{0, 1, 2, -1, -1, -1, -1},
	{3, 0, 4, -1, -1, -1, -1},
	{3, 1, 2, 3, 2, 4, -1},
	{1, 3, 5, -1, -1, -1, -1},
	{0, 3, 5, 0, 5, 2, -1},
	{1, 0, 4, 1, 4, 5, -1},
	{2, 4, 5, -1, -1, -1, -1},
	{4, 2, 5, -1, -1, -1, -1},
	{0, 1, 5, 0, 5, 4, -1},
	{3, 0, 2, 3, 2, 5, -1},
	{3, 1, 5, -1, -1, -1, -1},
	{1, 3, 4, 1, 4, 2, -1},
	{0, 3, 4, -1, -1, -1, -1},
	{1, 0, 2, -1, -1, -1, -1},
	{-1, -1, -1, -1, -1, -1, -1},
}

var hexahedronTriangles = [256][]int8{
	{-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{0, 3, 8, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{1, 0, 9, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{1, 3, 8, 1, 8, 9, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{2, 1, 10, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{2, 1, 10, 0, 3, 8, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{2, 0, 9, 2, 9, 10, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{2, 3, 8, 2, 8, 9, 2, 9, 10, -1, -1, -1, -1, -1, -1, -1},
	{3, 2, 11, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{0, 2, 11, 0, 11, 8, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{1, 0, 9, 3, 2, 11, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{1, 2, 11, 1, 11, 8, 1, 8, 9, -1, -1, -1, -1, -1, -1, -1},
	{3, 1, 10, 3, 10, 11, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{0, 1, 10, 0, 10, 11, 0, 11, 8, -1, -1, -1, -1, -1, -1, -1},
	{3, 0, 9, 3, 9, 10, 3, 10, 11, -1, -1, -1, -1, -1, -1, -1},
	{8, 9, 10, 8, 10, 11, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{7, 4, 8, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{0, 3, 7, 0, 7, 4, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{1, 0, 9, 7, 4, 8, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{1, 3, 7, 1, 7, 4, 1, 4, 9, -1, -1, -1, -1, -1, -1, -1},
	{2, 1, 10, 7, 4, 8, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{2, 1, 10, 0, 3, 7, 0, 7, 4, -1, -1, -1, -1, -1, -1, -1},
	{2, 0, 9, 2, 9, 10, 7, 4, 8, -1, -1, -1, -1, -1, -1, -1},
	{2, 3, 7, 2, 7, 4, 2, 4, 9, 2, 9, 10, -1, -1, -1, -1},
	{3, 2, 11, 7, 4, 8, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{0, 2, 11, 0, 11, 7, 0, 7, 4, -1, -1, -1, -1, -1, -1, -1},
	{1, 0, 9, 3, 2, 11, 7, 4, 8, -1, -1, -1, -1, -1, -1, -1},
	{1, 2, 11, 1, 11, 7, 1, 7, 4, 1, 4, 9, -1, -1, -1, -1},
	{3, 1, 10, 3, 10, 11, 7, 4, 8, -1, -1, -1, -1, -1, -1, -1},
	{0, 1, 10, 0, 10, 11, 0, 11, 7, 0, 7, 4, -1, -1, -1, -1},
	{3, 0, 9, 3, 9, 10, 3, 10, 11, 7, 4, 8, -1, -1, -1, -1},
	{7, 4, 9, 7, 9, 10, 7, 10, 11, -1, -1, -1, -1, -1, -1, -1},
	{4, 5, 9, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{0, 3, 8, 4, 5, 9, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{1, 0, 4, 1, 4, 5, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{1, 3, 8, 1, 8, 4, 1, 4, 5, -1, -1, -1, -1, -1, -1, -1},
	{2, 1, 10, 4, 5, 9, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{2, 1, 10, 0, 3, 8, 4, 5, 9, -1, -1, -1, -1, -1, -1, -1},
	{2, 0, 4, 2, 4, 5, 2, 5, 10, -1, -1, -1, -1, -1, -1, -1},
	{2, 3, 8, 2, 8, 4, 2, 4, 5, 2, 5, 10, -1, -1, -1, -1},
	{3, 2, 11, 4, 5, 9, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{0, 2, 11, 0, 11, 8, 4, 5, 9, -1, -1, -1, -1, -1, -1, -1},
	{1, 0, 4, 1, 4, 5, 3, 2, 11, -1, -1, -1, -1, -1, -1, -1},
	{1, 2, 11, 1, 11, 8, 1, 8, 4, 1, 4, 5, -1, -1, -1, -1},
	{3, 1, 10, 3, 10, 11, 4, 5, 9, -1, -1, -1, -1, -1, -1, -1},
	{0, 1, 10, 0, 10, 11, 0, 11, 8, 4, 5, 9, -1, -1, -1, -1},
	{3, 0, 4, 3, 4, 5, 3, 5, 10, 3, 10, 11, -1, -1, -1, -1},
	{4, 5, 10, 4, 10, 11, 4, 11, 8, -1, -1, -1, -1, -1, -1, -1},
	{7, 5, 9, 7, 9, 8, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{0, 3, 7, 0, 7, 5, 0, 5, 9, -1, -1, -1, -1, -1, -1, -1},
	{1, 0, 8, 1, 8, 7, 1, 7, 5, -1, -1, -1, -1, -1, -1, -1},
	{1, 3, 7, 1, 7, 5, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{2, 1, 10, 7, 5, 9, 7, 9, 8, -1, -1, -1, -1, -1, -1, -1},
	{2, 1, 10, 0, 3, 7, 0, 7, 5, 0, 5, 9, -1, -1, -1, -1},
	{2, 0, 8, 2, 8, 7, 2, 7, 5, 2, 5, 10, -1, -1, -1, -1},
	{2, 3, 7, 2, 7, 5, 2, 5, 10, -1, -1, -1, -1, -1, -1, -1},
	{3, 2, 11, 7, 5, 9, 7, 9, 8, -1, -1, -1, -1, -1, -1, -1},
	{0, 2, 11, 0, 11, 7, 0, 7, 5, 0, 5, 9, -1, -1, -1, -1},
	{1, 0, 8, 1, 8, 7, 1, 7, 5, 3, 2, 11, -1, -1, -1, -1},
	{1, 2, 11, 1, 11, 7, 1, 7, 5, -1, -1, -1, -1, -1, -1, -1},
	{3, 1, 10, 3, 10, 11, 7, 5, 9, 7, 9, 8, -1, -1, -1, -1},
	{0, 1, 10, 0, 10, 11, 0, 11, 7, 0, 7, 5, 0, 5, 9, -1},
	{3, 0, 8, 3, 8, 7, 3, 7, 5, 3, 5, 10, 3, 10, 11, -1},
	{7, 5, 10, 7, 10, 11, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{5, 6, 10, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{0, 3, 8, 5, 6, 10, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{1, 0, 9, 5, 6, 10, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{1, 3, 8, 1, 8, 9, 5, 6, 10, -1, -1, -1, -1, -1, -1, -1},
	{2, 1, 5, 2, 5, 6, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{2, 1, 5, 2, 5, 6, 0, 3, 8, -1, -1, -1, -1, -1, -1, -1},
	{2, 0, 9, 2, 9, 5, 2, 5, 6, -1, -1, -1, -1, -1, -1, -1},
	{2, 3, 8, 2, 8, 9, 2, 9, 5, 2, 5, 6, -1, -1, -1, -1},
	{3, 2, 11, 5, 6, 10, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{0, 2, 11, 0, 11, 8, 5, 6, 10, -1, -1, -1, -1, -1, -1, -1},
	{1, 0, 9, 3, 2, 11, 5, 6, 10, -1, -1, -1, -1, -1, -1, -1},
	{1, 2, 11, 1, 11, 8, 1, 8, 9, 5, 6, 10, -1, -1, -1, -1},
	{3, 1, 5, 3, 5, 6, 3, 6, 11, -1, -1, -1, -1, -1, -1, -1},
	{0, 1, 5, 0, 5, 6, 0, 6, 11, 0, 11, 8, -1, -1, -1, -1},
	{3, 0, 9, 3, 9, 5, 3, 5, 6, 3, 6, 11, -1, -1, -1, -1},
	{5, 6, 11, 5, 11, 8, 5, 8, 9, -1, -1, -1, -1, -1, -1, -1},
	{5, 6, 10, 7, 4, 8, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{0, 3, 7, 0, 7, 4, 5, 6, 10, -1, -1, -1, -1, -1, -1, -1},
	{1, 0, 9, 5, 6, 10, 7, 4, 8, -1, -1, -1, -1, -1, -1, -1},
	{1, 3, 7, 1, 7, 4, 1, 4, 9, 5, 6, 10, -1, -1, -1, -1},
	{2, 1, 5, 2, 5, 6, 7, 4, 8, -1, -1, -1, -1, -1, -1, -1},
	{2, 1, 5, 2, 5, 6, 0, 3, 7, 0, 7, 4, -1, -1, -1, -1},
	{2, 0, 9, 2, 9, 5, 2, 5, 6, 7, 4, 8, -1, -1, -1, -1},
	{2, 3, 7, 2, 7, 4, 2, 4, 9, 2, 9, 5, 2, 5, 6, -1},
	{3, 2, 11, 5, 6, 10, 7, 4, 8, -1, -1, -1, -1, -1, -1, -1},
	{0, 2, 11, 0, 11, 7, 0, 7, 4, 5, 6, 10, -1, -1, -1, -1},
	{1, 0, 9, 3, 2, 11, 5, 6, 10, 7, 4, 8, -1, -1, -1, -1},
	{1, 2, 11, 1, 11, 7, 1, 7, 4, 1, 4, 9, 5, 6, 10, -1},
	{3, 1, 5, 3, 5, 6, 3, 6, 11, 7, 4, 8, -1, -1, -1, -1},
	{0, 1, 5, 0, 5, 6, 0, 6, 11, 0, 11, 7, 0, 7, 4, -1},
	{3, 0, 9, 3, 9, 5, 3, 5, 6, 3, 6, 11, 7, 4, 8, -1},
	{5, 6, 11, 5, 11, 7, 5, 7, 4, 5, 4, 9, -1, -1, -1, -1},
	{4, 6, 10, 4, 10, 9, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{0, 3, 8, 4, 6, 10, 4, 10, 9, -1, -1, -1, -1, -1, -1, -1},
	{1, 0, 4, 1, 4, 6, 1, 6, 10, -1, -1, -1, -1, -1, -1, -1},
	{1, 3, 8, 1, 8, 4, 1, 4, 6, 1, 6, 10, -1, -1, -1, -1},
	{2, 1, 9, 2, 9, 4, 2, 4, 6, -1, -1, -1, -1, -1, -1, -1},
	{2, 1, 9, 2, 9, 4, 2, 4, 6, 0, 3, 8, -1, -1, -1, -1},
	{2, 0, 4, 2, 4, 6, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{2, 3, 8, 2, 8, 4, 2, 4, 6, -1, -1, -1, -1, -1, -1, -1},
	{3, 2, 11, 4, 6, 10, 4, 10, 9, -1, -1, -1, -1, -1, -1, -1},
	{0, 2, 11, 0, 11, 8, 4, 6, 10, 4, 10, 9, -1, -1, -1, -1},
	{1, 0, 4, 1, 4, 6, 1, 6, 10, 3, 2, 11, -1, -1, -1, -1},
	{1, 2, 11, 1, 11, 8, 1, 8, 4, 1, 4, 6, 1, 6, 10, -1},
	{3, 1, 9, 3, 9, 4, 3, 4, 6, 3, 6, 11, -1, -1, -1, -1},
	{0, 1, 9, 0, 9, 4, 0, 4, 6, 0, 6, 11, 0, 11, 8, -1},
	{3, 0, 4, 3, 4, 6, 3, 6, 11, -1, -1, -1, -1, -1, -1, -1},
	{4, 6, 11, 4, 11, 8, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{7, 6, 10, 7, 10, 9, 7, 9, 8, -1, -1, -1, -1, -1, -1, -1},
	{0, 3, 7, 0, 7, 6, 0, 6, 10, 0, 10, 9, -1, -1, -1, -1},
	{1, 0, 8, 1, 8, 7, 1, 7, 6, 1, 6, 10, -1, -1, -1, -1},
	{1, 3, 7, 1, 7, 6, 1, 6, 10, -1, -1, -1, -1, -1, -1, -1},
	{2, 1, 9, 2, 9, 8, 2, 8, 7, 2, 7, 6, -1, -1, -1, -1},
	{2, 1, 9, 2, 9, 0, 2, 0, 3, 2, 3, 7, 2, 7, 6, -1},
	{2, 0, 8, 2, 8, 7, 2, 7, 6, -1, -1, -1, -1, -1, -1, -1},
	{2, 3, 7, 2, 7, 6, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{3, 2, 11, 7, 6, 10, 7, 10, 9, 7, 9, 8, -1, -1, -1, -1},
	{0, 2, 11, 0, 11, 7, 0, 7, 6, 0, 6, 10, 0, 10, 9, -1},
	{1, 0, 8, 1, 8, 7, 1, 7, 6, 1, 6, 10, 3, 2, 11, -1},
	{1, 2, 11, 1, 11, 7, 1, 7, 6, 1, 6, 10, -1, -1, -1, -1},
	{3, 1, 9, 3, 9, 8, 3, 8, 7, 3, 7, 6, 3, 6, 11, -1},
	{0, 1, 9, 7, 6, 11, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{3, 0, 8, 3, 8, 7, 3, 7, 6, 3, 6, 11, -1, -1, -1, -1},
	{7, 6, 11, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{6, 7, 11, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{0, 3, 8, 6, 7, 11, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{1, 0, 9, 6, 7, 11, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{1, 3, 8, 1, 8, 9, 6, 7, 11, -1, -1, -1, -1, -1, -1, -1},
	{2, 1, 10, 6, 7, 11, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{2, 1, 10, 0, 3, 8, 6, 7, 11, -1, -1, -1, -1, -1, -1, -1},
	{2, 0, 9, 2, 9, 10, 6, 7, 11, -1, -1, -1, -1, -1, -1, -1},
	{2, 3, 8, 2, 8, 9, 2, 9, 10, 6, 7, 11, -1, -1, -1, -1},
	{3, 2, 6, 3, 6, 7, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{0, 2, 6, 0, 6, 7, 0, 7, 8, -1, -1, -1, -1, -1, -1, -1},
	{1, 0, 9, 3, 2, 6, 3, 6, 7, -1, -1, -1, -1, -1, -1, -1},
	{1, 2, 6, 1, 6, 7, 1, 7, 8, 1, 8, 9, -1, -1, -1, -1},
	{3, 1, 10, 3, 10, 6, 3, 6, 7, -1, -1, -1, -1, -1, -1, -1},
	{0, 1, 10, 0, 10, 6, 0, 6, 7, 0, 7, 8, -1, -1, -1, -1},
	{3, 0, 9, 3, 9, 10, 3, 10, 6, 3, 6, 7, -1, -1, -1, -1},
	{6, 7, 8, 6, 8, 9, 6, 9, 10, -1, -1, -1, -1, -1, -1, -1},
	{6, 4, 8, 6, 8, 11, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{0, 3, 11, 0, 11, 6, 0, 6, 4, -1, -1, -1, -1, -1, -1, -1},
	{1, 0, 9, 6, 4, 8, 6, 8, 11, -1, -1, -1, -1, -1, -1, -1},
	{1, 3, 11, 1, 11, 6, 1, 6, 4, 1, 4, 9, -1, -1, -1, -1},
	{2, 1, 10, 6, 4, 8, 6, 8, 11, -1, -1, -1, -1, -1, -1, -1},
	{2, 1, 10, 0, 3, 11, 0, 11, 6, 0, 6, 4, -1, -1, -1, -1},
	{2, 0, 9, 2, 9, 10, 6, 4, 8, 6, 8, 11, -1, -1, -1, -1},
	{2, 3, 11, 2, 11, 6, 2, 6, 4, 2, 4, 9, 2, 9, 10, -1},
	{3, 2, 6, 3, 6, 4, 3, 4, 8, -1, -1, -1, -1, -1, -1, -1},
	{0, 2, 6, 0, 6, 4, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{1, 0, 9, 3, 2, 6, 3, 6, 4, 3, 4, 8, -1, -1, -1, -1},
	{1, 2, 6, 1, 6, 4, 1, 4, 9, -1, -1, -1, -1, -1, -1, -1},
	{3, 1, 10, 3, 10, 6, 3, 6, 4, 3, 4, 8, -1, -1, -1, -1},
	{0, 1, 10, 0, 10, 6, 0, 6, 4, -1, -1, -1, -1, -1, -1, -1},
	{3, 0, 9, 3, 9, 10, 3, 10, 6, 3, 6, 4, 3, 4, 8, -1},
	{6, 4, 9, 6, 9, 10, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{4, 5, 9, 6, 7, 11, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{0, 3, 8, 4, 5, 9, 6, 7, 11, -1, -1, -1, -1, -1, -1, -1},
	{1, 0, 4, 1, 4, 5, 6, 7, 11, -1, -1, -1, -1, -1, -1, -1},
	{1, 3, 8, 1, 8, 4, 1, 4, 5, 6, 7, 11, -1, -1, -1, -1},
	{2, 1, 10, 4, 5, 9, 6, 7, 11, -1, -1, -1, -1, -1, -1, -1},
	{2, 1, 10, 0, 3, 8, 4, 5, 9, 6, 7, 11, -1, -1, -1, -1},
	{2, 0, 4, 2, 4, 5, 2, 5, 10, 6, 7, 11, -1, -1, -1, -1},
	{2, 3, 8, 2, 8, 4, 2, 4, 5, 2, 5, 10, 6, 7, 11, -1},
	{3, 2, 6, 3, 6, 7, 4, 5, 9, -1, -1, -1, -1, -1, -1, -1},
	{0, 2, 6, 0, 6, 7, 0, 7, 8, 4, 5, 9, -1, -1, -1, -1},
	{1, 0, 4, 1, 4, 5, 3, 2, 6, 3, 6, 7, -1, -1, -1, -1},
	{1, 2, 6, 1, 6, 7, 1, 7, 8, 1, 8, 4, 1, 4, 5, -1},
	{3, 1, 10, 3, 10, 6, 3, 6, 7, 4, 5, 9, -1, -1, -1, -1},
	{0, 1, 10, 0, 10, 6, 0, 6, 7, 0, 7, 8, 4, 5, 9, -1},
	{3, 0, 4, 3, 4, 5, 3, 5, 10, 3, 10, 6, 3, 6, 7, -1},
	{4, 5, 10, 4, 10, 6, 4, 6, 7, 4, 7, 8, -1, -1, -1, -1},
	{6, 5, 9, 6, 9, 8, 6, 8, 11, -1, -1, -1, -1, -1, -1, -1},
	{0, 3, 11, 0, 11, 6, 0, 6, 5, 0, 5, 9, -1, -1, -1, -1},
	{1, 0, 8, 1, 8, 11, 1, 11, 6, 1, 6, 5, -1, -1, -1, -1},
	{1, 3, 11, 1, 11, 6, 1, 6, 5, -1, -1, -1, -1, -1, -1, -1},
	{2, 1, 10, 6, 5, 9, 6, 9, 8, 6, 8, 11, -1, -1, -1, -1},
	{2, 1, 10, 0, 3, 11, 0, 11, 6, 0, 6, 5, 0, 5, 9, -1},
	{2, 0, 8, 2, 8, 11, 2, 11, 6, 2, 6, 5, 2, 5, 10, -1},
	{2, 3, 11, 2, 11, 6, 2, 6, 5, 2, 5, 10, -1, -1, -1, -1},
	{3, 2, 6, 3, 6, 5, 3, 5, 9, 3, 9, 8, -1, -1, -1, -1},
	{0, 2, 6, 0, 6, 5, 0, 5, 9, -1, -1, -1, -1, -1, -1, -1},
	{1, 0, 8, 1, 8, 3, 1, 3, 2, 1, 2, 6, 1, 6, 5, -1},
	{1, 2, 6, 1, 6, 5, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{3, 1, 10, 3, 10, 6, 3, 6, 5, 3, 5, 9, 3, 9, 8, -1},
	{0, 1, 10, 0, 10, 6, 0, 6, 5, 0, 5, 9, -1, -1, -1, -1},
	{3, 0, 8, 6, 5, 10, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{6, 5, 10, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{5, 7, 11, 5, 11, 10, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{0, 3, 8, 5, 7, 11, 5, 11, 10, -1, -1, -1, -1, -1, -1, -1},
	{1, 0, 9, 5, 7, 11, 5, 11, 10, -1, -1, -1, -1, -1, -1, -1},
	{1, 3, 8, 1, 8, 9, 5, 7, 11, 5, 11, 10, -1, -1, -1, -1},
	{2, 1, 5, 2, 5, 7, 2, 7, 11, -1, -1, -1, -1, -1, -1, -1},
	{2, 1, 5, 2, 5, 7, 2, 7, 11, 0, 3, 8, -1, -1, -1, -1},
	{2, 0, 9, 2, 9, 5, 2, 5, 7, 2, 7, 11, -1, -1, -1, -1},
	{2, 3, 8, 2, 8, 9, 2, 9, 5, 2, 5, 7, 2, 7, 11, -1},
	{3, 2, 10, 3, 10, 5, 3, 5, 7, -1, -1, -1, -1, -1, -1, -1},
	{0, 2, 10, 0, 10, 5, 0, 5, 7, 0, 7, 8, -1, -1, -1, -1},
	{1, 0, 9, 3, 2, 10, 3, 10, 5, 3, 5, 7, -1, -1, -1, -1},
	{1, 2, 10, 1, 10, 5, 1, 5, 7, 1, 7, 8, 1, 8, 9, -1},
	{3, 1, 5, 3, 5, 7, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{0, 1, 5, 0, 5, 7, 0, 7, 8, -1, -1, -1, -1, -1, -1, -1},
	{3, 0, 9, 3, 9, 5, 3, 5, 7, -1, -1, -1, -1, -1, -1, -1},
	{5, 7, 8, 5, 8, 9, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{5, 4, 8, 5, 8, 11, 5, 11, 10, -1, -1, -1, -1, -1, -1, -1},
	{0, 3, 11, 0, 11, 10, 0, 10, 5, 0, 5, 4, -1, -1, -1, -1},
	{1, 0, 9, 5, 4, 8, 5, 8, 11, 5, 11, 10, -1, -1, -1, -1},
	{1, 3, 11, 1, 11, 10, 1, 10, 5, 1, 5, 4, 1, 4, 9, -1},
	{2, 1, 5, 2, 5, 4, 2, 4, 8, 2, 8, 11, -1, -1, -1, -1},
	{2, 1, 5, 2, 5, 4, 2, 4, 0, 2, 0, 3, 2, 3, 11, -1},
	{2, 0, 9, 2, 9, 5, 2, 5, 4, 2, 4, 8, 2, 8, 11, -1},
	{2, 3, 11, 5, 4, 9, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{3, 2, 10, 3, 10, 5, 3, 5, 4, 3, 4, 8, -1, -1, -1, -1},
	{0, 2, 10, 0, 10, 5, 0, 5, 4, -1, -1, -1, -1, -1, -1, -1},
	{1, 0, 9, 3, 2, 10, 3, 10, 5, 3, 5, 4, 3, 4, 8, -1},
	{1, 2, 10, 1, 10, 5, 1, 5, 4, 1, 4, 9, -1, -1, -1, -1},
	{3, 1, 5, 3, 5, 4, 3, 4, 8, -1, -1, -1, -1, -1, -1, -1},
	{0, 1, 5, 0, 5, 4, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{3, 0, 9, 3, 9, 5, 3, 5, 4, 3, 4, 8, -1, -1, -1, -1},
	{5, 4, 9, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{4, 7, 11, 4, 11, 10, 4, 10, 9, -1, -1, -1, -1, -1, -1, -1},
	{0, 3, 8, 4, 7, 11, 4, 11, 10, 4, 10, 9, -1, -1, -1, -1},
	{1, 0, 4, 1, 4, 7, 1, 7, 11, 1, 11, 10, -1, -1, -1, -1},
	{1, 3, 8, 1, 8, 4, 1, 4, 7, 1, 7, 11, 1, 11, 10, -1},
	{2, 1, 9, 2, 9, 4, 2, 4, 7, 2, 7, 11, -1, -1, -1, -1},
	{2, 1, 9, 2, 9, 4, 2, 4, 7, 2, 7, 11, 0, 3, 8, -1},
	{2, 0, 4, 2, 4, 7, 2, 7, 11, -1, -1, -1, -1, -1, -1, -1},
	{2, 3, 8, 2, 8, 4, 2, 4, 7, 2, 7, 11, -1, -1, -1, -1},
	{3, 2, 10, 3, 10, 9, 3, 9, 4, 3, 4, 7, -1, -1, -1, -1},
	{0, 2, 10, 0, 10, 9, 0, 9, 4, 0, 4, 7, 0, 7, 8, -1},
	{1, 0, 4, 1, 4, 7, 1, 7, 3, 1, 3, 2, 1, 2, 10, -1},
	{1, 2, 10, 4, 7, 8, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{3, 1, 9, 3, 9, 4, 3, 4, 7, -1, -1, -1, -1, -1, -1, -1},
	{0, 1, 9, 0, 9, 4, 0, 4, 7, 0, 7, 8, -1, -1, -1, -1},
	{3, 0, 4, 3, 4, 7, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{4, 7, 8, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{9, 8, 11, 9, 11, 10, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{0, 3, 11, 0, 11, 10, 0, 10, 9, -1, -1, -1, -1, -1, -1, -1},
	{1, 0, 8, 1, 8, 11, 1, 11, 10, -1, -1, -1, -1, -1, -1, -1},
	{1, 3, 11, 1, 11, 10, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{2, 1, 9, 2, 9, 8, 2, 8, 11, -1, -1, -1, -1, -1, -1, -1},
	{2, 1, 9, 2, 9, 0, 2, 0, 3, 2, 3, 11, -1, -1, -1, -1},
	{2, 0, 8, 2, 8, 11, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{2, 3, 11, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{3, 2, 10, 3, 10, 9, 3, 9, 8, -1, -1, -1, -1, -1, -1, -1},
	{0, 2, 10, 0, 10, 9, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{1, 0, 8, 1, 8, 3, 1, 3, 2, 1, 2, 10, -1, -1, -1, -1},
	{1, 2, 10, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{3, 1, 9, 3, 9, 8, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{0, 1, 9, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{3, 0, 8, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
}

var pyramidTriangles = [32][]int8{
	{-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{0, 1, 2, 0, 2, 3, -1, -1, -1, -1, -1, -1, -1},
	{7, 4, 0, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{7, 4, 1, 7, 1, 2, 7, 2, 3, -1, -1, -1, -1},
	{4, 5, 1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{4, 5, 2, 4, 2, 3, 4, 3, 0, -1, -1, -1, -1},
	{7, 5, 1, 7, 1, 0, -1, -1, -1, -1, -1, -1, -1},
	{7, 5, 2, 7, 2, 3, -1, -1, -1, -1, -1, -1, -1},
	{5, 6, 2, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{5, 6, 3, 5, 3, 0, 5, 0, 1, -1, -1, -1, -1},
	{5, 6, 2, 7, 4, 0, -1, -1, -1, -1, -1, -1, -1},
	{5, 6, 3, 5, 3, 7, 5, 7, 4, 5, 4, 1, -1},
	{4, 6, 2, 4, 2, 1, -1, -1, -1, -1, -1, -1, -1},
	{4, 6, 3, 4, 3, 0, -1, -1, -1, -1, -1, -1, -1},
	{7, 6, 2, 7, 2, 1, 7, 1, 0, -1, -1, -1, -1},
	{7, 6, 3, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{6, 7, 3, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{6, 7, 0, 6, 0, 1, 6, 1, 2, -1, -1, -1, -1},
	{6, 4, 0, 6, 0, 3, -1, -1, -1, -1, -1, -1, -1},
	{6, 4, 1, 6, 1, 2, -1, -1, -1, -1, -1, -1, -1},
	{4, 5, 1, 6, 7, 3, -1, -1, -1, -1, -1, -1, -1},
	{4, 5, 2, 4, 2, 6, 4, 6, 7, 4, 7, 0, -1},
	{6, 5, 1, 6, 1, 0, 6, 0, 3, -1, -1, -1, -1},
	{6, 5, 2, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{5, 7, 3, 5, 3, 2, -1, -1, -1, -1, -1, -1, -1},
	{5, 7, 0, 5, 0, 1, -1, -1, -1, -1, -1, -1, -1},
	{5, 4, 0, 5, 0, 3, 5, 3, 2, -1, -1, -1, -1},
	{5, 4, 1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{4, 7, 3, 4, 3, 2, 4, 2, 1, -1, -1, -1, -1},
	{4, 7, 0, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{1, 0, 3, 1, 3, 2, -1, -1, -1, -1, -1, -1, -1},
	{-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
}

var prismTriangles = [64][]int8{
	{-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{0, 2, 6, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{1, 0, 7, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{1, 2, 6, 1, 6, 7, -1, -1, -1, -1, -1, -1, -1},
	{2, 1, 8, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{0, 1, 8, 0, 8, 6, -1, -1, -1, -1, -1, -1, -1},
	{2, 0, 7, 2, 7, 8, -1, -1, -1, -1, -1, -1, -1},
	{6, 7, 8, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{5, 3, 6, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{0, 2, 5, 0, 5, 3, -1, -1, -1, -1, -1, -1, -1},
	{1, 0, 7, 5, 3, 6, -1, -1, -1, -1, -1, -1, -1},
	{1, 2, 5, 1, 5, 3, 1, 3, 7, -1, -1, -1, -1},
	{2, 1, 8, 5, 3, 6, -1, -1, -1, -1, -1, -1, -1},
	{0, 1, 8, 0, 8, 5, 0, 5, 3, -1, -1, -1, -1},
	{2, 0, 7, 2, 7, 8, 5, 3, 6, -1, -1, -1, -1},
	{5, 3, 7, 5, 7, 8, -1, -1, -1, -1, -1, -1, -1},
	{3, 4, 7, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{0, 2, 6, 3, 4, 7, -1, -1, -1, -1, -1, -1, -1},
	{1, 0, 3, 1, 3, 4, -1, -1, -1, -1, -1, -1, -1},
	{1, 2, 6, 1, 6, 3, 1, 3, 4, -1, -1, -1, -1},
	{2, 1, 8, 3, 4, 7, -1, -1, -1, -1, -1, -1, -1},
	{0, 1, 8, 0, 8, 6, 3, 4, 7, -1, -1, -1, -1},
	{2, 0, 3, 2, 3, 4, 2, 4, 8, -1, -1, -1, -1},
	{3, 4, 8, 3, 8, 6, -1, -1, -1, -1, -1, -1, -1},
	{5, 4, 7, 5, 7, 6, -1, -1, -1, -1, -1, -1, -1},
	{0, 2, 5, 0, 5, 4, 0, 4, 7, -1, -1, -1, -1},
	{1, 0, 6, 1, 6, 5, 1, 5, 4, -1, -1, -1, -1},
	{1, 2, 5, 1, 5, 4, -1, -1, -1, -1, -1, -1, -1},
	{2, 1, 8, 5, 4, 7, 5, 7, 6, -1, -1, -1, -1},
	{0, 1, 8, 0, 8, 5, 0, 5, 4, 0, 4, 7, -1},
	{2, 0, 6, 2, 6, 5, 2, 5, 4, 2, 4, 8, -1},
	{5, 4, 8, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{4, 5, 8, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{0, 2, 6, 4, 5, 8, -1, -1, -1, -1, -1, -1, -1},
	{1, 0, 7, 4, 5, 8, -1, -1, -1, -1, -1, -1, -1},
	{1, 2, 6, 1, 6, 7, 4, 5, 8, -1, -1, -1, -1},
	{2, 1, 4, 2, 4, 5, -1, -1, -1, -1, -1, -1, -1},
	{0, 1, 4, 0, 4, 5, 0, 5, 6, -1, -1, -1, -1},
	{2, 0, 7, 2, 7, 4, 2, 4, 5, -1, -1, -1, -1},
	{4, 5, 6, 4, 6, 7, -1, -1, -1, -1, -1, -1, -1},
	{4, 3, 6, 4, 6, 8, -1, -1, -1, -1, -1, -1, -1},
	{0, 2, 8, 0, 8, 4, 0, 4, 3, -1, -1, -1, -1},
	{1, 0, 7, 4, 3, 6, 4, 6, 8, -1, -1, -1, -1},
	{1, 2, 8, 1, 8, 4, 1, 4, 3, 1, 3, 7, -1},
	{2, 1, 4, 2, 4, 3, 2, 3, 6, -1, -1, -1, -1},
	{0, 1, 4, 0, 4, 3, -1, -1, -1, -1, -1, -1, -1},
	{2, 0, 7, 2, 7, 4, 2, 4, 3, 2, 3, 6, -1},
	{4, 3, 7, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{3, 5, 8, 3, 8, 7, -1, -1, -1, -1, -1, -1, -1},
	{0, 2, 6, 3, 5, 8, 3, 8, 7, -1, -1, -1, -1},
	{1, 0, 3, 1, 3, 5, 1, 5, 8, -1, -1, -1, -1},
	{1, 2, 6, 1, 6, 3, 1, 3, 5, 1, 5, 8, -1},
	{2, 1, 7, 2, 7, 3, 2, 3, 5, -1, -1, -1, -1},
	{0, 1, 7, 0, 7, 3, 0, 3, 5, 0, 5, 6, -1},
	{2, 0, 3, 2, 3, 5, -1, -1, -1, -1, -1, -1, -1},
	{3, 5, 6, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{7, 6, 8, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{0, 2, 8, 0, 8, 7, -1, -1, -1, -1, -1, -1, -1},
	{1, 0, 6, 1, 6, 8, -1, -1, -1, -1, -1, -1, -1},
	{1, 2, 8, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{2, 1, 7, 2, 7, 6, -1, -1, -1, -1, -1, -1, -1},
	{0, 1, 7, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{2, 0, 6, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
}

var cubeTriangles = [256][]int8{
	{-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{3, 0, 8, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{0, 1, 9, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{3, 1, 9, 3, 9, 8, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{1, 2, 10, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{1, 2, 10, 3, 0, 8, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{0, 2, 10, 0, 10, 9, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{3, 2, 10, 3, 10, 9, 3, 9, 8, -1, -1, -1, -1, -1, -1, -1},
	{2, 3, 11, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{2, 0, 8, 2, 8, 11, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{0, 1, 9, 2, 3, 11, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{2, 1, 9, 2, 9, 8, 2, 8, 11, -1, -1, -1, -1, -1, -1, -1},
	{1, 3, 11, 1, 11, 10, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{1, 0, 8, 1, 8, 11, 1, 11, 10, -1, -1, -1, -1, -1, -1, -1},
	{0, 3, 11, 0, 11, 10, 0, 10, 9, -1, -1, -1, -1, -1, -1, -1},
	{9, 8, 11, 9, 11, 10, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{4, 7, 8, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{3, 0, 4, 3, 4, 7, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{0, 1, 9, 4, 7, 8, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{3, 1, 9, 3, 9, 4, 3, 4, 7, -1, -1, -1, -1, -1, -1, -1},
	{1, 2, 10, 4, 7, 8, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{1, 2, 10, 3, 0, 4, 3, 4, 7, -1, -1, -1, -1, -1, -1, -1},
	{0, 2, 10, 0, 10, 9, 4, 7, 8, -1, -1, -1, -1, -1, -1, -1},
	{3, 2, 10, 3, 10, 9, 3, 9, 4, 3, 4, 7, -1, -1, -1, -1},
	{2, 3, 11, 4, 7, 8, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{2, 0, 4, 2, 4, 7, 2, 7, 11, -1, -1, -1, -1, -1, -1, -1},
	{0, 1, 9, 2, 3, 11, 4, 7, 8, -1, -1, -1, -1, -1, -1, -1},
	{2, 1, 9, 2, 9, 4, 2, 4, 7, 2, 7, 11, -1, -1, -1, -1},
	{1, 3, 11, 1, 11, 10, 4, 7, 8, -1, -1, -1, -1, -1, -1, -1},
	{1, 0, 4, 1, 4, 7, 1, 7, 11, 1, 11, 10, -1, -1, -1, -1},
	{0, 3, 11, 0, 11, 10, 0, 10, 9, 4, 7, 8, -1, -1, -1, -1},
	{4, 7, 11, 4, 11, 10, 4, 10, 9, -1, -1, -1, -1, -1, -1, -1},
	{5, 4, 9, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{3, 0, 8, 5, 4, 9, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{0, 1, 5, 0, 5, 4, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{3, 1, 5, 3, 5, 4, 3, 4, 8, -1, -1, -1, -1, -1, -1, -1},
	{1, 2, 10, 5, 4, 9, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{1, 2, 10, 3, 0, 8, 5, 4, 9, -1, -1, -1, -1, -1, -1, -1},
	{0, 2, 10, 0, 10, 5, 0, 5, 4, -1, -1, -1, -1, -1, -1, -1},
	{3, 2, 10, 3, 10, 5, 3, 5, 4, 3, 4, 8, -1, -1, -1, -1},
	{2, 3, 11, 5, 4, 9, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{2, 0, 8, 2, 8, 11, 5, 4, 9, -1, -1, -1, -1, -1, -1, -1},
	{0, 1, 5, 0, 5, 4, 2, 3, 11, -1, -1, -1, -1, -1, -1, -1},
	{2, 1, 5, 2, 5, 4, 2, 4, 8, 2, 8, 11, -1, -1, -1, -1},
	{1, 3, 11, 1, 11, 10, 5, 4, 9, -1, -1, -1, -1, -1, -1, -1},
	{1, 0, 8, 1, 8, 11, 1, 11, 10, 5, 4, 9, -1, -1, -1, -1},
	{0, 3, 11, 0, 11, 10, 0, 10, 5, 0, 5, 4, -1, -1, -1, -1},
	{5, 4, 8, 5, 8, 11, 5, 11, 10, -1, -1, -1, -1, -1, -1, -1},
	{5, 7, 8, 5, 8, 9, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{3, 0, 9, 3, 9, 5, 3, 5, 7, -1, -1, -1, -1, -1, -1, -1},
	{0, 1, 5, 0, 5, 7, 0, 7, 8, -1, -1, -1, -1, -1, -1, -1},
	{3, 1, 5, 3, 5, 7, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{1, 2, 10, 5, 7, 8, 5, 8, 9, -1, -1, -1, -1, -1, -1, -1},
	{1, 2, 10, 3, 0, 9, 3, 9, 5, 3, 5, 7, -1, -1, -1, -1},
	{0, 2, 10, 0, 10, 5, 0, 5, 7, 0, 7, 8, -1, -1, -1, -1},
	{3, 2, 10, 3, 10, 5, 3, 5, 7, -1, -1, -1, -1, -1, -1, -1},
	{2, 3, 11, 5, 7, 8, 5, 8, 9, -1, -1, -1, -1, -1, -1, -1},
	{2, 0, 9, 2, 9, 5, 2, 5, 7, 2, 7, 11, -1, -1, -1, -1},
	{0, 1, 5, 0, 5, 7, 0, 7, 8, 2, 3, 11, -1, -1, -1, -1},
	{2, 1, 5, 2, 5, 7, 2, 7, 11, -1, -1, -1, -1, -1, -1, -1},
	{1, 3, 11, 1, 11, 10, 5, 7, 8, 5, 8, 9, -1, -1, -1, -1},
	{1, 0, 9, 1, 9, 5, 1, 5, 7, 1, 7, 11, 1, 11, 10, -1},
	{0, 3, 11, 0, 11, 10, 0, 10, 5, 0, 5, 7, 0, 7, 8, -1},
	{5, 7, 11, 5, 11, 10, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{6, 5, 10, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{3, 0, 8, 6, 5, 10, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{0, 1, 9, 6, 5, 10, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{3, 1, 9, 3, 9, 8, 6, 5, 10, -1, -1, -1, -1, -1, -1, -1},
	{1, 2, 6, 1, 6, 5, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{1, 2, 6, 1, 6, 5, 3, 0, 8, -1, -1, -1, -1, -1, -1, -1},
	{0, 2, 6, 0, 6, 5, 0, 5, 9, -1, -1, -1, -1, -1, -1, -1},
	{3, 2, 6, 3, 6, 5, 3, 5, 9, 3, 9, 8, -1, -1, -1, -1},
	{2, 3, 11, 6, 5, 10, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{2, 0, 8, 2, 8, 11, 6, 5, 10, -1, -1, -1, -1, -1, -1, -1},
	{0, 1, 9, 2, 3, 11, 6, 5, 10, -1, -1, -1, -1, -1, -1, -1},
	{2, 1, 9, 2, 9, 8, 2, 8, 11, 6, 5, 10, -1, -1, -1, -1},
	{1, 3, 11, 1, 11, 6, 1, 6, 5, -1, -1, -1, -1, -1, -1, -1},
	{1, 0, 8, 1, 8, 11, 1, 11, 6, 1, 6, 5, -1, -1, -1, -1},
	{0, 3, 11, 0, 11, 6, 0, 6, 5, 0, 5, 9, -1, -1, -1, -1},
	{6, 5, 9, 6, 9, 8, 6, 8, 11, -1, -1, -1, -1, -1, -1, -1},
	{6, 5, 10, 4, 7, 8, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{3, 0, 4, 3, 4, 7, 6, 5, 10, -1, -1, -1, -1, -1, -1, -1},
	{0, 1, 9, 6, 5, 10, 4, 7, 8, -1, -1, -1, -1, -1, -1, -1},
	{3, 1, 9, 3, 9, 4, 3, 4, 7, 6, 5, 10, -1, -1, -1, -1},
	{1, 2, 6, 1, 6, 5, 4, 7, 8, -1, -1, -1, -1, -1, -1, -1},
	{1, 2, 6, 1, 6, 5, 3, 0, 4, 3, 4, 7, -1, -1, -1, -1},
	{0, 2, 6, 0, 6, 5, 0, 5, 9, 4, 7, 8, -1, -1, -1, -1},
	{3, 2, 6, 3, 6, 5, 3, 5, 9, 3, 9, 4, 3, 4, 7, -1},
	{2, 3, 11, 6, 5, 10, 4, 7, 8, -1, -1, -1, -1, -1, -1, -1},
	{2, 0, 4, 2, 4, 7, 2, 7, 11, 6, 5, 10, -1, -1, -1, -1},
	{0, 1, 9, 2, 3, 11, 6, 5, 10, 4, 7, 8, -1, -1, -1, -1},
	{2, 1, 9, 2, 9, 4, 2, 4, 7, 2, 7, 11, 6, 5, 10, -1},
	{1, 3, 11, 1, 11, 6, 1, 6, 5, 4, 7, 8, -1, -1, -1, -1},
	{1, 0, 4, 1, 4, 7, 1, 7, 11, 1, 11, 6, 1, 6, 5, -1},
	{0, 3, 11, 0, 11, 6, 0, 6, 5, 0, 5, 9, 4, 7, 8, -1},
	{6, 5, 9, 6, 9, 4, 6, 4, 7, 6, 7, 11, -1, -1, -1, -1},
	{6, 4, 9, 6, 9, 10, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{3, 0, 8, 6, 4, 9, 6, 9, 10, -1, -1, -1, -1, -1, -1, -1},
	{0, 1, 10, 0, 10, 6, 0, 6, 4, -1, -1, -1, -1, -1, -1, -1},
	{3, 1, 10, 3, 10, 6, 3, 6, 4, 3, 4, 8, -1, -1, -1, -1},
	{1, 2, 6, 1, 6, 4, 1, 4, 9, -1, -1, -1, -1, -1, -1, -1},
	{1, 2, 6, 1, 6, 4, 1, 4, 9, 3, 0, 8, -1, -1, -1, -1},
	{0, 2, 6, 0, 6, 4, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{3, 2, 6, 3, 6, 4, 3, 4, 8, -1, -1, -1, -1, -1, -1, -1},
	{2, 3, 11, 6, 4, 9, 6, 9, 10, -1, -1, -1, -1, -1, -1, -1},
	{2, 0, 8, 2, 8, 11, 6, 4, 9, 6, 9, 10, -1, -1, -1, -1},
	{0, 1, 10, 0, 10, 6, 0, 6, 4, 2, 3, 11, -1, -1, -1, -1},
	{2, 1, 10, 2, 10, 6, 2, 6, 4, 2, 4, 8, 2, 8, 11, -1},
	{1, 3, 11, 1, 11, 6, 1, 6, 4, 1, 4, 9, -1, -1, -1, -1},
	{1, 0, 8, 1, 8, 11, 1, 11, 6, 1, 6, 4, 1, 4, 9, -1},
	{0, 3, 11, 0, 11, 6, 0, 6, 4, -1, -1, -1, -1, -1, -1, -1},
	{6, 4, 8, 6, 8, 11, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{6, 7, 8, 6, 8, 9, 6, 9, 10, -1, -1, -1, -1, -1, -1, -1},
	{3, 0, 9, 3, 9, 10, 3, 10, 6, 3, 6, 7, -1, -1, -1, -1},
	{0, 1, 10, 0, 10, 6, 0, 6, 7, 0, 7, 8, -1, -1, -1, -1},
	{3, 1, 10, 3, 10, 6, 3, 6, 7, -1, -1, -1, -1, -1, -1, -1},
	{1, 2, 6, 1, 6, 7, 1, 7, 8, 1, 8, 9, -1, -1, -1, -1},
	{1, 2, 6, 1, 6, 7, 1, 7, 3, 1, 3, 0, 1, 0, 9, -1},
	{0, 2, 6, 0, 6, 7, 0, 7, 8, -1, -1, -1, -1, -1, -1, -1},
	{3, 2, 6, 3, 6, 7, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{2, 3, 11, 6, 7, 8, 6, 8, 9, 6, 9, 10, -1, -1, -1, -1},
	{2, 0, 9, 2, 9, 10, 2, 10, 6, 2, 6, 7, 2, 7, 11, -1},
	{0, 1, 10, 0, 10, 6, 0, 6, 7, 0, 7, 8, 2, 3, 11, -1},
	{2, 1, 10, 2, 10, 6, 2, 6, 7, 2, 7, 11, -1, -1, -1, -1},
	{1, 3, 11, 1, 11, 6, 1, 6, 7, 1, 7, 8, 1, 8, 9, -1},
	{1, 0, 9, 6, 7, 11, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{0, 3, 11, 0, 11, 6, 0, 6, 7, 0, 7, 8, -1, -1, -1, -1},
	{6, 7, 11, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{7, 6, 11, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{3, 0, 8, 7, 6, 11, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{0, 1, 9, 7, 6, 11, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{3, 1, 9, 3, 9, 8, 7, 6, 11, -1, -1, -1, -1, -1, -1, -1},
	{1, 2, 10, 7, 6, 11, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{1, 2, 10, 3, 0, 8, 7, 6, 11, -1, -1, -1, -1, -1, -1, -1},
	{0, 2, 10, 0, 10, 9, 7, 6, 11, -1, -1, -1, -1, -1, -1, -1},
	{3, 2, 10, 3, 10, 9, 3, 9, 8, 7, 6, 11, -1, -1, -1, -1},
	{2, 3, 7, 2, 7, 6, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{2, 0, 8, 2, 8, 7, 2, 7, 6, -1, -1, -1, -1, -1, -1, -1},
	{0, 1, 9, 2, 3, 7, 2, 7, 6, -1, -1, -1, -1, -1, -1, -1},
	{2, 1, 9, 2, 9, 8, 2, 8, 7, 2, 7, 6, -1, -1, -1, -1},
	{1, 3, 7, 1, 7, 6, 1, 6, 10, -1, -1, -1, -1, -1, -1, -1},
	{1, 0, 8, 1, 8, 7, 1, 7, 6, 1, 6, 10, -1, -1, -1, -1},
	{0, 3, 7, 0, 7, 6, 0, 6, 10, 0, 10, 9, -1, -1, -1, -1},
	{7, 6, 10, 7, 10, 9, 7, 9, 8, -1, -1, -1, -1, -1, -1, -1},
	{4, 6, 11, 4, 11, 8, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{3, 0, 4, 3, 4, 6, 3, 6, 11, -1, -1, -1, -1, -1, -1, -1},
	{0, 1, 9, 4, 6, 11, 4, 11, 8, -1, -1, -1, -1, -1, -1, -1},
	{3, 1, 9, 3, 9, 4, 3, 4, 6, 3, 6, 11, -1, -1, -1, -1},
	{1, 2, 10, 4, 6, 11, 4, 11, 8, -1, -1, -1, -1, -1, -1, -1},
	{1, 2, 10, 3, 0, 4, 3, 4, 6, 3, 6, 11, -1, -1, -1, -1},
	{0, 2, 10, 0, 10, 9, 4, 6, 11, 4, 11, 8, -1, -1, -1, -1},
	{3, 2, 10, 3, 10, 9, 3, 9, 4, 3, 4, 6, 3, 6, 11, -1},
	{2, 3, 8, 2, 8, 4, 2, 4, 6, -1, -1, -1, -1, -1, -1, -1},
	{2, 0, 4, 2, 4, 6, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{0, 1, 9, 2, 3, 8, 2, 8, 4, 2, 4, 6, -1, -1, -1, -1},
	{2, 1, 9, 2, 9, 4, 2, 4, 6, -1, -1, -1, -1, -1, -1, -1},
	{1, 3, 8, 1, 8, 4, 1, 4, 6, 1, 6, 10, -1, -1, -1, -1},
	{1, 0, 4, 1, 4, 6, 1, 6, 10, -1, -1, -1, -1, -1, -1, -1},
	{0, 3, 8, 0, 8, 4, 0, 4, 6, 0, 6, 10, 0, 10, 9, -1},
	{4, 6, 10, 4, 10, 9, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{5, 4, 9, 7, 6, 11, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{3, 0, 8, 5, 4, 9, 7, 6, 11, -1, -1, -1, -1, -1, -1, -1},
	{0, 1, 5, 0, 5, 4, 7, 6, 11, -1, -1, -1, -1, -1, -1, -1},
	{3, 1, 5, 3, 5, 4, 3, 4, 8, 7, 6, 11, -1, -1, -1, -1},
	{1, 2, 10, 5, 4, 9, 7, 6, 11, -1, -1, -1, -1, -1, -1, -1},
	{1, 2, 10, 3, 0, 8, 5, 4, 9, 7, 6, 11, -1, -1, -1, -1},
	{0, 2, 10, 0, 10, 5, 0, 5, 4, 7, 6, 11, -1, -1, -1, -1},
	{3, 2, 10, 3, 10, 5, 3, 5, 4, 3, 4, 8, 7, 6, 11, -1},
	{2, 3, 7, 2, 7, 6, 5, 4, 9, -1, -1, -1, -1, -1, -1, -1},
	{2, 0, 8, 2, 8, 7, 2, 7, 6, 5, 4, 9, -1, -1, -1, -1},
	{0, 1, 5, 0, 5, 4, 2, 3, 7, 2, 7, 6, -1, -1, -1, -1},
	{2, 1, 5, 2, 5, 4, 2, 4, 8, 2, 8, 7, 2, 7, 6, -1},
	{1, 3, 7, 1, 7, 6, 1, 6, 10, 5, 4, 9, -1, -1, -1, -1},
	{1, 0, 8, 1, 8, 7, 1, 7, 6, 1, 6, 10, 5, 4, 9, -1},
	{0, 3, 7, 0, 7, 6, 0, 6, 10, 0, 10, 5, 0, 5, 4, -1},
	{5, 4, 8, 5, 8, 7, 5, 7, 6, 5, 6, 10, -1, -1, -1, -1},
	{5, 6, 11, 5, 11, 8, 5, 8, 9, -1, -1, -1, -1, -1, -1, -1},
	{3, 0, 9, 3, 9, 5, 3, 5, 6, 3, 6, 11, -1, -1, -1, -1},
	{0, 1, 5, 0, 5, 6, 0, 6, 11, 0, 11, 8, -1, -1, -1, -1},
	{3, 1, 5, 3, 5, 6, 3, 6, 11, -1, -1, -1, -1, -1, -1, -1},
	{1, 2, 10, 5, 6, 11, 5, 11, 8, 5, 8, 9, -1, -1, -1, -1},
	{1, 2, 10, 3, 0, 9, 3, 9, 5, 3, 5, 6, 3, 6, 11, -1},
	{0, 2, 10, 0, 10, 5, 0, 5, 6, 0, 6, 11, 0, 11, 8, -1},
	{3, 2, 10, 3, 10, 5, 3, 5, 6, 3, 6, 11, -1, -1, -1, -1},
	{2, 3, 8, 2, 8, 9, 2, 9, 5, 2, 5, 6, -1, -1, -1, -1},
	{2, 0, 9, 2, 9, 5, 2, 5, 6, -1, -1, -1, -1, -1, -1, -1},
	{0, 1, 5, 0, 5, 6, 0, 6, 2, 0, 2, 3, 0, 3, 8, -1},
	{2, 1, 5, 2, 5, 6, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{1, 3, 8, 1, 8, 9, 1, 9, 5, 1, 5, 6, 1, 6, 10, -1},
	{1, 0, 9, 1, 9, 5, 1, 5, 6, 1, 6, 10, -1, -1, -1, -1},
	{0, 3, 8, 5, 6, 10, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{5, 6, 10, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{7, 5, 10, 7, 10, 11, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{3, 0, 8, 7, 5, 10, 7, 10, 11, -1, -1, -1, -1, -1, -1, -1},
	{0, 1, 9, 7, 5, 10, 7, 10, 11, -1, -1, -1, -1, -1, -1, -1},
	{3, 1, 9, 3, 9, 8, 7, 5, 10, 7, 10, 11, -1, -1, -1, -1},
	{1, 2, 11, 1, 11, 7, 1, 7, 5, -1, -1, -1, -1, -1, -1, -1},
	{1, 2, 11, 1, 11, 7, 1, 7, 5, 3, 0, 8, -1, -1, -1, -1},
	{0, 2, 11, 0, 11, 7, 0, 7, 5, 0, 5, 9, -1, -1, -1, -1},
	{3, 2, 11, 3, 11, 7, 3, 7, 5, 3, 5, 9, 3, 9, 8, -1},
	{2, 3, 7, 2, 7, 5, 2, 5, 10, -1, -1, -1, -1, -1, -1, -1},
	{2, 0, 8, 2, 8, 7, 2, 7, 5, 2, 5, 10, -1, -1, -1, -1},
	{0, 1, 9, 2, 3, 7, 2, 7, 5, 2, 5, 10, -1, -1, -1, -1},
	{2, 1, 9, 2, 9, 8, 2, 8, 7, 2, 7, 5, 2, 5, 10, -1},
	{1, 3, 7, 1, 7, 5, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{1, 0, 8, 1, 8, 7, 1, 7, 5, -1, -1, -1, -1, -1, -1, -1},
	{0, 3, 7, 0, 7, 5, 0, 5, 9, -1, -1, -1, -1, -1, -1, -1},
	{7, 5, 9, 7, 9, 8, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{4, 5, 10, 4, 10, 11, 4, 11, 8, -1, -1, -1, -1, -1, -1, -1},
	{3, 0, 4, 3, 4, 5, 3, 5, 10, 3, 10, 11, -1, -1, -1, -1},
	{0, 1, 9, 4, 5, 10, 4, 10, 11, 4, 11, 8, -1, -1, -1, -1},
	{3, 1, 9, 3, 9, 4, 3, 4, 5, 3, 5, 10, 3, 10, 11, -1},
	{1, 2, 11, 1, 11, 8, 1, 8, 4, 1, 4, 5, -1, -1, -1, -1},
	{1, 2, 11, 1, 11, 3, 1, 3, 0, 1, 0, 4, 1, 4, 5, -1},
	{0, 2, 11, 0, 11, 8, 0, 8, 4, 0, 4, 5, 0, 5, 9, -1},
	{3, 2, 11, 4, 5, 9, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{2, 3, 8, 2, 8, 4, 2, 4, 5, 2, 5, 10, -1, -1, -1, -1},
	{2, 0, 4, 2, 4, 5, 2, 5, 10, -1, -1, -1, -1, -1, -1, -1},
	{0, 1, 9, 2, 3, 8, 2, 8, 4, 2, 4, 5, 2, 5, 10, -1},
	{2, 1, 9, 2, 9, 4, 2, 4, 5, 2, 5, 10, -1, -1, -1, -1},
	{1, 3, 8, 1, 8, 4, 1, 4, 5, -1, -1, -1, -1, -1, -1, -1},
	{1, 0, 4, 1, 4, 5, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{0, 3, 8, 0, 8, 4, 0, 4, 5, 0, 5, 9, -1, -1, -1, -1},
	{4, 5, 9, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{7, 4, 9, 7, 9, 10, 7, 10, 11, -1, -1, -1, -1, -1, -1, -1},
	{3, 0, 8, 7, 4, 9, 7, 9, 10, 7, 10, 11, -1, -1, -1, -1},
	{0, 1, 10, 0, 10, 11, 0, 11, 7, 0, 7, 4, -1, -1, -1, -1},
	{3, 1, 10, 3, 10, 11, 3, 11, 7, 3, 7, 4, 3, 4, 8, -1},
	{1, 2, 11, 1, 11, 7, 1, 7, 4, 1, 4, 9, -1, -1, -1, -1},
	{1, 2, 11, 1, 11, 7, 1, 7, 4, 1, 4, 9, 3, 0, 8, -1},
	{0, 2, 11, 0, 11, 7, 0, 7, 4, -1, -1, -1, -1, -1, -1, -1},
	{3, 2, 11, 3, 11, 7, 3, 7, 4, 3, 4, 8, -1, -1, -1, -1},
	{2, 3, 7, 2, 7, 4, 2, 4, 9, 2, 9, 10, -1, -1, -1, -1},
	{2, 0, 8, 2, 8, 7, 2, 7, 4, 2, 4, 9, 2, 9, 10, -1},
	{0, 1, 10, 0, 10, 2, 0, 2, 3, 0, 3, 7, 0, 7, 4, -1},
	{2, 1, 10, 7, 4, 8, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{1, 3, 7, 1, 7, 4, 1, 4, 9, -1, -1, -1, -1, -1, -1, -1},
	{1, 0, 8, 1, 8, 7, 1, 7, 4, 1, 4, 9, -1, -1, -1, -1},
	{0, 3, 7, 0, 7, 4, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{7, 4, 8, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{8, 9, 10, 8, 10, 11, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{3, 0, 9, 3, 9, 10, 3, 10, 11, -1, -1, -1, -1, -1, -1, -1},
	{0, 1, 10, 0, 10, 11, 0, 11, 8, -1, -1, -1, -1, -1, -1, -1},
	{3, 1, 10, 3, 10, 11, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{1, 2, 11, 1, 11, 8, 1, 8, 9, -1, -1, -1, -1, -1, -1, -1},
	{1, 2, 11, 1, 11, 3, 1, 3, 0, 1, 0, 9, -1, -1, -1, -1},
	{0, 2, 11, 0, 11, 8, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{3, 2, 11, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{2, 3, 8, 2, 8, 9, 2, 9, 10, -1, -1, -1, -1, -1, -1, -1},
	{2, 0, 9, 2, 9, 10, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{0, 1, 10, 0, 10, 2, 0, 2, 3, 0, 3, 8, -1, -1, -1, -1},
	{2, 1, 10, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{1, 3, 8, 1, 8, 9, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{1, 0, 9, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{0, 3, 8, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
}
