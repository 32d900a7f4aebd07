// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// segmentShape is the 1D reference element [-1,1]; face 0 is r=-1, face 1 is r=+1.
type segmentShape struct{}

var theSegment segmentShape

func init() { register(theSegment) }

func (segmentShape) Name() string     { return "segment" }
func (segmentShape) Dim() int         { return 1 }
func (segmentShape) NumFaces() int    { return 2 }
func (segmentShape) FaceShape() Shape { return thePoint }

func (segmentShape) PrincipalNodes() [][]float64 {
	return [][]float64{{-1}, {1}}
}

func (segmentShape) NumBasis(order int) int { return order + 1 }

// EquidistantNodes returns p+1 equidistant points on [-1,1], in the natural
// left-to-right order (vertex 0 at r=-1, vertex 1 at r=+1, interior nodes in
// between); this is the node numbering the basis and face-lift code assume.
func (segmentShape) EquidistantNodes(order int) [][]float64 {
	n := order + 1
	pts := make([][]float64, n)
	if n == 1 {
		pts[0] = []float64{0}
		return pts
	}
	for i := 0; i < n; i++ {
		r := -1.0 + 2.0*float64(i)/float64(n-1)
		pts[i] = []float64{r}
	}
	return pts
}

// FaceLift lifts a face (point) reference "coordinate" to the segment's
// reference coordinate: face 0 -> r=-1, face 1 -> r=+1. facePts are ignored
// (a point carries no coordinate) but one row is returned per facePts entry
// (or a single row if facePts is empty), for uniformity with the 2D shapes.
func (segmentShape) FaceLift(faceID int, facePts [][]float64) [][]float64 {
	r := -1.0
	if faceID == 1 {
		r = 1.0
	}
	n := len(facePts)
	if n == 0 {
		n = 1
	}
	out := make([][]float64, n)
	for i := range out {
		out[i] = []float64{r}
	}
	return out
}

func (segmentShape) FaceLocalNodes(faceID, order int) []int {
	if faceID == 0 {
		return []int{0}
	}
	return []int{1}
}
