// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// quadShape is the 2D reference element [-1,1]x[-1,1]. Nodes at order p are
// laid out in tensor-product order idx(i,j) = j*(p+1)+i, i,j in [0,p], with
// r(i) = -1+2i/p and s(j) = -1+2j/p -- the same row-major convention the
// quadrilateral Lagrange basis (package basis) assumes.
type quadShape struct{}

var theQuad quadShape

func init() { register(theQuad) }

func (quadShape) Name() string     { return "quad" }
func (quadShape) Dim() int         { return 2 }
func (quadShape) NumFaces() int    { return 4 }
func (quadShape) FaceShape() Shape { return theSegment }

// PrincipalNodes returns the 4 corners in the tensor-product order used
// throughout: (-1,-1), (1,-1), (-1,1), (1,1).
func (quadShape) PrincipalNodes() [][]float64 {
	return [][]float64{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}
}

func (quadShape) NumBasis(order int) int { return (order + 1) * (order + 1) }

func (quadShape) EquidistantNodes(order int) [][]float64 {
	n := order + 1
	pts := make([][]float64, n*n)
	for j := 0; j < n; j++ {
		s := -1.0
		if n > 1 {
			s = -1.0 + 2.0*float64(j)/float64(n-1)
		}
		for i := 0; i < n; i++ {
			r := -1.0
			if n > 1 {
				r = -1.0 + 2.0*float64(i)/float64(n-1)
			}
			pts[j*n+i] = []float64{r, s}
		}
	}
	return pts
}

// quadFaceCorners returns, for faceID in [0,3], the indices into
// PrincipalNodes() of the two corners bounding that face, in the order the
// face-local parameter s=-1..1 traverses them. See spec §4.1: face-corner
// pairs 0->(0,1), 1->(1,3), 2->(3,2), 3->(2,0) in principal-node indexing.
var quadFaceCorners = [4][2]int{{0, 1}, {1, 3}, {3, 2}, {2, 0}}

// FaceLift maps face-local points (1D, s in [-1,1]) to element reference
// coordinates by linear interpolation between the two face corners.
func (quadShape) FaceLift(faceID int, facePts [][]float64) [][]float64 {
	c := quadFaceCorners[faceID]
	corners := theQuad.PrincipalNodes()
	x0, x1 := corners[c[0]], corners[c[1]]
	out := make([][]float64, len(facePts))
	for k, p := range facePts {
		t := (p[0] + 1.0) / 2.0
		out[k] = []float64{
			(1-t)*x0[0] + t*x1[0],
			(1-t)*x0[1] + t*x1[1],
		}
	}
	return out
}

// FaceLocalNodes returns the order-p tensor-product node indices lying on
// faceID, ordered from the face's first corner to its second.
func (quadShape) FaceLocalNodes(faceID, order int) []int {
	n := order + 1
	idx := func(i, j int) int { return j*n + i }
	switch faceID {
	case 0: // bottom: j=0, i=0..p
		out := make([]int, n)
		for i := 0; i < n; i++ {
			out[i] = idx(i, 0)
		}
		return out
	case 1: // right: i=p, j=0..p
		out := make([]int, n)
		for j := 0; j < n; j++ {
			out[j] = idx(order, j)
		}
		return out
	case 2: // top: j=p, i=p..0
		out := make([]int, n)
		for k, i := 0, order; i >= 0; k, i = k+1, i-1 {
			out[k] = idx(i, order)
		}
		return out
	case 3: // left: i=0, j=p..0
		out := make([]int, n)
		for k, j := 0, order; j >= 0; k, j = k+1, j-1 {
			out[k] = idx(0, j)
		}
		return out
	}
	return nil
}
