// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// triShape is the reference triangle {(ξ,η): ξ,η>=0, ξ+η<=1}. Order-p nodes
// are laid out row-major from the bottom edge (η=0) upward, row j (η=j/p)
// holding p-j+1 equidistant nodes; see spec §4.1.
type triShape struct{}

var theTri triShape

func init() { register(theTri) }

func (triShape) Name() string     { return "tri" }
func (triShape) Dim() int         { return 2 }
func (triShape) NumFaces() int    { return 3 }
func (triShape) FaceShape() Shape { return theSegment }

func (triShape) PrincipalNodes() [][]float64 {
	return [][]float64{{0, 0}, {1, 0}, {0, 1}}
}

func (triShape) NumBasis(order int) int { return (order + 1) * (order + 2) / 2 }

// EquidistantNodes returns the row-major node lattice described above.
func (triShape) EquidistantNodes(order int) [][]float64 {
	p := order
	pts := make([][]float64, 0, (p+1)*(p+2)/2)
	for j := 0; j <= p; j++ {
		eta := 0.0
		if p > 0 {
			eta = float64(j) / float64(p)
		}
		row := p - j
		for i := 0; i <= row; i++ {
			xi := 1.0 - eta
			if row > 0 {
				xi = float64(i) * (1.0 - eta) / float64(row)
			}
			pts = append(pts, []float64{xi, eta})
		}
	}
	return pts
}

// triFaceCorners gives, per faceID, the two principal-node indices bounding
// it: face0=(v1,v2) hypotenuse, face1=(v2,v0) left edge, face2=(v0,v1) bottom
// edge -- see spec §4.1.
var triFaceCorners = [3][2]int{{1, 2}, {2, 0}, {0, 1}}

func (triShape) FaceLift(faceID int, facePts [][]float64) [][]float64 {
	c := triFaceCorners[faceID]
	corners := theTri.PrincipalNodes()
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

// FaceLocalNodes returns the order-p node indices (into EquidistantNodes)
// lying on faceID, ordered from its first corner to its second.
func (triShape) FaceLocalNodes(faceID, order int) []int {
	p := order
	// row offsets into the row-major lattice
	rowStart := make([]int, p+2)
	off := 0
	for j := 0; j <= p; j++ {
		rowStart[j] = off
		off += p - j + 1
	}
	idxOf := func(i, j int) int { return rowStart[j] + i }
	switch faceID {
	case 0: // hypotenuse: v1=(i=p,j=0) -> v2=(i=0,j=p)
		out := make([]int, p+1)
		for k := 0; k <= p; k++ {
			j := k
			i := p - j
			out[k] = idxOf(i, j)
		}
		return out
	case 1: // left edge: v2=(i=0,j=p) -> v0=(i=0,j=0)
		out := make([]int, p+1)
		for k := 0; k <= p; k++ {
			j := p - k
			out[k] = idxOf(0, j)
		}
		return out
	case 2: // bottom edge: v0=(i=0,j=0) -> v1=(i=p,j=0)
		out := make([]int, p+1)
		for k := 0; k <= p; k++ {
			out[k] = idxOf(k, 0)
		}
		return out
	}
	return nil
}
