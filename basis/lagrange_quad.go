// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package basis

import "github.com/gofem-dg/dgfem/shp"

// LagrangeQuad is the tensor-product nodal Lagrange basis on the reference
// quadrilateral, generalizing the teacher's hardcoded Qua4/Qua8/Qua9 closed
// forms (shp/quads.go) to arbitrary order via the 1D Lagrange factors of
// LagrangeSegment, indexed idx(i,j) = j*n+i to match shp/quad.go's node
// numbering.
type LagrangeQuad struct {
	order  int
	family NodeFamily
	nodes1 []float64
}

func NewLagrangeQuad(order int, family NodeFamily) *LagrangeQuad {
	return &LagrangeQuad{order: order, family: family, nodes1: segmentNodes(order, family)}
}

func (b *LagrangeQuad) Shape() shp.Shape { return shp.Get("quad") }
func (b *LagrangeQuad) Order() int       { return b.order }
func (b *LagrangeQuad) NumBasis() int    { n := b.order + 1; return n * n }

func (b *LagrangeQuad) Values(pts [][]float64) [][]float64 {
	n := b.order + 1
	out := make([][]float64, len(pts))
	for q, p := range pts {
		vr, _ := lagrange1D(b.nodes1, p[0])
		vs, _ := lagrange1D(b.nodes1, p[1])
		row := make([]float64, n*n)
		for j := 0; j < n; j++ {
			for i := 0; i < n; i++ {
				row[j*n+i] = vr[i] * vs[j]
			}
		}
		out[q] = row
	}
	return out
}

func (b *LagrangeQuad) RefGrads(pts [][]float64) [][][]float64 {
	n := b.order + 1
	out := make([][][]float64, len(pts))
	for q, p := range pts {
		vr, dr := lagrange1D(b.nodes1, p[0])
		vs, ds := lagrange1D(b.nodes1, p[1])
		row := make([][]float64, n*n)
		for j := 0; j < n; j++ {
			for i := 0; i < n; i++ {
				row[j*n+i] = []float64{dr[i] * vs[j], vr[i] * ds[j]}
			}
		}
		out[q] = row
	}
	return out
}

func (b *LagrangeQuad) Nodes() [][]float64 {
	n := b.order + 1
	out := make([][]float64, n*n)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			out[j*n+i] = []float64{b.nodes1[i], b.nodes1[j]}
		}
	}
	return out
}
