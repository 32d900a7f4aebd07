// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package basis

import (
	"github.com/gofem-dg/dgfem/quadrature"
	"github.com/gofem-dg/dgfem/shp"
)

// segmentNodes returns the order-p (p+1 point) 1D node coordinates for the
// requested family. Gauss node families are obtained from package quadrature
// by forcing its point count to p+1, reusing its Newton-Raphson Legendre
// root-finder instead of duplicating it here.
func segmentNodes(order int, family NodeFamily) []float64 {
	n := order + 1
	switch family {
	case NodeGaussLegendre:
		pts, _, err := quadrature.Get(shp.Get("segment"), 0, quadrature.GaussLegendre, n)
		if err != nil {
			panic(err)
		}
		out := make([]float64, n)
		for i, p := range pts {
			out[i] = p[0]
		}
		return out
	case NodeGaussLobatto:
		pts, _, err := quadrature.Get(shp.Get("segment"), 0, quadrature.GaussLobatto, n)
		if err != nil {
			panic(err)
		}
		out := make([]float64, n)
		for i, p := range pts {
			out[i] = p[0]
		}
		return out
	default:
		out := make([]float64, n)
		if n == 1 {
			out[0] = 0
			return out
		}
		for i := 0; i < n; i++ {
			out[i] = -1 + 2*float64(i)/float64(n-1)
		}
		return out
	}
}

// lagrange1D evaluates, at x, the values and derivatives of the n Lagrange
// polynomials supported at nodes, using the direct product formula (and its
// explicit product-rule derivative) rather than the barycentric form, since
// the product-rule derivative has no singularity at x==nodes[m].
func lagrange1D(nodes []float64, x float64) (vals, derivs []float64) {
	n := len(nodes)
	vals = make([]float64, n)
	derivs = make([]float64, n)
	for j := 0; j < n; j++ {
		val := 1.0
		for k := 0; k < n; k++ {
			if k == j {
				continue
			}
			val *= (x - nodes[k]) / (nodes[j] - nodes[k])
		}
		vals[j] = val

		deriv := 0.0
		for m := 0; m < n; m++ {
			if m == j {
				continue
			}
			term := 1.0 / (nodes[j] - nodes[m])
			for k := 0; k < n; k++ {
				if k == j || k == m {
					continue
				}
				term *= (x - nodes[k]) / (nodes[j] - nodes[k])
			}
			deriv += term
		}
		derivs[j] = deriv
	}
	return vals, derivs
}

// LagrangeSegment is the nodal Lagrange basis on the reference segment.
type LagrangeSegment struct {
	order  int
	family NodeFamily
	nodes  []float64
}

// NewLagrangeSegment builds a Lagrange basis of the given order on the
// requested 1D node family (spec §4.2: Equidistant, Gauss-Legendre,
// Gauss-Lobatto).
func NewLagrangeSegment(order int, family NodeFamily) *LagrangeSegment {
	return &LagrangeSegment{order: order, family: family, nodes: segmentNodes(order, family)}
}

func (b *LagrangeSegment) Shape() shp.Shape { return shp.Get("segment") }
func (b *LagrangeSegment) Order() int       { return b.order }
func (b *LagrangeSegment) NumBasis() int    { return b.order + 1 }

func (b *LagrangeSegment) Values(pts [][]float64) [][]float64 {
	out := make([][]float64, len(pts))
	for i, p := range pts {
		v, _ := lagrange1D(b.nodes, p[0])
		out[i] = v
	}
	return out
}

func (b *LagrangeSegment) RefGrads(pts [][]float64) [][][]float64 {
	out := make([][][]float64, len(pts))
	for i, p := range pts {
		_, d := lagrange1D(b.nodes, p[0])
		out[i] = make([][]float64, len(d))
		for j, dj := range d {
			out[i][j] = []float64{dj}
		}
	}
	return out
}

func (b *LagrangeSegment) Nodes() [][]float64 {
	out := make([][]float64, len(b.nodes))
	for i, x := range b.nodes {
		out[i] = []float64{x}
	}
	return out
}
