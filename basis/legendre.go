// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package basis

import (
	"math"

	"github.com/gofem-dg/dgfem/shp"
)

// legendreVal returns P_0..P_n(x) and their derivatives via the same
// three-term recurrence used by package quadrature's Gauss-node solver.
func legendreVal(n int, x float64) (p, dp []float64) {
	p = make([]float64, n+1)
	dp = make([]float64, n+1)
	p[0] = 1
	dp[0] = 0
	if n == 0 {
		return p, dp
	}
	p[1] = x
	dp[1] = 1
	for k := 1; k < n; k++ {
		p[k+1] = ((2*float64(k)+1)*x*p[k] - float64(k)*p[k-1]) / float64(k+1)
	}
	for k := 1; k <= n; k++ {
		if math.Abs(x*x-1) < 1e-14 {
			// derivative at the endpoints: P_k'(±1) = (±1)^{k+1} k(k+1)/2
			sign := 1.0
			if x < 0 && k%2 == 0 {
				sign = -1.0
			}
			dp[k] = sign * float64(k) * float64(k+1) / 2
			continue
		}
		dp[k] = float64(k) * (x*p[k] - p[k-1]) / (x*x - 1)
	}
	return p, dp
}

// legendreNormalized returns orthonormal Legendre values/derivs on [-1,1]:
// P_k scaled by sqrt((2k+1)/2), per spec §4.2's "orthonormal Legendre
// polynomials" modal family.
func legendreNormalized(n int, x float64) (p, dp []float64) {
	p, dp = legendreVal(n, x)
	for k := 0; k <= n; k++ {
		s := math.Sqrt((2*float64(k) + 1) / 2)
		p[k] *= s
		dp[k] *= s
	}
	return p, dp
}

// LegendreSegment is the modal orthonormal-Legendre basis on the segment.
type LegendreSegment struct {
	order int
}

func NewLegendreSegment(order int) *LegendreSegment { return &LegendreSegment{order: order} }

func (b *LegendreSegment) Shape() shp.Shape { return shp.Get("segment") }
func (b *LegendreSegment) Order() int       { return b.order }
func (b *LegendreSegment) NumBasis() int    { return b.order + 1 }

func (b *LegendreSegment) Values(pts [][]float64) [][]float64 {
	out := make([][]float64, len(pts))
	for i, p := range pts {
		v, _ := legendreNormalized(b.order, p[0])
		out[i] = v
	}
	return out
}

func (b *LegendreSegment) RefGrads(pts [][]float64) [][][]float64 {
	out := make([][][]float64, len(pts))
	for i, p := range pts {
		_, d := legendreNormalized(b.order, p[0])
		out[i] = make([][]float64, len(d))
		for j, dj := range d {
			out[i][j] = []float64{dj}
		}
	}
	return out
}

// Nodes returns the Gauss-Lobatto points of matching order, used only as the
// sample set for spec §4.9's nodal-interpolation fallback (a modal basis has
// no true nodes).
func (b *LegendreSegment) Nodes() [][]float64 {
	x := segmentNodes(b.order, NodeGaussLobatto)
	out := make([][]float64, len(x))
	for i, xi := range x {
		out[i] = []float64{xi}
	}
	return out
}

// LegendreQuad is the tensor-product orthonormal-Legendre basis on the quad.
type LegendreQuad struct {
	order int
}

func NewLegendreQuad(order int) *LegendreQuad { return &LegendreQuad{order: order} }

func (b *LegendreQuad) Shape() shp.Shape { return shp.Get("quad") }
func (b *LegendreQuad) Order() int       { return b.order }
func (b *LegendreQuad) NumBasis() int    { n := b.order + 1; return n * n }

func (b *LegendreQuad) Values(pts [][]float64) [][]float64 {
	n := b.order + 1
	out := make([][]float64, len(pts))
	for q, p := range pts {
		vr, _ := legendreNormalized(b.order, p[0])
		vs, _ := legendreNormalized(b.order, p[1])
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

func (b *LegendreQuad) RefGrads(pts [][]float64) [][][]float64 {
	n := b.order + 1
	out := make([][][]float64, len(pts))
	for q, p := range pts {
		vr, dr := legendreNormalized(b.order, p[0])
		vs, ds := legendreNormalized(b.order, p[1])
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

func (b *LegendreQuad) Nodes() [][]float64 {
	n := b.order + 1
	x := segmentNodes(b.order, NodeGaussLobatto)
	out := make([][]float64, n*n)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			out[j*n+i] = []float64{x[i], x[j]}
		}
	}
	return out
}
