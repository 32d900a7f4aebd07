// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package basis

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/gofem-dg/dgfem/shp"
)

// triMonomials enumerates, in the same order used to build the Vandermonde
// matrix, the complete total-degree-p bivariate monomial exponents (a,b)
// with a+b<=p: (order+1)(order+2)/2 of them, matching shp's triShape
// NumBasis.
func triMonomials(order int) [][2]int {
	var m [][2]int
	for s := 0; s <= order; s++ {
		for a := 0; a <= s; a++ {
			b := s - a
			m = append(m, [2]int{a, b})
		}
	}
	return m
}

// LagrangeTri is the nodal Lagrange basis at the equidistant lattice on the
// reference triangle, generalizing the teacher's hardcoded Tri3/Tri6 closed
// forms (shp/tris.go) to arbitrary order. Since there is no simple
// tensor-product or barycentric closed form for an arbitrary-order triangle
// Lagrange basis, the coefficients are found by inverting the nodal
// Vandermonde matrix of a complete total-degree monomial basis -- the one
// dense linear-algebra step in this package, using gosl/la.MatInv the same
// way the teacher's own shp/algos.go uses it for its Jacobian inverse.
type LagrangeTri struct {
	order  int
	nodes  [][]float64
	mono   [][2]int
	coeffs [][]float64 // coeffs[j][m]: coefficient of monomial m in L_j
}

func NewLagrangeTri(order int) *LagrangeTri {
	s := shp.Get("tri")
	nodes := s.EquidistantNodes(order)
	mono := triMonomials(order)
	nb := len(nodes)
	if len(mono) != nb {
		chk.Panic("basis: LagrangeTri order %d node count %d != monomial count %d", order, nb, len(mono))
	}

	// Vandermonde: V[k][m] = monomial_m(node_k)
	V := make([][]float64, nb)
	for k := 0; k < nb; k++ {
		V[k] = make([]float64, nb)
		for m := 0; m < nb; m++ {
			V[k][m] = monomialVal(mono[m], nodes[k])
		}
	}

	Vinv := la.MatAlloc(nb, nb)
	_, err := la.MatInv(Vinv, V, 1e-13)
	if err != nil {
		chk.Panic("basis: LagrangeTri order %d: singular Vandermonde: %v", order, err)
	}

	// L_j(x) = Σ_m A[j][m] monomial_m(x), A = Vinv^T since L_j(node_k) =
	// Σ_m A[j][m] V[k][m] = δ_jk  ⇒  A·V^T = I  ⇒  A = (V^T)^{-1} = Vinv^T.
	coeffs := make([][]float64, nb)
	for j := 0; j < nb; j++ {
		coeffs[j] = make([]float64, nb)
		for m := 0; m < nb; m++ {
			coeffs[j][m] = Vinv[m][j]
		}
	}

	return &LagrangeTri{order: order, nodes: nodes, mono: mono, coeffs: coeffs}
}

func monomialVal(e [2]int, pt []float64) float64 {
	return ipow(pt[0], e[0]) * ipow(pt[1], e[1])
}

func monomialGrad(e [2]int, pt []float64) (dx, dy float64) {
	if e[0] == 0 {
		dx = 0
	} else {
		dx = float64(e[0]) * ipow(pt[0], e[0]-1) * ipow(pt[1], e[1])
	}
	if e[1] == 0 {
		dy = 0
	} else {
		dy = float64(e[1]) * ipow(pt[0], e[0]) * ipow(pt[1], e[1]-1)
	}
	return dx, dy
}

func ipow(x float64, n int) float64 {
	r := 1.0
	for i := 0; i < n; i++ {
		r *= x
	}
	return r
}

func (b *LagrangeTri) Shape() shp.Shape { return shp.Get("tri") }
func (b *LagrangeTri) Order() int       { return b.order }
func (b *LagrangeTri) NumBasis() int    { return len(b.nodes) }

func (b *LagrangeTri) Values(pts [][]float64) [][]float64 {
	nb := len(b.nodes)
	out := make([][]float64, len(pts))
	for q, p := range pts {
		mvals := make([]float64, len(b.mono))
		for m, e := range b.mono {
			mvals[m] = monomialVal(e, p)
		}
		row := make([]float64, nb)
		for j := 0; j < nb; j++ {
			sum := 0.0
			for m := range b.mono {
				sum += b.coeffs[j][m] * mvals[m]
			}
			row[j] = sum
		}
		out[q] = row
	}
	return out
}

func (b *LagrangeTri) RefGrads(pts [][]float64) [][][]float64 {
	nb := len(b.nodes)
	out := make([][][]float64, len(pts))
	for q, p := range pts {
		mdx := make([]float64, len(b.mono))
		mdy := make([]float64, len(b.mono))
		for m, e := range b.mono {
			mdx[m], mdy[m] = monomialGrad(e, p)
		}
		row := make([][]float64, nb)
		for j := 0; j < nb; j++ {
			gx, gy := 0.0, 0.0
			for m := range b.mono {
				gx += b.coeffs[j][m] * mdx[m]
				gy += b.coeffs[j][m] * mdy[m]
			}
			row[j] = []float64{gx, gy}
		}
		out[q] = row
	}
	return out
}

func (b *LagrangeTri) Nodes() [][]float64 { return b.nodes }
